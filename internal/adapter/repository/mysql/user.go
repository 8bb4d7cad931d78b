package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	userDomain "loanportal-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context, f userDomain.ListFilter) ([]userDomain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&userDomain.User{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var out []userDomain.User
	res := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&out)
	return out, total, res.Error
}

func (r *UserRepository) UpdateStatus(ctx context.Context, userID string, status userDomain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, userID, deletedBy string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"status":     userDomain.StatusDeleted,
			"deleted_by": deletedBy,
			"deleted_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *UserRepository) SaveStripeCustomerID(ctx context.Context, userID, customerID string) error {
	return r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Update("stripe_customer_id", customerID).Error
}

func (r *UserRepository) CountByStatus(ctx context.Context, status userDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("status = ?", status).
		Count(&n)
	return n, res.Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).Count(&n)
	return n, res.Error
}

// ApplyWalletEntry appends the ledger row, then moves the balance by the
// signed amount in one UPDATE. Run inside a unit of work when the entry must
// commit together with other writes.
func (r *UserRepository) ApplyWalletEntry(ctx context.Context, tx *userDomain.WalletTransaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", tx.UserID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", tx.Kind.Signed(tx.Amount))).Error
}

func (r *UserRepository) WalletTransactions(ctx context.Context, userID string) ([]userDomain.WalletTransaction, error) {
	var out []userDomain.WalletTransaction
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
