package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "loanportal-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.LoanApplication, error) {
	var out loanDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.LoanApplication, error) {
	var out loanDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByUserID(ctx context.Context, userID string) ([]loanDomain.LoanApplication, error) {
	var out []loanDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.ListFilter) ([]loanDomain.LoanApplication, int64, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.LoanApplication{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
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

	var out []loanDomain.LoanApplication
	res := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&out)
	return out, total, res.Error
}

// MarkDecided is the conditional status write: only one concurrent decide()
// can see RowsAffected == 1.
func (r *LoanRepository) MarkDecided(ctx context.Context, loanID string, upd loanDomain.DecisionUpdate) (bool, error) {
	fields := map[string]any{
		"status":      upd.Status,
		"reviewed_by": upd.ReviewedBy,
		"reviewed_at": upd.ReviewedAt,
	}
	if upd.RejectionReason != "" {
		fields["rejection_reason"] = upd.RejectionReason
	}
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.StatusPending).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *LoanRepository) CountByStatus(ctx context.Context, status loanDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Where("status = ?", status).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.LoanApplication{}).Count(&n)
	return n, res.Error
}

func (r *LoanRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Where("created_at >= ?", since).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) ApprovedTotal(ctx context.Context) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Where("status = ?", loanDomain.StatusApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}

func (r *LoanRepository) StatusDistribution(ctx context.Context) ([]loanDomain.StatusBucket, error) {
	var out []loanDomain.StatusBucket
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("status").
		Scan(&out)
	return out, res.Error
}

func (r *LoanRepository) TypeDistribution(ctx context.Context) ([]loanDomain.TypeBucket, error) {
	var out []loanDomain.TypeBucket
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Select("loan_type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount, COALESCE(AVG(amount), 0) AS avg_amount").
		Group("loan_type").
		Scan(&out)
	return out, res.Error
}

// MonthlySeries uses MySQL date functions; it has no SQLite fallback and is
// covered by the MySQL deployment only.
func (r *LoanRepository) MonthlySeries(ctx context.Context, months int) ([]loanDomain.MonthBucket, error) {
	if months < 1 {
		months = 12
	}
	var out []loanDomain.MonthBucket
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanApplication{}).
		Select("YEAR(created_at) AS year, MONTH(created_at) AS month, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("YEAR(created_at), MONTH(created_at)").
		Order("year DESC, month DESC").
		Limit(months).
		Scan(&out)
	return out, res.Error
}
