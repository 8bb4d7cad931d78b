package usermock

import (
	"context"

	"gorm.io/gorm"

	domain "loanportal-backend/internal/domain/user"
)

// Repo is a function-backed mock satisfying user.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, u *domain.User) error
	GetByUserIDFn          func(ctx context.Context, userID string) (*domain.User, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn           func(ctx context.Context, email string) (*domain.User, error)
	ListFn                 func(ctx context.Context, f domain.ListFilter) ([]domain.User, int64, error)
	UpdateStatusFn         func(ctx context.Context, userID string, status domain.Status) (bool, error)
	SoftDeleteFn           func(ctx context.Context, userID, deletedBy string) (bool, error)
	SaveStripeCustomerIDFn func(ctx context.Context, userID, customerID string) error
	CountByStatusFn        func(ctx context.Context, status domain.Status) (int64, error)
	CountFn                func(ctx context.Context) (int64, error)
	ApplyWalletEntryFn     func(ctx context.Context, tx *domain.WalletTransaction) error
	WalletTransactionsFn   func(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.User, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) UpdateStatus(ctx context.Context, userID string, status domain.Status) (bool, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, userID, status)
	}
	return false, nil
}

func (m *Repo) SoftDelete(ctx context.Context, userID, deletedBy string) (bool, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, userID, deletedBy)
	}
	return false, nil
}

func (m *Repo) SaveStripeCustomerID(ctx context.Context, userID, customerID string) error {
	if m.SaveStripeCustomerIDFn != nil {
		return m.SaveStripeCustomerIDFn(ctx, userID, customerID)
	}
	return nil
}

func (m *Repo) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	return 0, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) ApplyWalletEntry(ctx context.Context, tx *domain.WalletTransaction) error {
	if m.ApplyWalletEntryFn != nil {
		return m.ApplyWalletEntryFn(ctx, tx)
	}
	return nil
}

func (m *Repo) WalletTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	if m.WalletTransactionsFn != nil {
		return m.WalletTransactionsFn(ctx, userID)
	}
	return nil, nil
}
