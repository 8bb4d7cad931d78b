package installmentmock

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "loanportal-backend/internal/domain/installment"
)

// Repo is a function-backed mock satisfying installment.Repository.
type Repo struct {
	CreateBatchFn                 func(ctx context.Context, batch []*domain.Installment) error
	GetByInstallmentIDFn          func(ctx context.Context, installmentID string) (*domain.Installment, error)
	GetByInstallmentIDForUpdateFn func(ctx context.Context, installmentID string) (*domain.Installment, error)
	ListByLoanIDFn                func(ctx context.Context, loanID string) ([]domain.Installment, error)
	ListByUserIDFn                func(ctx context.Context, userID string) ([]domain.Installment, error)
	CountByLoanIDFn               func(ctx context.Context, loanID string) (int64, error)
	ExistingNumbersFn             func(ctx context.Context, loanID string) ([]int, error)
	MarkPaidFn                    func(ctx context.Context, installmentID string, paidAt time.Time, method domain.Method, intentID string) (bool, error)
}

func (m *Repo) CreateBatch(ctx context.Context, batch []*domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, batch)
	}
	return nil
}

func (m *Repo) GetByInstallmentID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDFn != nil {
		return m.GetByInstallmentIDFn(ctx, installmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDForUpdateFn != nil {
		return m.GetByInstallmentIDForUpdateFn(ctx, installmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Installment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Installment, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) CountByLoanID(ctx context.Context, loanID string) (int64, error) {
	if m.CountByLoanIDFn != nil {
		return m.CountByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Repo) ExistingNumbers(ctx context.Context, loanID string) ([]int, error) {
	if m.ExistingNumbersFn != nil {
		return m.ExistingNumbersFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) MarkPaid(ctx context.Context, installmentID string, paidAt time.Time, method domain.Method, intentID string) (bool, error) {
	if m.MarkPaidFn != nil {
		return m.MarkPaidFn(ctx, installmentID, paidAt, method, intentID)
	}
	return false, nil
}
