package loanmock

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "loanportal-backend/internal/domain/loan"
)

// Repo is a function-backed mock satisfying loan.Repository. Only set the
// fields a test needs; unset readers report record-not-found.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.LoanApplication) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.LoanApplication, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.LoanApplication, error)
	ListByUserIDFn         func(ctx context.Context, userID string) ([]domain.LoanApplication, error)
	ListFn                 func(ctx context.Context, f domain.ListFilter) ([]domain.LoanApplication, int64, error)
	MarkDecidedFn          func(ctx context.Context, loanID string, upd domain.DecisionUpdate) (bool, error)
	CountByStatusFn        func(ctx context.Context, status domain.Status) (int64, error)
	CountFn                func(ctx context.Context) (int64, error)
	CountCreatedSinceFn    func(ctx context.Context, since time.Time) (int64, error)
	ApprovedTotalFn        func(ctx context.Context) (float64, error)
	StatusDistributionFn   func(ctx context.Context) ([]domain.StatusBucket, error)
	TypeDistributionFn     func(ctx context.Context) ([]domain.TypeBucket, error)
	MonthlySeriesFn        func(ctx context.Context, months int) ([]domain.MonthBucket, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.LoanApplication, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.LoanApplication, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) MarkDecided(ctx context.Context, loanID string, upd domain.DecisionUpdate) (bool, error) {
	if m.MarkDecidedFn != nil {
		return m.MarkDecidedFn(ctx, loanID, upd)
	}
	return false, nil
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

func (m *Repo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountCreatedSinceFn != nil {
		return m.CountCreatedSinceFn(ctx, since)
	}
	return 0, nil
}

func (m *Repo) ApprovedTotal(ctx context.Context) (float64, error) {
	if m.ApprovedTotalFn != nil {
		return m.ApprovedTotalFn(ctx)
	}
	return 0, nil
}

func (m *Repo) StatusDistribution(ctx context.Context) ([]domain.StatusBucket, error) {
	if m.StatusDistributionFn != nil {
		return m.StatusDistributionFn(ctx)
	}
	return nil, nil
}

func (m *Repo) TypeDistribution(ctx context.Context) ([]domain.TypeBucket, error) {
	if m.TypeDistributionFn != nil {
		return m.TypeDistributionFn(ctx)
	}
	return nil, nil
}

func (m *Repo) MonthlySeries(ctx context.Context, months int) ([]domain.MonthBucket, error) {
	if m.MonthlySeriesFn != nil {
		return m.MonthlySeriesFn(ctx, months)
	}
	return nil, nil
}
