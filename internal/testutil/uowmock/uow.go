package uowmock

import (
	"context"

	"loanportal-backend/internal/domain/loan"
	"loanportal-backend/internal/domain/uow"
)

// UoW runs the callback inline against the configured repos: no transaction,
// no rollback. Err short-circuits both entry points.
type UoW struct {
	Repos uow.Repos
	Err   error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.LoanApplication) error) error {
	if m.Err != nil {
		return m.Err
	}
	l, err := m.Repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}
