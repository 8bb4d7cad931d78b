package uow

import (
	"context"

	"loanportal-backend/internal/domain/installment"
	"loanportal-backend/internal/domain/loan"
	"loanportal-backend/internal/domain/notification"
	"loanportal-backend/internal/domain/user"
)

type Repos struct {
	Users         user.Repository
	Loans         loan.Repository
	Installments  installment.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.LoanApplication) error) error
}
