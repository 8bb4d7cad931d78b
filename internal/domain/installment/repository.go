package installment

import (
	"context"
	"time"
)

type Repository interface {
	// CreateBatch inserts the whole schedule in one statement; a failure
	// inserts nothing.
	CreateBatch(ctx context.Context, batch []*Installment) error
	GetByInstallmentID(ctx context.Context, installmentID string) (*Installment, error)
	GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*Installment, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Installment, error)
	ListByUserID(ctx context.Context, userID string) ([]Installment, error)
	CountByLoanID(ctx context.Context, loanID string) (int64, error)
	// ExistingNumbers returns the installment numbers already present for a
	// loan, for the schedule-resume path.
	ExistingNumbers(ctx context.Context, loanID string) ([]int, error)

	// MarkPaid performs the conditional pending→paid write and reports
	// whether this caller won it.
	MarkPaid(ctx context.Context, installmentID string, paidAt time.Time, method Method, intentID string) (bool, error)
}
