package loan

import (
	"context"
	"time"
)

// DecisionUpdate is the one-shot review write applied at the status
// transition. It is only ever applied with a status='pending' condition.
type DecisionUpdate struct {
	Status          Status
	ReviewedBy      string
	ReviewedAt      time.Time
	RejectionReason string
}

type ListFilter struct {
	Status Status // zero value = all
	Page   int
	Limit  int
}

type StatusBucket struct {
	Status      Status  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type TypeBucket struct {
	LoanType    Type    `json:"loan_type"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	AvgAmount   float64 `json:"avg_amount"`
}

type MonthBucket struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type Repository interface {
	Create(ctx context.Context, l *LoanApplication) error
	GetByLoanID(ctx context.Context, loanID string) (*LoanApplication, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*LoanApplication, error)
	ListByUserID(ctx context.Context, userID string) ([]LoanApplication, error)
	List(ctx context.Context, f ListFilter) ([]LoanApplication, int64, error)

	// MarkDecided applies upd conditionally (WHERE status='pending') and
	// reports whether this caller won the transition.
	MarkDecided(ctx context.Context, loanID string, upd DecisionUpdate) (bool, error)

	CountByStatus(ctx context.Context, status Status) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	ApprovedTotal(ctx context.Context) (float64, error)
	StatusDistribution(ctx context.Context) ([]StatusBucket, error)
	TypeDistribution(ctx context.Context) ([]TypeBucket, error)
	MonthlySeries(ctx context.Context, months int) ([]MonthBucket, error)
}
