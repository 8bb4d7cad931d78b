package user

import "context"

type ListFilter struct {
	Search string
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, f ListFilter) ([]User, int64, error)
	UpdateStatus(ctx context.Context, userID string, status Status) (bool, error)
	SoftDelete(ctx context.Context, userID, deletedBy string) (bool, error)
	SaveStripeCustomerID(ctx context.Context, userID, customerID string) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
	Count(ctx context.Context) (int64, error)

	// ApplyWalletEntry appends tx to the ledger and moves the balance by the
	// signed amount in the same store round-trip. Callers needing atomicity
	// with other writes run it inside a unit of work.
	ApplyWalletEntry(ctx context.Context, tx *WalletTransaction) error
	WalletTransactions(ctx context.Context, userID string) ([]WalletTransaction, error)
}
