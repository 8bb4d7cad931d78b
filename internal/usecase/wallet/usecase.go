// Package wallet owns the per-user ledger: append-only transactions plus a
// running balance. Entries are written only by loan approval (credit) and
// installment payment (debit); corrections are offsetting entries, never
// edits.
package wallet

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loanportal-backend/internal/domain/fault"
	"loanportal-backend/internal/domain/uow"
	"loanportal-backend/internal/domain/user"
)

type Usecase struct {
	users user.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(users user.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{users: users, uow: tx}
}

type EntryInput struct {
	UserID      string
	Amount      float64
	Description string
	LoanID      string
}

type BalanceDTO struct {
	UserID  string  `json:"user_id"`
	Balance float64 `json:"balance"`
}

type StatementDTO struct {
	UserID       string                   `json:"user_id"`
	Balance      float64                  `json:"balance"`
	Transactions []user.WalletTransaction `json:"transactions"`
}

func (u *Usecase) Credit(ctx context.Context, in EntryInput) (*BalanceDTO, error) {
	return u.apply(ctx, user.TxCredit, in)
}

// Debit appends a withdrawal entry. Debits may drive the balance negative:
// a repayment lands after the borrower has spent the credited principal, so
// there is no floor check here.
func (u *Usecase) Debit(ctx context.Context, in EntryInput) (*BalanceDTO, error) {
	return u.apply(ctx, user.TxDebit, in)
}

func (u *Usecase) apply(ctx context.Context, kind user.TxKind, in EntryInput) (*BalanceDTO, error) {
	if in.Amount <= 0 {
		return nil, fault.InvalidArgument("amount must be positive")
	}
	if in.Description == "" {
		return nil, fault.InvalidArgument("description is required")
	}

	var out *BalanceDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserIDForUpdate(ctx, in.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("user")
			}
			return err
		}

		entry := &user.WalletTransaction{
			UserID:      usr.UserID,
			Kind:        kind,
			Amount:      in.Amount,
			Description: in.Description,
			LoanID:      in.LoanID,
		}
		if err := r.Users.ApplyWalletEntry(ctx, entry); err != nil {
			return err
		}

		out = &BalanceDTO{
			UserID:  usr.UserID,
			Balance: usr.WalletBalance + kind.Signed(in.Amount),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Statement(ctx context.Context, userID string) (*StatementDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("user")
		}
		return nil, err
	}
	txs, err := u.users.WalletTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &StatementDTO{UserID: usr.UserID, Balance: usr.WalletBalance, Transactions: txs}, nil
}
