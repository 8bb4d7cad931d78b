package wallet

import (
	"context"
	"testing"

	"loanportal-backend/internal/domain/fault"
	"loanportal-backend/internal/domain/uow"
	"loanportal-backend/internal/domain/user"
	"loanportal-backend/internal/testutil/uowmock"
	"loanportal-backend/internal/testutil/usermock"
)

const userID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

// ledger keeps the invariant the real store enforces: balance is always the
// sum of signed entry amounts.
type ledger struct {
	balance float64
	entries []user.WalletTransaction
}

func newLedgerUsecase(l *ledger) *Usecase {
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, id string) (*user.User, error) {
			return &user.User{UserID: userID, WalletBalance: l.balance}, nil
		},
		GetByUserIDForUpdateFn: func(ctx context.Context, id string) (*user.User, error) {
			return &user.User{UserID: userID, WalletBalance: l.balance}, nil
		},
		ApplyWalletEntryFn: func(ctx context.Context, tx *user.WalletTransaction) error {
			l.entries = append(l.entries, *tx)
			l.balance += tx.Kind.Signed(tx.Amount)
			return nil
		},
		WalletTransactionsFn: func(ctx context.Context, id string) ([]user.WalletTransaction, error) {
			return l.entries, nil
		},
	}
	return NewUsecase(users, &uowmock.UoW{Repos: uow.Repos{Users: users}})
}

func TestCreditThenDebit(t *testing.T) {
	l := &ledger{}
	uc := newLedgerUsecase(l)

	out, err := uc.Credit(context.Background(), EntryInput{
		UserID: userID, Amount: 12_000, Description: "Loan approved - personal loan",
	})
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if out.Balance != 12_000 {
		t.Errorf("balance after credit = %v", out.Balance)
	}

	out, err = uc.Debit(context.Background(), EntryInput{
		UserID: userID, Amount: 1000, Description: "Loan installment payment #1",
	})
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if out.Balance != 11_000 {
		t.Errorf("balance after debit = %v", out.Balance)
	}

	// balance == Σ signed amounts
	var sum float64
	for _, e := range l.entries {
		sum += e.Kind.Signed(e.Amount)
	}
	if sum != l.balance {
		t.Fatalf("balance %v != signed sum %v", l.balance, sum)
	}
}

func TestDebit_MayGoNegative(t *testing.T) {
	uc := newLedgerUsecase(&ledger{})
	out, err := uc.Debit(context.Background(), EntryInput{
		UserID: userID, Amount: 250, Description: "Loan installment payment #2",
	})
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if out.Balance != -250 {
		t.Errorf("balance = %v, want -250", out.Balance)
	}
}

func TestApply_Validation(t *testing.T) {
	uc := newLedgerUsecase(&ledger{})
	cases := []struct {
		name string
		in   EntryInput
	}{
		{"zero amount", EntryInput{UserID: userID, Amount: 0, Description: "x"}},
		{"negative amount", EntryInput{UserID: userID, Amount: -5, Description: "x"}},
		{"missing description", EntryInput{UserID: userID, Amount: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Credit(context.Background(), tc.in); fault.KindOf(err) != fault.KindInvalidArgument {
				t.Fatalf("err = %v, want invalid_argument", err)
			}
		})
	}
}

func TestCredit_UnknownUser(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, &uowmock.UoW{Repos: uow.Repos{Users: &usermock.Repo{}}})
	_, err := uc.Credit(context.Background(), EntryInput{UserID: userID, Amount: 5, Description: "x"})
	if fault.KindOf(err) != fault.KindNotFound {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestStatement(t *testing.T) {
	l := &ledger{}
	uc := newLedgerUsecase(l)

	if _, err := uc.Credit(context.Background(), EntryInput{
		UserID: userID, Amount: 5000, Description: "Loan approved - auto loan",
	}); err != nil {
		t.Fatalf("Credit: %v", err)
	}

	st, err := uc.Statement(context.Background(), userID)
	if err != nil {
		t.Fatalf("Statement: %v", err)
	}
	if st.Balance != 5000 || len(st.Transactions) != 1 {
		t.Errorf("statement = %+v", st)
	}
}
