// Package loanapp handles the borrower's side of an application: submit,
// list, and read. Review is in usecase/review.
package loanapp

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"loanportal-backend/internal/domain/fault"
	loanDomain "loanportal-backend/internal/domain/loan"
	"loanportal-backend/pkg/id"
)

type Usecase struct{ repo loanDomain.Repository }

func NewUsecase(r loanDomain.Repository) *Usecase { return &Usecase{repo: r} }

type ApplyInput struct {
	UserID           string
	Amount           float64
	Term             int
	Purpose          string
	LoanType         loanDomain.Type
	MonthlyIncome    float64
	EmploymentStatus loanDomain.EmploymentStatus
	CreditScore      int
}

func (in *ApplyInput) validate() error {
	if in.Amount < loanDomain.MinAmount || in.Amount > loanDomain.MaxAmount {
		return fault.Invalidf("loan amount must be between $%.0f and $%.0f", loanDomain.MinAmount, loanDomain.MaxAmount)
	}
	if in.Term < loanDomain.MinTerm || in.Term > loanDomain.MaxTerm {
		return fault.Invalidf("loan term must be between %d and %d months", loanDomain.MinTerm, loanDomain.MaxTerm)
	}
	p := strings.TrimSpace(in.Purpose)
	if len(p) < 10 || len(p) > 500 {
		return fault.InvalidArgument("purpose must be 10 to 500 characters")
	}
	if in.LoanType != "" && !loanDomain.ValidType(in.LoanType) {
		return fault.Invalidf("invalid loan type %q", in.LoanType)
	}
	if in.MonthlyIncome < 0 {
		return fault.InvalidArgument("monthly income must not be negative")
	}
	if in.EmploymentStatus != "" && !loanDomain.ValidEmploymentStatus(in.EmploymentStatus) {
		return fault.Invalidf("invalid employment status %q", in.EmploymentStatus)
	}
	if in.CreditScore != 0 && (in.CreditScore < 300 || in.CreditScore > 850) {
		return fault.InvalidArgument("credit score must be between 300 and 850")
	}
	return nil
}

func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*loanDomain.LoanApplication, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	loanType := in.LoanType
	if loanType == "" {
		loanType = loanDomain.TypePersonal
	}

	l := &loanDomain.LoanApplication{
		LoanID:           id.NewID32(),
		UserID:           in.UserID,
		Amount:           in.Amount,
		Term:             in.Term,
		Purpose:          strings.TrimSpace(in.Purpose),
		LoanType:         loanType,
		Status:           loanDomain.StatusPending,
		MonthlyIncome:    in.MonthlyIncome,
		EmploymentStatus: in.EmploymentStatus,
		CreditScore:      in.CreditScore,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]loanDomain.LoanApplication, error) {
	return u.repo.ListByUserID(ctx, userID)
}

// Get returns one application, owner-scoped unless the caller is an admin.
func (u *Usecase) Get(ctx context.Context, loanID, actorID string, admin bool) (*loanDomain.LoanApplication, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("loan application")
		}
		return nil, err
	}
	if !admin && l.UserID != actorID {
		return nil, fault.NotFound("loan application")
	}
	return l, nil
}

type PageDTO struct {
	Loans      []loanDomain.LoanApplication `json:"loans"`
	Total      int64                        `json:"total"`
	Page       int                          `json:"current_page"`
	TotalPages int64                        `json:"total_pages"`
}

// ListAll is the admin view: optional status filter plus pagination.
func (u *Usecase) ListAll(ctx context.Context, f loanDomain.ListFilter) (*PageDTO, error) {
	if f.Status != "" {
		switch f.Status {
		case loanDomain.StatusPending, loanDomain.StatusApproved, loanDomain.StatusRejected:
		default:
			return nil, fault.Invalidf("invalid status %q", f.Status)
		}
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	loans, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	pages := total / int64(f.Limit)
	if total%int64(f.Limit) != 0 {
		pages++
	}
	return &PageDTO{Loans: loans, Total: total, Page: f.Page, TotalPages: pages}, nil
}
