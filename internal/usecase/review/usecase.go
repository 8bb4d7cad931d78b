// Package review is the loan lifecycle state machine: pending → approved or
// rejected, exactly once, with approval side effects (wallet credit,
// installment schedule, notification) committed in one transaction.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"loanportal-backend/internal/domain/fault"
	instDomain "loanportal-backend/internal/domain/installment"
	loanDomain "loanportal-backend/internal/domain/loan"
	"loanportal-backend/internal/domain/notification"
	"loanportal-backend/internal/domain/uow"
	userDomain "loanportal-backend/internal/domain/user"
	"loanportal-backend/internal/usecase/notify"
	"loanportal-backend/internal/usecase/schedule"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

type Usecase struct {
	uow     uow.UnitOfWork
	emitter notify.Emitter
}

func NewUsecase(tx uow.UnitOfWork, emitter notify.Emitter) *Usecase {
	return &Usecase{uow: tx, emitter: emitter}
}

type DecideInput struct {
	LoanID          string
	ActorID         string
	Decision        Decision
	RejectionReason string
}

type DecisionDTO struct {
	LoanID          string            `json:"loan_id"`
	Status          loanDomain.Status `json:"status"`
	ReviewedBy      string            `json:"reviewed_by"`
	ReviewedAt      time.Time         `json:"reviewed_at"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	Installments    int               `json:"installments,omitempty"`
	MonthlyAmount   float64           `json:"monthly_amount,omitempty"`
	FirstDueDate    *time.Time        `json:"first_due_date,omitempty"`
}

// Decide applies the one-shot status transition. The status write is
// conditional on status='pending' under a row lock, so of two concurrent
// calls only one commits side effects; the other gets an invalid-state
// fault and changes nothing.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	if in.Decision != DecisionApproved && in.Decision != DecisionRejected {
		return nil, fault.Invalidf("invalid decision %q", in.Decision)
	}

	var (
		dto *DecisionDTO
		ev  *notify.Event
	)
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.LoanApplication) error {
		if l.Status.Terminal() {
			return fault.InvalidState("loan application already " + string(l.Status))
		}

		now := time.Now().UTC()
		upd := loanDomain.DecisionUpdate{
			Status:     loanDomain.Status(in.Decision),
			ReviewedBy: in.ActorID,
			ReviewedAt: now,
		}
		if in.Decision == DecisionRejected {
			upd.RejectionReason = in.RejectionReason
		}

		won, err := r.Loans.MarkDecided(ctx, l.LoanID, upd)
		if err != nil {
			return err
		}
		if !won {
			// lost the conditional write to a concurrent decide
			return fault.InvalidState("loan application already decided")
		}

		dto = &DecisionDTO{
			LoanID:          l.LoanID,
			Status:          upd.Status,
			ReviewedBy:      in.ActorID,
			ReviewedAt:      now,
			RejectionReason: upd.RejectionReason,
		}

		if in.Decision == DecisionRejected {
			ev = rejectedEvent(l, in.RejectionReason)
			return nil
		}

		// Approval side effects, same transaction: wallet credit first, then
		// the full schedule in one batch.
		entry := &userDomain.WalletTransaction{
			UserID:      l.UserID,
			Kind:        userDomain.TxCredit,
			Amount:      l.Amount,
			Description: fmt.Sprintf("Loan approved - %s loan", l.LoanType),
			LoanID:      l.LoanID,
		}
		if err := r.Users.ApplyWalletEntry(ctx, entry); err != nil {
			return fmt.Errorf("wallet credit: %w", err)
		}

		insts := schedule.Build(l, now)
		if err := r.Installments.CreateBatch(ctx, insts); err != nil {
			return fmt.Errorf("installment schedule: %w", err)
		}

		firstDue := insts[0].DueDate
		dto.Installments = len(insts)
		dto.MonthlyAmount = l.MonthlyAmount()
		dto.FirstDueDate = &firstDue
		ev = approvedEvent(l, firstDue)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("loan application")
		}
		return nil, err
	}

	// Post-commit, best-effort.
	u.emitter.Emit(ctx, *ev)
	return dto, nil
}

func approvedEvent(l *loanDomain.LoanApplication, firstDue time.Time) *notify.Event {
	return &notify.Event{
		UserID: l.UserID,
		Type:   notification.TypeLoanApproved,
		Title:  "Loan Approved!",
		Message: fmt.Sprintf(
			"Your %s loan of $%v has been approved and credited to your wallet. First installment of $%.2f is due on %s.",
			l.LoanType, l.Amount, l.MonthlyAmount(), firstDue.Format("Mon Jan 2 2006")),
		LoanID:   l.LoanID,
		Priority: notification.PriorityHigh,
		DueDate:  &firstDue,
	}
}

func rejectedEvent(l *loanDomain.LoanApplication, reason string) *notify.Event {
	if reason == "" {
		reason = "Please contact support for more details."
	}
	return &notify.Event{
		UserID:   l.UserID,
		Type:     notification.TypeLoanRejected,
		Title:    "Loan Application Rejected",
		Message:  fmt.Sprintf("Your %s loan application has been rejected. %s", l.LoanType, reason),
		LoanID:   l.LoanID,
		Priority: notification.PriorityHigh,
	}
}

type EnsureScheduleDTO struct {
	LoanID   string `json:"loan_id"`
	Existing int    `json:"existing"`
	Created  int    `json:"created"`
}

// EnsureSchedule re-drives installment generation for an approved loan. A
// complete schedule is a no-op; a short one (operator intervention, imported
// data) is repaired by inserting only the missing installment numbers, dated
// from the original review time. Safe to repeat.
func (u *Usecase) EnsureSchedule(ctx context.Context, loanID string) (*EnsureScheduleDTO, error) {
	var dto *EnsureScheduleDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.LoanApplication) error {
		if l.Status != loanDomain.StatusApproved {
			return fault.InvalidState("loan application is not approved")
		}
		if l.ReviewedAt == nil {
			return fault.Partial("approved loan has no review time", []string{"status"}, nil)
		}

		existing, err := r.Installments.ExistingNumbers(ctx, l.LoanID)
		if err != nil {
			return err
		}
		dto = &EnsureScheduleDTO{LoanID: l.LoanID, Existing: len(existing)}
		if len(existing) >= l.Term {
			return nil
		}

		missing := schedule.Missing(schedule.Build(l, *l.ReviewedAt), existing)
		if err := r.Installments.CreateBatch(ctx, missing); err != nil {
			return err
		}
		dto.Created = len(missing)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("loan application")
		}
		return nil, err
	}
	return dto, nil
}

// ListInstallments returns the schedule for one loan, owner- or admin-scoped
// by the caller.
func (u *Usecase) ListInstallments(ctx context.Context, loanID string) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Installments.ListByLoanID(ctx, loanID)
		return err
	})
	return out, err
}
