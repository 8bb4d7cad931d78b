// Package payment drives a single installment through the two-phase card
// flow: initiate creates the charge intent, confirm reconciles the
// processor's result into installment status, wallet ledger, and
// notifications.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"loanportal-backend/internal/domain/fault"
	instDomain "loanportal-backend/internal/domain/installment"
	"loanportal-backend/internal/domain/notification"
	paymentDomain "loanportal-backend/internal/domain/payment"
	"loanportal-backend/internal/domain/uow"
	userDomain "loanportal-backend/internal/domain/user"
	"loanportal-backend/internal/usecase/notify"
)

type Usecase struct {
	installments instDomain.Repository
	users        userDomain.Repository
	uow          uow.UnitOfWork
	gateway      paymentDomain.Gateway
	emitter      notify.Emitter
	currency     string
}

func NewUsecase(
	installments instDomain.Repository,
	users userDomain.Repository,
	tx uow.UnitOfWork,
	gateway paymentDomain.Gateway,
	emitter notify.Emitter,
	currency string,
) *Usecase {
	return &Usecase{
		installments: installments,
		users:        users,
		uow:          tx,
		gateway:      gateway,
		emitter:      emitter,
		currency:     currency,
	}
}

type IntentDTO struct {
	ClientSecret string                  `json:"client_secret"`
	Amount       float64                 `json:"amount"`
	Installment  *instDomain.Installment `json:"installment"`
}

// Initiate creates a charge intent for a pending installment owned by actor.
// No local state changes; an abandoned intent leaves nothing to clean up
// here.
func (u *Usecase) Initiate(ctx context.Context, installmentID, actorID string) (*IntentDTO, error) {
	inst, err := u.ownedPending(ctx, installmentID, actorID)
	if err != nil {
		return nil, err
	}

	intent, err := u.gateway.CreateIntent(ctx, inst.Amount, u.currency, map[string]string{
		"installment_id": inst.InstallmentID,
		"user_id":        inst.UserID,
		"loan_id":        inst.LoanID,
	})
	if err != nil {
		return nil, fault.Upstream("failed to create payment intent", err)
	}

	return &IntentDTO{
		ClientSecret: intent.ClientSecret,
		Amount:       inst.Amount,
		Installment:  inst,
	}, nil
}

type ConfirmDTO struct {
	Installment *instDomain.Installment `json:"installment"`
}

// Confirm reconciles one charge. Only an intent the processor reports as
// succeeded mutates anything, and the pending→paid transition is a
// conditional write: of two concurrent confirms exactly one debits the
// wallet and emits the notification. Confirming an already-paid installment
// fails the status precondition.
func (u *Usecase) Confirm(ctx context.Context, installmentID, intentID, actorID string) (*ConfirmDTO, error) {
	inst, err := u.ownedPending(ctx, installmentID, actorID)
	if err != nil {
		return nil, err
	}

	intent, err := u.gateway.IntentStatus(ctx, intentID)
	if err != nil {
		return nil, fault.Upstream("failed to confirm payment", err)
	}
	if intent.Status != paymentDomain.IntentSucceeded {
		return nil, fault.InvalidState("payment not completed")
	}

	now := time.Now().UTC()
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		won, err := r.Installments.MarkPaid(ctx, inst.InstallmentID, now, instDomain.MethodStripe, intentID)
		if err != nil {
			return err
		}
		if !won {
			return fault.InvalidState("installment already paid")
		}

		entry := &userDomain.WalletTransaction{
			UserID:      inst.UserID,
			Kind:        userDomain.TxDebit,
			Amount:      inst.Amount,
			Description: fmt.Sprintf("Loan installment payment #%d", inst.InstallmentNumber),
			LoanID:      inst.LoanID,
		}
		return r.Users.ApplyWalletEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	inst.Status = instDomain.StatusPaid
	inst.PaidDate = &now
	inst.PaymentMethod = instDomain.MethodStripe
	inst.PaymentIntentID = intentID

	u.emitter.Emit(ctx, notify.Event{
		UserID:   inst.UserID,
		Type:     notification.TypePaymentSuccess,
		Title:    "Payment Successful",
		Message:  fmt.Sprintf("Your installment payment of $%v has been processed successfully.", inst.Amount),
		LoanID:   inst.LoanID,
		Priority: notification.PriorityMedium,
	})

	return &ConfirmDTO{Installment: inst}, nil
}

func (u *Usecase) ownedPending(ctx context.Context, installmentID, actorID string) (*instDomain.Installment, error) {
	inst, err := u.installments.GetByInstallmentID(ctx, installmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("installment")
		}
		return nil, err
	}
	// Ownership failures read as not-found, as the source behaved.
	if inst.UserID != actorID {
		return nil, fault.NotFound("installment")
	}
	if inst.Status != instDomain.StatusPending {
		return nil, fault.InvalidState("installment already " + string(inst.Status))
	}
	return inst, nil
}

// ListByUser returns the actor's installments across loans, soonest due
// first.
func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]instDomain.Installment, error) {
	return u.installments.ListByUserID(ctx, userID)
}

type SetupIntentDTO struct {
	ClientSecret string `json:"client_secret"`
}

// SetupIntent creates the processor customer on first use, then a setup
// intent for saving a card.
func (u *Usecase) SetupIntent(ctx context.Context, userID string) (*SetupIntentDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("user")
		}
		return nil, err
	}

	customerID := usr.StripeCustomerID
	if customerID == "" {
		customerID, err = u.gateway.CreateCustomer(ctx, usr.Email,
			usr.FirstName+" "+usr.LastName, map[string]string{"user_id": usr.UserID})
		if err != nil {
			return nil, fault.Upstream("failed to create customer", err)
		}
		if err := u.users.SaveStripeCustomerID(ctx, usr.UserID, customerID); err != nil {
			return nil, err
		}
	}

	intent, err := u.gateway.CreateSetupIntent(ctx, customerID)
	if err != nil {
		return nil, fault.Upstream("failed to create setup intent", err)
	}
	return &SetupIntentDTO{ClientSecret: intent.ClientSecret}, nil
}

// Methods lists the user's saved cards; a user with no processor customer has
// none.
func (u *Usecase) Methods(ctx context.Context, userID string) ([]paymentDomain.Card, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("user")
		}
		return nil, err
	}
	if usr.StripeCustomerID == "" {
		return []paymentDomain.Card{}, nil
	}
	cards, err := u.gateway.PaymentMethods(ctx, usr.StripeCustomerID)
	if err != nil {
		return nil, fault.Upstream("failed to list payment methods", err)
	}
	return cards, nil
}
