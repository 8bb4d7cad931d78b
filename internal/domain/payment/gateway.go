// Package payment models the external card-payment capability. The core only
// depends on this interface; the Stripe adapter lives in infrastructure.
package payment

import "context"

type IntentStatus string

const (
	IntentSucceeded             IntentStatus = "succeeded"
	IntentProcessing            IntentStatus = "processing"
	IntentRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentCanceled              IntentStatus = "canceled"
)

// Intent is the processor's view of an in-progress charge.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       float64
	Status       IntentStatus
	MethodID     string
}

type Card struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
}

type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*Intent, error)
	IntentStatus(ctx context.Context, intentID string) (*Intent, error)
	CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error)
	PaymentMethods(ctx context.Context, customerID string) ([]Card, error)
	CreateSetupIntent(ctx context.Context, customerID string) (*Intent, error)
}
