// Package stripe adapts the Stripe API to the payment.Gateway capability.
// Amounts cross the boundary in major units and are converted to cents here.
package stripe

import (
	"context"
	"math"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"loanportal-backend/internal/domain/payment"
)

type Gateway struct {
	api *client.API
}

func New(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

func (g *Gateway) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*payment.Intent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(toCents(amount)),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return fromIntent(pi), nil
}

func (g *Gateway) IntentStatus(ctx context.Context, intentID string) (*payment.Intent, error) {
	params := &stripego.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, err
	}
	return fromIntent(pi), nil
}

func (g *Gateway) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error) {
	params := &stripego.CustomerParams{
		Email: stripego.String(email),
		Name:  stripego.String(name),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	cus, err := g.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return cus.ID, nil
}

func (g *Gateway) PaymentMethods(ctx context.Context, customerID string) ([]payment.Card, error) {
	params := &stripego.PaymentMethodListParams{
		Customer: stripego.String(customerID),
		Type:     stripego.String(string(stripego.PaymentMethodTypeCard)),
	}
	params.Context = ctx

	var cards []payment.Card
	it := g.api.PaymentMethods.List(params)
	for it.Next() {
		pm := it.PaymentMethod()
		if pm.Card == nil {
			continue
		}
		cards = append(cards, payment.Card{
			ID:       pm.ID,
			Brand:    string(pm.Card.Brand),
			Last4:    pm.Card.Last4,
			ExpMonth: pm.Card.ExpMonth,
			ExpYear:  pm.Card.ExpYear,
		})
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

func (g *Gateway) CreateSetupIntent(ctx context.Context, customerID string) (*payment.Intent, error) {
	params := &stripego.SetupIntentParams{
		Customer:           stripego.String(customerID),
		PaymentMethodTypes: stripego.StringSlice([]string{string(stripego.PaymentMethodTypeCard)}),
	}
	params.Context = ctx

	si, err := g.api.SetupIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &payment.Intent{
		ID:           si.ID,
		ClientSecret: si.ClientSecret,
		Status:       payment.IntentStatus(si.Status),
	}, nil
}

func toCents(amount float64) int64 { return int64(math.Round(amount * 100)) }

func fromIntent(pi *stripego.PaymentIntent) *payment.Intent {
	out := &payment.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       float64(pi.Amount) / 100,
		Status:       payment.IntentStatus(pi.Status),
	}
	if pi.PaymentMethod != nil {
		out.MethodID = pi.PaymentMethod.ID
	}
	return out
}
