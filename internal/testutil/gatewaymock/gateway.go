package gatewaymock

import (
	"context"
	"errors"

	domain "loanportal-backend/internal/domain/payment"
)

// Gateway is a function-backed mock satisfying payment.Gateway.
type Gateway struct {
	CreateIntentFn      func(ctx context.Context, amount float64, currency string, metadata map[string]string) (*domain.Intent, error)
	IntentStatusFn      func(ctx context.Context, intentID string) (*domain.Intent, error)
	CreateCustomerFn    func(ctx context.Context, email, name string, metadata map[string]string) (string, error)
	PaymentMethodsFn    func(ctx context.Context, customerID string) ([]domain.Card, error)
	CreateSetupIntentFn func(ctx context.Context, customerID string) (*domain.Intent, error)
}

var errNotConfigured = errors.New("gatewaymock: not configured")

func (m *Gateway) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*domain.Intent, error) {
	if m.CreateIntentFn != nil {
		return m.CreateIntentFn(ctx, amount, currency, metadata)
	}
	return nil, errNotConfigured
}

func (m *Gateway) IntentStatus(ctx context.Context, intentID string) (*domain.Intent, error) {
	if m.IntentStatusFn != nil {
		return m.IntentStatusFn(ctx, intentID)
	}
	return nil, errNotConfigured
}

func (m *Gateway) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error) {
	if m.CreateCustomerFn != nil {
		return m.CreateCustomerFn(ctx, email, name, metadata)
	}
	return "", errNotConfigured
}

func (m *Gateway) PaymentMethods(ctx context.Context, customerID string) ([]domain.Card, error) {
	if m.PaymentMethodsFn != nil {
		return m.PaymentMethodsFn(ctx, customerID)
	}
	return nil, errNotConfigured
}

func (m *Gateway) CreateSetupIntent(ctx context.Context, customerID string) (*domain.Intent, error) {
	if m.CreateSetupIntentFn != nil {
		return m.CreateSetupIntentFn(ctx, customerID)
	}
	return nil, errNotConfigured
}
