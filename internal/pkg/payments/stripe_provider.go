package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// ErrPaymentDeclined indicates the processor refused the charge.
var ErrPaymentDeclined = errors.New("payment declined")

type stripePaymentIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeRefundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

// StripeProvider implements Provider using Stripe payment intents.
type StripeProvider struct {
	intents stripePaymentIntentAPI
	refunds stripeRefundAPI
}

// NewStripeProvider constructs a StripeProvider with the given API key.
func NewStripeProvider(apiKey string) (*StripeProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("stripe: api key is required")
	}

	sc := client.New(apiKey, nil)
	return &StripeProvider{
		intents: sc.PaymentIntents,
		refunds: sc.Refunds,
	}, nil
}

// newStripeProviderWithClients is used by tests to inject fake Stripe clients.
func newStripeProviderWithClients(intents stripePaymentIntentAPI, refunds stripeRefundAPI) *StripeProvider {
	return &StripeProvider{intents: intents, refunds: refunds}
}

// Capture creates and confirms a payment intent for the charge.
func (p *StripeProvider) Capture(_ context.Context, charge Charge) (string, error) {
	if charge.AmountMinor <= 0 {
		return "", fmt.Errorf("stripe: charge amount must be positive, got %d", charge.AmountMinor)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(charge.AmountMinor),
		Currency:      stripe.String(charge.Currency),
		PaymentMethod: stripe.String(charge.PaymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	if charge.Description != "" {
		params.Description = stripe.String(charge.Description)
	}
	if charge.CustomerRef != "" {
		params.Customer = stripe.String(charge.CustomerRef)
	}

	intent, err := p.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return "", fmt.Errorf("%w: %s", ErrPaymentDeclined, stripeErr.Msg)
		}
		return "", fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("%w: intent status %s", ErrPaymentDeclined, intent.Status)
	}

	return intent.ID, nil
}

// Refund returns a captured payment in full.
func (p *StripeProvider) Refund(_ context.Context, paymentRef string) error {
	if paymentRef == "" {
		return errors.New("stripe: payment reference is required")
	}

	_, err := p.refunds.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(paymentRef),
	})
	if err != nil {
		return fmt.Errorf("stripe: failed to refund %s: %w", paymentRef, err)
	}
	return nil
}
