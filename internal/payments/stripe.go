package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

const ProviderStripe = "stripe"

type stripePaymentIntentAPI interface {
	Capture(id string, params *stripe.PaymentIntentCaptureParams) (*stripe.PaymentIntent, error)
}

// StripeProvider captures card payments through Stripe payment intents.
type StripeProvider struct {
	intents stripePaymentIntentAPI
}

// NewStripeProvider builds a provider backed by the Stripe API client.
func NewStripeProvider(apiKey string) (*StripeProvider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("stripe: api key is required")
	}
	sc := client.New(apiKey, nil)
	return &StripeProvider{intents: sc.PaymentIntents}, nil
}

func (p *StripeProvider) Name() string { return ProviderStripe }

func (p *StripeProvider) Capture(ctx context.Context, req CaptureRequest) (Capture, error) {
	params := &stripe.PaymentIntentCaptureParams{}
	params.Context = ctx
	if req.Amount.IsPositive() {
		params.AmountToCapture = stripe.Int64(toMinorUnits(req.Amount))
	}

	intent, err := p.intents.Capture(req.Reference, params)
	if err != nil {
		return Capture{}, fmt.Errorf("stripe: capture payment intent: %w", err)
	}

	return Capture{
		Provider:  ProviderStripe,
		Reference: intent.ID,
		Status:    stripeStatus(intent.Status),
		Amount:    fromMinorUnits(intent.AmountReceived),
		Currency:  strings.ToUpper(string(intent.Currency)),
	}, nil
}

func stripeStatus(status stripe.PaymentIntentStatus) Status {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return StatusSucceeded
	case stripe.PaymentIntentStatusProcessing, stripe.PaymentIntentStatusRequiresCapture:
		return StatusPending
	default:
		return StatusFailed
	}
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
