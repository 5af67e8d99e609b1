package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status enumerates the normalised capture states shared across providers.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrUnsupportedProvider is returned when the manager cannot locate a provider.
var ErrUnsupportedProvider = errors.New("payments: unsupported provider")

// CaptureRequest identifies an authorised payment to capture. Reference is the
// provider's own id (PayPal order id, Stripe payment intent id).
type CaptureRequest struct {
	Reference string
	Amount    decimal.Decimal
	Currency  string
}

// Capture is the provider's verdict on a capture attempt.
type Capture struct {
	Provider  string
	Reference string
	Status    Status
	Amount    decimal.Decimal
	Currency  string
}

// Succeeded reports whether funds were captured.
func (c Capture) Succeeded() bool {
	return c.Status == StatusSucceeded
}

// Provider defines the contract for payment adapters.
type Provider interface {
	Name() string
	Capture(ctx context.Context, req CaptureRequest) (Capture, error)
}

// Manager routes captures to the provider named by the caller.
type Manager struct {
	providers map[string]Provider
}

// NewManager registers the given providers under their lower-cased names.
func NewManager(providers ...Provider) (*Manager, error) {
	m := &Manager{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		if p == nil {
			return nil, errors.New("payments: nil provider")
		}
		key := normaliseName(p.Name())
		if key == "" {
			return nil, errors.New("payments: provider without a name")
		}
		if _, dup := m.providers[key]; dup {
			return nil, fmt.Errorf("payments: provider %q registered twice", key)
		}
		m.providers[key] = p
	}
	return m, nil
}

// Providers lists registered provider names.
func (m *Manager) Providers() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}

// Capture forwards the request to the named provider.
func (m *Manager) Capture(ctx context.Context, provider string, req CaptureRequest) (Capture, error) {
	p, ok := m.providers[normaliseName(provider)]
	if !ok {
		return Capture{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
	return p.Capture(ctx, req)
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
