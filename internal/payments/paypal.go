package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/parcelbroker/shipdesk/internal/config"
)

const ProviderPayPal = "paypal"

// PayPalProvider captures approved wallet orders through the Orders v2 API.
type PayPalProvider struct {
	baseURL string
	http    *http.Client
}

// NewPayPalProvider builds a provider whose HTTP client fetches and refreshes
// client-credentials access tokens. base is the transport used for both the
// token and API calls; nil means a client with the given timeout.
func NewPayPalProvider(cfg config.PayPalConfig, base *http.Client) (*PayPalProvider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("paypal: client id and secret are required")
	}
	if base == nil {
		base = &http.Client{Timeout: 30 * time.Second}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + "/v1/oauth2/token",
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := cc.Client(ctx)
	httpClient.Timeout = base.Timeout

	return &PayPalProvider{baseURL: baseURL, http: httpClient}, nil
}

func (p *PayPalProvider) Name() string { return ProviderPayPal }

type paypalAmount struct {
	CurrencyCode string          `json:"currency_code"`
	Value        decimal.Decimal `json:"value"`
}

type paypalCaptureResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string       `json:"id"`
				Status string       `json:"status"`
				Amount paypalAmount `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (p *PayPalProvider) Capture(ctx context.Context, req CaptureRequest) (Capture, error) {
	endpoint := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", p.baseURL, url.PathEscape(req.Reference))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return Capture{}, fmt.Errorf("paypal: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(httpReq)
	if err != nil {
		return Capture{}, fmt.Errorf("paypal: capture order: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Capture{}, fmt.Errorf("paypal: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Capture{}, fmt.Errorf("paypal: capture order: status %d: %s", resp.StatusCode, string(body))
	}

	var out paypalCaptureResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Capture{}, fmt.Errorf("paypal: decode response: %w", err)
	}

	capture := Capture{
		Provider:  ProviderPayPal,
		Reference: out.ID,
		Status:    paypalStatus(out.Status),
	}
	for _, unit := range out.PurchaseUnits {
		for _, c := range unit.Payments.Captures {
			if c.Status != "COMPLETED" {
				continue
			}
			capture.Amount = capture.Amount.Add(c.Amount.Value)
			capture.Currency = strings.ToUpper(c.Amount.CurrencyCode)
		}
	}
	return capture, nil
}

func paypalStatus(status string) Status {
	switch strings.ToUpper(status) {
	case "COMPLETED":
		return StatusSucceeded
	case "PENDING", "APPROVED", "SAVED":
		return StatusPending
	default:
		return StatusFailed
	}
}
