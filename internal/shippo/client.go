package shippo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/parcelbroker/shipdesk/internal/config"
)

const maxResponseBytes = 4 << 20

// ErrTransport wraps failures to reach the aggregator or read its reply.
var ErrTransport = errors.New("shippo: transport failure")

// APIError is returned by CreateShipment for non-2xx aggregator replies.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shippo: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the aggregator's shipments endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Option customises Client behaviour.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for aggregator calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

func NewClient(cfg config.ShippoConfig, opts ...Option) *Client {
	c := &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// CreateShipment requests synchronous rate quotes for a shipment.
func (c *Client) CreateShipment(ctx context.Context, req ShipmentRequest) (*ShipmentResponse, error) {
	req.Async = false
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("shippo: encode shipment: %w", err)
	}

	raw, err := c.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !raw.OK() {
		return nil, &APIError{StatusCode: raw.StatusCode, Body: string(raw.Body)}
	}

	var out ShipmentResponse
	if err := json.Unmarshal(raw.Body, &out); err != nil {
		return nil, fmt.Errorf("shippo: decode shipment: %w", err)
	}
	return &out, nil
}

// ForwardShipment posts payload verbatim and returns the reply verbatim.
// Only transport failures are reported as errors.
func (c *Client) ForwardShipment(ctx context.Context, payload []byte) (*RawResponse, error) {
	return c.post(ctx, payload)
}

func (c *Client) post(ctx context.Context, payload []byte) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/shipments/", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("shippo: build request: %w", err)
	}
	req.Header.Set("Authorization", "ShippoToken "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	return &RawResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
