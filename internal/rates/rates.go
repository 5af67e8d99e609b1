package rates

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/metrics"
	"github.com/parcelbroker/shipdesk/internal/shippo"
)

var (
	ErrInvalidQuery          = errors.New("rates: invalid query")
	ErrAggregatorUnavailable = errors.New("rates: aggregator unavailable")
)

//go:generate mockgen -source ./rates.go -destination=./mocks/rates.go -package=mock_rates

// Aggregator quotes a shipment with every connected carrier.
type Aggregator interface {
	CreateShipment(ctx context.Context, req shippo.ShipmentRequest) (*shippo.ShipmentResponse, error)
}

// Query describes the parcel to quote. Weight is in pounds.
type Query struct {
	FromZip     string
	ToZip       string
	Weight      decimal.Decimal
	PackageType string
	Dimensions  *Dimensions
}

type Quote struct {
	ID            string
	Carrier       string
	Service       string
	ServiceToken  string
	Amount        decimal.Decimal
	Currency      string
	EstimatedDays int
	DurationTerms string
}

type Service struct {
	aggregator Aggregator
	logger     *zap.Logger
}

// NewService builds the gateway. A nil aggregator makes every quote fail
// with ErrAggregatorUnavailable.
func NewService(aggregator Aggregator, logger *zap.Logger) *Service {
	return &Service{
		aggregator: aggregator,
		logger:     logger.With(zap.String("component", "rates")),
	}
}

// GetRates performs one synchronous aggregator call and returns the positive
// quotes ordered from cheapest to most expensive.
func (s *Service) GetRates(ctx context.Context, q Query) ([]Quote, error) {
	pkg, err := validate(q)
	if err != nil {
		metrics.RateQuotesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if s.aggregator == nil {
		metrics.RateQuotesTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: not configured", ErrAggregatorUnavailable)
	}

	resp, err := s.aggregator.CreateShipment(ctx, buildRequest(q, pkg))
	if err != nil {
		metrics.RateQuotesTotal.WithLabelValues("unavailable").Inc()
		s.logger.Error("aggregator call failed", zap.String("package", pkg.Name), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAggregatorUnavailable, err)
	}

	quotes := make([]Quote, 0, len(resp.Rates))
	for _, r := range resp.Rates {
		if !r.Amount.IsPositive() {
			continue
		}
		quotes = append(quotes, Quote{
			ID:            r.ObjectID,
			Carrier:       r.Provider,
			Service:       r.ServiceLevel.Name,
			ServiceToken:  r.ServiceLevel.Token,
			Amount:        r.Amount,
			Currency:      r.Currency,
			EstimatedDays: r.EstimatedDays,
			DurationTerms: r.DurationTerms,
		})
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Amount.LessThan(quotes[j].Amount)
	})

	metrics.RateQuotesTotal.WithLabelValues("ok").Inc()
	return quotes, nil
}

func validate(q Query) (Package, error) {
	var missing []string
	if strings.TrimSpace(q.FromZip) == "" {
		missing = append(missing, "fromZip")
	}
	if strings.TrimSpace(q.ToZip) == "" {
		missing = append(missing, "toZip")
	}
	if !q.Weight.IsPositive() {
		missing = append(missing, "weight")
	}
	if strings.TrimSpace(q.PackageType) == "" && q.Dimensions == nil {
		missing = append(missing, "packageType")
	}
	if len(missing) > 0 {
		return Package{}, fmt.Errorf("%w: missing or invalid %s", ErrInvalidQuery, strings.Join(missing, ", "))
	}

	pkg, err := ResolvePackage(strings.TrimSpace(q.PackageType), q.Dimensions)
	if err != nil {
		return Package{}, err
	}
	if err := pkg.ValidateWeight(q.Weight); err != nil {
		return Package{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return pkg, nil
}

func buildRequest(q Query, pkg Package) shippo.ShipmentRequest {
	return shippo.ShipmentRequest{
		AddressFrom: shippo.Address{Zip: strings.TrimSpace(q.FromZip), Country: "US"},
		AddressTo:   shippo.Address{Zip: strings.TrimSpace(q.ToZip), Country: "US"},
		Parcels: []shippo.Parcel{{
			Length:       pkg.Dimensions.Length.String(),
			Width:        pkg.Dimensions.Width.String(),
			Height:       pkg.Dimensions.Height.String(),
			DistanceUnit: "in",
			Weight:       q.Weight.String(),
			MassUnit:     "lb",
		}},
	}
}
