package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/auth"
	"github.com/parcelbroker/shipdesk/internal/metrics"
	"github.com/parcelbroker/shipdesk/internal/repository"
	"github.com/parcelbroker/shipdesk/internal/shippo"
)

//go:generate mockgen -source ./checkout.go -destination=./mocks/checkout.go -package=mock_checkout

type AccountRepository interface {
	GetByUserID(ctx context.Context, userID string) (*repository.Account, error)
	DeductFunds(ctx context.Context, userID string, amount decimal.Decimal, currency string) error
}

type AddressRepository interface {
	Create(ctx context.Context, address *repository.Address) error
}

type RateRepository interface {
	GetByID(ctx context.Context, id string) (*repository.Rate, error)
	Create(ctx context.Context, rate *repository.Rate) error
}

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *repository.Shipment) error
	Delete(ctx context.Context, userID, id string) error
}

type TrackingEventRepository interface {
	Create(ctx context.Context, event *repository.TrackingEvent) error
}

type CustomsDeclarationRepository interface {
	Create(ctx context.Context, declaration *repository.CustomsDeclaration) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *repository.Transaction) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *repository.Notification) error
}

// LabelForwarder relays the original request to the external label API.
type LabelForwarder interface {
	ForwardShipment(ctx context.Context, payload []byte) (*shippo.RawResponse, error)
}

// Side effect steps reported in Result.Diagnostics.
const (
	StepRate               = "rate"
	StepTrackingEvent      = "tracking_event"
	StepCustomsDeclaration = "customs_declaration"
	StepTransaction        = "transaction"
	StepNotification       = "notification"
)

// SideEffect records the outcome of one best-effort write.
type SideEffect struct {
	Step string
	Err  error
}

func (s SideEffect) OK() bool { return s.Err == nil }

type Result struct {
	ShipmentID     string
	TrackingNumber string
	Cost           decimal.Decimal
	Diagnostics    []SideEffect
	// External is the label API reply when forwarding is enabled.
	External *shippo.RawResponse
}

// Failures returns the side effects that did not persist.
func (r Result) Failures() []SideEffect {
	var out []SideEffect
	for _, d := range r.Diagnostics {
		if !d.OK() {
			out = append(out, d)
		}
	}
	return out
}

// Deps wires the orchestrator. Forwarder, Clock and TrackingNumbers are optional.
type Deps struct {
	Accounts        AccountRepository
	Addresses       AddressRepository
	Rates           RateRepository
	Shipments       ShipmentRepository
	TrackingEvents  TrackingEventRepository
	Customs         CustomsDeclarationRepository
	Transactions    TransactionRepository
	Notifications   NotificationRepository
	Forwarder       LabelForwarder
	Currency        string
	Logger          *zap.Logger
	Clock           func() time.Time
	TrackingNumbers func() string
}

type Service struct {
	accounts        AccountRepository
	addresses       AddressRepository
	rates           RateRepository
	shipments       ShipmentRepository
	trackingEvents  TrackingEventRepository
	customs         CustomsDeclarationRepository
	transactions    TransactionRepository
	notifications   NotificationRepository
	forwarder       LabelForwarder
	currency        string
	logger          *zap.Logger
	clock           func() time.Time
	trackingNumbers func() string
}

func NewService(deps Deps) (*Service, error) {
	if deps.Accounts == nil || deps.Addresses == nil || deps.Rates == nil || deps.Shipments == nil ||
		deps.TrackingEvents == nil || deps.Customs == nil || deps.Transactions == nil || deps.Notifications == nil {
		return nil, errors.New("checkout: missing repository dependency")
	}

	s := &Service{
		accounts:        deps.Accounts,
		addresses:       deps.Addresses,
		rates:           deps.Rates,
		shipments:       deps.Shipments,
		trackingEvents:  deps.TrackingEvents,
		customs:         deps.Customs,
		transactions:    deps.Transactions,
		notifications:   deps.Notifications,
		forwarder:       deps.Forwarder,
		currency:        deps.Currency,
		logger:          deps.Logger,
		clock:           deps.Clock,
		trackingNumbers: deps.TrackingNumbers,
	}
	if s.currency == "" {
		s.currency = "USD"
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.With(zap.String("component", "checkout"))
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.trackingNumbers == nil {
		s.trackingNumbers = testTrackingNumber
	}
	return s, nil
}

// CreateShipment runs the checkout for the session user in ctx. Steps run
// strictly in order; only the shipment row is undone if the debit fails.
func (s *Service) CreateShipment(ctx context.Context, req *Request) (Result, error) {
	result, err := s.createShipment(ctx, req)
	metrics.CheckoutsTotal.WithLabelValues(outcome(err)).Inc()
	return result, err
}

func (s *Service) createShipment(ctx context.Context, req *Request) (Result, error) {
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return Result{}, ErrUnauthorized
	}
	userID := session.UserID
	log := s.logger.With(zap.String("user_id", userID))

	if req == nil {
		return Result{}, &ValidationError{Fields: map[string]string{"body": "is required"}}
	}
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	cost := req.Legacy.Decimal("rate")
	balance, err := s.balance(ctx, userID)
	if err != nil {
		log.Error("account lookup failed", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrAccountLookupFailed, err)
	}
	if balance.LessThan(cost) {
		return Result{}, &InsufficientBalanceError{Current: balance, Required: cost}
	}

	now := s.clock().UTC()

	fromID, err := s.resolveAddress(ctx, userID, req.Legacy.String("fromAddressId"), req.AddressFrom,
		repository.AddressTypeSender, req.Legacy.Bool("saveFromAddress"), req.Legacy.Bool("fromResidential"), now)
	if err != nil {
		log.Error("failed to persist sender address", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrAddressPersistFailed, err)
	}
	toID, err := s.resolveAddress(ctx, userID, req.Legacy.String("toAddressId"), req.AddressTo,
		repository.AddressTypeRecipient, req.Legacy.Bool("saveToAddress"), req.Legacy.Bool("toResidential"), now)
	if err != nil {
		log.Error("failed to persist recipient address", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrAddressPersistFailed, err)
	}

	var diagnostics []SideEffect
	rateID, rateEffect := s.resolveRate(ctx, req, cost, now, log)
	if rateEffect != nil {
		diagnostics = append(diagnostics, *rateEffect)
	}

	customsValue := req.Legacy.Decimal("customsValue")
	shipment := &repository.Shipment{
		ID:                  uuid.NewString(),
		UserID:              userID,
		FromAddressID:       fromID,
		ToAddressID:         toID,
		Carrier:             req.Legacy.String("carrier"),
		Service:             firstNonEmpty(req.Legacy.String("service"), req.ServiceLevelToken),
		PackageType:         req.Legacy.String("packageType"),
		WeightOz:            weightOz(req),
		Dimensions:          dimensions(req.Parcel),
		TotalCost:           cost,
		Currency:            s.currency,
		Status:              repository.ShipmentStatusCreated,
		TrackingNumber:      s.trackingNumbers(),
		RateID:              rateID,
		CustomsContentsType: req.Legacy.String("contentsType"),
		CustomsValue:        decimal.NullDecimal{Decimal: customsValue, Valid: customsValue.IsPositive()},
		NonMachinable:       req.Legacy.Bool("nonMachinable"),
		RequireSignature:    req.Legacy.Bool("requireSignature"),
		InsuranceType:       req.Legacy.String("insuranceType"),
		HasReturnLabel:      req.Legacy.Bool("hasReturnLabel"),
		CreatedAt:           now,
	}
	if err := s.shipments.Create(ctx, shipment); err != nil {
		log.Error("failed to persist shipment", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrShipmentPersistFailed, err)
	}
	log = log.With(zap.String("shipment_id", shipment.ID))

	diagnostics = append(diagnostics, s.sideEffect(log, StepTrackingEvent, func() error {
		return s.trackingEvents.Create(ctx, &repository.TrackingEvent{
			ID:          uuid.NewString(),
			ShipmentID:  shipment.ID,
			Status:      repository.ShipmentStatusCreated,
			OccurredAt:  now,
			Description: "Shipment created",
		})
	}))

	if needsCustoms(req.AddressTo.Country, customsValue) {
		diagnostics = append(diagnostics, s.sideEffect(log, StepCustomsDeclaration, func() error {
			return s.customs.Create(ctx, &repository.CustomsDeclaration{
				ID:           uuid.NewString(),
				ShipmentID:   shipment.ID,
				ContentsType: firstNonEmpty(req.Legacy.String("contentsType"), "MERCHANDISE"),
				CustomsValue: customsValue,
				Currency:     s.currency,
				Description:  req.Legacy.String("customsDescription"),
			})
		}))
	}

	if err := s.accounts.DeductFunds(ctx, userID, cost, s.currency); err != nil {
		log.Error("funds deduction failed", zap.String("amount", cost.StringFixed(2)), zap.Error(err))
		s.compensateShipment(ctx, userID, shipment.ID)
		return Result{}, fmt.Errorf("%w: %v", ErrFundsDeductionFailed, err)
	}

	diagnostics = append(diagnostics, s.sideEffect(log, StepTransaction, func() error {
		return s.transactions.Create(ctx, &repository.Transaction{
			ID:                   uuid.NewString(),
			UserID:               userID,
			ShipmentID:           &shipment.ID,
			Amount:               cost,
			Currency:             s.currency,
			Type:                 repository.TransactionTypeDebit,
			Status:               repository.TransactionCompleted,
			Provider:             repository.TransactionProviderBal,
			TransactionReference: "txn_" + ulid.Make().String(),
			CreatedAt:            now,
		})
	}))

	diagnostics = append(diagnostics, s.sideEffect(log, StepNotification, func() error {
		return s.notifications.Create(ctx, &repository.Notification{
			ID:        uuid.NewString(),
			UserID:    userID,
			Title:     "Shipment Created",
			Message:   fmt.Sprintf("Your shipment has been created. Tracking number: %s", shipment.TrackingNumber),
			Type:      "shipment",
			CreatedAt: now,
		})
	}))

	result := Result{
		ShipmentID:     shipment.ID,
		TrackingNumber: shipment.TrackingNumber,
		Cost:           cost,
		Diagnostics:    diagnostics,
	}

	if s.forwarder != nil {
		external, err := s.forwarder.ForwardShipment(ctx, req.Raw())
		if err != nil {
			log.Error("label forwarding failed after debit", zap.Error(err))
			return result, &ExternalProviderError{Status: http.StatusBadGateway, Err: err}
		}
		if !external.OK() {
			log.Error("label API rejected shipment after debit", zap.Int("status", external.StatusCode))
			return result, &ExternalProviderError{Status: external.StatusCode, ContentType: external.ContentType, Body: external.Body}
		}
		result.External = external
	}

	if failures := result.Failures(); len(failures) > 0 {
		log.Warn("shipment created with missing records", zap.Int("failed_side_effects", len(failures)))
	}
	return result, nil
}

func (s *Service) balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	account, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// resolveAddress inserts a new address when ref is empty or "new" and returns
// ref unchanged otherwise.
func (s *Service) resolveAddress(ctx context.Context, userID, ref string, addr Address, addressType string, save, residential bool, now time.Time) (string, error) {
	if ref != "" && !strings.EqualFold(ref, "new") {
		return ref, nil
	}

	row := &repository.Address{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          addr.Name,
		Street1:       addr.Street1,
		Street2:       addr.Street2,
		City:          addr.City,
		State:         addr.State,
		PostalCode:    addr.Zip,
		Country:       strings.ToUpper(addr.Country),
		Phone:         addr.Phone,
		Email:         addr.Email,
		IsResidential: residential,
		AddressType:   addressType,
		IsSaved:       save,
		CreatedAt:     now,
	}
	if err := s.addresses.Create(ctx, row); err != nil {
		return "", err
	}
	return row.ID, nil
}

// resolveRate returns the id of an existing rate, or synthesizes one from the
// free-text fields. A failed synthesis leaves the shipment without a rate.
func (s *Service) resolveRate(ctx context.Context, req *Request, cost decimal.Decimal, now time.Time, log *zap.Logger) (*string, *SideEffect) {
	if id := req.Legacy.String("rateId"); id != "" {
		rate, err := s.rates.GetByID(ctx, id)
		if err == nil {
			return &rate.ID, nil
		}
		if !errors.Is(err, repository.ErrObjectNotFound) {
			log.Warn("rate lookup failed, synthesizing", zap.String("rate_id", id), zap.Error(err))
		}
	}

	rate := &repository.Rate{
		ID:              uuid.NewString(),
		Carrier:         req.Legacy.String("carrier"),
		ServiceName:     firstNonEmpty(req.Legacy.String("service"), req.ServiceLevelToken),
		PackageTypeName: req.Legacy.String("packageType"),
		RateAmount:      cost,
		Currency:        s.currency,
		DeliveryDays:    req.Legacy.Int("deliveryDays"),
		CreatedAt:       now,
	}
	effect := s.sideEffect(log, StepRate, func() error {
		return s.rates.Create(ctx, rate)
	})
	if !effect.OK() {
		return nil, &effect
	}
	return &rate.ID, &effect
}

// compensateShipment deletes a shipment whose debit failed. It runs even if the
// request was cancelled; a failed delete is only logged.
func (s *Service) compensateShipment(ctx context.Context, userID, shipmentID string) {
	ctx = context.WithoutCancel(ctx)
	if err := s.shipments.Delete(ctx, userID, shipmentID); err != nil {
		metrics.CompensationsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("failed to delete shipment after debit failure",
			zap.String("user_id", userID), zap.String("shipment_id", shipmentID), zap.Error(err))
		return
	}
	metrics.CompensationsTotal.WithLabelValues("deleted").Inc()
}

func (s *Service) sideEffect(log *zap.Logger, step string, fn func() error) SideEffect {
	err := fn()
	if err != nil {
		metrics.SideEffectFailuresTotal.WithLabelValues(step).Inc()
		log.Warn("best-effort write failed", zap.String("step", step), zap.Error(err))
	}
	return SideEffect{Step: step, Err: err}
}

func needsCustoms(country string, value decimal.Decimal) bool {
	return !strings.EqualFold(strings.TrimSpace(country), "US") && value.IsPositive()
}

var (
	ozPerLb = decimal.NewFromInt(16)
	gPerOz  = decimal.RequireFromString("28.349523125")
	ozPerKg = decimal.RequireFromString("35.27396195")
)

// weightOz prefers the dashboard's lb/oz split and falls back to the parcel weight.
func weightOz(req *Request) decimal.Decimal {
	lb := req.Legacy.Decimal("weightLb")
	oz := req.Legacy.Decimal("weightOz")
	if !lb.IsZero() || !oz.IsZero() {
		return lb.Mul(ozPerLb).Add(oz).Round(2)
	}

	w := req.Parcel.Weight.Decimal
	switch req.Parcel.MassUnit {
	case "lb":
		w = w.Mul(ozPerLb)
	case "g":
		w = w.Div(gPerOz)
	case "kg":
		w = w.Mul(ozPerKg)
	}
	return w.Round(2)
}

func dimensions(p Parcel) string {
	return fmt.Sprintf("%sx%sx%s %s", p.Length.String(), p.Width.String(), p.Height.String(), p.DistanceUnit)
}

func testTrackingNumber() string {
	return fmt.Sprintf("TEST%08d", rand.Intn(100_000_000))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrAccountLookupFailed):
		return "account_lookup_failed"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrAddressPersistFailed):
		return "address_persist_failed"
	case errors.Is(err, ErrShipmentPersistFailed):
		return "shipment_persist_failed"
	case errors.Is(err, ErrFundsDeductionFailed):
		return "funds_deduction_failed"
	case errors.Is(err, ErrExternalProvider):
		return "external_provider_error"
	default:
		return "error"
	}
}
