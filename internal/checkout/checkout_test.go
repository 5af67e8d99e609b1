package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/auth"
	mock_checkout "github.com/parcelbroker/shipdesk/internal/checkout/mocks"
	"github.com/parcelbroker/shipdesk/internal/repository"
	"github.com/parcelbroker/shipdesk/internal/shippo"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type checkoutMocks struct {
	accounts       *mock_checkout.MockAccountRepository
	addresses      *mock_checkout.MockAddressRepository
	rates          *mock_checkout.MockRateRepository
	shipments      *mock_checkout.MockShipmentRepository
	trackingEvents *mock_checkout.MockTrackingEventRepository
	customs        *mock_checkout.MockCustomsDeclarationRepository
	transactions   *mock_checkout.MockTransactionRepository
	notifications  *mock_checkout.MockNotificationRepository
	forwarder      *mock_checkout.MockLabelForwarder
}

func newTestService(t *testing.T, forward bool) (*Service, checkoutMocks) {
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		accounts:       mock_checkout.NewMockAccountRepository(ctrl),
		addresses:      mock_checkout.NewMockAddressRepository(ctrl),
		rates:          mock_checkout.NewMockRateRepository(ctrl),
		shipments:      mock_checkout.NewMockShipmentRepository(ctrl),
		trackingEvents: mock_checkout.NewMockTrackingEventRepository(ctrl),
		customs:        mock_checkout.NewMockCustomsDeclarationRepository(ctrl),
		transactions:   mock_checkout.NewMockTransactionRepository(ctrl),
		notifications:  mock_checkout.NewMockNotificationRepository(ctrl),
		forwarder:      mock_checkout.NewMockLabelForwarder(ctrl),
	}
	deps := Deps{
		Accounts:        m.accounts,
		Addresses:       m.addresses,
		Rates:           m.rates,
		Shipments:       m.shipments,
		TrackingEvents:  m.trackingEvents,
		Customs:         m.customs,
		Transactions:    m.transactions,
		Notifications:   m.notifications,
		Currency:        "USD",
		Logger:          zap.NewNop(),
		Clock:           func() time.Time { return testNow },
		TrackingNumbers: func() string { return "TEST00000042" },
	}
	if forward {
		deps.Forwarder = m.forwarder
	}
	svc, err := NewService(deps)
	require.NoError(t, err)
	return svc, m
}

func sessionContext() context.Context {
	return auth.WithSession(context.Background(), &auth.Session{UserID: "user-1", Email: "ann@example.com"})
}

func mustParse(t *testing.T, body string) *Request {
	t.Helper()
	req, err := ParseRequest([]byte(body))
	require.NoError(t, err)
	return req
}

func account(balance string) *repository.Account {
	return &repository.Account{UserID: "user-1", Balance: decimal.RequireFromString(balance), Currency: "USD"}
}

const domesticBody = `{
	"address_from": {"name": "Ann", "street1": "1 Main St", "city": "Austin", "state": "TX", "zip": "78701", "country": "US"},
	"address_to": {"name": "Bob", "street1": "2 Side St", "city": "Dallas", "state": "TX", "zip": "75001", "country": "us"},
	"parcel": {"length": 10, "width": 6, "height": 4, "distance_unit": "in", "weight": 2, "mass_unit": "lb"},
	"servicelevel_token": "usps_priority",
	"rate": "12.50",
	"carrier": "USPS",
	"service": "Priority Mail",
	"packageType": "Box",
	"weightLb": 2,
	"weightOz": 3,
	"saveToAddress": true,
	"toResidential": "yes",
	"requireSignature": true,
	"deliveryDays": 2
}`

const internationalBody = `{
	"address_from": {"street1": "1 Main St", "city": "Austin", "state": "TX", "zip": "78701", "country": "US"},
	"address_to": {"street1": "9 King St", "city": "Toronto", "state": "ON", "zip": "M5V 1A1", "country": "CA"},
	"parcel": {"length": 20, "width": 10, "height": 5, "distance_unit": "cm", "weight": 500, "mass_unit": "g"},
	"servicelevel_token": "usps_priority_mail_international",
	"fromAddressId": "addr-from-1",
	"toAddressId": "new",
	"rateId": "rate-7",
	"rate": 30,
	"customsValue": "150.00",
	"customsDescription": "Books"
}`

func TestNewService_MissingDependency(t *testing.T) {
	_, err := NewService(Deps{})
	assert.Error(t, err)
}

func TestService_CreateShipment_Domestic(t *testing.T) {
	svc, m := newTestService(t, false)
	ctx := sessionContext()
	req := mustParse(t, domesticBody)
	cost := decimal.RequireFromString("12.50")

	var shipmentID, rateID string
	gomock.InOrder(
		m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("20.00"), nil),
		m.addresses.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a *repository.Address) error {
				assert.Equal(t, repository.AddressTypeSender, a.AddressType)
				assert.Equal(t, "78701", a.PostalCode)
				assert.False(t, a.IsSaved)
				assert.False(t, a.IsResidential)
				return nil
			}),
		m.addresses.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a *repository.Address) error {
				assert.Equal(t, repository.AddressTypeRecipient, a.AddressType)
				assert.Equal(t, "US", a.Country)
				assert.True(t, a.IsSaved)
				assert.True(t, a.IsResidential)
				return nil
			}),
		m.rates.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *repository.Rate) error {
				rateID = r.ID
				assert.Equal(t, "USPS", r.Carrier)
				assert.Equal(t, "Priority Mail", r.ServiceName)
				assert.Equal(t, "Box", r.PackageTypeName)
				assert.Equal(t, 2, r.DeliveryDays)
				assert.True(t, cost.Equal(r.RateAmount))
				return nil
			}),
		m.shipments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *repository.Shipment) error {
				shipmentID = s.ID
				assert.Equal(t, "user-1", s.UserID)
				assert.NotEmpty(t, s.FromAddressID)
				assert.NotEmpty(t, s.ToAddressID)
				assert.NotEqual(t, s.FromAddressID, s.ToAddressID)
				assert.Equal(t, "Priority Mail", s.Service)
				assert.Equal(t, "35", s.WeightOz.String())
				assert.Equal(t, "10x6x4 in", s.Dimensions)
				assert.True(t, cost.Equal(s.TotalCost))
				assert.Equal(t, repository.ShipmentStatusCreated, s.Status)
				assert.Equal(t, "TEST00000042", s.TrackingNumber)
				require.NotNil(t, s.RateID)
				assert.Equal(t, rateID, *s.RateID)
				assert.False(t, s.CustomsValue.Valid)
				assert.True(t, s.RequireSignature)
				assert.Equal(t, testNow, s.CreatedAt)
				return nil
			}),
		m.trackingEvents.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e *repository.TrackingEvent) error {
				assert.Equal(t, shipmentID, e.ShipmentID)
				assert.Equal(t, repository.ShipmentStatusCreated, e.Status)
				return nil
			}),
		m.accounts.EXPECT().DeductFunds(ctx, "user-1", gomock.Any(), "USD").DoAndReturn(
			func(_ context.Context, _ string, amount decimal.Decimal, _ string) error {
				assert.True(t, cost.Equal(amount))
				return nil
			}),
		m.transactions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *repository.Transaction) error {
				require.NotNil(t, txn.ShipmentID)
				assert.Equal(t, shipmentID, *txn.ShipmentID)
				assert.Equal(t, repository.TransactionTypeDebit, txn.Type)
				assert.Equal(t, repository.TransactionCompleted, txn.Status)
				assert.Equal(t, repository.TransactionProviderBal, txn.Provider)
				assert.Regexp(t, `^txn_[0-9A-Z]{26}$`, txn.TransactionReference)
				return nil
			}),
		m.notifications.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n *repository.Notification) error {
				assert.Equal(t, "Shipment Created", n.Title)
				assert.Equal(t, "shipment", n.Type)
				assert.Contains(t, n.Message, "TEST00000042")
				return nil
			}),
	)

	res, err := svc.CreateShipment(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, shipmentID, res.ShipmentID)
	assert.Equal(t, "TEST00000042", res.TrackingNumber)
	assert.True(t, cost.Equal(res.Cost))
	assert.Empty(t, res.Failures())
	assert.Nil(t, res.External)

	steps := make([]string, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		steps = append(steps, d.Step)
	}
	assert.Equal(t, []string{StepRate, StepTrackingEvent, StepTransaction, StepNotification}, steps)
}

func TestService_CreateShipment_International(t *testing.T) {
	svc, m := newTestService(t, false)
	ctx := sessionContext()
	req := mustParse(t, internationalBody)

	m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("30.00"), nil)
	m.addresses.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *repository.Address) error {
			assert.Equal(t, repository.AddressTypeRecipient, a.AddressType)
			assert.Equal(t, "CA", a.Country)
			return nil
		})
	m.rates.EXPECT().GetByID(ctx, "rate-7").Return(&repository.Rate{ID: "rate-7"}, nil)
	m.shipments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *repository.Shipment) error {
			assert.Equal(t, "addr-from-1", s.FromAddressID)
			require.NotNil(t, s.RateID)
			assert.Equal(t, "rate-7", *s.RateID)
			assert.Equal(t, "usps_priority_mail_international", s.Service)
			assert.Equal(t, "17.64", s.WeightOz.String())
			assert.Equal(t, "20x10x5 cm", s.Dimensions)
			assert.True(t, s.CustomsValue.Valid)
			assert.Equal(t, "150", s.CustomsValue.Decimal.String())
			return nil
		})
	m.trackingEvents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.customs.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d *repository.CustomsDeclaration) error {
			assert.Equal(t, "MERCHANDISE", d.ContentsType)
			assert.Equal(t, "Books", d.Description)
			assert.Equal(t, "150", d.CustomsValue.String())
			return nil
		})
	m.accounts.EXPECT().DeductFunds(ctx, "user-1", gomock.Any(), "USD").Return(nil)
	m.transactions.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := svc.CreateShipment(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, res.Failures())
	assert.Len(t, res.Diagnostics, 4)
}

func TestService_CreateShipment_SideEffectFailures(t *testing.T) {
	svc, m := newTestService(t, false)
	ctx := sessionContext()
	req := mustParse(t, internationalBody)
	boom := errors.New("insert failed")

	m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("100"), nil)
	m.addresses.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.rates.EXPECT().GetByID(ctx, "rate-7").Return(nil, repository.ErrObjectNotFound)
	m.rates.EXPECT().Create(ctx, gomock.Any()).Return(boom)
	m.shipments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *repository.Shipment) error {
			assert.Nil(t, s.RateID)
			return nil
		})
	m.trackingEvents.EXPECT().Create(ctx, gomock.Any()).Return(boom)
	m.customs.EXPECT().Create(ctx, gomock.Any()).Return(boom)
	m.accounts.EXPECT().DeductFunds(ctx, "user-1", gomock.Any(), "USD").Return(nil)
	m.transactions.EXPECT().Create(ctx, gomock.Any()).Return(boom)
	m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(boom)

	res, err := svc.CreateShipment(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, res.ShipmentID)

	failures := res.Failures()
	require.Len(t, failures, 5)
	for _, f := range failures {
		assert.ErrorIs(t, f.Err, boom)
	}
}

func TestService_CreateShipment_Rejected(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name    string
		ctx     context.Context
		body    string
		prepare func(m checkoutMocks, ctx context.Context)
		wantErr error
	}{
		{
			name:    "no session",
			ctx:     context.Background(),
			body:    domesticBody,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "invalid parcel",
			ctx:     sessionContext(),
			body:    `{"address_from": {}, "address_to": {}, "parcel": {}}`,
			wantErr: ErrInvalidInput,
		},
		{
			name: "account lookup failure",
			ctx:  sessionContext(),
			body: domesticBody,
			prepare: func(m checkoutMocks, ctx context.Context) {
				m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(nil, dbErr)
			},
			wantErr: ErrAccountLookupFailed,
		},
		{
			name: "missing account has no balance",
			ctx:  sessionContext(),
			body: domesticBody,
			prepare: func(m checkoutMocks, ctx context.Context) {
				m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(nil, repository.ErrObjectNotFound)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name: "insufficient balance",
			ctx:  sessionContext(),
			body: domesticBody,
			prepare: func(m checkoutMocks, ctx context.Context) {
				m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("12.49"), nil)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name: "sender address insert fails",
			ctx:  sessionContext(),
			body: domesticBody,
			prepare: func(m checkoutMocks, ctx context.Context) {
				m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("50"), nil)
				m.addresses.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)
			},
			wantErr: ErrAddressPersistFailed,
		},
		{
			name: "shipment insert fails",
			ctx:  sessionContext(),
			body: domesticBody,
			prepare: func(m checkoutMocks, ctx context.Context) {
				m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("50"), nil)
				m.addresses.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
				m.rates.EXPECT().Create(ctx, gomock.Any()).Return(nil)
				m.shipments.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)
			},
			wantErr: ErrShipmentPersistFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t, true)
			if tc.prepare != nil {
				tc.prepare(m, tc.ctx)
			}

			res, err := svc.CreateShipment(tc.ctx, mustParse(t, tc.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, res.ShipmentID)
		})
	}
}

func TestService_CreateShipment_InsufficientBalanceAmounts(t *testing.T) {
	svc, m := newTestService(t, false)
	ctx := sessionContext()
	m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("5"), nil)

	_, err := svc.CreateShipment(ctx, mustParse(t, domesticBody))

	var balErr *InsufficientBalanceError
	require.True(t, errors.As(err, &balErr))
	assert.Equal(t, "5.00", balErr.Current.StringFixed(2))
	assert.Equal(t, "12.50", balErr.Required.StringFixed(2))
}

func TestService_CreateShipment_DeductionFailureDeletesShipment(t *testing.T) {
	svc, m := newTestService(t, true)
	ctx := sessionContext()
	req := mustParse(t, domesticBody)

	var shipmentID string
	m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("50"), nil)
	m.addresses.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	m.rates.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.shipments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *repository.Shipment) error {
			shipmentID = s.ID
			return nil
		})
	m.trackingEvents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.accounts.EXPECT().DeductFunds(ctx, "user-1", gomock.Any(), "USD").Return(errors.New("insufficient funds"))
	m.shipments.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, id string) error {
			assert.Equal(t, shipmentID, id)
			return nil
		})

	res, err := svc.CreateShipment(ctx, req)
	assert.ErrorIs(t, err, ErrFundsDeductionFailed)
	assert.Empty(t, res.ShipmentID)
}

func TestService_CreateShipment_CompensationSurvivesCancellation(t *testing.T) {
	svc, m := newTestService(t, false)
	ctx, cancel := context.WithCancel(sessionContext())
	req := mustParse(t, domesticBody)

	m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("50"), nil)
	m.addresses.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	m.rates.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.shipments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.trackingEvents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.accounts.EXPECT().DeductFunds(ctx, "user-1", gomock.Any(), "USD").DoAndReturn(
		func(context.Context, string, decimal.Decimal, string) error {
			cancel()
			return context.Canceled
		})
	m.shipments.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ string) error {
			assert.NoError(t, ctx.Err())
			return errors.New("delete failed")
		})

	_, err := svc.CreateShipment(ctx, req)
	assert.ErrorIs(t, err, ErrFundsDeductionFailed)
}

func expectPaidShipment(m checkoutMocks, ctx context.Context) {
	m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("50"), nil)
	m.addresses.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	m.rates.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.shipments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.trackingEvents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.accounts.EXPECT().DeductFunds(ctx, "user-1", gomock.Any(), "USD").Return(nil)
	m.transactions.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(nil)
}

func addressBody(country, extra string) string {
	return fmt.Sprintf(`{
	"address_from": {"street1": "1 Main St", "city": "Austin", "state": "TX", "zip": "78701", "country": "US"},
	"address_to": {"street1": "9 Dock Rd", "city": "Halifax", "state": "NS", "zip": "B3H 1A1", "country": %q},
	"parcel": {"length": 10, "width": 6, "height": 4, "distance_unit": "in", "weight": 2, "mass_unit": "lb"},
	"servicelevel_token": "usps_priority",
	"rate": 10,
	"fromAddressId": "addr-from-1",
	"toAddressId": "addr-to-1"%s
}`, country, extra)
}

func TestService_CreateShipment_CustomsAndSavedAddresses(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantCustoms  bool
		customsValue string
	}{
		{
			name: "domestic with customs value",
			body: addressBody("US", `, "customsValue": "150.00", "contentsType": "GIFT"`),
		},
		{
			name: "domestic lower case with padding",
			body: addressBody(" us ", `, "customsValue": 80`),
		},
		{
			name: "international without customs value",
			body: addressBody("CA", ""),
		},
		{
			name: "international with zero customs value",
			body: addressBody("CA", `, "customsValue": "0"`),
		},
		{
			name:         "international with customs value",
			body:         addressBody("CA", `, "customsValue": "$1,200.50"`),
			wantCustoms:  true,
			customsValue: "1200.5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t, false)
			ctx := sessionContext()
			req := mustParse(t, tc.body)

			m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(account("50"), nil)
			m.rates.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			m.shipments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, s *repository.Shipment) error {
					assert.Equal(t, "addr-from-1", s.FromAddressID)
					assert.Equal(t, "addr-to-1", s.ToAddressID)
					return nil
				})
			m.trackingEvents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			if tc.wantCustoms {
				m.customs.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, d *repository.CustomsDeclaration) error {
						assert.Equal(t, tc.customsValue, d.CustomsValue.String())
						assert.Equal(t, "MERCHANDISE", d.ContentsType)
						return nil
					})
			}
			m.accounts.EXPECT().DeductFunds(ctx, "user-1", gomock.Any(), "USD").Return(nil)
			m.transactions.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(nil)

			res, err := svc.CreateShipment(ctx, req)
			require.NoError(t, err)
			assert.Empty(t, res.Failures())

			steps := make([]string, 0, len(res.Diagnostics))
			for _, d := range res.Diagnostics {
				steps = append(steps, d.Step)
			}
			if tc.wantCustoms {
				assert.Contains(t, steps, StepCustomsDeclaration)
			} else {
				assert.NotContains(t, steps, StepCustomsDeclaration)
			}
		})
	}
}

func TestService_CreateShipment_Forwarding(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		svc, m := newTestService(t, true)
		ctx := sessionContext()
		req := mustParse(t, domesticBody)
		expectPaidShipment(m, ctx)

		reply := &shippo.RawResponse{StatusCode: http.StatusCreated, ContentType: "application/json", Body: []byte(`{"object_id":"s1"}`)}
		m.forwarder.EXPECT().ForwardShipment(ctx, req.Raw()).Return(reply, nil)

		res, err := svc.CreateShipment(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, reply, res.External)
	})

	t.Run("rejected reply is relayed", func(t *testing.T) {
		svc, m := newTestService(t, true)
		ctx := sessionContext()
		req := mustParse(t, domesticBody)
		expectPaidShipment(m, ctx)

		m.forwarder.EXPECT().ForwardShipment(ctx, gomock.Any()).
			Return(&shippo.RawResponse{StatusCode: http.StatusUnprocessableEntity, ContentType: "application/json", Body: []byte(`{"detail":"bad"}`)}, nil)

		res, err := svc.CreateShipment(ctx, req)
		require.Error(t, err)
		assert.NotEmpty(t, res.ShipmentID)

		var extErr *ExternalProviderError
		require.True(t, errors.As(err, &extErr))
		assert.Equal(t, http.StatusUnprocessableEntity, extErr.Status)
		assert.Equal(t, "application/json", extErr.ContentType)
		assert.JSONEq(t, `{"detail":"bad"}`, string(extErr.Body))
	})

	t.Run("transport failure", func(t *testing.T) {
		svc, m := newTestService(t, true)
		ctx := sessionContext()
		req := mustParse(t, domesticBody)
		expectPaidShipment(m, ctx)

		m.forwarder.EXPECT().ForwardShipment(ctx, gomock.Any()).Return(nil, shippo.ErrTransport)

		_, err := svc.CreateShipment(ctx, req)
		assert.ErrorIs(t, err, ErrExternalProvider)
		assert.ErrorIs(t, err, shippo.ErrTransport)

		var extErr *ExternalProviderError
		require.True(t, errors.As(err, &extErr))
		assert.Equal(t, http.StatusBadGateway, extErr.Status)
		assert.Nil(t, extErr.Body)
	})
}

func TestWeightOz(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "lb and oz split", body: `{"weightLb": 1, "weightOz": "2.5", "parcel": {"weight": 9, "mass_unit": "kg"}}`, want: "18.5"},
		{name: "ounces only", body: `{"weightOz": 7, "parcel": {"weight": 9, "mass_unit": "kg"}}`, want: "7"},
		{name: "parcel in oz", body: `{"parcel": {"weight": 12, "mass_unit": "oz"}}`, want: "12"},
		{name: "parcel in lb", body: `{"parcel": {"weight": 1.5, "mass_unit": "lb"}}`, want: "24"},
		{name: "parcel in kg", body: `{"parcel": {"weight": 1, "mass_unit": "kg"}}`, want: "35.27"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, weightOz(mustParse(t, tc.body)).String())
		})
	}
}
