package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/parcelbroker/shipdesk/internal/db/mocks"
	"github.com/parcelbroker/shipdesk/internal/repository"
	"github.com/parcelbroker/shipdesk/internal/repository/postgresql"
)

func TestAddressRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewAddressRepo(mockDB)

	addr := &repository.Address{
		ID:          "addr-1",
		UserID:      "user-1",
		Street1:     "1 Main St",
		City:        "Austin",
		State:       "TX",
		PostalCode:  "78701",
		Country:     "US",
		AddressType: repository.AddressTypeSender,
		IsSaved:     true,
	}

	mockDB.EXPECT().Exec(
		gomock.Any(), gomock.Any(),
		gomock.Eq(addr.ID), gomock.Eq(addr.UserID), gomock.Any(), gomock.Eq(addr.Street1), gomock.Any(),
		gomock.Eq(addr.City), gomock.Eq(addr.State), gomock.Eq(addr.PostalCode), gomock.Eq(addr.Country),
		gomock.Any(), gomock.Any(), gomock.Eq(false), gomock.Eq(repository.AddressTypeSender), gomock.Eq(true),
		gomock.Any(),
	).Return(nil, nil)

	assert.NoError(t, repo.Create(context.Background(), addr))
}

func TestRateRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRateRepo(mockDB)

		testRate := &repository.Rate{ID: "rate-1", ServiceName: "Ground", RateAmount: decimal.RequireFromString("9.99")}
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("rate-1")).
			DoAndReturn(func(_ context.Context, dest *repository.Rate, _ string, _ string) error {
				*dest = *testRate
				return nil
			})

		got, err := repo.GetByID(ctx, "rate-1")
		assert.NoError(t, err)
		assert.Equal(t, testRate, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRateRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, "rate-1")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})
}

func TestRateRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewRateRepo(mockDB)

	r := &repository.Rate{ID: "rate-1", Carrier: "UPS", ServiceName: "Ground", RateAmount: decimal.RequireFromString("9.99"), Currency: "USD", DeliveryDays: 3}
	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(),
		gomock.Eq(r.ID), gomock.Eq(r.Carrier), gomock.Eq(r.ServiceName), gomock.Eq(r.PackageTypeName),
		gomock.Eq(r.RateAmount), gomock.Eq(r.Currency), gomock.Eq(r.DeliveryDays), gomock.Eq(r.CreatedAt),
	).Return(nil, nil)

	assert.NoError(t, repo.Create(context.Background(), r))
}

func TestTrackingEventRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewTrackingEventRepo(mockDB)

	event := &repository.TrackingEvent{
		ID:          "evt-1",
		ShipmentID:  "ship-1",
		Status:      repository.ShipmentStatusCreated,
		OccurredAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: "Shipment created",
	}
	dbErr := errors.New("fk violation")

	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(),
		gomock.Eq(event.ID), gomock.Eq(event.ShipmentID), gomock.Eq(event.Status),
		gomock.Eq(event.OccurredAt), gomock.Eq(event.Description), gomock.Eq(event.Location),
	).Return(nil, dbErr)

	assert.Equal(t, dbErr, repo.Create(context.Background(), event))
}

func TestCustomsDeclarationRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewCustomsDeclarationRepo(mockDB)

	d := &repository.CustomsDeclaration{
		ID:           "cd-1",
		ShipmentID:   "ship-1",
		ContentsType: "MERCHANDISE",
		CustomsValue: decimal.RequireFromString("25.00"),
		Currency:     "USD",
	}
	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(),
		gomock.Eq(d.ID), gomock.Eq(d.ShipmentID), gomock.Eq(d.ContentsType),
		gomock.Eq(d.CustomsValue), gomock.Eq(d.Currency), gomock.Eq(d.Description),
	).Return(nil, nil)

	assert.NoError(t, repo.Create(context.Background(), d))
}

func TestTransactionRepo_CreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewTransactionRepo(mockDB)

	txn := &repository.Transaction{
		ID:                   "t-1",
		UserID:               "user-1",
		Amount:               decimal.RequireFromString("40"),
		Currency:             "USD",
		Type:                 repository.TransactionTypeCredit,
		Status:               repository.TransactionCompleted,
		Provider:             "paypal",
		TransactionReference: "ORDER-1",
	}

	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(),
		gomock.Eq(txn.ID), gomock.Eq(txn.UserID), gomock.Nil(), gomock.Eq(txn.Amount), gomock.Eq(txn.Currency),
		gomock.Eq(txn.Type), gomock.Eq(txn.Status), gomock.Eq(txn.Provider), gomock.Eq(txn.TransactionReference),
		gomock.Any(),
	).Return(nil, nil)

	assert.NoError(t, repo.CreateTx(context.Background(), mockTx, txn))
}
