package funds

import (
	"context"
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/db"
	mock_db "github.com/parcelbroker/shipdesk/internal/db/mocks"
	mock_funds "github.com/parcelbroker/shipdesk/internal/funds/mocks"
	"github.com/parcelbroker/shipdesk/internal/metrics"
	"github.com/parcelbroker/shipdesk/internal/payments"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

func balanceErrors(t *testing.T) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.OperationErrorsTotal.WithLabelValues("get_balance").Write(&m))
	return m.GetCounter().GetValue()
}

type fundsMocks struct {
	db            *mock_db.MockDB
	tx            *mock_db.MockTx
	accounts      *mock_funds.MockAccountRepository
	transactions  *mock_funds.MockTransactionRepository
	notifications *mock_funds.MockNotificationRepository
	payments      *mock_funds.MockPaymentCapturer
}

func newTestService(t *testing.T) (*Service, fundsMocks) {
	ctrl := gomock.NewController(t)
	m := fundsMocks{
		db:            mock_db.NewMockDB(ctrl),
		tx:            mock_db.NewMockTx(ctrl),
		accounts:      mock_funds.NewMockAccountRepository(ctrl),
		transactions:  mock_funds.NewMockTransactionRepository(ctrl),
		notifications: mock_funds.NewMockNotificationRepository(ctrl),
		payments:      mock_funds.NewMockPaymentCapturer(ctrl),
	}
	svc, err := NewService(Deps{
		DB:            m.db,
		Accounts:      m.accounts,
		Transactions:  m.transactions,
		Notifications: m.notifications,
		Payments:      m.payments,
		Currency:      "USD",
		Logger:        zap.NewNop(),
	})
	require.NoError(t, err)
	svc.timeNow = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, m
}

func TestNewService_MissingDependency(t *testing.T) {
	_, err := NewService(Deps{})
	assert.Error(t, err)
}

func TestService_Balance(t *testing.T) {
	ctx := context.Background()

	t.Run("existing account", func(t *testing.T) {
		svc, m := newTestService(t)
		m.accounts.EXPECT().GetByUserID(ctx, "user-1").
			Return(&repository.Account{UserID: "user-1", Balance: decimal.RequireFromString("50.00"), Currency: "USD"}, nil)

		bal, err := svc.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("50").Equal(bal.Amount))
		assert.Equal(t, "USD", bal.Currency)
	})

	t.Run("missing account is zero", func(t *testing.T) {
		svc, m := newTestService(t)
		m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(nil, repository.ErrObjectNotFound)

		bal, err := svc.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, bal.Amount.IsZero())
		assert.Equal(t, "USD", bal.Currency)
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, m := newTestService(t)
		m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(nil, errors.New("db down"))
		before := balanceErrors(t)

		_, err := svc.Balance(ctx, "user-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get account")
		assert.Equal(t, before+1, balanceErrors(t))
	})
}

func TestService_AddFunds(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("40.00")
	cmd := AddFundsCommand{Amount: amount, Provider: "paypal", PaymentReference: "ORDER-1"}
	captured := payments.Capture{Provider: "paypal", Reference: "ORDER-1", Status: payments.StatusSucceeded, Amount: amount, Currency: "USD"}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)

		m.payments.EXPECT().Capture(ctx, "paypal", payments.CaptureRequest{Reference: "ORDER-1", Amount: amount, Currency: "USD"}).
			Return(captured, nil)
		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.accounts.EXPECT().AddFundsTx(ctx, m.tx, "user-1", amount).Return(nil)
		m.transactions.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, txn *repository.Transaction) error {
				assert.Equal(t, "user-1", txn.UserID)
				assert.Nil(t, txn.ShipmentID)
				assert.Equal(t, repository.TransactionTypeCredit, txn.Type)
				assert.Equal(t, repository.TransactionCompleted, txn.Status)
				assert.Equal(t, "paypal", txn.Provider)
				assert.Equal(t, "ORDER-1", txn.TransactionReference)
				assert.True(t, amount.Equal(txn.Amount))
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.notifications.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n *repository.Notification) error {
				assert.Equal(t, "Funds Added", n.Title)
				assert.Equal(t, "40.00 USD has been added to your account.", n.Message)
				return nil
			})
		m.accounts.EXPECT().GetByUserID(ctx, "user-1").
			Return(&repository.Account{UserID: "user-1", Balance: decimal.RequireFromString("90.00"), Currency: "USD"}, nil)

		credit, err := svc.AddFunds(ctx, "user-1", cmd)
		require.NoError(t, err)
		assert.True(t, amount.Equal(credit.Amount))
		assert.Equal(t, "USD", credit.Currency)
		require.True(t, credit.Balance.Valid)
		assert.True(t, decimal.RequireFromString("90").Equal(credit.Balance.Decimal))
	})

	t.Run("notification failure is ignored", func(t *testing.T) {
		svc, m := newTestService(t)

		m.payments.EXPECT().Capture(ctx, "paypal", gomock.Any()).Return(captured, nil)
		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.accounts.EXPECT().AddFundsTx(ctx, m.tx, "user-1", amount).Return(nil)
		m.transactions.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
		m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(nil, repository.ErrObjectNotFound)

		credit, err := svc.AddFunds(ctx, "user-1", cmd)
		require.NoError(t, err)
		require.True(t, credit.Balance.Valid)
		assert.True(t, credit.Balance.Decimal.IsZero())
	})

	t.Run("balance read failure after commit still succeeds", func(t *testing.T) {
		svc, m := newTestService(t)

		m.payments.EXPECT().Capture(ctx, "paypal", gomock.Any()).Return(captured, nil)
		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.accounts.EXPECT().AddFundsTx(ctx, m.tx, "user-1", amount).Return(nil)
		m.transactions.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.accounts.EXPECT().GetByUserID(ctx, "user-1").Return(nil, errors.New("connection reset"))

		credit, err := svc.AddFunds(ctx, "user-1", cmd)
		require.NoError(t, err)
		assert.True(t, amount.Equal(credit.Amount))
		assert.False(t, credit.Balance.Valid)
	})

	t.Run("invalid command", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.AddFunds(ctx, "user-1", AddFundsCommand{Amount: decimal.NewFromInt(-5)})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "amount must be positive")
		assert.Contains(t, err.Error(), "provider is required")
	})

	t.Run("capture error", func(t *testing.T) {
		svc, m := newTestService(t)
		m.payments.EXPECT().Capture(ctx, "paypal", gomock.Any()).
			Return(payments.Capture{}, payments.ErrUnsupportedProvider)

		_, err := svc.AddFunds(ctx, "user-1", cmd)
		assert.ErrorIs(t, err, ErrPaymentFailed)
		assert.ErrorIs(t, err, payments.ErrUnsupportedProvider)
	})

	t.Run("capture not completed", func(t *testing.T) {
		svc, m := newTestService(t)
		m.payments.EXPECT().Capture(ctx, "paypal", gomock.Any()).
			Return(payments.Capture{Provider: "paypal", Status: payments.StatusPending}, nil)

		_, err := svc.AddFunds(ctx, "user-1", cmd)
		assert.ErrorIs(t, err, ErrPaymentFailed)
	})

	t.Run("credit rolls back", func(t *testing.T) {
		svc, m := newTestService(t)

		m.payments.EXPECT().Capture(ctx, "paypal", gomock.Any()).Return(captured, nil)
		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.accounts.EXPECT().AddFundsTx(ctx, m.tx, "user-1", amount).Return(nil)
		m.transactions.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(errors.New("constraint"))
		m.tx.EXPECT().Rollback(ctx).Return(nil)

		_, err := svc.AddFunds(ctx, "user-1", cmd)
		assert.ErrorIs(t, err, ErrCreditFailed)
		assert.Contains(t, err.Error(), "failed to record transaction")
	})

	t.Run("begin fails", func(t *testing.T) {
		svc, m := newTestService(t)

		m.payments.EXPECT().Capture(ctx, "paypal", gomock.Any()).Return(captured, nil)
		m.db.EXPECT().BeginTx(ctx).Return(nil, errors.New("pool exhausted"))

		_, err := svc.AddFunds(ctx, "user-1", cmd)
		assert.ErrorIs(t, err, ErrCreditFailed)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})
}
