package funds

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/metrics"
	"github.com/parcelbroker/shipdesk/internal/payments"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

var (
	ErrInvalidInput  = errors.New("funds: invalid input")
	ErrPaymentFailed = errors.New("funds: payment failed")
	ErrCreditFailed  = errors.New("funds: credit failed")
)

//go:generate mockgen -source ./funds.go -destination=./mocks/funds.go -package=mock_funds

type AccountRepository interface {
	GetByUserID(ctx context.Context, userID string) (*repository.Account, error)
	AddFundsTx(ctx context.Context, tx db.Tx, userID string, amount decimal.Decimal) error
}

type TransactionRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *repository.Notification) error
}

// PaymentCapturer captures an authorised payment with the named provider.
type PaymentCapturer interface {
	Capture(ctx context.Context, provider string, req payments.CaptureRequest) (payments.Capture, error)
}

type Balance struct {
	Amount   decimal.Decimal
	Currency string
}

// Credit is a committed top-up. Balance is invalid when the account could
// not be re-read after the commit; the credit stands either way.
type Credit struct {
	Amount   decimal.Decimal
	Currency string
	Balance  decimal.NullDecimal
}

type AddFundsCommand struct {
	Amount           decimal.Decimal
	Provider         string
	PaymentReference string
}

type Deps struct {
	DB            db.DB
	Accounts      AccountRepository
	Transactions  TransactionRepository
	Notifications NotificationRepository
	Payments      PaymentCapturer
	Currency      string
	Logger        *zap.Logger
}

type Service struct {
	db            db.DB
	accounts      AccountRepository
	transactions  TransactionRepository
	notifications NotificationRepository
	payments      PaymentCapturer
	currency      string
	logger        *zap.Logger
	timeNow       func() time.Time
}

func NewService(deps Deps) (*Service, error) {
	if deps.DB == nil || deps.Accounts == nil || deps.Transactions == nil || deps.Notifications == nil || deps.Payments == nil {
		return nil, errors.New("funds: missing dependency")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	currency := deps.Currency
	if currency == "" {
		currency = "USD"
	}
	return &Service{
		db:            deps.DB,
		accounts:      deps.Accounts,
		transactions:  deps.Transactions,
		notifications: deps.Notifications,
		payments:      deps.Payments,
		currency:      currency,
		logger:        logger.With(zap.String("component", "funds")),
		timeNow:       time.Now,
	}, nil
}

// Balance returns the caller's balance. A user without an account has a zero balance.
func (s *Service) Balance(ctx context.Context, userID string) (Balance, error) {
	account, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return Balance{Amount: decimal.Zero, Currency: s.currency}, nil
		}
		metrics.OperationErrorsTotal.WithLabelValues("get_balance").Inc()
		return Balance{}, fmt.Errorf("failed to get account: %w", err)
	}
	return Balance{Amount: account.Balance, Currency: account.Currency}, nil
}

// AddFunds captures the payment and credits the account with the captured amount.
func (s *Service) AddFunds(ctx context.Context, userID string, cmd AddFundsCommand) (Credit, error) {
	if err := validate(cmd); err != nil {
		return Credit{}, err
	}

	capture, err := s.payments.Capture(ctx, cmd.Provider, payments.CaptureRequest{
		Reference: cmd.PaymentReference,
		Amount:    cmd.Amount,
		Currency:  s.currency,
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("capture_payment").Inc()
		s.logger.Warn("payment capture failed",
			zap.String("user_id", userID), zap.String("provider", cmd.Provider), zap.Error(err))
		return Credit{}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}
	if !capture.Succeeded() {
		s.logger.Warn("payment not captured",
			zap.String("user_id", userID), zap.String("provider", cmd.Provider), zap.String("status", string(capture.Status)))
		return Credit{}, fmt.Errorf("%w: status %s", ErrPaymentFailed, capture.Status)
	}

	amount := cmd.Amount
	if capture.Amount.IsPositive() {
		amount = capture.Amount
	}
	reference := capture.Reference
	if reference == "" {
		reference = cmd.PaymentReference
	}

	if err := s.credit(ctx, userID, amount, capture.Provider, reference); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("credit_account").Inc()
		s.logger.Error("captured payment not credited",
			zap.String("user_id", userID), zap.String("reference", reference), zap.Error(err))
		return Credit{}, fmt.Errorf("%w: %w", ErrCreditFailed, err)
	}

	metrics.FundsAddedTotal.Inc()
	metrics.FundsAddedAmount.Add(amount.InexactFloat64())

	if err := s.notifications.Create(ctx, &repository.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     "Funds Added",
		Message:   fmt.Sprintf("%s %s has been added to your account.", amount.StringFixed(2), s.currency),
		Type:      "payment",
		CreatedAt: s.timeNow().UTC(),
	}); err != nil {
		s.logger.Warn("failed to create funds notification", zap.String("user_id", userID), zap.Error(err))
	}

	credit := Credit{Amount: amount, Currency: s.currency}
	balance, err := s.Balance(ctx, userID)
	if err != nil {
		s.logger.Warn("balance unavailable after credit", zap.String("user_id", userID), zap.Error(err))
		return credit, nil
	}
	credit.Balance = decimal.NewNullDecimal(balance.Amount)
	return credit, nil
}

func (s *Service) credit(ctx context.Context, userID string, amount decimal.Decimal, provider, reference string) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Warn("rollback failed", zap.Error(rbErr))
			}
		}
	}()

	if err = s.accounts.AddFundsTx(ctx, tx, userID, amount); err != nil {
		return fmt.Errorf("failed to add funds: %w", err)
	}

	if err = s.transactions.CreateTx(ctx, tx, &repository.Transaction{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Amount:               amount,
		Currency:             s.currency,
		Type:                 repository.TransactionTypeCredit,
		Status:               repository.TransactionCompleted,
		Provider:             provider,
		TransactionReference: reference,
		CreatedAt:            s.timeNow().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func validate(cmd AddFundsCommand) error {
	var problems []string
	if !cmd.Amount.IsPositive() {
		problems = append(problems, "amount must be positive")
	}
	if strings.TrimSpace(cmd.Provider) == "" {
		problems = append(problems, "provider is required")
	}
	if strings.TrimSpace(cmd.PaymentReference) == "" {
		problems = append(problems, "paymentReference is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}
