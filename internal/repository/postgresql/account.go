package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

// AccountRepo reads balances. Balances are mutated only through the
// deduct_funds and add_funds procedures.
type AccountRepo struct {
	db db.DB
}

func NewAccountRepo(db db.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) GetByUserID(ctx context.Context, userID string) (*repository.Account, error) {
	var account repository.Account
	err := r.db.Get(ctx, &account, "SELECT user_id, balance, currency, updated_at FROM accounts WHERE user_id = $1", userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepo) DeductFunds(ctx context.Context, userID string, amount decimal.Decimal, currency string) error {
	_, err := r.db.Exec(ctx, "SELECT deduct_funds($1, $2, $3)", userID, amount, currency)
	return err
}

func (r *AccountRepo) AddFundsTx(ctx context.Context, tx db.Tx, userID string, amount decimal.Decimal) error {
	_, err := tx.Exec(ctx, "SELECT add_funds($1, $2)", userID, amount)
	return err
}
