package postgresql

import (
	"context"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type TransactionRepo struct {
	db db.DB
}

func NewTransactionRepo(db db.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const insertTransaction = `
        INSERT INTO transactions (
            id, user_id, shipment_id, amount, currency, type, status, provider, transaction_reference, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

func (r *TransactionRepo) Create(ctx context.Context, t *repository.Transaction) error {
	_, err := r.db.Exec(ctx, insertTransaction,
		t.ID, t.UserID, t.ShipmentID, t.Amount, t.Currency, t.Type, t.Status, t.Provider, t.TransactionReference, t.CreatedAt)
	return err
}

func (r *TransactionRepo) CreateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error {
	_, err := tx.Exec(ctx, insertTransaction,
		t.ID, t.UserID, t.ShipmentID, t.Amount, t.Currency, t.Type, t.Status, t.Provider, t.TransactionReference, t.CreatedAt)
	return err
}
