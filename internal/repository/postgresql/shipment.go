package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type ShipmentRepo struct {
	db db.DB
}

func NewShipmentRepo(db db.DB) *ShipmentRepo {
	return &ShipmentRepo{db: db}
}

func (r *ShipmentRepo) Create(ctx context.Context, s *repository.Shipment) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO shipments (
            id, user_id, from_address_id, to_address_id, carrier, service, package_type,
            weight_oz, dimensions, total_cost, currency, status, tracking_number, rate_id,
            customs_contents_type, customs_value, non_machinable, require_signature,
            insurance_type, has_return_label, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
    `, s.ID, s.UserID, s.FromAddressID, s.ToAddressID, s.Carrier, s.Service, s.PackageType,
		s.WeightOz, s.Dimensions, s.TotalCost, s.Currency, s.Status, s.TrackingNumber, s.RateID,
		s.CustomsContentsType, s.CustomsValue, s.NonMachinable, s.RequireSignature,
		s.InsuranceType, s.HasReturnLabel, s.CreatedAt)
	return err
}

// Delete removes a shipment owned by userID. Deleting a missing row is not an error.
func (r *ShipmentRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM shipments WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func (r *ShipmentRepo) GetByID(ctx context.Context, userID, id string) (*repository.Shipment, error) {
	var shipment repository.Shipment
	err := r.db.Get(ctx, &shipment, "SELECT * FROM shipments WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

func (r *ShipmentRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*repository.Shipment, error) {
	query := "SELECT * FROM shipments WHERE user_id = $1 ORDER BY created_at DESC"
	args := []interface{}{userID}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var shipments []*repository.Shipment
	if err := r.db.Select(ctx, &shipments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, nil
}
