package postgresql

import (
	"context"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type CustomsDeclarationRepo struct {
	db db.DB
}

func NewCustomsDeclarationRepo(db db.DB) *CustomsDeclarationRepo {
	return &CustomsDeclarationRepo{db: db}
}

func (r *CustomsDeclarationRepo) Create(ctx context.Context, d *repository.CustomsDeclaration) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO customs_declarations (id, shipment_id, contents_type, customs_value, currency, description) VALUES ($1, $2, $3, $4, $5, $6)",
		d.ID, d.ShipmentID, d.ContentsType, d.CustomsValue, d.Currency, d.Description)
	return err
}
