package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type RateRepo struct {
	db db.DB
}

func NewRateRepo(db db.DB) *RateRepo {
	return &RateRepo{db: db}
}

func (r *RateRepo) Create(ctx context.Context, rate *repository.Rate) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO rates (
            id, carrier, service_name, package_type_name, rate_amount, currency, delivery_days, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, rate.ID, rate.Carrier, rate.ServiceName, rate.PackageTypeName, rate.RateAmount, rate.Currency, rate.DeliveryDays, rate.CreatedAt)
	return err
}

func (r *RateRepo) GetByID(ctx context.Context, id string) (*repository.Rate, error) {
	var rate repository.Rate
	err := r.db.Get(ctx, &rate, "SELECT * FROM rates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &rate, nil
}
