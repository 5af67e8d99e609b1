package postgresql

import (
	"context"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type AddressRepo struct {
	db db.DB
}

func NewAddressRepo(db db.DB) *AddressRepo {
	return &AddressRepo{db: db}
}

func (r *AddressRepo) Create(ctx context.Context, address *repository.Address) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO addresses (
            id, user_id, name, street1, street2, city, state, postal_code, country,
            phone, email, is_residential, address_type, is_saved, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `, address.ID, address.UserID, address.Name, address.Street1, address.Street2, address.City, address.State,
		address.PostalCode, address.Country, address.Phone, address.Email, address.IsResidential,
		address.AddressType, address.IsSaved, address.CreatedAt)
	return err
}
