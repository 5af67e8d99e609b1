package postgresql

import (
	"context"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type TrackingEventRepo struct {
	db db.DB
}

func NewTrackingEventRepo(db db.DB) *TrackingEventRepo {
	return &TrackingEventRepo{db: db}
}

func (r *TrackingEventRepo) Create(ctx context.Context, event *repository.TrackingEvent) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO tracking_events (id, shipment_id, status, occurred_at, description, location) VALUES ($1, $2, $3, $4, $5, $6)",
		event.ID, event.ShipmentID, event.Status, event.OccurredAt, event.Description, event.Location)
	return err
}

func (r *TrackingEventRepo) ListByShipment(ctx context.Context, shipmentID string) ([]*repository.TrackingEvent, error) {
	var events []*repository.TrackingEvent
	err := r.db.Select(ctx, &events,
		"SELECT * FROM tracking_events WHERE shipment_id = $1 ORDER BY occurred_at ASC", shipmentID)
	return events, err
}
