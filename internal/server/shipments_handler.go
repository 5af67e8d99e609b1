package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/metrics"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type shipmentView struct {
	ID             string              `json:"id"`
	FromAddressID  string              `json:"fromAddressId"`
	ToAddressID    string              `json:"toAddressId"`
	Carrier        string              `json:"carrier"`
	Service        string              `json:"service"`
	PackageType    string              `json:"packageType"`
	WeightOz       float64             `json:"weightOz"`
	Dimensions     string              `json:"dimensions"`
	TotalCost      float64             `json:"totalCost"`
	Currency       string              `json:"currency"`
	Status         string              `json:"status"`
	TrackingNumber string              `json:"trackingNumber"`
	RateID         *string             `json:"rateId"`
	CustomsValue   *float64            `json:"customsValue"`
	CreatedAt      time.Time           `json:"createdAt"`
	Events         []trackingEventView `json:"events,omitempty"`
}

type trackingEventView struct {
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
}

func newShipmentView(s *repository.Shipment) shipmentView {
	v := shipmentView{
		ID:             s.ID,
		FromAddressID:  s.FromAddressID,
		ToAddressID:    s.ToAddressID,
		Carrier:        s.Carrier,
		Service:        s.Service,
		PackageType:    s.PackageType,
		WeightOz:       s.WeightOz.InexactFloat64(),
		Dimensions:     s.Dimensions,
		TotalCost:      s.TotalCost.InexactFloat64(),
		Currency:       s.Currency,
		Status:         s.Status,
		TrackingNumber: s.TrackingNumber,
		RateID:         s.RateID,
		CreatedAt:      s.CreatedAt,
	}
	if s.CustomsValue.Valid {
		value := s.CustomsValue.Decimal.InexactFloat64()
		v.CustomsValue = &value
	}
	return v
}

func (s *Server) handleListShipments(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUser(w, r)
	if !ok {
		return
	}
	limit, err := listLimit(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	shipments, err := s.shipments.ListByUser(r.Context(), userID, limit)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_shipments").Inc()
		s.logger.Error("failed to list shipments", zap.String("user_id", userID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list shipments")
		return
	}

	views := make([]shipmentView, 0, len(shipments))
	for _, sh := range shipments {
		views = append(views, newShipmentView(sh))
	}
	respondJSON(w, http.StatusOK, map[string]any{"shipments": views})
}

func (s *Server) handleGetShipment(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "Missing shipment ID")
		return
	}

	shipment, err := s.shipments.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Shipment not found")
			return
		}
		metrics.OperationErrorsTotal.WithLabelValues("get_shipment").Inc()
		s.logger.Error("failed to get shipment", zap.String("shipment_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to get shipment")
		return
	}

	view := newShipmentView(shipment)
	events, err := s.tracking.ListByShipment(r.Context(), shipment.ID)
	if err != nil {
		s.logger.Warn("failed to load tracking events", zap.String("shipment_id", id), zap.Error(err))
	}
	for _, e := range events {
		view.Events = append(view.Events, trackingEventView{
			Status:      e.Status,
			OccurredAt:  e.OccurredAt,
			Description: e.Description,
			Location:    e.Location,
		})
	}
	respondJSON(w, http.StatusOK, view)
}
