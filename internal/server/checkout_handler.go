package server

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/auth"
	"github.com/parcelbroker/shipdesk/internal/checkout"
)

type checkoutResponse struct {
	Success        bool     `json:"success"`
	ShipmentID     string   `json:"shipmentId,omitempty"`
	TrackingNumber string   `json:"trackingNumber,omitempty"`
	Message        string   `json:"message,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

type checkoutErrorResponse struct {
	Success        bool              `json:"success"`
	Error          string            `json:"error"`
	Details        map[string]string `json:"details,omitempty"`
	CurrentBalance *float64          `json:"currentBalance,omitempty"`
	RequiredAmount *float64          `json:"requiredAmount,omitempty"`
}

// ShipmentIDHeader names the paid shipment even when the label API reply is
// relayed in place of the checkout response.
const ShipmentIDHeader = "X-Shipment-Id"

func (s *Server) handleCreateShipment(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SessionFromContext(r.Context()); !ok {
		respondCheckoutError(w, http.StatusUnauthorized, checkoutErrorResponse{Error: "Unauthorized"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondCheckoutError(w, http.StatusBadRequest, checkoutErrorResponse{Error: "Invalid request body"})
		return
	}

	req, err := checkout.ParseRequest(body)
	if err != nil {
		s.writeCheckoutError(w, err)
		return
	}

	result, err := s.checkout.CreateShipment(r.Context(), req)
	if result.ShipmentID != "" {
		w.Header().Set(ShipmentIDHeader, result.ShipmentID)
	}
	if err != nil {
		s.writeCheckoutError(w, err)
		return
	}

	if result.External != nil {
		writeRaw(w, result.External.StatusCode, result.External.ContentType, result.External.Body)
		return
	}

	resp := checkoutResponse{
		Success:        true,
		ShipmentID:     result.ShipmentID,
		TrackingNumber: result.TrackingNumber,
		Message:        "Shipment created successfully",
	}
	for _, f := range result.Failures() {
		resp.Warnings = append(resp.Warnings, f.Step+" was not recorded")
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) writeCheckoutError(w http.ResponseWriter, err error) {
	var (
		validationErr *checkout.ValidationError
		balanceErr    *checkout.InsufficientBalanceError
		externalErr   *checkout.ExternalProviderError
	)

	switch {
	case errors.As(err, &externalErr):
		if externalErr.Body == nil {
			respondCheckoutError(w, externalErr.Status, checkoutErrorResponse{Error: "Label provider unavailable"})
			return
		}
		writeRaw(w, externalErr.Status, externalErr.ContentType, externalErr.Body)
	case errors.As(err, &validationErr):
		respondCheckoutError(w, http.StatusBadRequest, checkoutErrorResponse{Error: "Invalid request", Details: validationErr.Fields})
	case errors.As(err, &balanceErr):
		current := balanceErr.Current.InexactFloat64()
		required := balanceErr.Required.InexactFloat64()
		respondCheckoutError(w, http.StatusBadRequest, checkoutErrorResponse{
			Error:          "Insufficient balance",
			CurrentBalance: &current,
			RequiredAmount: &required,
		})
	case errors.Is(err, checkout.ErrUnauthorized):
		respondCheckoutError(w, http.StatusUnauthorized, checkoutErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, checkout.ErrAccountLookupFailed):
		respondCheckoutError(w, http.StatusInternalServerError, checkoutErrorResponse{Error: "Failed to fetch account balance"})
	case errors.Is(err, checkout.ErrAddressPersistFailed):
		respondCheckoutError(w, http.StatusInternalServerError, checkoutErrorResponse{Error: "Failed to save address"})
	case errors.Is(err, checkout.ErrShipmentPersistFailed):
		respondCheckoutError(w, http.StatusInternalServerError, checkoutErrorResponse{Error: "Failed to create shipment"})
	case errors.Is(err, checkout.ErrFundsDeductionFailed):
		respondCheckoutError(w, http.StatusInternalServerError, checkoutErrorResponse{Error: "Failed to deduct funds from account"})
	default:
		s.logger.Error("unexpected checkout error", zap.Error(err))
		respondCheckoutError(w, http.StatusInternalServerError, checkoutErrorResponse{Error: "Internal server error"})
	}
}

func respondCheckoutError(w http.ResponseWriter, status int, resp checkoutErrorResponse) {
	resp.Success = false
	respondJSON(w, status, resp)
}

// writeRaw relays an upstream reply without re-encoding it.
func writeRaw(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
