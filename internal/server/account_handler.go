package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/funds"
	"github.com/parcelbroker/shipdesk/internal/payments"
)

type balanceResponse struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type addFundsResponse struct {
	Success  bool     `json:"success"`
	Credited float64  `json:"credited"`
	Balance  *float64 `json:"balance,omitempty"`
	Currency string   `json:"currency"`
}

func (s *Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUser(w, r)
	if !ok {
		return
	}

	balance, err := s.funds.Balance(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to get balance", zap.String("user_id", userID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch account balance")
		return
	}
	respondJSON(w, http.StatusOK, balanceResponse{Balance: balance.Amount.InexactFloat64(), Currency: balance.Currency})
}

func (s *Server) handleAddFunds(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req struct {
		Amount           decimal.Decimal `json:"amount"`
		Provider         string          `json:"provider"`
		PaymentReference string          `json:"paymentReference"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	credit, err := s.funds.AddFunds(r.Context(), userID, funds.AddFundsCommand{
		Amount:           req.Amount,
		Provider:         req.Provider,
		PaymentReference: req.PaymentReference,
	})
	switch {
	case err == nil:
	case errors.Is(err, funds.ErrInvalidInput), errors.Is(err, payments.ErrUnsupportedProvider):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, funds.ErrPaymentFailed):
		respondError(w, http.StatusPaymentRequired, "Payment was not completed")
		return
	default:
		s.logger.Error("failed to add funds", zap.String("user_id", userID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to add funds")
		return
	}

	resp := addFundsResponse{
		Success:  true,
		Credited: credit.Amount.InexactFloat64(),
		Currency: credit.Currency,
	}
	if credit.Balance.Valid {
		balance := credit.Balance.Decimal.InexactFloat64()
		resp.Balance = &balance
	}
	respondJSON(w, http.StatusOK, resp)
}
