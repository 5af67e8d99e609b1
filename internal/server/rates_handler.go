package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/rates"
)

type ratesRequest struct {
	FromZip     string          `json:"fromZip"`
	ToZip       string          `json:"toZip"`
	Weight      decimal.Decimal `json:"weight"`
	PackageType string          `json:"packageType"`
	Dimensions  *struct {
		Length decimal.Decimal `json:"length"`
		Width  decimal.Decimal `json:"width"`
		Height decimal.Decimal `json:"height"`
	} `json:"dimensions,omitempty"`
}

type quoteView struct {
	ID            string  `json:"id"`
	Carrier       string  `json:"carrier"`
	Service       string  `json:"service"`
	ServiceToken  string  `json:"serviceToken"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	EstimatedDays int     `json:"estimatedDays"`
	DurationTerms string  `json:"durationTerms,omitempty"`
}

func (s *Server) handleGetRates(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionUser(w, r); !ok {
		return
	}

	var req ratesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q := rates.Query{
		FromZip:     req.FromZip,
		ToZip:       req.ToZip,
		Weight:      req.Weight,
		PackageType: req.PackageType,
	}
	if req.Dimensions != nil {
		q.Dimensions = &rates.Dimensions{Length: req.Dimensions.Length, Width: req.Dimensions.Width, Height: req.Dimensions.Height}
	}

	quotes, err := s.rates.GetRates(r.Context(), q)
	switch {
	case errors.Is(err, rates.ErrInvalidQuery):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, rates.ErrAggregatorUnavailable):
		respondError(w, http.StatusServiceUnavailable, "Rate service unavailable")
		return
	case err != nil:
		s.logger.Error("rate quote failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch rates")
		return
	}

	views := make([]quoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, quoteView{
			ID:            q.ID,
			Carrier:       q.Carrier,
			Service:       q.Service,
			ServiceToken:  q.ServiceToken,
			Amount:        q.Amount.InexactFloat64(),
			Currency:      q.Currency,
			EstimatedDays: q.EstimatedDays,
			DurationTerms: q.DurationTerms,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"rates": views})
}
