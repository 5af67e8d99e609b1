package shippo

import "github.com/shopspring/decimal"

type Address struct {
	Name          string `json:"name,omitempty"`
	Street1       string `json:"street1"`
	Street2       string `json:"street2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Country       string `json:"country"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	IsResidential *bool  `json:"is_residential,omitempty"`
}

// Parcel dimensions are sent as strings, matching the aggregator's schema.
type Parcel struct {
	Length       string `json:"length"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	DistanceUnit string `json:"distance_unit"`
	Weight       string `json:"weight"`
	MassUnit     string `json:"mass_unit"`
}

type ShipmentRequest struct {
	AddressFrom Address  `json:"address_from"`
	AddressTo   Address  `json:"address_to"`
	Parcels     []Parcel `json:"parcels"`
	Async       bool     `json:"async"`
}

type ServiceLevel struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type Rate struct {
	ObjectID      string          `json:"object_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Provider      string          `json:"provider"`
	ServiceLevel  ServiceLevel    `json:"servicelevel"`
	EstimatedDays int             `json:"estimated_days"`
	DurationTerms string          `json:"duration_terms"`
}

type Message struct {
	Source string `json:"source"`
	Code   string `json:"code"`
	Text   string `json:"text"`
}

type ShipmentResponse struct {
	ObjectID string    `json:"object_id"`
	Status   string    `json:"status"`
	Rates    []Rate    `json:"rates"`
	Messages []Message `json:"messages"`
}

// RawResponse is an aggregator reply passed through without interpretation.
type RawResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports whether the aggregator answered with a 2xx status.
func (r *RawResponse) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}
