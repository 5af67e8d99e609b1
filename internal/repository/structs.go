package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrObjectNotFound = errors.New("not found")

const (
	AddressTypeSender    = "sender"
	AddressTypeRecipient = "recipient"

	ShipmentStatusCreated = "created"

	TransactionTypeDebit   = "debit"
	TransactionTypeCredit  = "credit"
	TransactionCompleted   = "completed"
	TransactionProviderBal = "balance"
)

type Account struct {
	UserID    string          `db:"user_id"`
	Balance   decimal.Decimal `db:"balance"`
	Currency  string          `db:"currency"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Address struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Name          string    `db:"name"`
	Street1       string    `db:"street1"`
	Street2       string    `db:"street2"`
	City          string    `db:"city"`
	State         string    `db:"state"`
	PostalCode    string    `db:"postal_code"`
	Country       string    `db:"country"`
	Phone         string    `db:"phone"`
	Email         string    `db:"email"`
	IsResidential bool      `db:"is_residential"`
	AddressType   string    `db:"address_type"`
	IsSaved       bool      `db:"is_saved"`
	CreatedAt     time.Time `db:"created_at"`
}

type Rate struct {
	ID              string          `db:"id"`
	Carrier         string          `db:"carrier"`
	ServiceName     string          `db:"service_name"`
	PackageTypeName string          `db:"package_type_name"`
	RateAmount      decimal.Decimal `db:"rate_amount"`
	Currency        string          `db:"currency"`
	DeliveryDays    int             `db:"delivery_days"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Shipment struct {
	ID                  string              `db:"id"`
	UserID              string              `db:"user_id"`
	FromAddressID       string              `db:"from_address_id"`
	ToAddressID         string              `db:"to_address_id"`
	Carrier             string              `db:"carrier"`
	Service             string              `db:"service"`
	PackageType         string              `db:"package_type"`
	WeightOz            decimal.Decimal     `db:"weight_oz"`
	Dimensions          string              `db:"dimensions"`
	TotalCost           decimal.Decimal     `db:"total_cost"`
	Currency            string              `db:"currency"`
	Status              string              `db:"status"`
	TrackingNumber      string              `db:"tracking_number"`
	RateID              *string             `db:"rate_id"`
	CustomsContentsType string              `db:"customs_contents_type"`
	CustomsValue        decimal.NullDecimal `db:"customs_value"`
	NonMachinable       bool                `db:"non_machinable"`
	RequireSignature    bool                `db:"require_signature"`
	InsuranceType       string              `db:"insurance_type"`
	HasReturnLabel      bool                `db:"has_return_label"`
	CreatedAt           time.Time           `db:"created_at"`
}

type TrackingEvent struct {
	ID          string    `db:"id"`
	ShipmentID  string    `db:"shipment_id"`
	Status      string    `db:"status"`
	OccurredAt  time.Time `db:"occurred_at"`
	Description string    `db:"description"`
	Location    string    `db:"location"`
}

type CustomsDeclaration struct {
	ID           string          `db:"id"`
	ShipmentID   string          `db:"shipment_id"`
	ContentsType string          `db:"contents_type"`
	CustomsValue decimal.Decimal `db:"customs_value"`
	Currency     string          `db:"currency"`
	Description  string          `db:"description"`
}

type Transaction struct {
	ID                   string          `db:"id"`
	UserID               string          `db:"user_id"`
	ShipmentID           *string         `db:"shipment_id"`
	Amount               decimal.Decimal `db:"amount"`
	Currency             string          `db:"currency"`
	Type                 string          `db:"type"`
	Status               string          `db:"status"`
	Provider             string          `db:"provider"`
	TransactionReference string          `db:"transaction_reference"`
	CreatedAt            time.Time       `db:"created_at"`
}

type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}
