package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Measure is a positive parcel quantity sent either as a JSON number or a
// numeric string. Unparseable values decode to zero and fail validation.
type Measure struct {
	decimal.Decimal
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	s := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if s != "" && s != "null" {
		if parsed, err := decimal.NewFromString(s); err == nil {
			d = parsed
		}
	}
	m.Decimal = d
	return nil
}

type Address struct {
	Name    string `json:"name,omitempty"`
	Street1 string `json:"street1" validate:"required"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

func (a *Address) trim() {
	for _, f := range []*string{&a.Name, &a.Street1, &a.Street2, &a.City, &a.State, &a.Zip, &a.Country, &a.Phone, &a.Email} {
		*f = strings.TrimSpace(*f)
	}
}

type Parcel struct {
	Length       Measure `json:"length" validate:"gt=0"`
	Width        Measure `json:"width" validate:"gt=0"`
	Height       Measure `json:"height" validate:"gt=0"`
	DistanceUnit string  `json:"distance_unit" validate:"required,oneof=in cm"`
	Weight       Measure `json:"weight" validate:"gt=0"`
	MassUnit     string  `json:"mass_unit" validate:"required,oneof=lb oz g kg"`
}

// Request is a shipment checkout. The strict fields are validated; every other
// top-level key lands in Legacy.
type Request struct {
	AddressFrom       Address `json:"address_from"`
	AddressTo         Address `json:"address_to"`
	Parcel            Parcel  `json:"parcel"`
	ServiceLevelToken string  `json:"servicelevel_token" validate:"required"`
	CarrierAccount    string  `json:"carrier_account,omitempty"`

	Legacy Legacy `json:"-"`

	raw []byte
}

var strictKeys = map[string]struct{}{
	"address_from":       {},
	"address_to":         {},
	"parcel":             {},
	"servicelevel_token": {},
	"carrier_account":    {},
}

// ParseRequest decodes a checkout body. It fails only when the body is not a
// JSON object or a strict field has the wrong JSON type; use Validate for the rest.
func ParseRequest(body []byte) (*Request, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil || top == nil {
		return nil, &ValidationError{Fields: map[string]string{"body": "must be a JSON object"}}
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &ValidationError{Fields: map[string]string{typeErr.Field: "has the wrong type"}}
		}
		return nil, &ValidationError{Fields: map[string]string{"body": "is malformed"}}
	}

	req.Legacy = make(Legacy, len(top))
	for k, v := range top {
		if _, strict := strictKeys[k]; !strict {
			req.Legacy[k] = v
		}
	}
	req.AddressFrom.trim()
	req.AddressTo.trim()
	req.Parcel.DistanceUnit = strings.ToLower(strings.TrimSpace(req.Parcel.DistanceUnit))
	req.Parcel.MassUnit = strings.ToLower(strings.TrimSpace(req.Parcel.MassUnit))
	req.ServiceLevelToken = strings.TrimSpace(req.ServiceLevelToken)
	req.CarrierAccount = strings.TrimSpace(req.CarrierAccount)
	req.raw = append([]byte(nil), body...)

	return &req, nil
}

// Raw returns the body the request was parsed from.
func (r *Request) Raw() []byte {
	return r.raw
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if m, ok := field.Interface().(Measure); ok {
				return m.InexactFloat64()
			}
			return nil
		}, Measure{})
		validate = v
	})
	return validate
}

// Validate checks the strict part of the request and returns a *ValidationError
// describing every failing field.
func (r *Request) Validate() error {
	err := requestValidator().Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: map[string]string{"body": err.Error()}}
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		out.Fields[path] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
