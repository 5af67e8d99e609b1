package checkout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnauthorized          = errors.New("checkout: unauthorized")
	ErrInvalidInput          = errors.New("checkout: invalid input")
	ErrAccountLookupFailed   = errors.New("checkout: account lookup failed")
	ErrInsufficientBalance   = errors.New("checkout: insufficient balance")
	ErrAddressPersistFailed  = errors.New("checkout: address persist failed")
	ErrShipmentPersistFailed = errors.New("checkout: shipment persist failed")
	ErrFundsDeductionFailed  = errors.New("checkout: funds deduction failed")
	ErrExternalProvider      = errors.New("checkout: external provider error")
)

// ValidationError lists field problems keyed by JSON path, e.g. "address_from.zip".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InsufficientBalanceError carries the amounts needed to prompt for a top-up.
type InsufficientBalanceError struct {
	Current  decimal.Decimal
	Required decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: have %s, need %s", ErrInsufficientBalance, e.Current.StringFixed(2), e.Required.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// ExternalProviderError carries the label API's reply so it can be relayed verbatim.
// Body is empty when the API could not be reached.
type ExternalProviderError struct {
	Status      int
	ContentType string
	Body        []byte
	Err         error
}

func (e *ExternalProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrExternalProvider, e.Err)
	}
	return fmt.Sprintf("%s: status %d", ErrExternalProvider, e.Status)
}

func (e *ExternalProviderError) Is(target error) bool {
	return target == ErrExternalProvider
}

func (e *ExternalProviderError) Unwrap() error {
	return e.Err
}
