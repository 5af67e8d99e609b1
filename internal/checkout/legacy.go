package checkout

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Legacy holds the informal top-level request fields the dashboard sends
// alongside the validated shipment. Values are kept raw and read through the
// coercion methods below, each of which falls back to a zero value.
type Legacy map[string]json.RawMessage

func (l Legacy) value(key string) (any, bool) {
	raw, ok := l[key]
	if !ok {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, v != nil
}

// String returns strings trimmed, numbers as written and booleans as true/false.
func (l Legacy) String(key string) string {
	v, _ := l.value(key)
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Bool accepts JSON booleans, the strings true/1/yes/on and non-zero numbers.
func (l Legacy) Bool(key string) bool {
	v, _ := l.value(key)
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "on":
			return true
		}
		return false
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return err == nil && !d.IsZero()
	default:
		return false
	}
}

// Decimal accepts numbers and numeric strings such as "$1,234.50".
func (l Legacy) Decimal(key string) decimal.Decimal {
	v, _ := l.value(key)
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
	default:
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int is Decimal truncated toward zero.
func (l Legacy) Int(key string) int {
	return int(l.Decimal(key).IntPart())
}
