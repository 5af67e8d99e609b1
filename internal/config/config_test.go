package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, "https://api.goshippo.com", cfg.Shippo.BaseURL)
	assert.False(t, cfg.Shippo.RatesAvailable())
	assert.False(t, cfg.Shippo.LabelForwardingAvailable())
	assert.False(t, cfg.Payments.PayPal.Available())
	assert.Equal(t, "audit_logs", cfg.Kafka.AuditTopic)
	assert.Equal(t, "USD", cfg.Checkout.Currency)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"HTTP_PORT":             "8081",
		"HTTP_WRITE_TIMEOUT":    "45s",
		"DB_HOST":               "db",
		"DB_PORT":               "6432",
		"POSTGRES_USER":         "shipdesk",
		"POSTGRES_PASSWORD":     "secret",
		"POSTGRES_DB":           "shipdesk",
		"SHIPPO_API_KEY":        "shippo_test_key",
		"SHIPPO_ENABLED":        "true",
		"SHIPPO_LABELS_ENABLED": "1",
		"SHIPPO_BASE_URL":       "http://shippo.local/",
		"PAYPAL_ENABLED":        "true",
		"PAYPAL_CLIENT_ID":      "client",
		"PAYPAL_CLIENT_SECRET":  "secret",
		"KAFKA_ENABLED":         "true",
		"KAFKA_BROKERS":         "kafka-1:9092, kafka-2:9092,",
		"CHECKOUT_CURRENCY":     "cad",
		"LOG_LEVEL":             "DEBUG",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "host=db port=6432 user=shipdesk password=secret dbname=shipdesk sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Shippo.RatesAvailable())
	assert.True(t, cfg.Shippo.LabelForwardingAvailable())
	assert.Equal(t, "http://shippo.local", cfg.Shippo.BaseURL)
	assert.True(t, cfg.Payments.PayPal.Available())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "CAD", cfg.Checkout.Currency)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromLookup_LabelsNeedAPIKey(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"SHIPPO_LABELS_ENABLED": "true",
	}))
	require.NoError(t, err)
	assert.False(t, cfg.Shippo.LabelForwardingAvailable())
}

func TestFromLookup_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		errMsg string
	}{
		{
			name:   "invalid port",
			values: map[string]string{"DB_PORT": "five"},
			errMsg: "DB_PORT: invalid integer",
		},
		{
			name:   "invalid bool",
			values: map[string]string{"SHIPPO_ENABLED": "maybe"},
			errMsg: "SHIPPO_ENABLED: invalid boolean",
		},
		{
			name:   "invalid duration",
			values: map[string]string{"SHIPPO_TIMEOUT": "-3s"},
			errMsg: "SHIPPO_TIMEOUT: invalid duration",
		},
		{
			name:   "kafka without brokers",
			values: map[string]string{"KAFKA_ENABLED": "true"},
			errMsg: "KAFKA_BROKERS is required",
		},
		{
			name:   "paypal without credentials",
			values: map[string]string{"PAYPAL_ENABLED": "true", "PAYPAL_CLIENT_ID": "id"},
			errMsg: "PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET are required",
		},
		{
			name:   "bad currency",
			values: map[string]string{"CHECKOUT_CURRENCY": "dollars"},
			errMsg: "CHECKOUT_CURRENCY must be a 3-letter code",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tc.values))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
