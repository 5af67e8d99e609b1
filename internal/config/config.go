package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "9000"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultShutdownTimeout = 30 * time.Second
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 10
	defaultShippoBaseURL   = "https://api.goshippo.com"
	defaultShippoTimeout   = 20 * time.Second
	defaultPayPalBaseURL   = "https://api-m.sandbox.paypal.com"
	defaultKafkaTopic      = "audit_logs"
	defaultKafkaGroup      = "audit-log-consumer-group"
	defaultLogLevel        = "info"
	defaultCurrency        = "USD"
)

// Config captures all runtime configuration organised by concern.
// It is built once at process start and passed down explicitly.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Shippo   ShippoConfig
	Payments PaymentsConfig
	Kafka    KafkaConfig
	Metrics  MetricsConfig
	Checkout CheckoutConfig
	LogLevel string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds the relational store connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// DSN renders the keyword/value connection string understood by pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// AuthConfig holds the hosted identity provider token settings.
type AuthConfig struct {
	JWTSecret string
	Audience  string
}

// ShippoConfig configures the rate aggregator and the optional label forwarding.
type ShippoConfig struct {
	APIKey        string
	BaseURL       string
	Enabled       bool
	LabelsEnabled bool
	Timeout       time.Duration
}

// RatesAvailable reports whether rate quotes can be requested.
func (c ShippoConfig) RatesAvailable() bool {
	return c.Enabled && c.APIKey != ""
}

// LabelForwardingAvailable reports whether checkout should forward payloads to the label API.
func (c ShippoConfig) LabelForwardingAvailable() bool {
	return c.LabelsEnabled && c.APIKey != ""
}

// PaymentsConfig collects credentials for payment providers.
type PaymentsConfig struct {
	PayPal PayPalConfig
	Stripe StripeConfig
}

// PayPalConfig configures wallet payments.
type PayPalConfig struct {
	Enabled      bool
	ClientID     string
	ClientSecret string
	BaseURL      string
}

// Available reports whether PayPal can be used.
func (c PayPalConfig) Available() bool {
	return c.Enabled && c.ClientID != "" && c.ClientSecret != ""
}

// StripeConfig configures card payments.
type StripeConfig struct {
	APIKey string
}

// KafkaConfig configures the audit stream.
type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	AuditTopic    string
	ConsumerGroup string
}

// MetricsConfig protects the Prometheus endpoint.
type MetricsConfig struct {
	Username     string
	PasswordHash string
}

// CheckoutConfig holds checkout defaults.
type CheckoutConfig struct {
	Currency string
}

// Load reads the environment (optionally seeded from a .env file) into Config.
func Load() (Config, error) {
	loadEnv()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds Config from the given lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	r := reader{lookup: lookup}

	cfg := Config{
		Server: ServerConfig{
			Port:            r.getString("HTTP_PORT", defaultPort),
			ReadTimeout:     r.getDuration("HTTP_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    r.getDuration("HTTP_WRITE_TIMEOUT", defaultWriteTimeout),
			ShutdownTimeout: r.getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Database: DatabaseConfig{
			Host:     r.getString("DB_HOST", defaultDBHost),
			Port:     r.getInt("DB_PORT", defaultDBPort),
			User:     r.getString("POSTGRES_USER", ""),
			Password: r.getString("POSTGRES_PASSWORD", ""),
			Name:     r.getString("POSTGRES_DB", ""),
			SSLMode:  r.getString("DB_SSLMODE", defaultDBSSLMode),
			MaxConns: int32(r.getInt("DB_MAX_CONNS", defaultDBMaxConns)),
		},
		Auth: AuthConfig{
			JWTSecret: r.getString("AUTH_JWT_SECRET", ""),
			Audience:  r.getString("AUTH_AUDIENCE", ""),
		},
		Shippo: ShippoConfig{
			APIKey:        r.getString("SHIPPO_API_KEY", ""),
			BaseURL:       strings.TrimRight(r.getString("SHIPPO_BASE_URL", defaultShippoBaseURL), "/"),
			Enabled:       r.getBool("SHIPPO_ENABLED", false),
			LabelsEnabled: r.getBool("SHIPPO_LABELS_ENABLED", false),
			Timeout:       r.getDuration("SHIPPO_TIMEOUT", defaultShippoTimeout),
		},
		Payments: PaymentsConfig{
			PayPal: PayPalConfig{
				Enabled:      r.getBool("PAYPAL_ENABLED", false),
				ClientID:     r.getString("PAYPAL_CLIENT_ID", ""),
				ClientSecret: r.getString("PAYPAL_CLIENT_SECRET", ""),
				BaseURL:      strings.TrimRight(r.getString("PAYPAL_BASE_URL", defaultPayPalBaseURL), "/"),
			},
			Stripe: StripeConfig{
				APIKey: r.getString("STRIPE_API_KEY", ""),
			},
		},
		Kafka: KafkaConfig{
			Enabled:       r.getBool("KAFKA_ENABLED", false),
			Brokers:       r.getList("KAFKA_BROKERS"),
			AuditTopic:    r.getString("KAFKA_AUDIT_TOPIC", defaultKafkaTopic),
			ConsumerGroup: r.getString("KAFKA_CONSUMER_GROUP", defaultKafkaGroup),
		},
		Metrics: MetricsConfig{
			Username:     r.getString("METRICS_USERNAME", ""),
			PasswordHash: r.getString("METRICS_PASSWORD_HASH", ""),
		},
		Checkout: CheckoutConfig{
			Currency: strings.ToUpper(r.getString("CHECKOUT_CURRENCY", defaultCurrency)),
		},
		LogLevel: strings.ToLower(r.getString("LOG_LEVEL", defaultLogLevel)),
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Database.Port <= 0 {
		errs = append(errs, errors.New("DB_PORT must be positive"))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be positive"))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is set"))
	}
	if c.Payments.PayPal.Enabled && (c.Payments.PayPal.ClientID == "" || c.Payments.PayPal.ClientSecret == "") {
		errs = append(errs, errors.New("PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET are required when PAYPAL_ENABLED is set"))
	}
	if len(c.Checkout.Currency) != 3 {
		errs = append(errs, fmt.Errorf("CHECKOUT_CURRENCY must be a 3-letter code, got %q", c.Checkout.Currency))
	}
	return errors.Join(errs...)
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) raw(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (r *reader) getString(key, def string) string {
	if v, ok := r.raw(key); ok {
		return v
	}
	return def
}

func (r *reader) getInt(key string, def int) int {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return def
	}
	return n
}

func (r *reader) getBool(key string, def bool) bool {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid boolean %q", key, v))
		return def
	}
	return b
}

func (r *reader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return def
	}
	return d
}

func (r *reader) getList(key string) []string {
	v, ok := r.raw(key)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadEnv seeds the process environment from the first .env found near the
// working directory. Real environment values always win.
func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	candidates := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}
	for _, path := range candidates {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
