package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/parcelbroker/shipdesk/internal/auth"
	"github.com/parcelbroker/shipdesk/internal/checkout"
	"github.com/parcelbroker/shipdesk/internal/config"
	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/funds"
	"github.com/parcelbroker/shipdesk/internal/kafka"
	"github.com/parcelbroker/shipdesk/internal/logger"
	"github.com/parcelbroker/shipdesk/internal/payments"
	"github.com/parcelbroker/shipdesk/internal/rates"
	"github.com/parcelbroker/shipdesk/internal/repository/postgresql"
	"github.com/parcelbroker/shipdesk/internal/server"
	"github.com/parcelbroker/shipdesk/internal/shippo"
)

const (
	auditWorkers      = 2
	auditBatchSize    = 5
	auditBatchTimeout = 500 * time.Millisecond
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	defer database.Close()

	accounts := postgresql.NewAccountRepo(database)
	addresses := postgresql.NewAddressRepo(database)
	rateRepo := postgresql.NewRateRepo(database)
	shipments := postgresql.NewShipmentRepo(database)
	trackingEvents := postgresql.NewTrackingEventRepo(database)
	customs := postgresql.NewCustomsDeclarationRepo(database)
	transactions := postgresql.NewTransactionRepo(database)
	notifications := postgresql.NewNotificationRepo(database)

	shippoClient := shippo.NewClient(cfg.Shippo)
	var aggregator rates.Aggregator
	if cfg.Shippo.RatesAvailable() {
		aggregator = shippoClient
	} else {
		log.Warn("rate aggregator disabled, quotes will be unavailable")
	}
	var forwarder checkout.LabelForwarder
	if cfg.Shippo.LabelForwardingAvailable() {
		forwarder = shippoClient
		log.Info("label forwarding enabled")
	}

	paymentManager, err := newPaymentManager(cfg.Payments, log)
	if err != nil {
		return err
	}

	fundsService, err := funds.NewService(funds.Deps{
		DB:            database,
		Accounts:      accounts,
		Transactions:  transactions,
		Notifications: notifications,
		Payments:      paymentManager,
		Currency:      cfg.Checkout.Currency,
		Logger:        log,
	})
	if err != nil {
		return err
	}

	checkoutService, err := checkout.NewService(checkout.Deps{
		Accounts:       accounts,
		Addresses:      addresses,
		Rates:          rateRepo,
		Shipments:      shipments,
		TrackingEvents: trackingEvents,
		Customs:        customs,
		Transactions:   transactions,
		Notifications:  notifications,
		Forwarder:      forwarder,
		Currency:       cfg.Checkout.Currency,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	var producer kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewWriterProducer(cfg.Kafka.Brokers, log)
	} else {
		producer = kafka.NewLogProducer(log)
	}
	publisher := kafka.NewPublisher(producer, cfg.Kafka.AuditTopic, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("failed to close audit producer", zap.Error(err))
		}
	}()

	srv := server.New(server.Deps{
		Checkout:      checkoutService,
		Rates:         rates.NewService(aggregator, log),
		Funds:         fundsService,
		Shipments:     shipments,
		Tracking:      trackingEvents,
		Notifications: notifications,
		Health:        database,
		Verifier:      auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience),
		Audit:         server.NewAuditManager(publisher, log, auditWorkers, auditBatchSize, auditBatchTimeout),
		Server:        cfg.Server,
		Metrics:       cfg.Metrics,
		Logger:        log,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newPaymentManager(cfg config.PaymentsConfig, log *zap.Logger) (*payments.Manager, error) {
	var providers []payments.Provider

	if cfg.PayPal.Available() {
		paypal, err := payments.NewPayPalProvider(cfg.PayPal, &http.Client{Timeout: 30 * time.Second})
		if err != nil {
			return nil, fmt.Errorf("paypal provider: %w", err)
		}
		providers = append(providers, paypal)
	}
	if cfg.Stripe.APIKey != "" {
		stripe, err := payments.NewStripeProvider(cfg.Stripe.APIKey)
		if err != nil {
			return nil, fmt.Errorf("stripe provider: %w", err)
		}
		providers = append(providers, stripe)
	}

	manager, err := payments.NewManager(providers...)
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		log.Warn("no payment providers configured, add funds will be rejected")
	} else {
		log.Info("payment providers configured", zap.Strings("providers", manager.Providers()))
	}
	return manager, nil
}
