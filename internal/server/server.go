//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/parcelbroker/shipdesk/internal/auth"
	"github.com/parcelbroker/shipdesk/internal/checkout"
	"github.com/parcelbroker/shipdesk/internal/config"
	"github.com/parcelbroker/shipdesk/internal/funds"
	"github.com/parcelbroker/shipdesk/internal/rates"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type CheckoutService interface {
	CreateShipment(ctx context.Context, req *checkout.Request) (checkout.Result, error)
}

type RateService interface {
	GetRates(ctx context.Context, q rates.Query) ([]rates.Quote, error)
}

type FundsService interface {
	Balance(ctx context.Context, userID string) (funds.Balance, error)
	AddFunds(ctx context.Context, userID string, cmd funds.AddFundsCommand) (funds.Credit, error)
}

type ShipmentStore interface {
	GetByID(ctx context.Context, userID, id string) (*repository.Shipment, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*repository.Shipment, error)
}

type TrackingStore interface {
	ListByShipment(ctx context.Context, shipmentID string) ([]*repository.TrackingEvent, error)
}

type NotificationStore interface {
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*repository.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxBodyBytes     = 1 << 20
)

type Deps struct {
	Checkout      CheckoutService
	Rates         RateService
	Funds         FundsService
	Shipments     ShipmentStore
	Tracking      TrackingStore
	Notifications NotificationStore
	Health        HealthChecker
	Verifier      *auth.Verifier
	Audit         *AuditManager
	Server        config.ServerConfig
	Metrics       config.MetricsConfig
	Logger        *zap.Logger
}

type Server struct {
	checkout      CheckoutService
	rates         RateService
	funds         FundsService
	shipments     ShipmentStore
	tracking      TrackingStore
	notifications NotificationStore
	health        HealthChecker
	verifier      *auth.Verifier
	audit         *AuditManager
	cfg           config.ServerConfig
	metricsCfg    config.MetricsConfig
	logger        *zap.Logger
	server        *http.Server
}

func New(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	verifier := deps.Verifier
	if verifier == nil {
		verifier = auth.NewVerifier("", "")
	}
	return &Server{
		checkout:      deps.Checkout,
		rates:         deps.Rates,
		funds:         deps.Funds,
		shipments:     deps.Shipments,
		tracking:      deps.Tracking,
		notifications: deps.Notifications,
		health:        deps.Health,
		verifier:      verifier,
		audit:         deps.Audit,
		cfg:           deps.Server,
		metricsCfg:    deps.Metrics,
		logger:        logger.With(zap.String("component", "http")),
	}
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.audit.Start()

	s.logger.Info("server starting", zap.String("port", s.cfg.Port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.logger.Info("http server shutdown completed")

	s.audit.Shutdown(ctx)
	return nil
}

// Handler builds the router with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.recoverMiddleware, auth.Middleware(s.verifier, s.logger), s.auditLogMiddleware)

	r.HandleFunc("/create-shipment", s.handleCreateShipment).Methods(http.MethodPost).Name("createShipment")
	r.HandleFunc("/rates", s.handleGetRates).Methods(http.MethodPost).Name("getRates")

	r.HandleFunc("/shipments", s.handleListShipments).Methods(http.MethodGet).Name("listShipments")
	r.HandleFunc("/shipments/{id}", s.handleGetShipment).Methods(http.MethodGet).Name("getShipment")

	r.HandleFunc("/account/balance", s.handleGetBalance).Methods(http.MethodGet).Name("getBalance")
	r.HandleFunc("/account/funds", s.handleAddFunds).Methods(http.MethodPost).Name("addFunds")

	r.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet).Name("listNotifications")
	r.HandleFunc("/notifications/{id}/read", s.handleMarkNotificationRead).Methods(http.MethodPost).Name("markNotificationRead")

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet).Name("health")
	r.Handle("/metrics", s.metricsAuthMiddleware(promhttp.Handler())).Methods(http.MethodGet).Name("metrics")

	return r
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic while handling request",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// metricsAuthMiddleware guards the scrape endpoint with basic auth when a
// username is configured. The password is checked against a bcrypt hash.
func (s *Server) metricsAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metricsCfg.Username == "" {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok || username != s.metricsCfg.Username ||
			bcrypt.CompareHashAndPassword([]byte(s.metricsCfg.PasswordHash), []byte(password)) != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.health.Ping(ctx); err != nil {
			s.logger.Warn("health check failed", zap.Error(err))
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// sessionUser returns the caller's user id or writes a 401.
func sessionUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return session.UserID, true
}

func listLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid value for 'limit' parameter")
	}
	if n > maxListLimit {
		n = maxListLimit
	}
	return n, nil
}
