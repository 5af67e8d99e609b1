package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/parcelbroker/shipdesk/internal/auth"
)

// RequestIDHeader carries the id that keys the request's audit record.
const RequestIDHeader = "X-Request-Id"

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" || r.URL.Path == "/healthz" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		entry := AuditLogEntry{
			RequestID: requestID,
			Timestamp: start.UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r),
		}
		if session, ok := auth.SessionFromContext(r.Context()); ok {
			entry.UserID = session.UserID
		}
		if id, ok := mux.Vars(r)["id"]; ok && strings.HasPrefix(r.URL.Path, "/shipments/") {
			entry.ShipmentID = id
		}

		var requestBody *bodyRecorder
		if r.Body != nil && r.Body != http.NoBody && strings.Contains(r.Header.Get("Content-Type"), "json") {
			requestBody = newBodyRecorder(r.Body)
			r.Body = requestBody
		}

		wrw := newResponseWriterWrapper(w)
		next.ServeHTTP(wrw, r)

		if requestBody != nil {
			entry.Request = string(requestBody.Body())
		}
		entry.StatusCode = wrw.StatusCode()
		entry.DurationMs = time.Since(start).Milliseconds()
		entry.Response = string(wrw.Body())
		if entry.ShipmentID == "" && r.URL.Path == "/create-shipment" {
			entry.ShipmentID = shipmentIDFromResponse(wrw.Body())
		}

		s.audit.LogEntry(entry)
	})
}

// handlerName is the matched route's name, or "unknown" for unmatched paths.
func handlerName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if name := route.GetName(); name != "" {
			return name
		}
	}
	return "unknown"
}

func shipmentIDFromResponse(body []byte) string {
	var resp struct {
		ShipmentID string `json:"shipmentId"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return resp.ShipmentID
}
