package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/metrics"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type notificationView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUser(w, r)
	if !ok {
		return
	}
	limit, err := listLimit(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	unreadOnly := r.URL.Query().Get("unread") == "true"

	items, err := s.notifications.ListByUser(r.Context(), userID, unreadOnly, limit)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_notifications").Inc()
		s.logger.Error("failed to list notifications", zap.String("user_id", userID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list notifications")
		return
	}

	views := make([]notificationView, 0, len(items))
	for _, n := range items {
		views = append(views, notificationView{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"notifications": views})
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	if err := s.notifications.MarkRead(r.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Notification not found")
			return
		}
		metrics.OperationErrorsTotal.WithLabelValues("mark_notification_read").Inc()
		s.logger.Error("failed to mark notification read", zap.String("notification_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
