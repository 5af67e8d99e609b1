package postgresql

import (
	"context"

	"github.com/parcelbroker/shipdesk/internal/db"
	"github.com/parcelbroker/shipdesk/internal/repository"
)

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n *repository.Notification) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO notifications (id, user_id, title, message, type, is_read, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.IsRead, n.CreatedAt)
	return err
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*repository.Notification, error) {
	query := "SELECT * FROM notifications WHERE user_id = $1"
	args := []interface{}{userID}

	if unreadOnly {
		query += " AND is_read = FALSE"
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var notifications []*repository.Notification
	err := r.db.Select(ctx, &notifications, query, args...)
	return notifications, err
}

// MarkRead flags a notification owned by userID as read.
func (r *NotificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, "UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
