package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListNotificationsQueryHandler retrieves notification lists from the database.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for notification queries.
// Requires a GORM database connection for query execution.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the query and returns the visible notifications, newest
// first. Non-admin actors are always scoped to their own recipient id, which
// for drivers means an empty list.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			shipper_id,
			shipment_id,
			title,
			message,
			type,
			is_read,
			created_at
		FROM notifications
		WHERE 1 = 1
	`
	args := make([]any, 0, 2)

	if !query.Actor().IsAdmin() {
		sql += " AND shipper_id = ?"
		args = append(args, query.Actor().ID)
	}
	if query.UnreadOnly() {
		sql += " AND is_read = FALSE"
	}

	sql += " ORDER BY created_at DESC"

	notifications := make([]NotificationRow, 0)
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&notifications).Error; err != nil {
		return nil, err
	}

	return notifications, nil
}
