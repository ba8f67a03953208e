package ports

import (
	"context"

	"courier/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the append-only
// notification records. There is no delete: notifications are kept forever.
type NotificationRepository interface {
	// Add persists a new notification and attaches the generated identifier.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its identifier.
	Get(ctx context.Context, id int64) (*notification.Notification, error)

	// Update persists the read flag, the only mutable field.
	Update(ctx context.Context, aggregate *notification.Notification) error
}
