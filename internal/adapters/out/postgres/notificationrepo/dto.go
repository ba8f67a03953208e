// Package notificationrepo provides persistence for the append-only
// notification records sent to shippers.
package notificationrepo

import (
	"time"

	"courier/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting
// notifications. Indexed by recipient for the inbox query.
type NotificationDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ShipperID  int64  `gorm:"index"`
	ShipmentID int64  `gorm:"index"`
	Title      string
	Message    string
	Type       string `gorm:"size:16"`
	IsRead     bool
	CreatedAt  time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         aggregate.ID(),
		ShipperID:  aggregate.ShipperID(),
		ShipmentID: aggregate.ShipmentID(),
		Title:      aggregate.Title(),
		Message:    aggregate.Message(),
		Type:       string(aggregate.NotificationType()),
		IsRead:     aggregate.IsRead(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	return notification.RestoreNotification(
		dto.ID,
		dto.ShipperID,
		dto.ShipmentID,
		dto.Title,
		dto.Message,
		notification.Type(dto.Type),
		dto.CreatedAt,
		dto.IsRead,
	)
}
