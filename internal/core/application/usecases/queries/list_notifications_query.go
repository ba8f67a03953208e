package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves the actor's notifications, newest first.
// Shippers see their own notifications; admins see everyone's. Drivers have
// none: notifications are addressed to the shipper of a shipment.
type ListNotificationsQuery struct {
	actor      actor.Actor
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a query for the actor's notifications,
// optionally narrowed to unread ones.
func NewListNotificationsQuery(act actor.Actor, unreadOnly bool) (ListNotificationsQuery, error) {
	if err := act.Role.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		actor:      act,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListNotificationsQueryIsNotConstructed if validation fails.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// Actor returns the authenticated party listing notifications.
func (q ListNotificationsQuery) Actor() actor.Actor {
	return q.actor
}

// UnreadOnly reports whether read notifications are filtered out.
func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// NotificationRow is one row of the notification list read model.
type NotificationRow struct {
	ID         int64
	ShipperID  int64
	ShipmentID int64
	Title      string
	Message    string
	Type       string
	IsRead     bool
	CreatedAt  time.Time
}
