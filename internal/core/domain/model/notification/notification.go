// Package notification provides the append-only event records sent to
// shippers when their shipments change. Notifications are created exactly
// once per qualifying event and are never updated afterwards, except for the
// recipient flipping the read flag.
package notification

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created via a package constructor.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via a notification constructor",
)

// Type classifies a notification for presentation purposes.
type Type string

const (
	// TypeQuote announces that an admin quoted the shipment.
	TypeQuote Type = "quote"

	// TypeAssignment announces a driver assignment outside the status flow.
	TypeAssignment Type = "assignment"

	// TypeStatusUpdate announces a lifecycle status change.
	TypeStatusUpdate Type = "status_update"

	// TypePackageInfo announces that the driver revised the package details.
	TypePackageInfo Type = "package_info"
)

// Validate checks the notification type value.
func (t Type) Validate() error {
	switch t {
	case TypeQuote, TypeAssignment, TypeStatusUpdate, TypePackageInfo:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"notification type",
			fmt.Errorf("%q is not a valid notification type", string(t)),
		)
	}
}

// statusMessage is one row of the fixed title/message table keyed by the
// target status of a transition.
type statusMessage struct {
	title   string
	message string
}

// statusMessages maps each announced target status to its fixed wording.
// Statuses absent from the table fall back to a generic status update.
var statusMessages = map[shipment.Status]statusMessage{
	shipment.StatusAssigned: {
		title:   "Driver Assigned",
		message: "A driver has been assigned to your shipment and will pick it up soon.",
	},
	shipment.StatusPickedUp: {
		title:   "Shipment Picked Up",
		message: "Your shipment has been picked up and is being prepared for delivery.",
	},
	shipment.StatusInTransit: {
		title:   "Out For Delivery",
		message: "Your shipment is out for delivery and on its way to the destination.",
	},
	shipment.StatusDelivered: {
		title:   "Shipment Delivered",
		message: "Your shipment has been delivered. Thank you for shipping with us.",
	},
	shipment.StatusCancelled: {
		title:   "Shipment Cancelled",
		message: "Your shipment has been cancelled. Contact support if this is unexpected.",
	},
}

// Notification is an append-only record addressed to the shipper of a
// shipment. Only isRead is mutable, and only by the recipient.
type Notification struct {
	id         int64
	shipperID  int64
	shipmentID int64
	title      string
	message    string
	ntype      Type
	createdAt  time.Time
	isRead     bool

	isConstructed bool
}

// NewStatusNotification composes the notification for a lifecycle transition
// into target, using the fixed title/message table. Unlisted statuses get a
// generic fallback so every successful transition produces a record.
func NewStatusNotification(
	shipperID, shipmentID int64,
	target shipment.Status,
	now time.Time,
) (*Notification, error) {
	msg, ok := statusMessages[target]
	if !ok {
		msg = statusMessage{
			title:   "Shipment Updated",
			message: fmt.Sprintf("Your shipment status changed to %s.", target),
		}
	}
	return newNotification(shipperID, shipmentID, msg.title, msg.message, TypeStatusUpdate, now)
}

// NewQuoteNotification composes the notification announcing an admin quote.
func NewQuoteNotification(
	shipperID, shipmentID int64,
	amount float64,
	now time.Time,
) (*Notification, error) {
	return newNotification(
		shipperID,
		shipmentID,
		"Shipment Quoted",
		fmt.Sprintf("Your shipment has been quoted at $%.2f. It will be scheduled once approved.", amount),
		TypeQuote,
		now,
	)
}

// NewPackageInfoNotification composes the notification fired when the driver
// revises the package details bundled with a status update.
func NewPackageInfoNotification(
	shipperID, shipmentID int64,
	now time.Time,
) (*Notification, error) {
	return newNotification(
		shipperID,
		shipmentID,
		"Package Details Updated",
		"The driver updated the recorded package details for your shipment.",
		TypePackageInfo,
		now,
	)
}

func newNotification(
	shipperID, shipmentID int64,
	title, message string,
	ntype Type,
	now time.Time,
) (*Notification, error) {
	if shipperID <= 0 {
		return nil, errs.NewValueIsRequiredError("shipper id")
	}
	if shipmentID <= 0 {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if err := ntype.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		shipperID:     shipperID,
		shipmentID:    shipmentID,
		title:         title,
		message:       message,
		ntype:         ntype,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persisted state.
func RestoreNotification(
	id, shipperID, shipmentID int64,
	title, message string,
	ntype Type,
	createdAt time.Time,
	isRead bool,
) (*Notification, error) {
	if err := ntype.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		shipperID:     shipperID,
		shipmentID:    shipmentID,
		title:         title,
		message:       message,
		ntype:         ntype,
		createdAt:     createdAt,
		isRead:        isRead,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was created via a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// AttachID records the identifier assigned by the persistence layer.
func (n *Notification) AttachID(id int64) error {
	if n.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("notification id",
			fmt.Errorf("notification already has id %d", n.id))
	}
	n.id = id
	return nil
}

// MarkRead flips the read flag. Whether the caller is the recipient is the
// authorization gate's decision.
func (n *Notification) MarkRead() {
	n.isRead = true
}

// ID returns the persistence identifier, zero until stored.
func (n *Notification) ID() int64 { return n.id }

// ShipperID returns the recipient's identifier.
func (n *Notification) ShipperID() int64 { return n.shipperID }

// ShipmentID returns the subject shipment's identifier.
func (n *Notification) ShipmentID() int64 { return n.shipmentID }

// Title returns the notification headline.
func (n *Notification) Title() string { return n.title }

// Message returns the notification body.
func (n *Notification) Message() string { return n.message }

// NotificationType returns the presentation classification.
func (n *Notification) NotificationType() Type { return n.ntype }

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// IsRead reports whether the recipient has read the notification.
func (n *Notification) IsRead() bool { return n.isRead }
