package services

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"
)

// ErrForbidden is the unwrap target for ForbiddenError.
var ErrForbidden = errors.New("forbidden")

// ForbiddenError reports that the actor lacks the role or ownership a
// requested operation demands. The message deliberately carries no internal
// detail beyond the operation name.
type ForbiddenError struct {
	Operation Operation
	Role      actor.Role
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: role %q may not perform %q", e.Role, e.Operation)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// Operation names a mutation or read the gate rules on.
type Operation string

const (
	// OpCreateShipment creates a new shipment (shipper only).
	OpCreateShipment Operation = "create_shipment"

	// OpViewShipment reads a single shipment.
	OpViewShipment Operation = "view_shipment"

	// OpUpdateShipment edits shipment fields outside the driver status flow.
	OpUpdateShipment Operation = "update_shipment"

	// OpQuoteShipment attaches a quote amount (admin only).
	OpQuoteShipment Operation = "quote_shipment"

	// OpApproveShipment approves a quote, optionally assigning a driver (admin only).
	OpApproveShipment Operation = "approve_shipment"

	// OpCancelShipment cancels a non-terminal shipment (admin only).
	OpCancelShipment Operation = "cancel_shipment"

	// OpAcceptJob claims an open job (driver only).
	OpAcceptJob Operation = "accept_job"

	// OpUpdateJobStatus advances the delivery status (owning driver only).
	OpUpdateJobStatus Operation = "update_job_status"

	// OpViewInvoice retrieves or generates the shipment invoice.
	OpViewInvoice Operation = "view_invoice"

	// OpMarkInvoicePaid settles the shipment invoice (admin only).
	OpMarkInvoicePaid Operation = "mark_invoice_paid"

	// OpMarkNotificationRead flips a notification's read flag (recipient only).
	// Checked by the notification handler, not by Authorize, because the
	// subject is a notification rather than a shipment.
	OpMarkNotificationRead Operation = "mark_notification_read"
)

// AuthorizationGate decides whether an actor may perform an operation on a
// shipment. It runs before the lifecycle state machine: a rejection here
// means no state is read beyond the ownership fields and nothing is written.
//
// The gate fails rather than coerces: an actor that cannot see a shipment
// gets a ForbiddenError, never a silently narrowed result.
type AuthorizationGate struct{}

// NewAuthorizationGate creates the gate. It is stateless; the zero value is
// equally usable.
func NewAuthorizationGate() AuthorizationGate {
	return AuthorizationGate{}
}

// AuthorizeCreate checks that the actor may create shipments. The shipper id
// on the new shipment is always taken from the actor, never from input.
func (g AuthorizationGate) AuthorizeCreate(a actor.Actor) error {
	if !a.IsShipper() {
		return &ForbiddenError{Operation: OpCreateShipment, Role: a.Role}
	}
	return nil
}

// Authorize checks the actor against an operation on an existing shipment.
func (g AuthorizationGate) Authorize(a actor.Actor, s *shipment.Shipment, op Operation) error {
	if err := s.Validate(); err != nil {
		return err
	}

	allowed := false
	switch op {
	case OpViewShipment:
		allowed = g.canView(a, s)

	case OpUpdateShipment:
		switch {
		case a.IsAdmin():
			allowed = true
		case a.IsShipper():
			// Shippers may edit only their own shipment and only before it
			// enters the quoting flow.
			allowed = s.IsOwnedByShipper(a.ID) && s.Status() == shipment.StatusPending
		}

	case OpQuoteShipment, OpApproveShipment, OpCancelShipment, OpMarkInvoicePaid:
		allowed = a.IsAdmin()

	case OpAcceptJob:
		allowed = a.IsDriver() && (s.IsOpenJob() || s.IsOwnedByDriver(a.ID))

	case OpUpdateJobStatus:
		allowed = a.IsDriver() && s.IsOwnedByDriver(a.ID)

	case OpViewInvoice:
		allowed = a.IsAdmin() || (a.IsShipper() && s.IsOwnedByShipper(a.ID))
	}

	if !allowed {
		return &ForbiddenError{Operation: op, Role: a.Role}
	}
	return nil
}

func (g AuthorizationGate) canView(a actor.Actor, s *shipment.Shipment) bool {
	switch {
	case a.IsAdmin():
		return true
	case a.IsShipper():
		return s.IsOwnedByShipper(a.ID)
	case a.IsDriver():
		// Drivers see their own assignments plus the open-job pool.
		return s.IsOwnedByDriver(a.ID) || s.IsOpenJob()
	default:
		return false
	}
}
