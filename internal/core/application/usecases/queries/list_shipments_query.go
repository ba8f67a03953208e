// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models scoped to what the requesting actor
// is allowed to see.
package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves the shipments visible to the actor, newest
// first. Admins see everything, shippers see their own shipments, drivers see
// their assignments plus the open-job pool.
//
// Example:
//
//	query, err := NewListShipmentsQuery(driverActor, nil)
//	if err != nil {
//	    return err
//	}
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
type ListShipmentsQuery struct {
	actor  actor.Actor
	status *shipment.Status

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query for the actor's visible shipments,
// optionally narrowed to a single status.
func NewListShipmentsQuery(act actor.Actor, status *shipment.Status) (ListShipmentsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	if err := act.Role.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		actor:  act,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Actor returns the authenticated party listing shipments.
func (q ListShipmentsQuery) Actor() actor.Actor {
	return q.actor
}

// Status returns the optional status filter, nil for all statuses.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// ShipmentSummary is one row of the shipment list read model.
type ShipmentSummary struct {
	ID             int64
	TrackingNumber string
	ShipperID      int64
	DriverID       *int64
	Status         string
	ShipmentType   string
	PickupCity     string
	DeliveryCity   string
	Province       string
	QuoteAmount    *float64
	PaymentStatus  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
