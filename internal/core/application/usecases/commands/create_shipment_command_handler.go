package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Only shippers may create shipments; the new shipment starts in "pending"
// status with a freshly generated tracking number.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	// created carries the database id and the tracking number
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       services.AuthorizationGate
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
	}
}

// Handle processes the shipment creation command.
// Builds the aggregate in "pending" status and persists it, returning the
// stored shipment so callers can read the generated id and tracking number.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.gate.AuthorizeCreate(cmd.Actor()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	aggregate, err := shipment.NewShipment(
		cmd.Actor().ID,
		cmd.ShipmentType(),
		cmd.Pickup(),
		cmd.Delivery(),
		cmd.Province(),
		cmd.Description(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if !cmd.PackageDetails().IsZero() {
		aggregate.UpdatePackageDetails(cmd.PackageDetails(), cmd.Description(), now)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
