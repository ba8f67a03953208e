package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/services"
)

// UpdateShipmentCommandHandler handles shipment revisions outside the driver
// status flow. Authorization runs against the loaded shipment so ownership
// and lifecycle restrictions apply before anything is written.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       services.AuthorizationGate
}

// NewUpdateShipmentCommandHandler creates a handler for shipment update operations.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
	}
}

// Handle processes the shipment update command.
// Loads the shipment, checks the actor may edit it, applies the revision and
// persists the result in a single transaction.
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments := uow.ShipmentRepository()
	aggregate, err := shipments.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpUpdateShipment); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.UpdateRoute(cmd.Pickup(), cmd.Delivery(), cmd.ShipmentType(), now); err != nil {
		return err
	}
	aggregate.UpdatePackageDetails(cmd.PackageDetails(), cmd.Description(), now)

	if err = shipments.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
