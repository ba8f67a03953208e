package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"

	"go.uber.org/zap"
)

// CancelShipmentCommandHandler handles cancellation of non-terminal shipments.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       services.AuthorizationGate
	logger     *zap.Logger
}

// NewCancelShipmentCommandHandler creates a handler for cancel operations.
func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory, logger *zap.Logger) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
		logger:     logger,
	}
}

// Handle processes the cancel command.
// Loads the shipment, checks the actor is an admin, cancels and persists it.
// The shipper is notified once the cancellation commits.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpCancelShipment); err != nil {
		return err
	}

	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = shipments.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatus(ctx, uow.NotificationRepository(), aggregate, shipment.StatusCancelled, h.logger)
	return nil
}
