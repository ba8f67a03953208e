package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/services"

	"go.uber.org/zap"
)

// ApproveShipmentCommandHandler handles quote approval, with or without an
// immediate driver assignment. When a driver is supplied the handler resolves
// the driver account and the vehicle inside the transaction so a dangling
// reference rolls the whole approval back.
type ApproveShipmentCommandHandler struct {
	uowFactory UoWFactory
	gate       services.AuthorizationGate
	logger     *zap.Logger
}

// NewApproveShipmentCommandHandler creates a handler for approval operations.
// Requires a UoWFactory because assignments touch accounts and vehicles too.
func NewApproveShipmentCommandHandler(uowFactory UoWFactory, logger *zap.Logger) ApproveShipmentCommandHandler {
	return ApproveShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
		logger:     logger,
	}
}

// Handle processes the approval command.
// Without an assignment the shipment moves to "approved" and enters the
// open-job pool. With one, the referenced driver and vehicle are verified
// and the shipment moves straight to "assigned". The shipper is notified
// after the transition commits.
func (h ApproveShipmentCommandHandler) Handle(ctx context.Context, cmd ApproveShipmentCommand) error {
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

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpApproveShipment); err != nil {
		return err
	}

	now := time.Now().UTC()
	if cmd.HasAssignment() {
		if _, err = uow.AccountRepository().GetDriver(ctx, *cmd.DriverID()); err != nil {
			return err
		}
		if _, err = uow.VehicleRepository().Get(ctx, *cmd.VehicleID()); err != nil {
			return err
		}
		if err = aggregate.AssignDriver(*cmd.DriverID(), cmd.VehicleID(), now); err != nil {
			return err
		}
	} else {
		if err = aggregate.Approve(now); err != nil {
			return err
		}
	}

	if err = shipments.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatus(ctx, uow.NotificationRepository(), aggregate, aggregate.Status(), h.logger)
	return nil
}
