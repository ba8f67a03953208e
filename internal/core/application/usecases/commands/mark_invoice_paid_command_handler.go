package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/services"
)

// MarkInvoicePaidCommandHandler handles invoice settlement by an admin.
type MarkInvoicePaidCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       services.AuthorizationGate
}

// NewMarkInvoicePaidCommandHandler creates a handler for settlement operations.
func NewMarkInvoicePaidCommandHandler(uowFactory ShipmentUoWFactory) MarkInvoicePaidCommandHandler {
	return MarkInvoicePaidCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
	}
}

// Handle processes the settlement command.
// Requires a generated invoice and an unpaid balance; settling twice fails
// with shipment.ErrInvoiceAlreadyPaid.
func (h MarkInvoicePaidCommandHandler) Handle(ctx context.Context, cmd MarkInvoicePaidCommand) error {
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

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpMarkInvoicePaid); err != nil {
		return err
	}

	if err = aggregate.MarkInvoicePaid(time.Now().UTC()); err != nil {
		return err
	}

	if err = shipments.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
