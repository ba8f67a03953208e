package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/services"

	"go.uber.org/zap"
)

// QuoteShipmentCommandHandler handles the business logic for quoting.
// The transition to "quoted" commits first; the quote notification is
// written afterwards on the base connection so a notification failure
// cannot undo the quote.
type QuoteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       services.AuthorizationGate
	logger     *zap.Logger
}

// NewQuoteShipmentCommandHandler creates a handler for quote operations.
func NewQuoteShipmentCommandHandler(uowFactory ShipmentUoWFactory, logger *zap.Logger) QuoteShipmentCommandHandler {
	return QuoteShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
		logger:     logger,
	}
}

// Handle processes the quote command.
// Loads the shipment, checks the actor is an admin, applies the quote and
// persists it; on success the shipper is notified of the new quote.
func (h QuoteShipmentCommandHandler) Handle(ctx context.Context, cmd QuoteShipmentCommand) error {
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

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpQuoteShipment); err != nil {
		return err
	}

	if err = aggregate.Quote(cmd.Amount(), time.Now().UTC()); err != nil {
		return err
	}

	if err = shipments.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyQuote(ctx, uow.NotificationRepository(), aggregate, cmd.Amount(), h.logger)
	return nil
}
