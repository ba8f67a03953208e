package commands

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ReconcileInvoicesCommandHandler sweeps up shipments that reached pickup
// without getting an invoice, typically because the renderer was down when
// the driver recorded the pickup.
//
// The sweep runs on the base connection without a wrapping transaction: each
// shipment's invoice commits independently, so one bad shipment cannot abort
// the rest of the sweep.
type ReconcileInvoicesCommandHandler struct {
	uowFactory UoWFactory
	invoices   InvoiceService
	logger     *zap.Logger
}

// NewReconcileInvoicesCommandHandler creates a handler for the invoice sweep.
func NewReconcileInvoicesCommandHandler(
	uowFactory UoWFactory,
	invoices InvoiceService,
	logger *zap.Logger,
) ReconcileInvoicesCommandHandler {
	return ReconcileInvoicesCommandHandler{
		uowFactory: uowFactory,
		invoices:   invoices,
		logger:     logger,
	}
}

// Handle processes the reconciliation sweep.
// Returns the number of invoices generated; per-shipment failures are logged
// and skipped.
func (h ReconcileInvoicesCommandHandler) Handle(ctx context.Context, cmd ReconcileInvoicesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	shipments := uow.ShipmentRepository()
	accounts := uow.AccountRepository()

	missing, err := shipments.FindMissingInvoices(ctx)
	if err != nil {
		return 0, err
	}

	generated := 0
	for _, aggregate := range missing {
		if err = h.invoices.EnsureInvoice(ctx, shipments, accounts, aggregate, time.Now().UTC()); err != nil {
			h.logger.Error("invoice reconciliation failed for shipment",
				zap.Int64("shipment_id", aggregate.ID()),
				zap.Error(err),
			)
			continue
		}
		generated++
	}

	return generated, nil
}
