package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/services"
)

// GenerateInvoiceCommandHandler handles on-demand invoice retrieval.
// Generation is idempotent: the first request after pickup renders the
// artifact and stores its reference; later requests return that reference,
// re-rendering only if the artifact went missing.
type GenerateInvoiceCommandHandler struct {
	uowFactory UoWFactory
	gate       services.AuthorizationGate
	invoices   InvoiceService
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice retrieval.
func NewGenerateInvoiceCommandHandler(
	uowFactory UoWFactory,
	invoices InvoiceService,
) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
		invoices:   invoices,
	}
}

// Handle processes the invoice request and returns the artifact reference.
// Fails with ErrInvoiceNotYetAvailable before pickup: the invoice prices the
// service, and the service begins when the package is collected.
func (h GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments := uow.ShipmentRepository()
	aggregate, err := shipments.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return "", err
	}

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpViewInvoice); err != nil {
		return "", err
	}

	if aggregate.InvoiceURL() == nil && aggregate.PickedUpAt() == nil {
		return "", ErrInvoiceNotYetAvailable
	}

	err = h.invoices.EnsureInvoice(ctx, shipments, uow.AccountRepository(), aggregate, time.Now().UTC())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return *aggregate.InvoiceURL(), nil
}
