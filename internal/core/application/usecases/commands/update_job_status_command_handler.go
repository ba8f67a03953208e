package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"

	"go.uber.org/zap"
)

// UpdateJobStatusCommandHandler handles a driver advancing a claimed job.
//
// The status transition and any bundled package revision commit together.
// Side effects run afterwards on the base connection: the shipper is
// notified, and entering "picked_up" triggers invoice generation. An invoice
// failure is logged and retried later by the reconciliation sweep; it never
// fails the already committed pickup.
type UpdateJobStatusCommandHandler struct {
	uowFactory UoWFactory
	gate       services.AuthorizationGate
	invoices   InvoiceService
	logger     *zap.Logger
}

// NewUpdateJobStatusCommandHandler creates a handler for job status updates.
func NewUpdateJobStatusCommandHandler(
	uowFactory UoWFactory,
	invoices InvoiceService,
	logger *zap.Logger,
) UpdateJobStatusCommandHandler {
	return UpdateJobStatusCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
		invoices:   invoices,
		logger:     logger,
	}
}

// Handle processes the job status update.
func (h UpdateJobStatusCommandHandler) Handle(ctx context.Context, cmd UpdateJobStatusCommand) error {
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

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpUpdateJobStatus); err != nil {
		return err
	}

	now := time.Now().UTC()
	pkgChanged := false
	if cmd.PackageDetails() != nil {
		description := aggregate.Description()
		if cmd.Description() != nil {
			description = *cmd.Description()
		}
		pkgChanged = aggregate.UpdatePackageDetails(*cmd.PackageDetails(), description, now)
	}

	if err = aggregate.TransitionTo(cmd.Target(), now); err != nil {
		return err
	}

	if err = shipments.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifications := uow.NotificationRepository()
	notifyStatus(ctx, notifications, aggregate, cmd.Target(), h.logger)
	if pkgChanged {
		notifyPackageInfo(ctx, notifications, aggregate, h.logger)
	}

	if cmd.Target() == shipment.StatusPickedUp {
		err = h.invoices.EnsureInvoice(ctx, uow.ShipmentRepository(), uow.AccountRepository(), aggregate, now)
		if err != nil {
			h.logger.Error("invoice generation failed after pickup",
				zap.Int64("shipment_id", aggregate.ID()),
				zap.Error(err),
			)
		}
	}

	return nil
}
