package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"go.uber.org/zap"
)

var (
	// ErrJobAlreadyTaken means another driver claimed the job first.
	ErrJobAlreadyTaken = errors.New("job has already been taken by another driver")

	// ErrDriverHasActiveJob means the driver must finish the current delivery
	// before claiming another job.
	ErrDriverHasActiveJob = errors.New("driver already has an active job")
)

// AcceptJobCommandHandler handles a driver claiming an open job.
//
// The claim itself is a single conditional update on the shipment row: it
// succeeds only while the shipment is still "approved" with no driver. That
// makes the claim atomic at the database, so two drivers racing for the same
// job can never both win regardless of what either of them read beforehand.
type AcceptJobCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       services.AuthorizationGate
	logger     *zap.Logger
}

// NewAcceptJobCommandHandler creates a handler for job claim operations.
func NewAcceptJobCommandHandler(uowFactory ShipmentUoWFactory, logger *zap.Logger) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAuthorizationGate(),
		logger:     logger,
	}
}

// Handle processes the job claim.
// Re-claiming a job the driver already holds succeeds without changes. A
// driver with another active job gets ErrDriverHasActiveJob; losing the
// claim race yields ErrJobAlreadyTaken.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
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

	if err = h.gate.Authorize(cmd.Actor(), aggregate, services.OpAcceptJob); err != nil {
		return err
	}

	if aggregate.IsOwnedByDriver(cmd.Actor().ID) {
		// The driver already holds this job; repeating the claim is a no-op.
		return uow.Commit(ctx)
	}

	_, err = shipments.FindActiveJobForDriver(ctx, cmd.Actor().ID)
	if err == nil {
		return ErrDriverHasActiveJob
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	claimed, err := shipments.ClaimForDriver(ctx, cmd.ShipmentID(), cmd.Actor().ID)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrJobAlreadyTaken
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatus(ctx, uow.NotificationRepository(), aggregate, shipment.StatusAssigned, h.logger)
	return nil
}
