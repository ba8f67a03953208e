package commands

import (
	"context"

	"courier/internal/core/domain/services"
)

// MarkNotificationReadCommandHandler handles a recipient marking one of its
// notifications as read.
type MarkNotificationReadCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for read-flag updates.
func NewMarkNotificationReadCommandHandler(uowFactory ShipmentUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read-flag update.
// Only the recipient (or an admin) may mark a notification read; anyone else
// gets a ForbiddenError, the same answer as for any other foreign resource.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	notifications := uow.NotificationRepository()
	aggregate, err := notifications.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() && aggregate.ShipperID() != cmd.Actor().ID {
		return &services.ForbiddenError{
			Operation: services.OpMarkNotificationRead,
			Role:      cmd.Actor().Role,
		}
	}

	aggregate.MarkRead()

	if err = notifications.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
