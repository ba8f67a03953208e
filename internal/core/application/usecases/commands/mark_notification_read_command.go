package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand marks one of the recipient's notifications as
// read. The read flag is the only mutable field on a notification.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	notificationID int64

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification read.
func NewMarkNotificationReadCommand(act actor.Actor, notificationID int64) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNotificationID(notificationID); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkNotificationReadCommandIsNotConstructed if validation fails.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// Actor returns the authenticated party marking the notification read.
func (c MarkNotificationReadCommand) Actor() actor.Actor {
	return c.actor
}

// NotificationID returns the identifier of the notification to mark read.
func (c MarkNotificationReadCommand) NotificationID() int64 {
	return c.notificationID
}

func (c *MarkNotificationReadCommand) setNotificationID(notificationID int64) error {
	if notificationID <= 0 {
		return errs.NewValueIsRequiredError("notification id")
	}

	c.notificationID = notificationID
	return nil
}
