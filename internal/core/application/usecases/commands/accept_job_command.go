package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand represents a driver claiming an open job from the pool.
// Claims are first-come-first-served: when several drivers race for the same
// job, exactly one wins and the rest are told the job is already taken.
//
// Example:
//
//	cmd, err := NewAcceptJobCommand(driverActor, shipmentID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrJobAlreadyTaken):
//	    // another driver got there first
//	case errors.Is(err, ErrDriverHasActiveJob):
//	    // finish the current delivery before claiming a new one
//	case err != nil:
//	    return err
//	}
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for a driver to claim an open job.
func NewAcceptJobCommand(act actor.Actor, shipmentID int64) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return AcceptJobCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptJobCommandIsNotConstructed if validation fails.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// Actor returns the driver claiming the job.
func (c AcceptJobCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the job to claim.
func (c AcceptJobCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c *AcceptJobCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}
