package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand cancels a non-terminal shipment. Cancellation detaches
// any assigned driver and vehicle and notifies the shipper.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
func NewCancelShipmentCommand(act actor.Actor, shipmentID int64) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return CancelShipmentCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// Actor returns the authenticated party cancelling the shipment.
func (c CancelShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the shipment to cancel.
func (c CancelShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c *CancelShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}
