package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrMarkInvoicePaidCommandIsNotConstructed = errors.New(
	"MarkInvoicePaidCommand must be created via NewMarkInvoicePaidCommand constructor",
)

// MarkInvoicePaidCommand settles a shipment's invoice. Admin only; payment
// collection itself happens outside the platform.
type MarkInvoicePaidCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewMarkInvoicePaidCommand creates a command to settle an invoice.
func NewMarkInvoicePaidCommand(act actor.Actor, shipmentID int64) (MarkInvoicePaidCommand, error) {
	cmd := MarkInvoicePaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return MarkInvoicePaidCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkInvoicePaidCommandIsNotConstructed if validation fails.
func (c MarkInvoicePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicePaidCommandIsNotConstructed)
}

// Actor returns the authenticated party settling the invoice.
func (c MarkInvoicePaidCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the shipment whose invoice is settled.
func (c MarkInvoicePaidCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c *MarkInvoicePaidCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}
