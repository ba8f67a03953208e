package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrQuoteShipmentCommandIsNotConstructed = errors.New(
	"QuoteShipmentCommand must be created via NewQuoteShipmentCommand constructor",
)

// QuoteShipmentCommand attaches an admin's price quote to a pending shipment,
// moving it to "quoted" and notifying the shipper.
//
// Example:
//
//	cmd, err := NewQuoteShipmentCommand(adminActor, shipmentID, 249.99)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to quote shipment: %w", err)
//	}
type QuoteShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID int64
	amount     float64

	guard guard.ConstructorGuard
}

// NewQuoteShipmentCommand creates a command to quote a shipment.
// The amount must be positive; the upper bound is enforced by the aggregate.
func NewQuoteShipmentCommand(act actor.Actor, shipmentID int64, amount float64) (QuoteShipmentCommand, error) {
	cmd := QuoteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAmount(amount),
	); err != nil {
		return QuoteShipmentCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrQuoteShipmentCommandIsNotConstructed if validation fails.
func (c QuoteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrQuoteShipmentCommandIsNotConstructed)
}

// Actor returns the authenticated party issuing the quote.
func (c QuoteShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the shipment to quote.
func (c QuoteShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

// Amount returns the quoted price before tax.
func (c QuoteShipmentCommand) Amount() float64 {
	return c.amount
}

func (c *QuoteShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *QuoteShipmentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsRequiredError("quote amount")
	}

	c.amount = amount
	return nil
}
