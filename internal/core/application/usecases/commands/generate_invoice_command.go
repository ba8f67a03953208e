package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
		"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
	)

	// ErrInvoiceNotYetAvailable means the shipment has not been picked up, so
	// there is nothing to invoice yet.
	ErrInvoiceNotYetAvailable = errors.New("invoice is not available before pickup")
)

// GenerateInvoiceCommand retrieves the invoice for a shipment, generating it
// on demand when it does not exist yet. Repeated requests return the same
// artifact reference.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to fetch or generate an invoice.
func NewGenerateInvoiceCommand(act actor.Actor, shipmentID int64) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateInvoiceCommandIsNotConstructed if validation fails.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// Actor returns the authenticated party requesting the invoice.
func (c GenerateInvoiceCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the shipment to invoice.
func (c GenerateInvoiceCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c *GenerateInvoiceCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}
