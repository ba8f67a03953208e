package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand revises the editable fields of a shipment outside the
// driver status flow: the route, the service level, the description and the
// package measurements. Shippers may edit only their own pending shipments;
// admins may edit anything.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	shipmentID   int64
	shipmentType string
	description  string
	pickup       shipment.Address
	delivery     shipment.Address
	pkg          shipment.PackageDetails

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to revise a shipment.
func NewUpdateShipmentCommand(
	act actor.Actor,
	shipmentID int64,
	shipmentType, description string,
	pickup, delivery shipment.Address,
	pkg shipment.PackageDetails,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setShipmentType(shipmentType),
		cmd.setRoute(pickup, delivery),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	cmd.actor = act
	cmd.description = description
	cmd.pkg = pkg
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// Actor returns the authenticated party requesting the update.
func (c UpdateShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

// ShipmentType returns the revised service level.
func (c UpdateShipmentCommand) ShipmentType() string {
	return c.shipmentType
}

// Description returns the revised package description.
func (c UpdateShipmentCommand) Description() string {
	return c.description
}

// Pickup returns the revised pickup address.
func (c UpdateShipmentCommand) Pickup() shipment.Address {
	return c.pickup
}

// Delivery returns the revised delivery address.
func (c UpdateShipmentCommand) Delivery() shipment.Address {
	return c.delivery
}

// PackageDetails returns the revised package measurements.
func (c UpdateShipmentCommand) PackageDetails() shipment.PackageDetails {
	return c.pkg
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setShipmentType(shipmentType string) error {
	if shipmentType == "" {
		return ErrShipmentTypeIsRequired
	}

	c.shipmentType = shipmentType
	return nil
}

func (c *UpdateShipmentCommand) setRoute(pickup, delivery shipment.Address) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.delivery = delivery
	return nil
}
