package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrShipmentTypeIsRequired = errors.New("shipment type is required")
)

// CreateShipmentCommand represents a shipper's request to open a new shipment.
// Encapsulates the route, the tax province and the initial package details.
// The owner of the shipment is always the authenticated actor.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(act, "standard", "2 boxes of books",
//	    pickup, delivery, province, pkg)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s created", created.TrackingNumber())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	shipmentType string
	description  string
	pickup       shipment.Address
	delivery     shipment.Address
	province     shipment.Province
	pkg          shipment.PackageDetails

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a new shipment.
// Validates the addresses and the province; the package details may be zero
// when the shipper has not measured the package yet.
func NewCreateShipmentCommand(
	act actor.Actor,
	shipmentType, description string,
	pickup, delivery shipment.Address,
	province shipment.Province,
	pkg shipment.PackageDetails,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setShipmentType(shipmentType),
		cmd.setRoute(pickup, delivery),
		cmd.setProvince(province),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.description = description
	cmd.pkg = pkg
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Actor returns the authenticated party creating the shipment.
func (c CreateShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentType returns the requested service level.
func (c CreateShipmentCommand) ShipmentType() string {
	return c.shipmentType
}

// Description returns the free-form package description.
func (c CreateShipmentCommand) Description() string {
	return c.description
}

// Pickup returns the pickup address.
func (c CreateShipmentCommand) Pickup() shipment.Address {
	return c.pickup
}

// Delivery returns the delivery address.
func (c CreateShipmentCommand) Delivery() shipment.Address {
	return c.delivery
}

// Province returns the tax province of the shipment.
func (c CreateShipmentCommand) Province() shipment.Province {
	return c.province
}

// PackageDetails returns the initial package measurements.
func (c CreateShipmentCommand) PackageDetails() shipment.PackageDetails {
	return c.pkg
}

func (c *CreateShipmentCommand) setActor(act actor.Actor) error {
	if err := act.Role.Validate(); err != nil {
		return err
	}

	c.actor = act
	return nil
}

func (c *CreateShipmentCommand) setShipmentType(shipmentType string) error {
	if shipmentType == "" {
		return ErrShipmentTypeIsRequired
	}

	c.shipmentType = shipmentType
	return nil
}

func (c *CreateShipmentCommand) setRoute(pickup, delivery shipment.Address) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.delivery = delivery
	return nil
}

func (c *CreateShipmentCommand) setProvince(province shipment.Province) error {
	if err := province.Validate(); err != nil {
		return err
	}

	c.province = province
	return nil
}
