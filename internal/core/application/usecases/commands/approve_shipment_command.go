package commands

import (
	"errors"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	ErrApproveShipmentCommandIsNotConstructed = errors.New(
		"ApproveShipmentCommand must be created via NewApproveShipmentCommand constructor",
	)
	ErrDriverVehiclePairRequired = errors.New(
		"driver and vehicle must be provided together or not at all",
	)
)

// ApproveShipmentCommand approves a quoted shipment. With a driver and a
// vehicle the approval assigns them in the same step; without them the
// shipment moves to "approved" and waits in the open-job pool for a driver
// to claim it.
//
// Example:
//
//	// release into the open-job pool
//	cmd, _ := NewApproveShipmentCommand(adminActor, shipmentID, nil, nil)
//
//	// approve and assign in one step
//	driverID, vehicleID := int64(7), int64(3)
//	cmd, _ = NewApproveShipmentCommand(adminActor, shipmentID, &driverID, &vehicleID)
type ApproveShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID int64
	driverID   *int64
	vehicleID  *int64

	guard guard.ConstructorGuard
}

// NewApproveShipmentCommand creates a command to approve a shipment.
// Driver and vehicle come as a pair: providing one without the other fails.
func NewApproveShipmentCommand(
	act actor.Actor,
	shipmentID int64,
	driverID, vehicleID *int64,
) (ApproveShipmentCommand, error) {
	cmd := ApproveShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAssignment(driverID, vehicleID),
	); err != nil {
		return ApproveShipmentCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveShipmentCommandIsNotConstructed if validation fails.
func (c ApproveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrApproveShipmentCommandIsNotConstructed)
}

// Actor returns the authenticated party approving the shipment.
func (c ApproveShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the shipment to approve.
func (c ApproveShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

// DriverID returns the driver to assign, nil for the open-job pool path.
func (c ApproveShipmentCommand) DriverID() *int64 {
	return c.driverID
}

// VehicleID returns the vehicle to assign, nil for the open-job pool path.
func (c ApproveShipmentCommand) VehicleID() *int64 {
	return c.vehicleID
}

// HasAssignment reports whether the approval carries a driver assignment.
func (c ApproveShipmentCommand) HasAssignment() bool {
	return c.driverID != nil
}

func (c *ApproveShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ApproveShipmentCommand) setAssignment(driverID, vehicleID *int64) error {
	if (driverID == nil) != (vehicleID == nil) {
		return ErrDriverVehiclePairRequired
	}
	if driverID != nil && *driverID <= 0 {
		return errs.NewValueIsRequiredError("driver id")
	}
	if vehicleID != nil && *vehicleID <= 0 {
		return errs.NewValueIsRequiredError("vehicle id")
	}

	c.driverID = driverID
	c.vehicleID = vehicleID
	return nil
}
