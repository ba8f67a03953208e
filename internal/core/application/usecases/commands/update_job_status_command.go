package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrUpdateJobStatusCommandIsNotConstructed = errors.New(
	"UpdateJobStatusCommand must be created via NewUpdateJobStatusCommand constructor",
)

// UpdateJobStatusCommand advances a claimed job along the delivery path:
// picked_up, in_transit, delivered. The driver may bundle revised package
// details measured at pickup with the same request.
//
// Example:
//
//	pkg, _ := shipment.NewPackageDetails(12.5, 40, 30, 20, shipment.DimensionCM)
//	cmd, err := NewUpdateJobStatusCommand(driverActor, shipmentID,
//	    shipment.StatusPickedUp, &pkg, nil)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update job: %w", err)
//	}
type UpdateJobStatusCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	shipmentID  int64
	target      shipment.Status
	pkg         *shipment.PackageDetails
	description *string

	guard guard.ConstructorGuard
}

// NewUpdateJobStatusCommand creates a command to advance a job's status.
// Only the delivery-path statuses are accepted as targets; quoting,
// assignment and cancellation have their own commands.
func NewUpdateJobStatusCommand(
	act actor.Actor,
	shipmentID int64,
	target shipment.Status,
	pkg *shipment.PackageDetails,
	description *string,
) (UpdateJobStatusCommand, error) {
	cmd := UpdateJobStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateJobStatusCommand{}, err
	}

	cmd.actor = act
	cmd.pkg = pkg
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateJobStatusCommandIsNotConstructed if validation fails.
func (c UpdateJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobStatusCommandIsNotConstructed)
}

// Actor returns the driver advancing the job.
func (c UpdateJobStatusCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier of the job being advanced.
func (c UpdateJobStatusCommand) ShipmentID() int64 {
	return c.shipmentID
}

// Target returns the requested delivery-path status.
func (c UpdateJobStatusCommand) Target() shipment.Status {
	return c.target
}

// PackageDetails returns the bundled package revision, nil when absent.
func (c UpdateJobStatusCommand) PackageDetails() *shipment.PackageDetails {
	return c.pkg
}

// Description returns the bundled description revision, nil when absent.
func (c UpdateJobStatusCommand) Description() *string {
	return c.description
}

func (c *UpdateJobStatusCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateJobStatusCommand) setTarget(target shipment.Status) error {
	switch target {
	case shipment.StatusPickedUp, shipment.StatusInTransit, shipment.StatusDelivered:
		c.target = target
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"target status",
			fmt.Errorf("%q is not a delivery-path status", string(target)),
		)
	}
}
