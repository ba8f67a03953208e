// Package vehicle holds the vehicle fleet entities referenced by shipment
// assignments. Fleet management itself is peripheral; the core only needs to
// confirm a referenced vehicle exists.
package vehicle

import (
	"courier/internal/pkg/errs"
)

// Vehicle is a fleet vehicle an admin can attach to a shipment assignment.
type Vehicle struct {
	id           int64
	name         string
	licensePlate string
}

// New creates a Vehicle after validating its fields.
func New(id int64, name, licensePlate string) (Vehicle, error) {
	if id <= 0 {
		return Vehicle{}, errs.NewValueIsRequiredError("vehicle id")
	}
	if name == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("vehicle name")
	}
	return Vehicle{id: id, name: name, licensePlate: licensePlate}, nil
}

// ID returns the vehicle identifier.
func (v Vehicle) ID() int64 { return v.id }

// Name returns the display name of the vehicle.
func (v Vehicle) Name() string { return v.name }

// LicensePlate returns the registered plate of the vehicle.
func (v Vehicle) LicensePlate() string { return v.licensePlate }
