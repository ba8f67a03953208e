package shipment

import (
	"errors"
	"fmt"

	"courier/internal/pkg/errs"
)

// DimensionUnit is the unit package dimensions are expressed in.
type DimensionUnit string

const (
	// UnitCentimeters expresses dimensions in centimeters.
	UnitCentimeters DimensionUnit = "cm"

	// UnitInches expresses dimensions in inches.
	UnitInches DimensionUnit = "in"
)

// Validate checks the unit value. An empty unit is allowed because package
// dimensions themselves are optional until the driver records them.
func (u DimensionUnit) Validate() error {
	switch u {
	case "", UnitCentimeters, UnitInches:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"dimension unit",
			fmt.Errorf("%q is not a valid dimension unit", string(u)),
		)
	}
}

// PackageDetails is a value object describing the physical package.
// All measurements are optional (zero means unrecorded) but never negative.
// Drivers may revise these while handling the shipment; a revision fires a
// package_info notification to the shipper.
type PackageDetails struct {
	weight float64
	length float64
	width  float64
	height float64
	unit   DimensionUnit
}

// NewPackageDetails creates PackageDetails after validating measurements.
func NewPackageDetails(weight, length, width, height float64, unit DimensionUnit) (PackageDetails, error) {
	if err := errors.Join(
		nonNegative("weight", weight),
		nonNegative("length", length),
		nonNegative("width", width),
		nonNegative("height", height),
		unit.Validate(),
	); err != nil {
		return PackageDetails{}, err
	}

	return PackageDetails{
		weight: weight,
		length: length,
		width:  width,
		height: height,
		unit:   unit,
	}, nil
}

func nonNegative(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative", value))
	}
	return nil
}

// Weight returns the package weight in kilograms.
func (p PackageDetails) Weight() float64 { return p.weight }

// Length returns the package length.
func (p PackageDetails) Length() float64 { return p.length }

// Width returns the package width.
func (p PackageDetails) Width() float64 { return p.width }

// Height returns the package height.
func (p PackageDetails) Height() float64 { return p.height }

// Unit returns the unit the dimensions are expressed in.
func (p PackageDetails) Unit() DimensionUnit { return p.unit }

// IsEqual compares two package descriptions field-wise. The lifecycle uses it
// to decide whether a driver's bundled update actually changed anything.
func (p PackageDetails) IsEqual(other PackageDetails) bool {
	return p == other
}

// IsZero reports whether no measurement has been recorded yet.
func (p PackageDetails) IsZero() bool {
	return p == PackageDetails{}
}
