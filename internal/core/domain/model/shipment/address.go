package shipment

import (
	"errors"
	"fmt"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a value object holding one endpoint of a shipment route.
type Address struct {
	street     string
	city       string
	postalCode string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address with all components required.
func NewAddress(street, city, postalCode string) (Address, error) {
	if err := errors.Join(
		requireField("street", street),
		requireField("city", city),
		requireField("postal code", postalCode),
	); err != nil {
		return Address{}, err
	}

	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string { return a.postalCode }

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.postalCode == other.postalCode
}

// String renders the address on a single line for documents and labels.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.street, a.city, a.postalCode)
}
