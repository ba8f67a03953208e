package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with all its fields. The same
// visibility rules apply as for listing: an actor that may not see the
// shipment gets a ForbiddenError, not an empty result, so a denied id is
// distinguishable from a missing one.
type GetShipmentQuery struct {
	actor      actor.Actor
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a single shipment.
func NewGetShipmentQuery(act actor.Actor, shipmentID int64) (GetShipmentQuery, error) {
	if shipmentID <= 0 {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("shipment id")
	}
	if err := act.Role.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		actor:      act,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// Actor returns the authenticated party reading the shipment.
func (q GetShipmentQuery) Actor() actor.Actor {
	return q.actor
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentQuery) ShipmentID() int64 {
	return q.shipmentID
}

// ShipmentDetails is the full shipment read model.
type ShipmentDetails struct {
	ID             int64
	TrackingNumber string
	ShipperID      int64
	DriverID       *int64
	VehicleID      *int64
	Status         string
	ShipmentType   string
	Description    string

	PickupStreet     string
	PickupCity       string
	PickupPostalCode string

	DeliveryStreet     string
	DeliveryCity       string
	DeliveryPostalCode string

	Province string

	Weight        float64
	Length        float64
	Width         float64
	Height        float64
	DimensionUnit string

	QuoteAmount   *float64
	TaxAmount     *float64
	TotalAmount   *float64
	PaymentStatus string
	InvoiceURL    *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}
