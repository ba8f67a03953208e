package ports

import (
	"context"

	"courier/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate and attaches the generated
	// identifier to it.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// ClaimForDriver atomically assigns the driver to the shipment if and
	// only if it is still an unclaimed open job (status approved, no driver).
	// Implemented as a single conditional write; the boolean mirrors the
	// affected row count. A read-then-write pair is not an acceptable
	// implementation.
	ClaimForDriver(ctx context.Context, shipmentID, driverID int64) (bool, error)

	// FindActiveJobForDriver returns the driver's current active job
	// (status assigned or picked_up), or an ObjectNotFoundError if none.
	FindActiveJobForDriver(ctx context.Context, driverID int64) (*shipment.Shipment, error)

	// FindMissingInvoices returns shipments at or past pickup that have no
	// invoice reference yet. Used by the invoice reconciliation sweep.
	FindMissingInvoices(ctx context.Context) ([]*shipment.Shipment, error)
}
