package ports

import (
	"context"

	"courier/internal/core/domain/model/vehicle"
)

// VehicleRepository is the read-only lookup the core needs for validating
// vehicles referenced by assignments.
type VehicleRepository interface {
	// Get retrieves a vehicle by id, failing with an ObjectNotFoundError if
	// it does not exist.
	Get(ctx context.Context, id int64) (vehicle.Vehicle, error)
}
