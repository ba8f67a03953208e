// Package vehiclerepo provides read-only persistence access to the vehicle
// fleet referenced by shipment assignments.
package vehiclerepo

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/vehicle"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// VehicleDTO represents the database structure of a fleet vehicle.
type VehicleDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	Name         string
	LicensePlate string
	CreatedAt    time.Time
}

// TableName specifies the database table name for fleet vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id int64) (vehicle.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vehicle.Vehicle{}, errs.NewObjectNotFoundError("vehicle", id)
		}
		return vehicle.Vehicle{}, err
	}

	return vehicle.New(dto.ID, dto.Name, dto.LicensePlate)
}
