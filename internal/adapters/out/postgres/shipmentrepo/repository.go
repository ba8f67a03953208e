package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database and attaches the generated id.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AttachID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimForDriver atomically assigns the driver to a still-open job.
//
// The claim is one conditional UPDATE: the status and driver predicates are
// re-checked by the database at write time, so of any number of concurrent
// claimants exactly one sees an affected row. Everything the caller read
// before this point may already be stale and is deliberately not trusted.
func (r *GormShipmentRepository) ClaimForDriver(ctx context.Context, shipmentID, driverID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", shipmentID, string(shipment.StatusApproved)).
		Updates(map[string]any{
			"driver_id":  driverID,
			"status":     string(shipment.StatusAssigned),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// FindActiveJobForDriver retrieves the driver's current active job.
func (r *GormShipmentRepository) FindActiveJobForDriver(ctx context.Context, driverID int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "driver_id = ? AND status IN ?", driverID, []string{
			string(shipment.StatusAssigned),
			string(shipment.StatusPickedUp),
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active job for driver", driverID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindMissingInvoices retrieves shipments at or past pickup that have no
// invoice reference yet. Cancelled shipments are excluded even when they
// were picked up first; a cancelled delivery is not billed.
func (r *GormShipmentRepository) FindMissingInvoices(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "invoice_url IS NULL AND status IN ?", []string{
			string(shipment.StatusPickedUp),
			string(shipment.StatusInTransit),
			string(shipment.StatusDelivered),
		}).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
