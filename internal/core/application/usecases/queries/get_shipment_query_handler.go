package queries

import (
	"context"

	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment read model.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query for one shipment.
// Returns an ObjectNotFoundError for an unknown id and a ForbiddenError when
// the actor may not see the shipment.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentDetails, error) {
	if err := query.Validate(); err != nil {
		return ShipmentDetails{}, err
	}

	var details ShipmentDetails
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			shipper_id,
			driver_id,
			vehicle_id,
			status,
			shipment_type,
			description,
			pickup_street,
			pickup_city,
			pickup_postal_code,
			delivery_street,
			delivery_city,
			delivery_postal_code,
			province,
			weight,
			length,
			width,
			height,
			dimension_unit,
			quote_amount,
			tax_amount,
			total_amount,
			payment_status,
			invoice_url,
			created_at,
			updated_at,
			picked_up_at,
			delivered_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID()).Scan(&details)
	if result.Error != nil {
		return ShipmentDetails{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ShipmentDetails{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
	}

	if !canViewShipment(query.Actor(), details) {
		return ShipmentDetails{}, &services.ForbiddenError{
			Operation: services.OpViewShipment,
			Role:      query.Actor().Role,
		}
	}

	return details, nil
}

// canViewShipment mirrors the authorization gate's view rule on the read
// model: admins see everything, shippers their own shipments, drivers their
// assignments plus the open-job pool.
func canViewShipment(act actor.Actor, details ShipmentDetails) bool {
	switch {
	case act.IsAdmin():
		return true
	case act.IsShipper():
		return details.ShipperID == act.ID
	case act.IsDriver():
		if details.DriverID != nil && *details.DriverID == act.ID {
			return true
		}
		return details.Status == string(shipment.StatusApproved) && details.DriverID == nil
	default:
		return false
	}
}
