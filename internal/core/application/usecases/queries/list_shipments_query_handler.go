package queries

import (
	"context"

	"courier/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves shipment lists from the database.
// Uses direct SQL for read performance in the CQRS pattern; the visibility
// scope is baked into the WHERE clause so out-of-scope rows never leave the
// database.
//
// Example:
//
//	handler := NewListShipmentsQueryHandler(db)
//	query, _ := NewListShipmentsQuery(act, nil)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list shipments: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d shipments\n", len(shipments))
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment list queries.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query and returns the visible shipments, newest first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tracking_number,
			shipper_id,
			driver_id,
			status,
			shipment_type,
			pickup_city,
			delivery_city,
			province,
			quote_amount,
			payment_status,
			created_at,
			updated_at
		FROM shipments
		WHERE 1 = 1
	`
	args := make([]any, 0, 3)

	act := query.Actor()
	switch {
	case act.IsShipper():
		sql += " AND shipper_id = ?"
		args = append(args, act.ID)
	case act.IsDriver():
		sql += " AND (driver_id = ? OR (status = ? AND driver_id IS NULL))"
		args = append(args, act.ID, shipment.StatusApproved)
	}

	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, *query.Status())
	}

	sql += " ORDER BY created_at DESC"

	shipments := make([]ShipmentSummary, 0)
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&shipments).Error; err != nil {
		return nil, err
	}

	return shipments, nil
}
