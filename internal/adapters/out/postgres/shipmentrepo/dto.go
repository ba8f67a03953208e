// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment aggregate, handling the conversion between domain entities
// and database representations.
package shipmentrepo

import (
	"time"

	"courier/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed by status and driver for the open-job pool and
// active-job lookups.
type ShipmentDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	TrackingNumber string `gorm:"uniqueIndex;size:16"`
	ShipperID      int64  `gorm:"index"`
	DriverID       *int64 `gorm:"index"`
	VehicleID      *int64

	ShipmentType string
	Description  string
	Pickup       AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery     AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Province     string     `gorm:"size:2"`
	Package      PackageDTO `gorm:"embedded"`

	Status        string `gorm:"index;size:16"`
	QuoteAmount   *float64
	TaxAmount     *float64
	TotalAmount   *float64
	PaymentStatus string `gorm:"size:8"`
	InvoiceURL    *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents an embedded route endpoint within the shipment table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
}

// PackageDTO represents the embedded physical package measurements.
type PackageDTO struct {
	Weight        float64
	Length        float64
	Width         float64
	Height        float64
	DimensionUnit string `gorm:"size:2"`
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	pkg := aggregate.PackageDetails()
	return ShipmentDTO{
		ID:             aggregate.ID(),
		TrackingNumber: aggregate.TrackingNumber(),
		ShipperID:      aggregate.ShipperID(),
		DriverID:       aggregate.DriverID(),
		VehicleID:      aggregate.VehicleID(),
		ShipmentType:   aggregate.ShipmentType(),
		Description:    aggregate.Description(),
		Pickup: AddressDTO{
			Street:     aggregate.Pickup().Street(),
			City:       aggregate.Pickup().City(),
			PostalCode: aggregate.Pickup().PostalCode(),
		},
		Delivery: AddressDTO{
			Street:     aggregate.Delivery().Street(),
			City:       aggregate.Delivery().City(),
			PostalCode: aggregate.Delivery().PostalCode(),
		},
		Province: string(aggregate.Province()),
		Package: PackageDTO{
			Weight:        pkg.Weight(),
			Length:        pkg.Length(),
			Width:         pkg.Width(),
			Height:        pkg.Height(),
			DimensionUnit: string(pkg.Unit()),
		},
		Status:        string(aggregate.Status()),
		QuoteAmount:   aggregate.QuoteAmount(),
		TaxAmount:     aggregate.TaxAmount(),
		TotalAmount:   aggregate.TotalAmount(),
		PaymentStatus: string(aggregate.PaymentStatus()),
		InvoiceURL:    aggregate.InvoiceURL(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		PickedUpAt:    aggregate.PickedUpAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a shipment aggregate.
// RestoreShipment re-checks the aggregate invariants, so a corrupt row
// surfaces as an error instead of an inconsistent aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	pickup, err := shipment.NewAddress(dto.Pickup.Street, dto.Pickup.City, dto.Pickup.PostalCode)
	if err != nil {
		return nil, err
	}

	delivery, err := shipment.NewAddress(dto.Delivery.Street, dto.Delivery.City, dto.Delivery.PostalCode)
	if err != nil {
		return nil, err
	}

	var pkg shipment.PackageDetails
	if dto.Package != (PackageDTO{}) {
		pkg, err = shipment.NewPackageDetails(
			dto.Package.Weight,
			dto.Package.Length,
			dto.Package.Width,
			dto.Package.Height,
			shipment.DimensionUnit(dto.Package.DimensionUnit),
		)
		if err != nil {
			return nil, err
		}
	}

	return shipment.RestoreShipment(
		dto.ID,
		dto.TrackingNumber,
		dto.ShipperID,
		dto.DriverID,
		dto.VehicleID,
		dto.ShipmentType,
		dto.Description,
		pickup,
		delivery,
		shipment.Province(dto.Province),
		pkg,
		shipment.Status(dto.Status),
		dto.QuoteAmount,
		dto.TaxAmount,
		dto.TotalAmount,
		shipment.PaymentStatus(dto.PaymentStatus),
		dto.InvoiceURL,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
	)
}
