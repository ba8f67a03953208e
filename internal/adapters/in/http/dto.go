package http

import (
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
)

// addressPayload is the wire form of a route endpoint.
type addressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// packagePayload is the wire form of package measurements.
type packagePayload struct {
	Weight        float64 `json:"weight"`
	Length        float64 `json:"length"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	DimensionUnit string  `json:"dimension_unit"`
}

func (p packagePayload) toDomain() (shipment.PackageDetails, error) {
	return shipment.NewPackageDetails(
		p.Weight, p.Length, p.Width, p.Height,
		shipment.DimensionUnit(p.DimensionUnit),
	)
}

type createShipmentRequest struct {
	ShipmentType string          `json:"shipment_type"`
	Description  string          `json:"description"`
	Pickup       addressPayload  `json:"pickup"`
	Delivery     addressPayload  `json:"delivery"`
	Province     string          `json:"province"`
	Package      *packagePayload `json:"package"`
}

type updateShipmentRequest struct {
	ShipmentType string          `json:"shipment_type"`
	Description  string          `json:"description"`
	Pickup       addressPayload  `json:"pickup"`
	Delivery     addressPayload  `json:"delivery"`
	Package      *packagePayload `json:"package"`
}

type quoteShipmentRequest struct {
	Amount float64 `json:"amount"`
}

type approveShipmentRequest struct {
	DriverID  *int64 `json:"driver_id"`
	VehicleID *int64 `json:"vehicle_id"`
}

type updateJobStatusRequest struct {
	Status      string          `json:"status"`
	Package     *packagePayload `json:"package"`
	Description *string         `json:"description"`
}

// shipmentCreatedResponse is returned from shipment creation.
type shipmentCreatedResponse struct {
	ID             int64  `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// shipmentSummaryResponse is one element of the shipment list.
type shipmentSummaryResponse struct {
	ID             int64     `json:"id"`
	TrackingNumber string    `json:"tracking_number"`
	ShipperID      int64     `json:"shipper_id"`
	DriverID       *int64    `json:"driver_id,omitempty"`
	Status         string    `json:"status"`
	ShipmentType   string    `json:"shipment_type"`
	PickupCity     string    `json:"pickup_city"`
	DeliveryCity   string    `json:"delivery_city"`
	Province       string    `json:"province"`
	QuoteAmount    *float64  `json:"quote_amount,omitempty"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toSummaryResponse(s queries.ShipmentSummary) shipmentSummaryResponse {
	return shipmentSummaryResponse{
		ID:             s.ID,
		TrackingNumber: s.TrackingNumber,
		ShipperID:      s.ShipperID,
		DriverID:       s.DriverID,
		Status:         s.Status,
		ShipmentType:   s.ShipmentType,
		PickupCity:     s.PickupCity,
		DeliveryCity:   s.DeliveryCity,
		Province:       s.Province,
		QuoteAmount:    s.QuoteAmount,
		PaymentStatus:  s.PaymentStatus,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// shipmentDetailsResponse is the full shipment representation.
type shipmentDetailsResponse struct {
	ID             int64          `json:"id"`
	TrackingNumber string         `json:"tracking_number"`
	ShipperID      int64          `json:"shipper_id"`
	DriverID       *int64         `json:"driver_id,omitempty"`
	VehicleID      *int64         `json:"vehicle_id,omitempty"`
	Status         string         `json:"status"`
	ShipmentType   string         `json:"shipment_type"`
	Description    string         `json:"description"`
	Pickup         addressPayload `json:"pickup"`
	Delivery       addressPayload `json:"delivery"`
	Province       string         `json:"province"`
	Package        packagePayload `json:"package"`
	QuoteAmount    *float64       `json:"quote_amount,omitempty"`
	TaxAmount      *float64       `json:"tax_amount,omitempty"`
	TotalAmount    *float64       `json:"total_amount,omitempty"`
	PaymentStatus  string         `json:"payment_status"`
	InvoiceURL     *string        `json:"invoice_url,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	PickedUpAt     *time.Time     `json:"picked_up_at,omitempty"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
}

func toDetailsResponse(d queries.ShipmentDetails) shipmentDetailsResponse {
	return shipmentDetailsResponse{
		ID:             d.ID,
		TrackingNumber: d.TrackingNumber,
		ShipperID:      d.ShipperID,
		DriverID:       d.DriverID,
		VehicleID:      d.VehicleID,
		Status:         d.Status,
		ShipmentType:   d.ShipmentType,
		Description:    d.Description,
		Pickup: addressPayload{
			Street:     d.PickupStreet,
			City:       d.PickupCity,
			PostalCode: d.PickupPostalCode,
		},
		Delivery: addressPayload{
			Street:     d.DeliveryStreet,
			City:       d.DeliveryCity,
			PostalCode: d.DeliveryPostalCode,
		},
		Province: d.Province,
		Package: packagePayload{
			Weight:        d.Weight,
			Length:        d.Length,
			Width:         d.Width,
			Height:        d.Height,
			DimensionUnit: d.DimensionUnit,
		},
		QuoteAmount:   d.QuoteAmount,
		TaxAmount:     d.TaxAmount,
		TotalAmount:   d.TotalAmount,
		PaymentStatus: d.PaymentStatus,
		InvoiceURL:    d.InvoiceURL,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		PickedUpAt:    d.PickedUpAt,
		DeliveredAt:   d.DeliveredAt,
	}
}

// invoiceResponse carries the invoice artifact reference.
type invoiceResponse struct {
	ShipmentID int64  `json:"shipment_id"`
	InvoiceURL string `json:"invoice_url"`
}

// notificationResponse is one element of the notification list.
type notificationResponse struct {
	ID         int64     `json:"id"`
	ShipmentID int64     `json:"shipment_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

func toNotificationResponse(n queries.NotificationRow) notificationResponse {
	return notificationResponse{
		ID:         n.ID,
		ShipmentID: n.ShipmentID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}
