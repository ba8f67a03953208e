package ports

import (
	"context"
	"time"
)

// InvoiceTaxLine is one tax component applied on an invoice document.
type InvoiceTaxLine struct {
	Name   string
	Rate   float64
	Amount float64
}

// InvoiceDocument carries everything the renderer needs to produce the
// invoice artifact for a shipment.
type InvoiceDocument struct {
	ShipmentID      int64
	TrackingNumber  string
	ShipperName     string
	PickupAddress   string
	DeliveryAddress string
	Province        string
	IssuedAt        time.Time

	Subtotal float64
	TaxLines []InvoiceTaxLine
	Total    float64
}

// InvoiceRenderer renders invoice artifacts. The artifact format and storage
// location are adapter concerns; the core only keeps the returned reference.
type InvoiceRenderer interface {
	// Render produces the artifact and returns its stable reference (a path
	// or URL). Rendering the same document twice returns the same reference.
	Render(ctx context.Context, doc InvoiceDocument) (string, error)

	// ArtifactExists reports whether the referenced artifact is still
	// present, supporting the reconciliation check on invoice access.
	ArtifactExists(ref string) bool
}
