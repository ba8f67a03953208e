// Package pdf renders invoice artifacts as PDF files on local disk.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"courier/internal/core/ports"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// InvoiceRenderer renders invoice PDFs into a directory. The filename is
// derived from the shipment id, so rendering the same shipment twice
// overwrites the same file and returns the same reference.
type InvoiceRenderer struct {
	dir string
}

// NewInvoiceRenderer creates a renderer writing into dir, creating it if needed.
func NewInvoiceRenderer(dir string) (*InvoiceRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create invoice directory: %w", err)
	}
	return &InvoiceRenderer{dir: dir}, nil
}

// Render produces the invoice PDF and returns its path.
func (r *InvoiceRenderer) Render(ctx context.Context, doc ports.InvoiceDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(14,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("Tracking number: "+doc.TrackingNumber, props.Text{Top: 0}),
			text.New(fmt.Sprintf("Shipment: #%d", doc.ShipmentID), props.Text{Top: 5}),
			text.New("Date of issue: "+doc.IssuedAt.Format("January 2, 2006"), props.Text{Top: 10}),
			text.New("Province: "+doc.Province, props.Text{Top: 15}),
		),
		col.New(6).Add(
			text.New("Billed to", props.Text{Style: fontstyle.Bold}),
			text.New(doc.ShipperName, props.Text{Top: 5}),
		),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Pickup", props.Text{Style: fontstyle.Bold}),
			text.New(doc.PickupAddress, props.Text{Top: 5, Size: 9}),
		),
		col.New(6).Add(
			text.New("Delivery", props.Text{Style: fontstyle.Bold}),
			text.New(doc.DeliveryAddress, props.Text{Top: 5, Size: 9}),
		),
	)

	m.AddRow(10,
		text.NewCol(8, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(10,
		text.NewCol(8, "Courier service "+doc.TrackingNumber, props.Text{Size: 9}),
		text.NewCol(4, fmt.Sprintf("$%.2f", doc.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)

	m.AddRow(8,
		col.New(6),
		text.NewCol(3, "Subtotal", props.Text{Size: 9}),
		text.NewCol(3, fmt.Sprintf("$%.2f", doc.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)

	for _, line := range doc.TaxLines {
		m.AddRow(8,
			col.New(6),
			text.NewCol(3, fmt.Sprintf("%s (%g%%)", line.Name, line.Rate*100), props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("$%.2f", line.Amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, fmt.Sprintf("$%.2f", doc.Total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	rendered, err := m.Generate()
	if err != nil {
		return "", err
	}

	path := r.pathFor(doc.ShipmentID)
	if err = os.WriteFile(path, rendered.GetBytes(), 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// ArtifactExists reports whether the referenced PDF is still on disk.
func (r *InvoiceRenderer) ArtifactExists(ref string) bool {
	info, err := os.Stat(ref)
	return err == nil && !info.IsDir()
}

func (r *InvoiceRenderer) pathFor(shipmentID int64) string {
	return filepath.Join(r.dir, fmt.Sprintf("invoice-%d.pdf", shipmentID))
}
