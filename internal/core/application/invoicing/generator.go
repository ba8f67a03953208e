// Package invoicing produces invoice artifacts for shipments that reached
// pickup. Generation is tax-aware and idempotent: each shipment gets exactly
// one invoice, and a lost artifact is re-rendered from the persisted amounts
// without ever changing them.
package invoicing

import (
	"context"
	"math"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"go.uber.org/zap"
)

// Generator builds invoice documents from shipment state and hands them to
// the configured renderer. It is safe for concurrent use: all state lives in
// the shipment aggregate and the repositories passed per call.
type Generator struct {
	renderer ports.InvoiceRenderer
	taxes    services.TaxCalculator
	logger   *zap.Logger
}

// NewGenerator creates an invoice generator using the given renderer.
func NewGenerator(renderer ports.InvoiceRenderer, logger *zap.Logger) *Generator {
	return &Generator{
		renderer: renderer,
		taxes:    services.NewTaxCalculator(),
		logger:   logger,
	}
}

// EnsureInvoice guarantees the shipment carries a rendered invoice.
//
// Three cases:
//   - invoice recorded and artifact present: nothing to do
//   - invoice recorded but artifact missing: re-render from the persisted
//     amounts, no state change
//   - no invoice yet: compute the tax breakdown for the shipment's province,
//     render the artifact and attach the reference and amounts in one update
//
// A renderer failure comes back as a DependencyFailureError so callers can
// distinguish an infrastructure problem from a business rejection.
func (g *Generator) EnsureInvoice(
	ctx context.Context,
	shipments ports.ShipmentRepository,
	accounts ports.AccountRepository,
	s *shipment.Shipment,
	now time.Time,
) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.InvoiceURL() != nil {
		if g.renderer.ArtifactExists(*s.InvoiceURL()) {
			return nil
		}
		return g.reRender(ctx, accounts, s)
	}

	if s.QuoteAmount() == nil {
		return errs.NewValueIsRequiredError("quote amount")
	}

	subtotal := *s.QuoteAmount()
	breakdown := g.taxes.Calculate(subtotal, s.Province())
	if breakdown.FallbackApplied {
		g.logger.Warn("unknown tax province, default GST regime applied",
			zap.Int64("shipment_id", s.ID()),
			zap.String("province", string(s.Province())),
		)
	}

	doc, err := g.buildDocument(ctx, accounts, s, subtotal, now)
	if err != nil {
		return err
	}

	ref, err := g.renderer.Render(ctx, doc)
	if err != nil {
		return errs.NewDependencyFailureError("invoice renderer", err)
	}

	if err = s.AttachInvoice(ref, breakdown.Total, roundedTotal(subtotal, breakdown.Total), now); err != nil {
		return err
	}

	if err = shipments.Update(ctx, s); err != nil {
		return err
	}

	g.logger.Info("invoice generated",
		zap.Int64("shipment_id", s.ID()),
		zap.String("invoice", ref),
		zap.Float64("total", *s.TotalAmount()),
	)
	return nil
}

// reRender reproduces a missing artifact from the persisted amounts. The
// stored reference and amounts stay untouched: the invoice was already
// issued, only its file went missing.
func (g *Generator) reRender(ctx context.Context, accounts ports.AccountRepository, s *shipment.Shipment) error {
	doc, err := g.buildDocument(ctx, accounts, s, *s.QuoteAmount(), s.UpdatedAt())
	if err != nil {
		return err
	}

	ref, err := g.renderer.Render(ctx, doc)
	if err != nil {
		return errs.NewDependencyFailureError("invoice renderer", err)
	}

	g.logger.Warn("missing invoice artifact re-rendered",
		zap.Int64("shipment_id", s.ID()),
		zap.String("invoice", ref),
	)
	return nil
}

func (g *Generator) buildDocument(
	ctx context.Context,
	accounts ports.AccountRepository,
	s *shipment.Shipment,
	subtotal float64,
	issuedAt time.Time,
) (ports.InvoiceDocument, error) {
	shipperName := ""
	shipper, err := accounts.Get(ctx, s.ShipperID())
	if err != nil {
		// The invoice is still issuable without the display name.
		g.logger.Warn("shipper lookup failed for invoice",
			zap.Int64("shipment_id", s.ID()),
			zap.Error(err),
		)
	} else {
		shipperName = shipper.Username()
	}

	breakdown := g.taxes.Calculate(subtotal, s.Province())
	taxLines := make([]ports.InvoiceTaxLine, 0, 2)
	for _, component := range breakdown.Components() {
		taxLines = append(taxLines, ports.InvoiceTaxLine{
			Name:   component.Name,
			Rate:   component.Rate,
			Amount: component.Amount,
		})
	}

	return ports.InvoiceDocument{
		ShipmentID:      s.ID(),
		TrackingNumber:  s.TrackingNumber(),
		ShipperName:     shipperName,
		PickupAddress:   s.Pickup().String(),
		DeliveryAddress: s.Delivery().String(),
		Province:        string(s.Province()),
		IssuedAt:        issuedAt,
		Subtotal:        subtotal,
		TaxLines:        taxLines,
		Total:           roundedTotal(subtotal, breakdown.Total),
	}, nil
}

func roundedTotal(subtotal, tax float64) float64 {
	return math.Round((subtotal+tax)*100) / 100
}
