package services

import (
	"math"

	"courier/internal/core/domain/model/shipment"
)

// taxRegime holds the static rates a province applies to a sale. Exactly the
// levies with nonzero rates apply; HST provinces use HST alone, Quebec uses
// GST plus QST, and so on.
type taxRegime struct {
	gst float64
	pst float64
	qst float64
	hst float64
}

// taxRegimes is the fixed per-province rate table. Rates are static
// configuration, not derived at runtime.
var taxRegimes = map[shipment.Province]taxRegime{
	"AB": {gst: 0.05},
	"BC": {gst: 0.05, pst: 0.07},
	"MB": {gst: 0.05, pst: 0.07},
	"NB": {hst: 0.15},
	"NL": {hst: 0.15},
	"NS": {hst: 0.15},
	"NT": {gst: 0.05},
	"NU": {gst: 0.05},
	"ON": {hst: 0.13},
	"PE": {hst: 0.15},
	"QC": {gst: 0.05, qst: 0.09975},
	"SK": {gst: 0.05, pst: 0.06},
	"YT": {gst: 0.05},
}

// fallbackRegime applies when the province code is unknown: GST only. The
// breakdown flags the fallback so billing can surface the discrepancy instead
// of silently charging the wrong tax.
var fallbackRegime = taxRegime{gst: 0.05}

// TaxBreakdown is the result of a tax calculation. Each component is rounded
// to the cent; Total is the sum of the applied components.
type TaxBreakdown struct {
	GST   float64
	PST   float64
	QST   float64
	HST   float64
	Total float64

	// FallbackApplied is true when the province was unknown and the default
	// GST-only regime was used instead.
	FallbackApplied bool

	// regime keeps the applied rates so Components can report them.
	regime taxRegime
}

// TaxCalculator computes the tax breakdown for a sale amount under a
// province's regime. It is a pure domain service: fixed rate table in, no
// side effects out.
type TaxCalculator struct{}

// NewTaxCalculator creates the calculator. It is stateless; the zero value is
// equally usable.
func NewTaxCalculator() TaxCalculator {
	return TaxCalculator{}
}

// Calculate applies the province's tax regime to baseAmount. Unknown province
// codes do not fail: the fallback regime applies and is flagged in the result
// because it affects billing correctness.
func (c TaxCalculator) Calculate(baseAmount float64, province shipment.Province) TaxBreakdown {
	regime, ok := taxRegimes[province]
	if !ok {
		regime = fallbackRegime
	}

	breakdown := TaxBreakdown{
		GST:             roundToCent(baseAmount * regime.gst),
		PST:             roundToCent(baseAmount * regime.pst),
		QST:             roundToCent(baseAmount * regime.qst),
		HST:             roundToCent(baseAmount * regime.hst),
		FallbackApplied: !ok,
		regime:          regime,
	}
	breakdown.Total = roundToCent(breakdown.GST + breakdown.PST + breakdown.QST + breakdown.HST)
	return breakdown
}

// TaxComponent is one nonzero levy of a breakdown, for display on documents.
type TaxComponent struct {
	Name   string
	Rate   float64
	Amount float64
}

// Components returns the nonzero levies of the breakdown in a stable order.
func (b TaxBreakdown) Components() []TaxComponent {
	components := make([]TaxComponent, 0, 2)
	for _, c := range []struct {
		name   string
		rate   float64
		amount float64
	}{
		{"GST", b.regime.gst, b.GST},
		{"PST", b.regime.pst, b.PST},
		{"QST", b.regime.qst, b.QST},
		{"HST", b.regime.hst, b.HST},
	} {
		if c.amount != 0 {
			components = append(components, TaxComponent{Name: c.name, Rate: c.rate, Amount: c.amount})
		}
	}
	return components
}

func roundToCent(amount float64) float64 {
	return math.Round(amount*100) / 100
}
