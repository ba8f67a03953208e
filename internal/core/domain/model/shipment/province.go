package shipment

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// Province is a two-letter Canadian province or territory code. It selects
// the tax regime applied when the shipment is invoiced and is immutable after
// creation.
type Province string

// canadianProvinces enumerates the valid province and territory codes.
var canadianProvinces = map[Province]struct{}{
	"AB": {}, "BC": {}, "MB": {}, "NB": {}, "NL": {}, "NS": {}, "NT": {},
	"NU": {}, "ON": {}, "PE": {}, "QC": {}, "SK": {}, "YT": {},
}

// NewProvince normalizes and validates a province code.
func NewProvince(code string) (Province, error) {
	if code == "" {
		return "", errs.NewValueIsRequiredError("province")
	}
	p := Province(strings.ToUpper(strings.TrimSpace(code)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks the code against the known provinces and territories.
func (p Province) Validate() error {
	if _, ok := canadianProvinces[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"province",
			fmt.Errorf("%q is not a Canadian province or territory code", string(p)),
		)
	}
	return nil
}

// IsKnown reports whether the code belongs to a known province or territory
// without allocating an error. Tax calculation uses this to decide whether
// the fallback regime applies.
func (p Province) IsKnown() bool {
	_, ok := canadianProvinces[p]
	return ok
}

// String returns the wire representation of the province code.
func (p Province) String() string {
	return string(p)
}
