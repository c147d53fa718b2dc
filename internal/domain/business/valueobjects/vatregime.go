package valueobjects

import "fmt"

// VATRegime is the reporting regime a business declares its value-added
// tax under. Empty when the business is not subject to VAT.
type VATRegime string

const (
	RegimeMonthly   VATRegime = "monthly"
	RegimeQuarterly VATRegime = "quarterly"
	RegimeAnnual    VATRegime = "annual"
	RegimeNone      VATRegime = ""
)

// NewVATRegime validates and returns a VAT regime.
func NewVATRegime(value string) (VATRegime, error) {
	r := VATRegime(value)
	if !r.IsValid() {
		return RegimeNone, fmt.Errorf("invalid VAT regime: %s", value)
	}
	return r, nil
}

func (r VATRegime) IsValid() bool {
	switch r {
	case RegimeMonthly, RegimeQuarterly, RegimeAnnual, RegimeNone:
		return true
	}
	return false
}

func (r VATRegime) String() string {
	return string(r)
}
