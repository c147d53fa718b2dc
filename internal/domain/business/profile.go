package business

import (
	"fmt"
	"time"

	vo "fiscalis/internal/domain/business/valueobjects"
)

// Profile represents the business profile aggregate. Profiles are owned by
// the business-management side of the application and are read-only to the
// generation engine.
type Profile struct {
	id                uint
	name              string
	category          string
	subcategory       string
	subjectToVAT      bool
	vatRegime         vo.VATRegime
	proratedDeduction bool
	active            bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NewProfile creates a new business profile
func NewProfile(name, category, subcategory string, subjectToVAT bool, vatRegime vo.VATRegime, proratedDeduction bool) (*Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if category == "" {
		return nil, fmt.Errorf("business category is required")
	}
	if subjectToVAT && vatRegime == vo.RegimeNone {
		return nil, fmt.Errorf("VAT regime is required for a business subject to VAT")
	}
	if !subjectToVAT && vatRegime != vo.RegimeNone {
		return nil, fmt.Errorf("VAT regime must be empty for a business not subject to VAT")
	}

	now := time.Now()
	return &Profile{
		name:              name,
		category:          category,
		subcategory:       subcategory,
		subjectToVAT:      subjectToVAT,
		vatRegime:         vatRegime,
		proratedDeduction: proratedDeduction,
		active:            true,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructProfile reconstructs a business profile from persistence
func ReconstructProfile(
	id uint,
	name, category, subcategory string,
	subjectToVAT bool,
	vatRegime vo.VATRegime,
	proratedDeduction bool,
	active bool,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("business profile ID cannot be zero")
	}
	if !vatRegime.IsValid() {
		return nil, fmt.Errorf("invalid VAT regime: %s", vatRegime)
	}

	return &Profile{
		id:                id,
		name:              name,
		category:          category,
		subcategory:       subcategory,
		subjectToVAT:      subjectToVAT,
		vatRegime:         vatRegime,
		proratedDeduction: proratedDeduction,
		active:            active,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

// ID returns the profile ID
func (p *Profile) ID() uint {
	return p.id
}

// SetID writes back the auto-generated ID after persistence
func (p *Profile) SetID(id uint) {
	p.id = id
}

// Name returns the business name
func (p *Profile) Name() string {
	return p.name
}

// Category returns the business category used for template matching
func (p *Profile) Category() string {
	return p.category
}

// Subcategory returns the business subcategory
func (p *Profile) Subcategory() string {
	return p.subcategory
}

// SubjectToVAT reports whether the business is subject to value-added tax
func (p *Profile) SubjectToVAT() bool {
	return p.subjectToVAT
}

// VATRegime returns the VAT reporting regime
func (p *Profile) VATRegime() vo.VATRegime {
	return p.vatRegime
}

// ProratedDeduction reports whether the business uses prorated deduction
func (p *Profile) ProratedDeduction() bool {
	return p.proratedDeduction
}

// Active reports whether the business is active
func (p *Profile) Active() bool {
	return p.active
}

// CreatedAt returns the creation timestamp
func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last update timestamp
func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}
