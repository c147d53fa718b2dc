package calendar

import (
	"sort"

	"fiscalis/internal/domain/business"
	vo "fiscalis/internal/domain/calendar/valueobjects"
	"fiscalis/internal/shared/errors"
)

// MatchEntries filters the catalog down to the entries applicable to the
// given business profile.
//
// The base filter is category equality. VAT-family entries additionally
// follow the business's VAT situation: a business not subject to VAT never
// matches them; a business subject to VAT matches those whose frequency
// equals its reporting regime, plus annual ones when the business uses
// prorated deduction.
//
// The result is ordered by tag, frequency, anchor month, then anchor day so
// repeated runs see the catalog in the same order.
func MatchEntries(profile *business.Profile, entries []*Entry) ([]*Entry, error) {
	if profile.Category() == "" {
		return nil, errors.NewValidationError("business profile is missing its category")
	}

	var matched []*Entry
	for _, entry := range entries {
		if entry.Category() != profile.Category() {
			continue
		}
		if entry.Tag() == FamilyVAT && !vatApplies(profile, entry) {
			continue
		}
		matched = append(matched, entry)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Tag() != b.Tag() {
			return a.Tag() < b.Tag()
		}
		if a.Frequency() != b.Frequency() {
			return a.Frequency() < b.Frequency()
		}
		if a.AnchorMonth() != b.AnchorMonth() {
			return a.AnchorMonth() < b.AnchorMonth()
		}
		return a.AnchorDay() < b.AnchorDay()
	})

	return matched, nil
}

func vatApplies(profile *business.Profile, entry *Entry) bool {
	if !profile.SubjectToVAT() {
		return false
	}
	if entry.Frequency().String() == profile.VATRegime().String() {
		return true
	}
	// Prorated deduction adds an annual regularization on top of the regime.
	return entry.Frequency() == vo.FrequencyAnnual && profile.ProratedDeduction()
}
