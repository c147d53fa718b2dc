package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiscalis/internal/domain/business"
	businessvo "fiscalis/internal/domain/business/valueobjects"
	vo "fiscalis/internal/domain/calendar/valueobjects"
	"fiscalis/internal/shared/errors"
)

func testProfile(t *testing.T, category string, subjectToVAT bool, regime businessvo.VATRegime, prorated bool) *business.Profile {
	t.Helper()
	profile, err := business.ReconstructProfile(
		1, "Test Business", category, "",
		subjectToVAT, regime, prorated, true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return profile
}

func catalogEntry(t *testing.T, id uint, category, tag string, frequency vo.Frequency) *Entry {
	t.Helper()
	entry, err := ReconstructEntry(
		id, category, "", tag, "declaration",
		frequency, 15, time.May,
		"", "", "", "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return entry
}

func TestMatchEntries_FiltersByCategory(t *testing.T) {
	profile := testProfile(t, "services", false, businessvo.RegimeNone, false)
	entries := []*Entry{
		catalogEntry(t, 1, "services", FamilyIncome, vo.FrequencyAnnual),
		catalogEntry(t, 2, "retail", FamilyIncome, vo.FrequencyAnnual),
	}

	matched, err := MatchEntries(profile, entries)

	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, uint(1), matched[0].ID())
}

func TestMatchEntries_NotSubjectToVATExcludesVATEntries(t *testing.T) {
	profile := testProfile(t, "services", false, businessvo.RegimeNone, false)
	entries := []*Entry{
		catalogEntry(t, 1, "services", FamilyVAT, vo.FrequencyMonthly),
		catalogEntry(t, 2, "services", FamilyVAT, vo.FrequencyAnnual),
		catalogEntry(t, 3, "services", FamilySocial, vo.FrequencyQuarterly),
	}

	matched, err := MatchEntries(profile, entries)

	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, FamilySocial, matched[0].Tag())
}

func TestMatchEntries_VATFrequencyFollowsRegime(t *testing.T) {
	profile := testProfile(t, "services", true, businessvo.RegimeMonthly, false)
	entries := []*Entry{
		catalogEntry(t, 1, "services", FamilyVAT, vo.FrequencyMonthly),
		catalogEntry(t, 2, "services", FamilyVAT, vo.FrequencyQuarterly),
		catalogEntry(t, 3, "services", FamilyVAT, vo.FrequencyAnnual),
	}

	matched, err := MatchEntries(profile, entries)

	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, uint(1), matched[0].ID())
}

func TestMatchEntries_ProratedDeductionAddsAnnualVATEntry(t *testing.T) {
	profile := testProfile(t, "services", true, businessvo.RegimeQuarterly, true)
	entries := []*Entry{
		catalogEntry(t, 1, "services", FamilyVAT, vo.FrequencyQuarterly),
		catalogEntry(t, 2, "services", FamilyVAT, vo.FrequencyAnnual),
		catalogEntry(t, 3, "services", FamilyVAT, vo.FrequencyMonthly),
	}

	matched, err := MatchEntries(profile, entries)

	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, vo.FrequencyAnnual, matched[0].Frequency())
	assert.Equal(t, vo.FrequencyQuarterly, matched[1].Frequency())
}

func TestMatchEntries_MissingCategoryIsValidationError(t *testing.T) {
	profile := testProfile(t, "", false, businessvo.RegimeNone, false)
	entries := []*Entry{
		catalogEntry(t, 1, "services", FamilyIncome, vo.FrequencyAnnual),
	}

	matched, err := MatchEntries(profile, entries)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Nil(t, matched)
}

func TestMatchEntries_ResultOrderIsDeterministic(t *testing.T) {
	profile := testProfile(t, "services", true, businessvo.RegimeMonthly, true)
	entries := []*Entry{
		catalogEntry(t, 1, "services", FamilySocial, vo.FrequencyQuarterly),
		catalogEntry(t, 2, "services", FamilyIncome, vo.FrequencyAnnual),
		catalogEntry(t, 3, "services", FamilyVAT, vo.FrequencyMonthly),
	}
	reversed := []*Entry{entries[2], entries[1], entries[0]}

	first, err := MatchEntries(profile, entries)
	require.NoError(t, err)
	second, err := MatchEntries(profile, reversed)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID(), second[i].ID())
	}
}
