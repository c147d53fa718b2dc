package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fiscalis/internal/application/generation/services"
	"fiscalis/internal/domain/calendar"
	calendarvo "fiscalis/internal/domain/calendar/valueobjects"
	obligationvo "fiscalis/internal/domain/obligation/valueobjects"
)

func TestSynthesizeObligations_BuildsDraftsFromSchedule(t *testing.T) {
	obligations := new(mockObligationRepo)
	obligations.On("CountGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil)

	log := nopLogger()
	uc := NewSynthesizeObligationsUseCase(services.NewDuplicateGuard(obligations, log), log)
	uc.SetClock(testClock)

	entry, err := calendar.ReconstructEntry(
		1, "services", "", calendar.FamilyIncome, "declaration",
		calendarvo.FrequencyAnnual, 15, time.May,
		"annual income declaration", "File online.", "2042", "https://example.org/2042",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	start, end := testWindow()
	result, err := uc.Execute(context.Background(), SynthesizeObligationsCommand{
		Business:    fixtureProfile(t, 42, "Corner Bakery"),
		Entry:       entry,
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerManual,
	})

	require.NoError(t, err)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, 0, result.DuplicatesSkipped)

	draft := result.Drafts[0]
	assert.Equal(t, uint(42), draft.BusinessID())
	assert.Equal(t, "Income tax: annual income declaration (2024)", draft.Title())
	assert.Equal(t, "File online. Form 2042.", draft.Description())
	assert.Equal(t, calendar.FamilyIncome, draft.Tag())
	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), draft.DueDate())
	assert.Equal(t, "2024", draft.Period())
	assert.Equal(t, "https://example.org/2042", draft.Link())
	// Due mid-May, seen from January 10
	assert.Equal(t, obligationvo.PriorityLow, draft.Priority())
	assert.Equal(t, uint(1), draft.CalendarEntryID())
}

func TestSynthesizeObligations_PriorityTracksDueDateDistance(t *testing.T) {
	obligations := new(mockObligationRepo)
	obligations.On("CountGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil)

	log := nopLogger()
	uc := NewSynthesizeObligationsUseCase(services.NewDuplicateGuard(obligations, log), log)
	uc.SetClock(testClock)

	entry, err := calendar.ReconstructEntry(
		2, "services", "", calendar.FamilySocial, "payment",
		calendarvo.FrequencyMonthly, 15, 0,
		"", "", "", "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	// Window spanning three months around the January 10 clock
	result, err := uc.Execute(context.Background(), SynthesizeObligationsCommand{
		Business:    fixtureProfile(t, 42, "Corner Bakery"),
		Entry:       entry,
		WindowStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		Trigger:     TriggerScheduleTick,
	})

	require.NoError(t, err)
	require.Len(t, result.Drafts, 3)
	// January 15 is five days out, February 15 is 36 days out
	assert.Equal(t, obligationvo.PriorityHigh, result.Drafts[0].Priority())
	assert.Equal(t, obligationvo.PriorityLow, result.Drafts[1].Priority())
	assert.Equal(t, obligationvo.PriorityLow, result.Drafts[2].Priority())
}

func TestSynthesizeObligations_SkipsExistingDuplicates(t *testing.T) {
	obligations := new(mockObligationRepo)
	existing := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	obligations.On("CountGenerated", mock.Anything, uint(42), calendar.FamilyIncome, existing, "2024").
		Return(int64(1), nil)

	log := nopLogger()
	uc := NewSynthesizeObligationsUseCase(services.NewDuplicateGuard(obligations, log), log)
	uc.SetClock(testClock)

	entry, err := calendar.ReconstructEntry(
		1, "services", "", calendar.FamilyIncome, "declaration",
		calendarvo.FrequencyAnnual, 15, time.May,
		"", "", "", "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	start, end := testWindow()
	result, err := uc.Execute(context.Background(), SynthesizeObligationsCommand{
		Business:    fixtureProfile(t, 42, "Corner Bakery"),
		Entry:       entry,
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerManual,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Drafts)
	assert.Equal(t, 1, result.DuplicatesSkipped)
}

func TestSynthesizeObligations_GuardFailureDoesNotBlockGeneration(t *testing.T) {
	obligations := new(mockObligationRepo)
	obligations.On("CountGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection refused"))

	log := nopLogger()
	uc := NewSynthesizeObligationsUseCase(services.NewDuplicateGuard(obligations, log), log)
	uc.SetClock(testClock)

	entry, err := calendar.ReconstructEntry(
		1, "services", "", calendar.FamilyIncome, "declaration",
		calendarvo.FrequencyAnnual, 15, time.May,
		"", "", "", "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	start, end := testWindow()
	result, err := uc.Execute(context.Background(), SynthesizeObligationsCommand{
		Business:    fixtureProfile(t, 42, "Corner Bakery"),
		Entry:       entry,
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerManual,
	})

	require.NoError(t, err)
	assert.Len(t, result.Drafts, 1)
	assert.Equal(t, 0, result.DuplicatesSkipped)
}

func TestSynthesizeObligations_RequiresBusinessAndEntry(t *testing.T) {
	log := nopLogger()
	uc := NewSynthesizeObligationsUseCase(services.NewDuplicateGuard(new(mockObligationRepo), log), log)

	_, err := uc.Execute(context.Background(), SynthesizeObligationsCommand{})

	assert.Error(t, err)
}
