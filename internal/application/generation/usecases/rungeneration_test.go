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
	"fiscalis/internal/domain/business"
	businessvo "fiscalis/internal/domain/business/valueobjects"
	"fiscalis/internal/domain/calendar"
	calendarvo "fiscalis/internal/domain/calendar/valueobjects"
	"fiscalis/internal/domain/obligation"
)

var testClock = func() time.Time {
	return time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
}

func testWindow() (time.Time, time.Time) {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func fixtureProfile(t *testing.T, id uint, name string) *business.Profile {
	t.Helper()
	profile, err := business.ReconstructProfile(
		id, name, "services", "",
		false, businessvo.RegimeNone, false, true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return profile
}

// fixtureEntries yields five due dates per matching business over 2024: one
// annual income entry plus one quarterly social entry.
func fixtureEntries(t *testing.T) []*calendar.Entry {
	t.Helper()
	annual, err := calendar.ReconstructEntry(
		1, "services", "", calendar.FamilyIncome, "declaration",
		calendarvo.FrequencyAnnual, 15, time.May,
		"annual income declaration", "", "2042", "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	quarterly, err := calendar.ReconstructEntry(
		2, "services", "", calendar.FamilySocial, "payment",
		calendarvo.FrequencyQuarterly, 15, 0,
		"quarterly contributions", "", "", "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	return []*calendar.Entry{annual, quarterly}
}

func newRunUseCase(businesses *mockBusinessRepo, catalog *mockCalendarRepo, obligations *mockObligationRepo, tx TransactionManager) *RunGenerationUseCase {
	log := nopLogger()
	guard := services.NewDuplicateGuard(obligations, log)
	synthesizer := NewSynthesizeObligationsUseCase(guard, log)
	synthesizer.SetClock(testClock)

	uc := NewRunGenerationUseCase(businesses, catalog, obligations, synthesizer, tx, log)
	uc.SetClock(testClock)
	return uc
}

func TestRunGeneration_FullPortfolio(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)

	profiles := []*business.Profile{
		fixtureProfile(t, 1, "Corner Bakery"),
		fixtureProfile(t, 2, "Design Studio"),
	}
	businesses.On("ListActive", mock.Anything).Return(profiles, nil)
	catalog.On("ListAll", mock.Anything).Return(fixtureEntries(t), nil)
	obligations.On("CountGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil)

	var created []*obligation.Obligation
	obligations.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).([]*obligation.Obligation)...)
		}).
		Return(nil)

	uc := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	start, end := testWindow()

	summary, err := uc.Execute(context.Background(), RunGenerationCommand{
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerManual,
		Actor:       "admin@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 2, summary.BusinessesConsidered)
	assert.Equal(t, 10, summary.ObligationsCreated)
	assert.Equal(t, 0, summary.DuplicatesSkipped)
	assert.Len(t, summary.PerBusiness, 2)
	assert.Empty(t, summary.Errors)

	require.Len(t, created, 10)
	for _, draft := range created {
		assert.True(t, draft.GeneratedFromCalendar())
		assert.Equal(t, TriggerManual, draft.Metadata()[obligation.MetadataKeyTrigger])
	}
	obligations.AssertNumberOfCalls(t, "CreateBatch", 2)
}

func TestRunGeneration_CatalogErrorAbortsRun(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)

	catalog.On("ListAll", mock.Anything).Return(nil, errors.New("connection refused"))

	uc := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	start, end := testWindow()

	summary, err := uc.Execute(context.Background(), RunGenerationCommand{
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerManual,
		Actor:       "admin@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, summary)
	businesses.AssertNotCalled(t, "ListActive", mock.Anything)
}

func TestRunGeneration_PortfolioFetchErrorAbortsRun(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)

	catalog.On("ListAll", mock.Anything).Return(fixtureEntries(t), nil)
	businesses.On("ListActive", mock.Anything).Return(nil, errors.New("connection refused"))

	uc := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	start, end := testWindow()

	summary, err := uc.Execute(context.Background(), RunGenerationCommand{
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerManual,
		Actor:       "admin@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, summary)
}

func TestRunGeneration_MissingSingleBusinessIsReported(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)

	catalog.On("ListAll", mock.Anything).Return(fixtureEntries(t), nil)
	businesses.On("GetByID", mock.Anything, uint(5)).Return(nil, errors.New("business profile not found"))

	uc := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	start, end := testWindow()
	businessID := uint(5)

	summary, err := uc.Execute(context.Background(), RunGenerationCommand{
		BusinessID:  &businessID,
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerNewBusiness,
		Actor:       "admin@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.BusinessesConsidered)
	assert.Equal(t, 0, summary.ObligationsCreated)
	assert.Contains(t, summary.Errors, uint(5))
	obligations.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestRunGeneration_SecondRunSkipsExistingObligations(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)

	businesses.On("ListActive", mock.Anything).
		Return([]*business.Profile{fixtureProfile(t, 1, "Corner Bakery")}, nil)
	catalog.On("ListAll", mock.Anything).Return(fixtureEntries(t), nil)
	obligations.On("CountGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil)

	uc := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	start, end := testWindow()

	summary, err := uc.Execute(context.Background(), RunGenerationCommand{
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerScheduleTick,
		Actor:       "system:scheduler",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.ObligationsCreated)
	assert.Equal(t, 5, summary.DuplicatesSkipped)
	assert.Empty(t, summary.Errors)
	obligations.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestRunGeneration_FailingBusinessDoesNotAbortOthers(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)

	profiles := []*business.Profile{
		fixtureProfile(t, 1, "Corner Bakery"),
		fixtureProfile(t, 2, "Design Studio"),
		fixtureProfile(t, 3, "Print Shop"),
	}
	businesses.On("ListActive", mock.Anything).Return(profiles, nil)
	catalog.On("ListAll", mock.Anything).Return(fixtureEntries(t), nil)
	obligations.On("CountGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil)

	batchFor := func(businessID uint) interface{} {
		return mock.MatchedBy(func(drafts []*obligation.Obligation) bool {
			return len(drafts) > 0 && drafts[0].BusinessID() == businessID
		})
	}
	obligations.On("CreateBatch", mock.Anything, batchFor(1)).Return(nil)
	obligations.On("CreateBatch", mock.Anything, batchFor(2)).Return(errors.New("deadlock detected"))
	obligations.On("CreateBatch", mock.Anything, batchFor(3)).Return(nil)

	uc := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	start, end := testWindow()

	summary, err := uc.Execute(context.Background(), RunGenerationCommand{
		WindowStart: start,
		WindowEnd:   end,
		Trigger:     TriggerCatalogChange,
		Actor:       "admin@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.BusinessesConsidered)
	assert.Equal(t, 10, summary.ObligationsCreated)
	assert.Contains(t, summary.Errors, uint(2))
	assert.NotContains(t, summary.Errors, uint(1))
	assert.NotContains(t, summary.Errors, uint(3))
	assert.Len(t, summary.PerBusiness, 2)
}
