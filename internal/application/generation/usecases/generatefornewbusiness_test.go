package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fiscalis/internal/domain/audit"
	"fiscalis/internal/shared/constants"
	"fiscalis/internal/shared/errors"
)

func adminActor(id string) *Actor {
	return &Actor{ID: id, Name: id, Roles: []string{constants.RoleAdmin}}
}

func TestGenerateForNewBusiness_ScopesRunToBusiness(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)
	auditLog := new(mockAuditRepo)
	resolver := new(mockActorResolver)

	profile := fixtureProfile(t, 7, "Design Studio")
	resolver.On("Resolve", mock.Anything, "admin@example.com").Return(adminActor("admin@example.com"), nil)
	catalog.On("ListAll", mock.Anything).Return(fixtureEntries(t), nil)
	businesses.On("GetByID", mock.Anything, uint(7)).Return(profile, nil)
	obligations.On("CountGenerated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil)
	obligations.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	var recorded *audit.Entry
	auditLog.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*audit.Entry)
		}).
		Return(nil)

	run := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	uc := NewGenerateForNewBusinessUseCase(run, auditLog, resolver, 12, nopLogger())
	uc.SetClock(testClock)

	summary, err := uc.Execute(context.Background(), GenerateForNewBusinessCommand{
		BusinessID: 7,
		ActorID:    "admin@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, TriggerNewBusiness, summary.Trigger)
	assert.Equal(t, 1, summary.BusinessesConsidered)
	assert.Positive(t, summary.ObligationsCreated)
	businesses.AssertNotCalled(t, "ListActive", mock.Anything)

	require.NotNil(t, recorded)
	assert.Equal(t, audit.KindNewBusinessRun, recorded.Kind())
	assert.Equal(t, "admin@example.com", recorded.Actor())
}

func TestGenerateForNewBusiness_MissingActorIsForbidden(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)
	auditLog := new(mockAuditRepo)
	resolver := new(mockActorResolver)

	auditLog.On("Append", mock.Anything, mock.Anything).Return(nil)

	run := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	uc := NewGenerateForNewBusinessUseCase(run, auditLog, resolver, 12, nopLogger())

	summary, err := uc.Execute(context.Background(), GenerateForNewBusinessCommand{
		BusinessID: 7,
		ActorID:    "",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Nil(t, summary)
	catalog.AssertNotCalled(t, "ListAll", mock.Anything)
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestGenerateForNewBusiness_UnresolvedActorIsForbidden(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)
	auditLog := new(mockAuditRepo)
	resolver := new(mockActorResolver)

	resolver.On("Resolve", mock.Anything, "stranger@example.com").
		Return(nil, errors.NewForbiddenError("unknown actor"))

	var recorded *audit.Entry
	auditLog.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*audit.Entry)
		}).
		Return(nil)

	run := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	uc := NewGenerateForNewBusinessUseCase(run, auditLog, resolver, 12, nopLogger())

	summary, err := uc.Execute(context.Background(), GenerateForNewBusinessCommand{
		BusinessID: 7,
		ActorID:    "stranger@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, summary)
	catalog.AssertNotCalled(t, "ListAll", mock.Anything)

	// The refused trigger still leaves an audit trace
	require.NotNil(t, recorded)
	assert.Equal(t, audit.KindNewBusinessRun, recorded.Kind())
}

func TestGenerateForNewBusiness_ActorWithoutRolesIsForbidden(t *testing.T) {
	businesses := new(mockBusinessRepo)
	catalog := new(mockCalendarRepo)
	obligations := new(mockObligationRepo)
	auditLog := new(mockAuditRepo)
	resolver := new(mockActorResolver)

	resolver.On("Resolve", mock.Anything, "viewer@example.com").
		Return(&Actor{ID: "viewer@example.com", Roles: []string{"viewer"}}, nil)
	auditLog.On("Append", mock.Anything, mock.Anything).Return(nil)

	run := newRunUseCase(businesses, catalog, obligations, &mockTxManager{})
	uc := NewGenerateForNewBusinessUseCase(run, auditLog, resolver, 12, nopLogger())

	summary, err := uc.Execute(context.Background(), GenerateForNewBusinessCommand{
		BusinessID: 7,
		ActorID:    "viewer@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Nil(t, summary)
}
