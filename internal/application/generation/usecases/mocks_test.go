package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"fiscalis/internal/domain/audit"
	"fiscalis/internal/domain/business"
	"fiscalis/internal/domain/calendar"
	"fiscalis/internal/domain/obligation"
	"fiscalis/internal/shared/logger"
)

func nopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockBusinessRepo struct {
	mock.Mock
}

func (m *mockBusinessRepo) GetByID(ctx context.Context, id uint) (*business.Profile, error) {
	args := m.Called(ctx, id)
	if profile := args.Get(0); profile != nil {
		return profile.(*business.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBusinessRepo) ListActive(ctx context.Context) ([]*business.Profile, error) {
	args := m.Called(ctx)
	if profiles := args.Get(0); profiles != nil {
		return profiles.([]*business.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCalendarRepo struct {
	mock.Mock
}

func (m *mockCalendarRepo) ListAll(ctx context.Context) ([]*calendar.Entry, error) {
	args := m.Called(ctx)
	if entries := args.Get(0); entries != nil {
		return entries.([]*calendar.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockObligationRepo struct {
	mock.Mock
}

func (m *mockObligationRepo) CreateBatch(ctx context.Context, obligations []*obligation.Obligation) error {
	args := m.Called(ctx, obligations)
	return args.Error(0)
}

func (m *mockObligationRepo) CountGenerated(ctx context.Context, businessID uint, tag string, dueDate time.Time, period string) (int64, error) {
	args := m.Called(ctx, businessID, tag, dueDate, period)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockObligationRepo) DeleteGenerated(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// mockTxManager runs the callback directly without a database.
type mockTxManager struct {
	err error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockActorResolver struct {
	mock.Mock
}

func (m *mockActorResolver) Resolve(ctx context.Context, actorID string) (*Actor, error) {
	args := m.Called(ctx, actorID)
	if actor := args.Get(0); actor != nil {
		return actor.(*Actor), args.Error(1)
	}
	return nil, args.Error(1)
}
