package usecases

import (
	"context"
	"sync/atomic"
	"time"

	"fiscalis/internal/application/generation/dto"
	"fiscalis/internal/domain/audit"
	"fiscalis/internal/shared/biztime"
	"fiscalis/internal/shared/constants"
	"fiscalis/internal/shared/logger"
)

// ScheduleTickUseCase reacts to the monthly schedule event: a full-portfolio
// run over the rolling window, without a purge. Month-over-month growth of
// the window adds the newly reachable due dates and the duplicate guard
// suppresses everything already generated.
//
// At most one tick runs at a time process-wide: the running token is swapped
// with compare-and-swap, and a tick arriving while one is in flight is
// skipped silently rather than queued. New-business and catalog-change
// triggers are request-scoped and may overlap a tick.
type ScheduleTickUseCase struct {
	run          *RunGenerationUseCase
	auditLog     audit.Repository
	windowMonths int
	logger       logger.Interface
	now          func() time.Time

	running atomic.Bool
}

// NewScheduleTickUseCase creates a new ScheduleTickUseCase.
func NewScheduleTickUseCase(
	run *RunGenerationUseCase,
	auditLog audit.Repository,
	windowMonths int,
	logger logger.Interface,
) *ScheduleTickUseCase {
	return &ScheduleTickUseCase{
		run:          run,
		auditLog:     auditLog,
		windowMonths: windowMonths,
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock overrides the use case clock. Test hook.
func (uc *ScheduleTickUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// Execute runs one tick. It returns a nil summary without error when another
// tick is already in flight.
func (uc *ScheduleTickUseCase) Execute(ctx context.Context) (*dto.RunSummary, error) {
	if !uc.running.CompareAndSwap(false, true) {
		uc.logger.Infow("schedule tick skipped, a run is already in flight")
		return nil, nil
	}
	defer uc.running.Store(false)

	windowStart, windowEnd := biztime.GenerationWindow(uc.now(), uc.windowMonths)

	summary, err := uc.run.Execute(ctx, RunGenerationCommand{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Trigger:     TriggerScheduleTick,
		Actor:       constants.SystemActor,
	})
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindScheduleTickRun, constants.SystemActor, err)
		return nil, err
	}

	recordSummary(ctx, uc.auditLog, uc.logger, audit.KindScheduleTickRun, constants.SystemActor, summary)
	return summary, nil
}
