package usecases

import (
	"context"
	"fmt"
	"time"

	"fiscalis/internal/application/generation/dto"
	"fiscalis/internal/domain/audit"
	"fiscalis/internal/shared/biztime"
	"fiscalis/internal/shared/logger"
)

// RunManualGenerationCommand identifies the administrator requesting the run.
type RunManualGenerationCommand struct {
	ActorID string
}

// RunManualGenerationUseCase runs a full-portfolio generation on demand,
// synchronously returning the run summary. Same shape as the schedule tick
// but actor-attributed and without the single-flight guard: a manual run is
// request-scoped and its caller waits for the outcome.
type RunManualGenerationUseCase struct {
	run          *RunGenerationUseCase
	auditLog     audit.Repository
	actors       ActorResolver
	windowMonths int
	logger       logger.Interface
	now          func() time.Time
}

// NewRunManualGenerationUseCase creates a new RunManualGenerationUseCase.
func NewRunManualGenerationUseCase(
	run *RunGenerationUseCase,
	auditLog audit.Repository,
	actors ActorResolver,
	windowMonths int,
	logger logger.Interface,
) *RunManualGenerationUseCase {
	return &RunManualGenerationUseCase{
		run:          run,
		auditLog:     auditLog,
		actors:       actors,
		windowMonths: windowMonths,
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock overrides the use case clock. Test hook.
func (uc *RunManualGenerationUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *RunManualGenerationUseCase) Execute(ctx context.Context, cmd RunManualGenerationCommand) (*dto.RunSummary, error) {
	actor, err := requireAuthorizedActor(ctx, uc.actors, cmd.ActorID)
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindManualRun, cmd.ActorID, err)
		return nil, err
	}

	windowStart, windowEnd := biztime.GenerationWindow(uc.now(), uc.windowMonths)

	summary, err := uc.run.Execute(ctx, RunGenerationCommand{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Trigger:     TriggerManual,
		Actor:       actor.ID,
	})
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindManualRun, actor.ID, err)
		return nil, fmt.Errorf("manual generation failed: %w", err)
	}

	recordSummary(ctx, uc.auditLog, uc.logger, audit.KindManualRun, actor.ID, summary)
	return summary, nil
}
