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

// GenerateForNewBusinessCommand identifies the new business and the actor
// who created it.
type GenerateForNewBusinessCommand struct {
	BusinessID uint
	ActorID    string
}

// GenerateForNewBusinessUseCase reacts to a new-business event: it runs
// generation scoped to the single new business over the standard window,
// without purging anything.
type GenerateForNewBusinessUseCase struct {
	run          *RunGenerationUseCase
	auditLog     audit.Repository
	actors       ActorResolver
	windowMonths int
	logger       logger.Interface
	now          func() time.Time
}

// NewGenerateForNewBusinessUseCase creates a new GenerateForNewBusinessUseCase.
func NewGenerateForNewBusinessUseCase(
	run *RunGenerationUseCase,
	auditLog audit.Repository,
	actors ActorResolver,
	windowMonths int,
	logger logger.Interface,
) *GenerateForNewBusinessUseCase {
	return &GenerateForNewBusinessUseCase{
		run:          run,
		auditLog:     auditLog,
		actors:       actors,
		windowMonths: windowMonths,
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock overrides the use case clock. Test hook.
func (uc *GenerateForNewBusinessUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *GenerateForNewBusinessUseCase) Execute(ctx context.Context, cmd GenerateForNewBusinessCommand) (*dto.RunSummary, error) {
	actor, err := requireAuthorizedActor(ctx, uc.actors, cmd.ActorID)
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindNewBusinessRun, cmd.ActorID, err)
		return nil, err
	}

	windowStart, windowEnd := biztime.GenerationWindow(uc.now(), uc.windowMonths)

	summary, err := uc.run.Execute(ctx, RunGenerationCommand{
		BusinessID:  &cmd.BusinessID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Trigger:     TriggerNewBusiness,
		Actor:       actor.ID,
	})
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindNewBusinessRun, actor.ID, err)
		return nil, fmt.Errorf("new-business generation failed: %w", err)
	}

	recordSummary(ctx, uc.auditLog, uc.logger, audit.KindNewBusinessRun, actor.ID, summary)
	return summary, nil
}
