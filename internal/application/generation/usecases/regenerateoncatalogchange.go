package usecases

import (
	"context"
	"fmt"
	"time"

	"fiscalis/internal/application/generation/dto"
	"fiscalis/internal/domain/audit"
	"fiscalis/internal/domain/obligation"
	"fiscalis/internal/shared/biztime"
	"fiscalis/internal/shared/logger"
)

// RegenerateOnCatalogChangeCommand identifies the administrator whose catalog
// edit triggered the regeneration.
type RegenerateOnCatalogChangeCommand struct {
	ActorID string
}

// RegenerateOnCatalogChangeUseCase reacts to a template-catalog mutation:
// it purges every machine-generated obligation, then regenerates the full
// portfolio from the updated catalog.
//
// Purge-then-regenerate is chosen over incremental patching because a
// template edit can change which obligations should exist at all (a
// frequency change, for instance); the cost is a full-catalog regenerate on
// every edit.
type RegenerateOnCatalogChangeUseCase struct {
	run          *RunGenerationUseCase
	obligations  obligation.Repository
	auditLog     audit.Repository
	actors       ActorResolver
	windowMonths int
	logger       logger.Interface
	now          func() time.Time
}

// NewRegenerateOnCatalogChangeUseCase creates a new RegenerateOnCatalogChangeUseCase.
func NewRegenerateOnCatalogChangeUseCase(
	run *RunGenerationUseCase,
	obligations obligation.Repository,
	auditLog audit.Repository,
	actors ActorResolver,
	windowMonths int,
	logger logger.Interface,
) *RegenerateOnCatalogChangeUseCase {
	return &RegenerateOnCatalogChangeUseCase{
		run:          run,
		obligations:  obligations,
		auditLog:     auditLog,
		actors:       actors,
		windowMonths: windowMonths,
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock overrides the use case clock. Test hook.
func (uc *RegenerateOnCatalogChangeUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *RegenerateOnCatalogChangeUseCase) Execute(ctx context.Context, cmd RegenerateOnCatalogChangeCommand) (*dto.RunSummary, error) {
	actor, err := requireAuthorizedActor(ctx, uc.actors, cmd.ActorID)
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindCatalogChangeRun, cmd.ActorID, err)
		return nil, err
	}

	purged, err := uc.obligations.DeleteGenerated(ctx)
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindCatalogChangeRun, actor.ID, err)
		return nil, fmt.Errorf("failed to purge generated obligations: %w", err)
	}

	uc.logger.Infow("purged generated obligations before regeneration",
		"actor", actor.ID, "purged", purged)

	windowStart, windowEnd := biztime.GenerationWindow(uc.now(), uc.windowMonths)

	summary, err := uc.run.Execute(ctx, RunGenerationCommand{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Trigger:     TriggerCatalogChange,
		Actor:       actor.ID,
	})
	if err != nil {
		recordFailure(ctx, uc.auditLog, uc.logger, audit.KindCatalogChangeRun, actor.ID, err)
		return nil, fmt.Errorf("catalog-change regeneration failed: %w", err)
	}

	payload := summary.AuditPayload()
	payload["purged"] = purged
	entry, entryErr := audit.NewEntry(audit.KindCatalogChangeRun, actor.ID, payload)
	if entryErr != nil {
		uc.logger.Errorw("failed to build audit entry", "error", entryErr)
	} else if appendErr := uc.auditLog.Append(ctx, entry); appendErr != nil {
		uc.logger.Errorw("failed to append audit entry", "error", appendErr)
	}

	return summary, nil
}
