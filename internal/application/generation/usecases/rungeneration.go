package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fiscalis/internal/application/generation/dto"
	"fiscalis/internal/domain/business"
	"fiscalis/internal/domain/calendar"
	"fiscalis/internal/domain/obligation"
	"fiscalis/internal/shared/logger"
)

// TransactionManager abstracts the per-business batch transaction. Satisfied
// by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RunGenerationCommand selects the businesses and window one run covers.
// A nil BusinessID means all active businesses.
type RunGenerationCommand struct {
	BusinessID  *uint
	WindowStart time.Time
	WindowEnd   time.Time
	Trigger     string
	Actor       string
}

// RunGenerationUseCase is the generation orchestrator: it drives matching and
// synthesis per business across the selected portfolio and persists each
// business's drafts in one batch.
//
// Failures are bulkheaded per business: a missing profile or a failed batch
// write lands in the summary's error list and the run moves on. Only
// pre-flight failures (unreachable catalog, unreachable business list) abort
// the whole run. Summary totals count successfully processed businesses only.
type RunGenerationUseCase struct {
	businesses  business.Repository
	catalog     calendar.Repository
	obligations obligation.Repository
	synthesizer *SynthesizeObligationsUseCase
	txManager   TransactionManager
	logger      logger.Interface
	now         func() time.Time
}

// NewRunGenerationUseCase creates a new RunGenerationUseCase.
func NewRunGenerationUseCase(
	businesses business.Repository,
	catalog calendar.Repository,
	obligations obligation.Repository,
	synthesizer *SynthesizeObligationsUseCase,
	txManager TransactionManager,
	logger logger.Interface,
) *RunGenerationUseCase {
	return &RunGenerationUseCase{
		businesses:  businesses,
		catalog:     catalog,
		obligations: obligations,
		synthesizer: synthesizer,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// SetClock overrides the use case clock. Test hook.
func (uc *RunGenerationUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *RunGenerationUseCase) Execute(ctx context.Context, cmd RunGenerationCommand) (*dto.RunSummary, error) {
	summary := &dto.RunSummary{
		RunID:       uuid.NewString(),
		Trigger:     cmd.Trigger,
		Actor:       cmd.Actor,
		WindowStart: cmd.WindowStart,
		WindowEnd:   cmd.WindowEnd,
		Errors:      make(map[uint]string),
		StartedAt:   uc.now(),
	}

	entries, err := uc.catalog.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load calendar catalog, aborting run",
			"run_id", summary.RunID, "error", err)
		return nil, fmt.Errorf("failed to load calendar catalog: %w", err)
	}

	profiles, err := uc.selectBusinesses(ctx, cmd, summary)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("generation run started",
		"run_id", summary.RunID,
		"trigger", cmd.Trigger,
		"actor", cmd.Actor,
		"businesses", len(profiles),
		"catalog_entries", len(entries),
		"window_start", cmd.WindowStart.Format("2006-01-02"),
		"window_end", cmd.WindowEnd.Format("2006-01-02"),
	)

	for _, profile := range profiles {
		summary.BusinessesConsidered++
		uc.generateForBusiness(ctx, profile, entries, cmd, summary)
	}

	summary.FinishedAt = uc.now()

	uc.logger.Infow("generation run finished",
		"run_id", summary.RunID,
		"obligations_created", summary.ObligationsCreated,
		"duplicates_skipped", summary.DuplicatesSkipped,
		"errors", len(summary.Errors),
	)

	return summary, nil
}

// selectBusinesses resolves the command's selector. A failing portfolio fetch
// is a pre-flight error; a single missing business is recorded in the summary
// so the caller still receives a run outcome.
func (uc *RunGenerationUseCase) selectBusinesses(ctx context.Context, cmd RunGenerationCommand, summary *dto.RunSummary) ([]*business.Profile, error) {
	if cmd.BusinessID == nil {
		profiles, err := uc.businesses.ListActive(ctx)
		if err != nil {
			uc.logger.Errorw("failed to list active businesses, aborting run",
				"run_id", summary.RunID, "error", err)
			return nil, fmt.Errorf("failed to list active businesses: %w", err)
		}
		return profiles, nil
	}

	profile, err := uc.businesses.GetByID(ctx, *cmd.BusinessID)
	if err != nil {
		summary.BusinessesConsidered++
		summary.Errors[*cmd.BusinessID] = err.Error()
		uc.logger.Warnw("business profile fetch failed",
			"run_id", summary.RunID, "business_id", *cmd.BusinessID, "error", err)
		return nil, nil
	}
	return []*business.Profile{profile}, nil
}

func (uc *RunGenerationUseCase) generateForBusiness(
	ctx context.Context,
	profile *business.Profile,
	entries []*calendar.Entry,
	cmd RunGenerationCommand,
	summary *dto.RunSummary,
) {
	matched, err := calendar.MatchEntries(profile, entries)
	if err != nil {
		summary.Errors[profile.ID()] = err.Error()
		uc.logger.Warnw("template matching failed",
			"run_id", summary.RunID, "business_id", profile.ID(), "error", err)
		return
	}

	var drafts []*obligation.Obligation
	skipped := 0
	for _, entry := range matched {
		result, err := uc.synthesizer.Execute(ctx, SynthesizeObligationsCommand{
			Business:    profile,
			Entry:       entry,
			WindowStart: cmd.WindowStart,
			WindowEnd:   cmd.WindowEnd,
			Trigger:     cmd.Trigger,
		})
		if err != nil {
			summary.Errors[profile.ID()] = err.Error()
			uc.logger.Warnw("obligation synthesis failed",
				"run_id", summary.RunID,
				"business_id", profile.ID(),
				"calendar_entry_id", entry.ID(),
				"error", err)
			return
		}
		drafts = append(drafts, result.Drafts...)
		skipped += result.DuplicatesSkipped
	}

	if len(drafts) > 0 {
		// All obligations for one business commit together; there is no
		// transaction spanning businesses.
		err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.obligations.CreateBatch(txCtx, drafts)
		})
		if err != nil {
			summary.Errors[profile.ID()] = err.Error()
			uc.logger.Errorw("obligation batch write failed",
				"run_id", summary.RunID, "business_id", profile.ID(), "error", err)
			return
		}
	}

	summary.ObligationsCreated += len(drafts)
	summary.DuplicatesSkipped += skipped
	summary.PerBusiness = append(summary.PerBusiness, dto.BusinessResult{
		BusinessID:         profile.ID(),
		BusinessName:       profile.Name(),
		ObligationsCreated: len(drafts),
		DuplicatesSkipped:  skipped,
	})
}
