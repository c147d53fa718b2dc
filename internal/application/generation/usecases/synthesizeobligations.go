package usecases

import (
	"context"
	"fmt"
	"time"

	"fiscalis/internal/application/generation/services"
	"fiscalis/internal/domain/business"
	"fiscalis/internal/domain/calendar"
	"fiscalis/internal/domain/obligation"
	obligationvo "fiscalis/internal/domain/obligation/valueobjects"
	"fiscalis/internal/shared/logger"
)

// SynthesizeObligationsCommand carries one (business, entry) pair and the
// generation window to evaluate it over.
type SynthesizeObligationsCommand struct {
	Business    *business.Profile
	Entry       *calendar.Entry
	WindowStart time.Time
	WindowEnd   time.Time
	Trigger     string
}

// SynthesisResult is the outcome for one (business, entry) pair.
type SynthesisResult struct {
	Drafts            []*obligation.Obligation
	DuplicatesSkipped int
}

// SynthesizeObligationsUseCase turns a matched calendar entry into obligation
// drafts for one business: it evaluates the entry's schedule over the window,
// derives title, period label and priority for each due date, and drops
// drafts the duplicate guard reports as already existing.
type SynthesizeObligationsUseCase struct {
	guard  *services.DuplicateGuard
	logger logger.Interface
	now    func() time.Time
}

// NewSynthesizeObligationsUseCase creates a new SynthesizeObligationsUseCase.
func NewSynthesizeObligationsUseCase(guard *services.DuplicateGuard, logger logger.Interface) *SynthesizeObligationsUseCase {
	return &SynthesizeObligationsUseCase{
		guard:  guard,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the use case clock. Test hook.
func (uc *SynthesizeObligationsUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *SynthesizeObligationsUseCase) Execute(ctx context.Context, cmd SynthesizeObligationsCommand) (*SynthesisResult, error) {
	if cmd.Business == nil || cmd.Entry == nil {
		return nil, fmt.Errorf("business and calendar entry are required")
	}

	result := &SynthesisResult{}
	now := uc.now()

	for _, due := range cmd.Entry.DueDates(cmd.WindowStart, cmd.WindowEnd) {
		period := calendar.PeriodLabel(cmd.Entry.Frequency(), due)

		if uc.guard.Exists(ctx, cmd.Business.ID(), cmd.Entry.Tag(), due, period) {
			result.DuplicatesSkipped++
			continue
		}

		draft, err := obligation.NewGeneratedObligation(
			cmd.Business.ID(),
			buildTitle(cmd.Entry, period),
			cmd.Entry.Tag(),
			due,
			obligationvo.PriorityFromDueDate(now, due),
			period,
			buildDescription(cmd.Entry),
			cmd.Entry.Link(),
			cmd.Entry.ID(),
			cmd.Trigger,
			now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build obligation draft: %w", err)
		}

		result.Drafts = append(result.Drafts, draft)
	}

	if result.DuplicatesSkipped > 0 {
		uc.logger.Debugw("skipped duplicate obligation drafts",
			"business_id", cmd.Business.ID(),
			"calendar_entry_id", cmd.Entry.ID(),
			"skipped", result.DuplicatesSkipped,
		)
	}

	return result, nil
}

func buildTitle(entry *calendar.Entry, period string) string {
	label := familyLabel(entry.Tag())
	if entry.Detail() != "" {
		return fmt.Sprintf("%s: %s (%s)", label, entry.Detail(), period)
	}
	return fmt.Sprintf("%s (%s)", label, period)
}

func buildDescription(entry *calendar.Entry) string {
	description := entry.Comment()
	if entry.FormReference() != "" {
		if description != "" {
			description += " "
		}
		description += fmt.Sprintf("Form %s.", entry.FormReference())
	}
	return description
}

func familyLabel(tag string) string {
	switch tag {
	case calendar.FamilyVAT:
		return "VAT"
	case calendar.FamilyIncome:
		return "Income tax"
	case calendar.FamilySocial:
		return "Social contributions"
	}
	return tag
}
