package services

import (
	"context"
	"time"

	"fiscalis/internal/domain/obligation"
	"fiscalis/internal/shared/logger"
)

// DuplicateGuard answers whether an equivalent machine-generated obligation
// already exists for a (business, tag, due date, period) tuple.
//
// When the lookup itself fails the guard reports "not a duplicate" and logs
// the condition instead of aborting the run: a degraded store weakens the
// no-duplication guarantee but never blocks generation.
type DuplicateGuard struct {
	obligations obligation.Repository
	logger      logger.Interface
}

// NewDuplicateGuard creates a new DuplicateGuard.
func NewDuplicateGuard(obligations obligation.Repository, logger logger.Interface) *DuplicateGuard {
	return &DuplicateGuard{
		obligations: obligations,
		logger:      logger,
	}
}

// Exists reports whether a generated obligation with the same business, tag,
// calendar day and (when non-empty) declared period is already persisted.
func (g *DuplicateGuard) Exists(ctx context.Context, businessID uint, tag string, dueDate time.Time, period string) bool {
	count, err := g.obligations.CountGenerated(ctx, businessID, tag, dueDate, period)
	if err != nil {
		g.logger.Warnw("duplicate lookup failed, generation proceeds without dedup",
			"business_id", businessID,
			"tag", tag,
			"due_date", dueDate.Format("2006-01-02"),
			"period", period,
			"error", err,
		)
		return false
	}
	return count > 0
}
