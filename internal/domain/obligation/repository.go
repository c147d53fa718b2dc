package obligation

import (
	"context"
	"time"
)

// Repository is the persistence interface the engine writes obligations
// through. CountGenerated and DeleteGenerated only ever see records carrying
// the generated_from_calendar marker; obligations entered by hand are
// invisible to both.
type Repository interface {
	// CreateBatch persists all drafts together. Callers wrap it in one
	// transaction per business.
	CreateBatch(ctx context.Context, obligations []*Obligation) error

	// CountGenerated counts generated obligations matching business, tag and
	// the due date's calendar day. A non-empty period narrows the match to
	// that declared-period label.
	CountGenerated(ctx context.Context, businessID uint, tag string, dueDate time.Time, period string) (int64, error)

	// DeleteGenerated removes every generated obligation and reports how many
	// were removed.
	DeleteGenerated(ctx context.Context) (int64, error)
}
