package calendar

import "context"

// Repository is the read interface the engine consumes for the template
// catalog. Catalogs are small (tens of entries), so runs fetch the whole
// catalog once and filter in memory.
type Repository interface {
	ListAll(ctx context.Context) ([]*Entry, error)
}
