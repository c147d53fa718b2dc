package audit

import "context"

// Repository appends audit entries. There is no read path in the engine;
// reading the trail belongs to the administration surface.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
}
