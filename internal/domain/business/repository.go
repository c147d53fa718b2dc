package business

import "context"

// Repository is the read interface the engine consumes for business profiles.
// Profile writes belong to the business-management collaborator.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Profile, error)
	ListActive(ctx context.Context) ([]*Profile, error)
}
