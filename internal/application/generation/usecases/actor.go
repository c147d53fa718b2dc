package usecases

import (
	"context"

	"fiscalis/internal/shared/auth"
	"fiscalis/internal/shared/errors"
)

// Trigger kinds stamped into obligation metadata and run summaries.
const (
	TriggerNewBusiness   = "new_business"
	TriggerCatalogChange = "catalog_change"
	TriggerScheduleTick  = "schedule_tick"
	TriggerManual        = "manual"
)

// Actor is the resolved identity behind a trigger.
type Actor struct {
	ID    string
	Name  string
	Roles []string
}

// ActorResolver resolves an actor identity supplied by the host. The host
// owns authentication; the engine only pre-flights that the identity maps to
// an account allowed to start generation runs.
type ActorResolver interface {
	Resolve(ctx context.Context, actorID string) (*Actor, error)
}

// requireAuthorizedActor resolves the actor and verifies it may trigger
// generation. Failing the pre-flight aborts the whole run before any
// generation starts.
func requireAuthorizedActor(ctx context.Context, resolver ActorResolver, actorID string) (*Actor, error) {
	if actorID == "" {
		return nil, errors.NewForbiddenError("no actor supplied for generation trigger")
	}

	actor, err := resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !auth.CanTriggerGeneration(actor.Roles) {
		return nil, errors.NewForbiddenError("actor is not authorized to trigger generation", actorID)
	}
	return actor, nil
}
