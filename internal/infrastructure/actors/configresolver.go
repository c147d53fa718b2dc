// Package actors resolves trigger actor identities against the host
// configuration. Authentication itself belongs to the host; the engine only
// needs to know whether an identity may start generation runs.
package actors

import (
	"context"

	"fiscalis/internal/application/generation/usecases"
	"fiscalis/internal/shared/constants"
	"fiscalis/internal/shared/errors"
)

// ConfigResolver resolves actors from the static admin list in the
// generation configuration.
type ConfigResolver struct {
	admins map[string]struct{}
}

func NewConfigResolver(adminActors []string) *ConfigResolver {
	admins := make(map[string]struct{}, len(adminActors))
	for _, id := range adminActors {
		admins[id] = struct{}{}
	}
	return &ConfigResolver{admins: admins}
}

func (r *ConfigResolver) Resolve(ctx context.Context, actorID string) (*usecases.Actor, error) {
	if _, ok := r.admins[actorID]; !ok {
		return nil, errors.NewForbiddenError("unknown actor", actorID)
	}

	return &usecases.Actor{
		ID:    actorID,
		Name:  actorID,
		Roles: []string{constants.RoleAdmin},
	}, nil
}
