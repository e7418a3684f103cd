package auth

import (
	"context"
	"strings"

	"github.com/Dafi-web/events-sub000/domain"
)

type actorContextKey struct{}

// WithActor stores the verified caller identity on the context.
func WithActor(ctx context.Context, actor *domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the caller identity, or nil for anonymous
// requests.
func ActorFromContext(ctx context.Context) *domain.Actor {
	if actor, ok := ctx.Value(actorContextKey{}).(*domain.Actor); ok && actor.IsAuthenticated() {
		return actor
	}
	return nil
}

// ActorFromHeaders builds the actor forwarded by the identity provider. An
// empty user id is an anonymous caller. Unknown roles are treated as regular
// users.
func ActorFromHeaders(userID, role string) *domain.Actor {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil
	}

	role = strings.ToLower(strings.TrimSpace(role))
	switch role {
	case domain.RoleAdmin, domain.RoleModerator:
	default:
		role = domain.RoleUser
	}
	return &domain.Actor{ID: userID, Role: role}
}
