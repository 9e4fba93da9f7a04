package auth

import (
	"context"

	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
)

// Actor is the verified identity attached to a request by the auth
// middleware. Services trust it for every scoping decision.
type Actor struct {
	UserID     int64
	EmployeeID int64
	Role       user.Role
}

func (a Actor) Elevated() bool { return a.Role.Elevated() }

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	if !ok {
		return Actor{}, ErrUnauthorized
	}
	return a, nil
}
