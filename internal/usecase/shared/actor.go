package shared

import (
	"context"

	"clinic-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. It travels in the request context so
// the store can apply its per-owner row policies to every transaction.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsStaff() bool {
	return a.Role.AtLeast(user.RolePartner)
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}
