package middleware

import (
	"context"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

type holderKey struct{}

// actorHolder carries the authenticated actor back up to middleware that
// wraps Auth.
type actorHolder struct {
	actor domain.Actor
	set   bool
}

func withActorHolder(ctx context.Context, h *actorHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func recordActor(ctx context.Context, actor domain.Actor) {
	if h, ok := ctx.Value(holderKey{}).(*actorHolder); ok {
		h.actor = actor
		h.set = true
	}
}
