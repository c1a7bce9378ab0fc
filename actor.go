package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type actorKey struct{}

// WithActor returns a copy of ctx attributed to the given actor identifier
// (for example the authenticated user of an incoming request). An empty
// identifier is substituted with ActorUnknown.
//
// The returned context is the scope: pass it to everything running on behalf
// of the actor, and emit records through LogEvent.Ctx. The caller's original
// ctx is untouched, so attribution ends when the derived context goes out of
// scope — on every exit path, including panics — and nested scopes compose.
func WithActor(ctx context.Context, actor string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if actor == emptyString {
		actor = ActorUnknown
	}
	return context.WithValue(ctx, actorKey{}, actor)
}

// Actor returns the actor identifier attributed to ctx. It never fails:
// a nil context or one outside any WithActor scope yields ActorUnknown.
func Actor(ctx context.Context) string {
	if ctx == nil {
		return ActorUnknown
	}
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != emptyString {
		return actor
	}
	return ActorUnknown
}

// actorHook stamps the actor field on every record as it is emitted. The
// value is read from the event's context at Msg/Send time, not when the
// logger was built, so concurrent scopes never observe each other's actor.
type actorHook struct{}

func (actorHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(actorFieldName, Actor(e.GetCtx()))
}
