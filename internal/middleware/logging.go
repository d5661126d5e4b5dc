package middleware

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oshokin/statebox/internal/logger"
	"github.com/oshokin/statebox/internal/store"
)

// Logging returns middleware that logs every dispatched action with the
// state snapshot it was dispatched against and a fresh dispatch id.
func Logging[S, A any](ctx context.Context) store.Middleware[S, A] {
	ctx = logger.WithName(ctx, "dispatch")

	return func(state S, action A, _ store.Dispatcher[A]) {
		logger.InfoKV(
			ctx,
			"Action dispatched",
			"dispatch_id", newDispatchID(),
			"action", describe(action),
			"state", state,
		)
	}
}

// newDispatchID returns a time-ordered id so log lines sort by dispatch.
func newDispatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// describe names an action for logs.
func describe(action any) string {
	if s, ok := action.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", action)
}
