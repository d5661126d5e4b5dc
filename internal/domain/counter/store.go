package counter

import (
	"context"

	"github.com/oshokin/statebox/internal/store"
)

// Store is a store holding a counter.
type Store = store.Store[State, Action]

// Middleware is a middleware for the counter store.
type Middleware = store.Middleware[State, Action]

// NewStore creates a counter store starting at initial.
func NewStore(ctx context.Context, initial State, middleware ...Middleware) *Store {
	return store.New(ctx, Reduce, initial, middleware...)
}
