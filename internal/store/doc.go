// Package store implements a single-slot unidirectional state container.
//
// A Store owns one state value, one reducer and an ordered list of
// middleware. Dispatch enqueues a reducer application on the store's single
// mutation goroutine and then, without waiting for it, runs every middleware
// on the caller's goroutine with the state snapshot taken when Dispatch was
// called.
//
// Middleware therefore observe the state as it was before the current action
// was reduced, never after. Code that needs the post-update value should
// subscribe to the store instead. This ordering is part of the contract and
// must not be changed silently.
//
// Reducer applications are serialized FIFO in enqueue order. Dispatch never
// blocks on reducer work. Panics raised by reducers or middleware are not
// recovered: a middleware panic aborts the remaining middleware of that
// dispatch while the already enqueued reducer task still runs, and a reducer
// panic leaves the committed state untouched. Unbounded re-dispatch from
// middleware is not guarded against.
package store
