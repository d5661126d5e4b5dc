package middleware

import (
	"sync"

	"github.com/oshokin/statebox/internal/store"
)

// Entry is one action as seen by middleware.
type Entry[S, A any] struct {
	// State is the snapshot passed to middleware.
	State S
	// Action is the dispatched action.
	Action A
}

// Recorder keeps the most recent dispatches in memory.
type Recorder[S, A any] struct {
	// limit caps the number of kept entries; zero keeps everything.
	limit int

	// mu guards entries.
	mu sync.Mutex
	// entries holds recorded dispatches, oldest first.
	entries []Entry[S, A]
}

// NewRecorder creates a Recorder keeping at most limit entries (zero for no limit).
func NewRecorder[S, A any](limit int) *Recorder[S, A] {
	return &Recorder[S, A]{limit: max(limit, 0)}
}

// Middleware returns the store middleware that records dispatches.
func (r *Recorder[S, A]) Middleware() store.Middleware[S, A] {
	return func(state S, action A, _ store.Dispatcher[A]) {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.entries = append(r.entries, Entry[S, A]{State: state, Action: action})

		if r.limit > 0 && len(r.entries) > r.limit {
			r.entries = append(r.entries[:0:0], r.entries[len(r.entries)-r.limit:]...)
		}
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (r *Recorder[S, A]) Entries() []Entry[S, A] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry[S, A](nil), r.entries...)
}

// Len returns the number of recorded entries.
func (r *Recorder[S, A]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
