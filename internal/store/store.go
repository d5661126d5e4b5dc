package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/oshokin/statebox/internal/logger"
)

// ErrClosed is returned by operations on a store that has been closed.
var ErrClosed = errors.New("store is closed")

// subscription is a registered observer.
type subscription[S any] struct {
	// observer receives committed states.
	observer Observer[S]
	// active is cleared by unsubscribe so in-flight deliveries skip it.
	active atomic.Bool
}

// Store is the single authoritative holder of an application state.
//
// All reducer applications run on one goroutine owned by the store, in the
// order Dispatch enqueued them. Dispatch, State and Subscribe are safe for
// concurrent use.
type Store[S, A any] struct {
	// ctx carries the logger used for lifecycle messages.
	ctx context.Context //nolint:containedctx // Only used for logging.
	// reducer computes every state transition.
	reducer Reducer[S, A]
	// middleware run in order on every dispatch.
	middleware []Middleware[S, A]
	// queue feeds the mutation goroutine.
	queue *taskQueue[A]
	// stopped is closed when the mutation goroutine exits.
	stopped chan struct{}
	// closeOnce guards Close.
	closeOnce sync.Once

	// notifyMu serializes deliveries so each observer sees states in commit order.
	notifyMu sync.Mutex
	// mu guards state, observers and closed.
	mu sync.RWMutex
	// state is the last committed value. Written only by the mutation goroutine.
	state S
	// observers is replaced, never modified in place, so readers may iterate a copy freely.
	observers []*subscription[S]
	// closed reports whether Close has completed.
	closed bool
}

// New creates a store holding initial and starts its mutation goroutine.
// The middleware list is fixed for the store's lifetime.
func New[S, A any](ctx context.Context, reducer Reducer[S, A], initial S, middleware ...Middleware[S, A]) *Store[S, A] {
	s := &Store[S, A]{
		ctx:        logger.WithName(ctx, "store"),
		reducer:    reducer,
		middleware: slices.Clone(middleware),
		queue:      newTaskQueue[A](),
		stopped:    make(chan struct{}),
		state:      initial,
	}

	go s.run()

	logger.DebugKV(s.ctx, "Store started", "middleware", len(s.middleware))

	return s
}

// Dispatch submits action.
//
// The reducer application is enqueued on the mutation goroutine and Dispatch
// does not wait for it. Every middleware then runs on the calling goroutine,
// in registration order, with the state committed at the time of the call.
// A dispatch on a closed store is dropped.
func (s *Store[S, A]) Dispatch(action A) {
	snapshot := s.State()

	if !s.queue.enqueue(task[A]{action: action}) {
		logger.WarnKV(s.ctx, "Dispatch on closed store dropped", "action", fmt.Sprintf("%T", action))

		return
	}

	for _, m := range s.middleware {
		m(snapshot, action, s.Dispatch)
	}
}

// State returns the last committed state.
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Subscribe registers observer. It is called immediately with the current
// state and then once per applied action with the new state, always on the
// mutation goroutine after the first call.
//
// An observer must not call Subscribe, Flush or Close from inside its
// callback. Flush would wait behind the delivery that is running it and only
// return once its context ends.
// A delivery already in progress may still complete after unsubscribe returns.
func (s *Store[S, A]) Subscribe(observer Observer[S]) (unsubscribe func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	sub := &subscription[S]{observer: observer}
	sub.active.Store(true)

	s.mu.Lock()
	if !s.closed {
		s.observers = append(s.observers[:len(s.observers):len(s.observers)], sub)
	}
	current := s.state
	s.mu.Unlock()

	observer(current)

	return func() {
		if !sub.active.Swap(false) {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		s.observers = slices.DeleteFunc(slices.Clone(s.observers), func(o *subscription[S]) bool {
			return o == sub
		})
	}
}

// Pending returns the number of tasks waiting for the mutation goroutine.
func (s *Store[S, A]) Pending() int {
	return s.queue.len()
}

// Flush blocks until every action dispatched before the call has been reduced.
// Actions dispatched later, including delayed re-dispatches, are not awaited.
func (s *Store[S, A]) Flush(ctx context.Context) error {
	barrier := make(chan struct{})

	if !s.queue.enqueue(task[A]{barrier: barrier}) {
		return ErrClosed
	}

	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("flush store: %w", ctx.Err())
	}
}

// Close stops accepting actions, applies the ones already queued, stops the
// mutation goroutine and drops every observer. It is safe to call more than once.
func (s *Store[S, A]) Close() {
	s.closeOnce.Do(func() {
		s.queue.close()
		<-s.stopped

		s.mu.Lock()
		for _, sub := range s.observers {
			sub.active.Store(false)
		}

		s.observers = nil
		s.closed = true
		s.mu.Unlock()

		logger.Debug(s.ctx, "Store closed")
	})
}

// run is the mutation goroutine.
func (s *Store[S, A]) run() {
	defer close(s.stopped)

	for {
		t, ok, done := s.queue.dequeue()

		switch {
		case ok:
			s.apply(t)
		case done:
			return
		default:
			<-s.queue.wait()
		}
	}
}

// apply reduces one action and notifies observers.
// A panicking reducer never reaches the assignment, so the committed state stays intact.
func (s *Store[S, A]) apply(t task[A]) {
	if t.barrier != nil {
		close(t.barrier)

		return
	}

	// Only this goroutine writes state, so reading it without the lock is safe.
	next := s.reducer(s.state, t.action)

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.state = next
	observers := s.observers
	s.mu.Unlock()

	for _, sub := range observers {
		if sub.active.Load() {
			sub.observer(next)
		}
	}
}
