package middleware

import (
	"sync"
	"time"

	"github.com/oshokin/statebox/internal/store"
)

// FollowUpFunc maps a trigger action to the action to dispatch later.
// It reports false for actions that trigger nothing.
type FollowUpFunc[A any] func(action A) (A, bool)

// Delayer dispatches a follow-up action some time after a trigger action.
//
// Each follow-up is an ordinary dispatch made from a timer goroutine.
// Pending follow-ups can be cancelled with Stop.
type Delayer[S, A any] struct {
	// delay is the wait between trigger and follow-up.
	delay time.Duration
	// followUp selects triggers and builds follow-ups.
	followUp FollowUpFunc[A]

	// mu guards timers and stopped.
	mu sync.Mutex
	// timers holds every timer that has not fired yet.
	timers map[*time.Timer]struct{}
	// stopped rejects new follow-ups once set.
	stopped bool
}

// NewDelayer creates a Delayer. A non-positive delay fires follow-ups as soon as possible.
func NewDelayer[S, A any](delay time.Duration, followUp FollowUpFunc[A]) *Delayer[S, A] {
	return &Delayer[S, A]{
		delay:    max(delay, 0),
		followUp: followUp,
		timers:   make(map[*time.Timer]struct{}),
	}
}

// Middleware returns the store middleware that schedules follow-ups.
func (d *Delayer[S, A]) Middleware() store.Middleware[S, A] {
	return func(_ S, action A, dispatch store.Dispatcher[A]) {
		next, ok := d.followUp(action)
		if !ok {
			return
		}

		d.schedule(next, dispatch)
	}
}

// Pending returns the number of follow-ups waiting to fire.
func (d *Delayer[S, A]) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.timers)
}

// Stop cancels every pending follow-up and ignores later triggers.
// It returns the number of follow-ups cancelled.
func (d *Delayer[S, A]) Stop() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	cancelled := 0

	for timer := range d.timers {
		if timer.Stop() {
			cancelled++
		}

		delete(d.timers, timer)
	}

	return cancelled
}

// schedule arms a timer that dispatches next unless cancelled first.
func (d *Delayer[S, A]) schedule(next A, dispatch store.Dispatcher[A]) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	// The callback takes mu, so it cannot observe timer before it is assigned.
	var timer *time.Timer

	timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		_, live := d.timers[timer]
		delete(d.timers, timer)
		d.mu.Unlock()

		if live {
			dispatch(next)
		}
	})

	d.timers[timer] = struct{}{}
}
