package store

import "sync"

// task is a unit of work for the mutation goroutine: either a reducer
// application for action or, when barrier is set, a flush marker.
type task[A any] struct {
	// action is the action to reduce.
	action A
	// barrier is closed once every task enqueued before it has been applied.
	barrier chan struct{}
}

// taskQueue is an unbounded FIFO consumed by a single goroutine.
//
// Enqueue never blocks so that Dispatch stays non-blocking, including when
// middleware re-dispatch from inside a dispatch.
type taskQueue[A any] struct {
	// mu guards tasks and closed.
	mu sync.Mutex
	// tasks holds pending work, oldest first.
	tasks []task[A]
	// closed rejects new tasks once set.
	closed bool
	// signal is buffered with size 1; multiple enqueues coalesce into one wake-up.
	signal chan struct{}
}

// newTaskQueue creates an empty, open queue.
func newTaskQueue[A any]() *taskQueue[A] {
	return &taskQueue[A]{
		tasks:  make([]task[A], 0, 16),
		signal: make(chan struct{}, 1),
	}
}

// enqueue appends t and wakes the consumer. It reports false if the queue is closed.
func (q *taskQueue[A]) enqueue(t task[A]) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.tasks = append(q.tasks, t)

	select {
	case q.signal <- struct{}{}:
	default:
	}

	return true
}

// dequeue removes the front task without blocking.
// done is true once the queue is closed and fully drained.
func (q *taskQueue[A]) dequeue() (t task[A], ok, done bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return t, false, q.closed
	}

	t = q.tasks[0]
	// Release references held by the backing array.
	q.tasks[0] = task[A]{}

	if len(q.tasks) == 1 {
		q.tasks = q.tasks[:0]
	} else {
		q.tasks = q.tasks[1:]
	}

	return t, true, false
}

// wait returns a channel that fires when tasks may be available.
func (q *taskQueue[A]) wait() <-chan struct{} {
	return q.signal
}

// len returns the number of pending tasks.
func (q *taskQueue[A]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.tasks)
}

// close rejects further tasks and wakes the consumer. Pending tasks stay queued.
func (q *taskQueue[A]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	close(q.signal)
}
