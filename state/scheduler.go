package state

// Scheduler dispatches deferred callbacks.
type Scheduler interface {
	Schedule(fn func())
}

// Queue holds callbacks until an explicit flush.
type Queue struct {
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues a callback for later flushing.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Flush executes queued callbacks in order and returns the count.
// Callbacks scheduled during a flush run in the next flush.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	pending := q.pending
	q.pending = nil
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
