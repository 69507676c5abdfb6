package ecs

// Queue is the message queue shared by the systems of a driver. Systems never
// hold it across runs: it is drained, optionally filtered, and refilled.
//
// Two buffers are swapped on every Drain so that a drained slice can be handed
// straight back to Push without aliasing the live buffer.
type Queue[M any] struct {
	items []M
	spare []M
}

// NewQueue creates a queue with room for capacity messages.
func NewQueue[M any](capacity int) *Queue[M] {
	return &Queue[M]{
		items: make([]M, 0, capacity),
		spare: make([]M, 0, capacity),
	}
}

// Push appends messages to the queue.
func (q *Queue[M]) Push(msgs ...M) {
	q.items = append(q.items, msgs...)
}

// Drain removes and returns every queued message. The returned slice is valid
// until the next call to Drain.
func (q *Queue[M]) Drain() []M {
	out := q.items
	clear(q.spare)
	q.items = q.spare[:0]
	q.spare = out
	return out
}

// Peek returns the queued messages without removing them. The slice must not be
// modified.
func (q *Queue[M]) Peek() []M {
	return q.items
}

// Len returns the number of queued messages.
func (q *Queue[M]) Len() int {
	return len(q.items)
}
