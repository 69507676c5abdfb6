package ecs

import "iter"

// Query materializes the rows matching an access shape. Execute takes a fresh
// snapshot; Iter and Values replay it without touching the storage again, so
// writes made after Execute are not observed until the next Execute.
type Query[V any] struct {
	access     Access[V]
	rows       []Row[V]
	cacheValid bool
}

// NewQuery creates a Query for the given shape.
func NewQuery[V any](access Access[V]) *Query[V] {
	return &Query[V]{
		access: access,
	}
}

// Execute snapshots the storage. Row buffers are reused between calls.
func (q *Query[V]) Execute(storage *Storage) {
	clear(q.rows)
	q.rows = appendRows(storage, q.rows[:0], q.access)
	q.cacheValid = true
}

// Rows returns the snapshot taken by the last Execute.
// Panics if Execute() has not been called.
func (q *Query[V]) Rows() []Row[V] {
	if !q.cacheValid {
		panic("Query.Rows() called before Query.Execute()")
	}
	return q.rows
}

// Len returns the number of rows in the last snapshot.
func (q *Query[V]) Len() int {
	return len(q.rows)
}

// Iter returns an iterator over entity IDs and views in ascending id order.
// Panics if Execute() has not been called.
func (q *Query[V]) Iter() iter.Seq2[EntityId, V] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, V) bool) {
		for _, row := range q.rows {
			if !yield(row.Id, row.View) {
				return
			}
		}
	}
}

// Values returns an iterator over views only.
// Panics if Execute() has not been called.
func (q *Query[V]) Values() iter.Seq[V] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(V) bool) {
		for _, row := range q.rows {
			if !yield(row.View) {
				return
			}
		}
	}
}
