package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAccess struct {
	inner Access[Nothing]
	calls *int
}

func (c countingAccess) fetch(bag *Bag) (Nothing, bool) {
	*c.calls++
	return c.inner.fetch(bag)
}

type markerA struct{}
type markerB struct{}
type markerC struct{}

func TestAndShortCircuits(t *testing.T) {
	storage := NewStorage()
	id := storage.CreateEntity()
	SetComponent(storage, id, markerA{})
	SetComponent(storage, id, markerC{})

	var second, third int
	access := And3[Nothing, Nothing, Nothing](
		Has[markerA](),
		countingAccess{inner: Has[markerB](), calls: &second},
		countingAccess{inner: Has[markerC](), calls: &third},
	)

	_, ok := Fetch(storage, id, access)
	assert.False(t, ok)
	assert.Equal(t, 1, second)
	assert.Equal(t, 0, third)
}

func TestOrSkipsRightWhenLeftMatches(t *testing.T) {
	storage := NewStorage()
	id := storage.CreateEntity()
	SetComponent(storage, id, markerA{})
	SetComponent(storage, id, markerB{})

	var right int
	access := Or[Nothing, Nothing](Has[markerA](), countingAccess{inner: Has[markerB](), calls: &right})

	view, ok := Fetch(storage, id, access)
	require.True(t, ok)
	assert.True(t, view.IsLeft())
	assert.Equal(t, 0, right)
}

func TestWriteShapesMutation(t *testing.T) {
	assert.True(t, Set[markerA]().mutates())
	assert.False(t, NoWrite().mutates())
	assert.True(t, SetAnd2(Set[markerA](), Set[markerB]()).mutates())
}

func TestSignalKeepsFirst(t *testing.T) {
	var sig signal[string]
	sig.observe("", false)
	sig.observe("first", true)
	sig.observe("second", true)

	assert.True(t, sig.ok)
	assert.Equal(t, "first", sig.value)
}

func TestQueueDrainDoesNotAlias(t *testing.T) {
	q := NewQueue[int](2)
	q.Push(1, 2, 3)

	drained := q.Drain()
	require.Equal(t, []int{1, 2, 3}, drained)
	assert.Equal(t, 0, q.Len())

	// handing the drained slice back must not clobber it while appending
	q.Push(drained[1:]...)
	q.Push(4)
	assert.Equal(t, []int{2, 3, 4}, q.Peek())
	assert.Equal(t, []int{1, 2, 3}, drained)
}
