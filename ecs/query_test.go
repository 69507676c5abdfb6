package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBeforeExecutePanics(t *testing.T) {
	query := ecs.NewQuery(ecs.Read[Position]())

	assert.Panics(t, func() { query.Rows() })
	assert.Panics(t, func() { query.Iter() })
	assert.Panics(t, func() { query.Values() })
	assert.Equal(t, 0, query.Len())
}

func TestQueryIter(t *testing.T) {
	storage := ecs.NewStorage()
	for i := 0; i < 3; i++ {
		id := storage.CreateEntity()
		ecs.SetComponent(storage, id, Position{X: float32(i)})
		if i != 1 {
			ecs.SetComponent(storage, id, Velocity{DX: 1})
		}
	}

	query := ecs.NewQuery(ecs.And2(ecs.Read[Position](), ecs.Read[Velocity]()))
	query.Execute(storage)

	var ids []ecs.EntityId
	for id, view := range query.Iter() {
		ids = append(ids, id)
		assert.Equal(t, float32(id), view.V1.X)
	}
	assert.Equal(t, []ecs.EntityId{0, 2}, ids)
	assert.Equal(t, 2, query.Len())

	// early break
	count := 0
	for range query.Iter() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestQueryValues(t *testing.T) {
	storage := ecs.NewStorage()
	for _, name := range []string{"a", "b", "c"} {
		id := storage.CreateEntity()
		ecs.SetComponent(storage, id, Name{Value: name})
	}

	query := ecs.NewQuery(ecs.Read[Name]())
	query.Execute(storage)

	var names []string
	for view := range query.Values() {
		names = append(names, view.Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestQueryExecuteRefreshes(t *testing.T) {
	storage := ecs.NewStorage()
	a := storage.CreateEntity()
	ecs.SetComponent(storage, a, Score(1))

	query := ecs.NewQuery(ecs.Read[Score]())
	query.Execute(storage)
	require.Equal(t, 1, query.Len())

	b := storage.CreateEntity()
	ecs.SetComponent(storage, b, Score(2))
	ecs.SetComponent(storage, a, Score(10))

	// the cached snapshot is unchanged until the next Execute
	assert.Equal(t, 1, query.Len())
	assert.Equal(t, Score(1), *query.Rows()[0].View)

	query.Execute(storage)
	scores := slices.Collect(query.Values())
	require.Len(t, scores, 2)
	assert.Equal(t, Score(10), *scores[0])
	assert.Equal(t, Score(2), *scores[1])
}
