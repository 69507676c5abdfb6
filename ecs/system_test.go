package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tick struct{}

type counterSystem struct {
	runs int
}

func (s *counterSystem) update(rows []ecs.Row[ecs.Tuple2[*Counter, ecs.Nothing]], frame *ecs.UpdateFrame[tick, string, int, Counter]) {
	s.runs++
	for _, row := range rows {
		frame.Write(row.Id, *row.View.V1+1)
	}
}

func newCounterSystem() (*counterSystem, *ecs.BasicSystem[tick, string, int, ecs.Tuple2[*Counter, ecs.Nothing], Counter]) {
	state := &counterSystem{}
	return state, ecs.NewSystem(
		"counter",
		ecs.And2(ecs.Read[Counter](), ecs.Has[Test]()),
		ecs.Set[Counter](),
		state.update,
	)
}

func TestSystemIncrementsMatchingEntities(t *testing.T) {
	storage := ecs.NewStorage()
	marked := storage.CreateEntity()
	unmarked := storage.CreateEntity()
	ecs.SetComponent(storage, marked, Counter(0))
	ecs.SetComponent(storage, marked, Test{})
	ecs.SetComponent(storage, unmarked, Counter(0))

	state, system := newCounterSystem()
	driver := ecs.NewDriver[tick, string, int](storage, system)

	for i := 0; i < 3; i++ {
		_, ok := driver.Advance(tick{})
		assert.False(t, ok)
	}

	got, _ := ecs.GetComponent[Counter](storage, marked)
	assert.Equal(t, Counter(3), *got)
	got, _ = ecs.GetComponent[Counter](storage, unmarked)
	assert.Equal(t, Counter(0), *got)
	assert.Equal(t, 3, state.runs)
	assert.Equal(t, uint64(3), driver.Ticks())
}

func TestSystemOnEmptyStorage(t *testing.T) {
	storage := ecs.NewStorage()
	state, system := newCounterSystem()
	driver := ecs.NewDriver[tick, string, int](storage, system)

	_, ok := driver.Advance(tick{})
	assert.False(t, ok)
	assert.Equal(t, 1, state.runs)
	assert.Equal(t, 0, system.Query().Len())
	assert.Equal(t, 0, storage.Len())
	assert.Zero(t, driver.Queue().Len())
}

func TestSystemSeesOwnSnapshotOnly(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.CreateEntity()
	ecs.SetComponent(storage, id, Score(1))

	var seen []Score
	system := ecs.NewSystem("doubler", ecs.Read[Score](), ecs.Set[Score](),
		func(rows []ecs.Row[*Score], frame *ecs.UpdateFrame[tick, string, int, Score]) {
			for _, row := range rows {
				frame.Write(row.Id, *row.View*2)
				frame.Write(row.Id, *row.View*3)
				seen = append(seen, *row.View)
			}
		})
	observer := ecs.NewReadOnlySystem("observer", ecs.Read[Score](),
		func(rows []ecs.Row[*Score], frame *ecs.UpdateFrame[tick, string, int, ecs.Nothing]) {
			for _, row := range rows {
				seen = append(seen, *row.View)
			}
		})

	driver := ecs.NewDriver[tick, string, int](storage, ecs.NewGroup2[tick, string, int](system, observer))
	driver.Advance(tick{})

	// the last write for an entity wins; the next system observes it
	assert.Equal(t, []Score{1, 3}, seen)
}

func TestSystemMessages(t *testing.T) {
	storage := ecs.NewStorage()
	for i := 0; i < 3; i++ {
		id := storage.CreateEntity()
		ecs.SetComponent(storage, id, Score(i))
	}

	sender := ecs.NewReadOnlySystem("sender", ecs.Read[Score](),
		func(rows []ecs.Row[*Score], frame *ecs.UpdateFrame[tick, string, int, ecs.Nothing]) {
			for _, row := range rows {
				if *row.View > 0 {
					frame.Send(row.Id.String())
				}
			}
		})

	var handled []string
	receiver := ecs.NewSystem("receiver", ecs.Has[Score](), ecs.NoWrite(),
		func(rows []ecs.Row[ecs.Nothing], frame *ecs.UpdateFrame[tick, string, int, ecs.Nothing]) {},
		ecs.WithMessageHandler(func(storage *ecs.Storage, in []string) []string {
			handled = append(handled, in...)
			return in[:1]
		}))

	assert.Equal(t, ecs.ReadOnly, sender.Mode())
	assert.Equal(t, ecs.Mutating, receiver.Mode())

	driver := ecs.NewDriver[tick, string, int](storage, ecs.NewGroup2[tick, string, int](sender, receiver))
	driver.Advance(tick{})

	assert.Equal(t, []string{"entity#1", "entity#2"}, handled)
	assert.Equal(t, []string{"entity#1"}, driver.Queue().Peek())

	// undrained messages persist into the next tick
	handled = nil
	driver.Advance(tick{})
	assert.Equal(t, []string{"entity#1", "entity#1", "entity#2"}, handled)
}

func TestSystemSignal(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.CreateEntity()
	ecs.SetComponent(storage, id, Counter(0))

	system := ecs.NewSystem("limit", ecs.Read[Counter](), ecs.Set[Counter](),
		func(rows []ecs.Row[*Counter], frame *ecs.UpdateFrame[int, string, string, Counter]) {
			for _, row := range rows {
				next := *row.View + 1
				frame.Write(row.Id, next)
				if int(next) >= frame.Context {
					frame.Signal("done")
					frame.Signal("ignored")
				}
			}
		})

	driver := ecs.NewDriver[int, string, string](storage, system)

	_, ok := driver.Advance(2)
	assert.False(t, ok)

	sig, ok := driver.Advance(2)
	require.True(t, ok)
	assert.Equal(t, "done", sig)

	// a signal does not carry over to the next tick
	_, ok = driver.Advance(100)
	assert.False(t, ok)
}

func TestSystemCommands(t *testing.T) {
	storage := ecs.NewStorage()
	doomed := storage.CreateEntity()
	ecs.SetComponent(storage, doomed, Health{Current: 0})
	alive := storage.CreateEntity()
	ecs.SetComponent(storage, alive, Health{Current: 5})

	reaper := ecs.NewSystem("reaper", ecs.Read[Health](), ecs.Set[Health](),
		func(rows []ecs.Row[*Health], frame *ecs.UpdateFrame[tick, string, int, Health]) {
			for _, row := range rows {
				if row.View.Current <= 0 {
					frame.Commands.Delete(row.Id)
					// writes for deleted entities are applied first and then discarded
					frame.Write(row.Id, Health{Current: 1})
					frame.Commands.Spawn(Name{Value: "ghost"})
				}
			}
		})

	driver := ecs.NewDriver[tick, string, int](storage, reaper)
	driver.Advance(tick{})

	assert.True(t, storage.Alive(alive))
	assert.Equal(t, 2, storage.Len())

	// the freed id is reused by the spawn, which carries none of the old components
	name, ok := ecs.GetComponent[Name](storage, doomed)
	require.True(t, ok)
	assert.Equal(t, "ghost", name.Value)
	assert.False(t, ecs.HasComponent[Health](storage, doomed))
}

func TestReadOnlySystemHasNoCommands(t *testing.T) {
	storage := ecs.NewStorage()
	storage.CreateEntity()

	var commands *ecs.Commands
	called := false
	system := ecs.NewReadOnlySystem("probe", ecs.Opt(ecs.Read[Score]()),
		func(rows []ecs.Row[ecs.Option[*Score]], frame *ecs.UpdateFrame[tick, string, int, ecs.Nothing]) {
			called = true
			commands = frame.Commands
		})

	assert.Equal(t, ecs.ReadOnly, system.Mode())
	assert.Equal(t, "probe", system.Name())

	system.Run(storage, ecs.NewQueue[string](0), tick{})
	assert.True(t, called)
	assert.Nil(t, commands)
}

func TestSimpleSystem(t *testing.T) {
	storage := ecs.NewStorage()
	for i := 0; i < 4; i++ {
		id := storage.CreateEntity()
		ecs.SetComponent(storage, id, Position{X: float32(i)})
		ecs.SetComponent(storage, id, Velocity{DX: 1, DY: 2})
	}

	move := ecs.NewSimpleSystem[string, int](
		"move",
		ecs.And2(ecs.Read[Position](), ecs.Read[Velocity]()),
		ecs.Set[Position](),
		func(dt float32, id ecs.EntityId, in ecs.Tuple2[*Position, *Velocity]) (Position, bool) {
			if id == 0 {
				return Position{}, false
			}
			return Position{X: in.V1.X + in.V2.DX*dt, Y: in.V1.Y + in.V2.DY*dt}, true
		})

	driver := ecs.NewDriver[float32, string, int](storage, move)
	driver.Advance(0.5)

	first, _ := ecs.GetComponent[Position](storage, 0)
	assert.Equal(t, Position{X: 0, Y: 0}, *first)
	last, _ := ecs.GetComponent[Position](storage, 3)
	assert.Equal(t, Position{X: 3.5, Y: 1}, *last)
}

func TestNewSystemRequiresUpdate(t *testing.T) {
	assert.Panics(t, func() {
		ecs.NewSystem[tick, string, int, *Score, Score]("broken", ecs.Read[Score](), ecs.Set[Score](), nil)
	})
}
