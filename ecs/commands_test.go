package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commandSystem runs fn once per tick with the frame's command buffer. Its
// output shape makes it a mutating system even though it never writes.
func commandSystem(fn func(commands *ecs.Commands)) *ecs.BasicSystem[tick, string, int, ecs.Nothing, Score] {
	return ecs.NewSystem("commands", ecs.Has[PlayerController](), ecs.Set[Score](),
		func(rows []ecs.Row[ecs.Nothing], frame *ecs.UpdateFrame[tick, string, int, Score]) {
			fn(frame.Commands)
		})
}

func runCommands(storage *ecs.Storage, fn func(commands *ecs.Commands)) {
	commandSystem(fn).Run(storage, ecs.NewQueue[string](0), tick{})
}

func TestCommandsSpawn(t *testing.T) {
	storage := ecs.NewStorage()

	runCommands(storage, func(commands *ecs.Commands) {
		commands.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
		commands.Spawn(&Position{X: 3, Y: 4})
		assert.Equal(t, 2, commands.Len())
	})

	require.Equal(t, 2, storage.Len())
	assert.True(t, ecs.HasComponent[Velocity](storage, 0))
	pos, ok := ecs.GetComponent[Position](storage, 1)
	require.True(t, ok)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)
}

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.CreateEntity()
	ecs.SetComponent(storage, id, Position{})

	runCommands(storage, func(commands *ecs.Commands) {
		commands.Delete(id)
	})

	assert.False(t, storage.Alive(id))
	assert.Equal(t, 0, storage.Len())
}

func TestCommandsSetAndRemove(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.CreateEntity()
	ecs.SetComponent(storage, id, Velocity{DX: 1})

	runCommands(storage, func(commands *ecs.Commands) {
		commands.SetComponent(id, Health{Current: 5, Max: 10})
		commands.RemoveComponent(id, ecs.KindOf[Velocity]())
	})

	health, ok := ecs.GetComponent[Health](storage, id)
	require.True(t, ok)
	assert.Equal(t, 5, health.Current)
	assert.False(t, ecs.HasComponent[Velocity](storage, id))
}

func TestCommandsMixed(t *testing.T) {
	storage := ecs.NewStorage()
	doomed := storage.CreateEntity()
	kept := storage.CreateEntity()
	deferred := false

	runCommands(storage, func(commands *ecs.Commands) {
		commands.Spawn(Position{X: 10, Y: 20})
		commands.SetComponent(doomed, Velocity{DX: 1, DY: 1})
		commands.SetComponent(kept, Velocity{DX: 2, DY: 2})
		commands.Delete(doomed)
		commands.Defer(func() {
			deferred = true
			// spawns have been applied by the time deferred functions run
			assert.Equal(t, 2, storage.Len())
		})
	})

	assert.True(t, deferred)

	// the spawn reuses the deleted id and does not inherit the queued set
	assert.False(t, ecs.HasComponent[Velocity](storage, doomed))
	assert.True(t, ecs.HasComponent[Position](storage, doomed))
	assert.True(t, ecs.HasComponent[Velocity](storage, kept))
}

func TestCommandsResetAfterFlush(t *testing.T) {
	storage := ecs.NewStorage()
	runs := 0
	system := commandSystem(func(commands *ecs.Commands) {
		assert.Equal(t, 0, commands.Len())
		if runs == 0 {
			commands.Spawn(Score(1))
		}
		runs++
	})

	queue := ecs.NewQueue[string](0)
	system.Run(storage, queue, tick{})
	system.Run(storage, queue, tick{})

	assert.Equal(t, 2, runs)
	assert.Equal(t, 1, storage.Len())
}
