package ecs_test

import (
	"fmt"

	"github.com/plus3/ecscore/ecs"
)

// ExampleCommands demonstrates using command buffers to defer structural changes.
// Commands queued during an update are applied after the system's component
// writes, before the next system runs.
func ExampleCommands() {
	storage := ecs.NewStorage()
	for _, hp := range []int{0, 50, 100} {
		id := storage.CreateEntity()
		ecs.SetComponent(storage, id, Health{Current: hp, Max: 100})
	}

	cleanup := ecs.NewSystem("cleanup", ecs.Read[Health](), ecs.Set[Health](),
		func(rows []ecs.Row[*Health], frame *ecs.UpdateFrame[float64, string, bool, Health]) {
			deadCount := 0
			for _, row := range rows {
				if row.View.Current <= 0 {
					frame.Commands.Delete(row.Id)
					deadCount++
				}
			}
			if deadCount > 0 {
				fmt.Printf("Queued %d dead entities for deletion\n", deadCount)
			}
		})

	driver := ecs.NewDriver[float64, string, bool](storage, cleanup)
	driver.Advance(1.0)

	fmt.Printf("Remaining entities: %d\n", storage.Len())

	// Output:
	// Queued 1 dead entities for deletion
	// Remaining entities: 2
}

type ShootTimer struct {
	TimeUntilShot float32
}

// ExampleCommands_spawning shows spawning entities from inside an update.
// The spawned projectiles only become visible to systems that run after the
// spawning system has flushed.
func ExampleCommands_spawning() {
	storage := ecs.NewStorage()
	shooter := storage.CreateEntity()
	ecs.SetComponent(storage, shooter, Position{X: 5, Y: 5})
	ecs.SetComponent(storage, shooter, Velocity{DX: 1, DY: 0})
	ecs.SetComponent(storage, shooter, ShootTimer{TimeUntilShot: 0})

	shooting := ecs.NewSystem("shooting",
		ecs.And3(ecs.Read[Position](), ecs.Read[Velocity](), ecs.Read[ShootTimer]()),
		ecs.Set[ShootTimer](),
		func(rows []ecs.Row[ecs.Tuple3[*Position, *Velocity, *ShootTimer]], frame *ecs.UpdateFrame[float32, string, bool, ShootTimer]) {
			for _, row := range rows {
				pos, vel, timer := row.View.V1, row.View.V2, row.View.V3
				if timer.TimeUntilShot <= 0 {
					frame.Commands.Spawn(
						Position{X: pos.X, Y: pos.Y},
						Velocity{DX: vel.DX * 2, DY: vel.DY * 2},
					)
					fmt.Printf("Spawned projectile at (%.0f, %.0f)\n", pos.X, pos.Y)
					frame.Write(row.Id, ShootTimer{TimeUntilShot: 10})
					continue
				}
				frame.Write(row.Id, ShootTimer{TimeUntilShot: timer.TimeUntilShot - frame.Context})
			}
		})

	driver := ecs.NewDriver[float32, string, bool](storage, shooting)
	driver.Advance(1)
	driver.Advance(1)

	movers := ecs.Snapshot(storage, ecs.Read[Velocity]())
	fmt.Printf("Entities with velocity: %d\n", len(movers))

	timer, _ := ecs.GetComponent[ShootTimer](storage, shooter)
	fmt.Printf("Next shot in %.0f\n", timer.TimeUntilShot)

	// Output:
	// Spawned projectile at (5, 5)
	// Entities with velocity: 2
	// Next shot in 9
}
