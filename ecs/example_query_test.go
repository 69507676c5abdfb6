package ecs_test

import (
	"fmt"

	"github.com/plus3/ecscore/ecs"
)

// ExampleQuery demonstrates using queries for repeated iteration. A Query keeps
// its row buffer between calls to Execute, and every Execute takes a fresh
// snapshot in ascending id order.
func ExampleQuery() {
	storage := ecs.NewStorage()

	spawn := func(p Position, v Velocity) {
		id := storage.CreateEntity()
		ecs.SetComponent(storage, id, p)
		ecs.SetComponent(storage, id, v)
	}
	spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 0})
	spawn(Position{X: 10, Y: 10}, Velocity{DX: 0, DY: 1})
	spawn(Position{X: 20, Y: 20}, Velocity{DX: -1, DY: -1})
	ecs.SetComponent(storage, storage.CreateEntity(), Position{X: 99, Y: 99})

	query := ecs.NewQuery(ecs.And2(ecs.Read[Position](), ecs.Read[Velocity]()))
	query.Execute(storage)

	fmt.Println("Moving entities:")
	for item := range query.Values() {
		pos, vel := item.V1, item.V2
		fmt.Printf("Position (%.0f, %.0f) -> (%.0f, %.0f)\n", pos.X, pos.Y, pos.X+vel.DX, pos.Y+vel.DY)
	}

	// Output:
	// Moving entities:
	// Position (0, 0) -> (1, 0)
	// Position (10, 10) -> (10, 11)
	// Position (20, 20) -> (19, 19)
}

// ExampleOr shows a left-biased alternation combined with an optional read.
// Entities holding both alternatives always take the left branch.
func ExampleOr() {
	storage := ecs.NewStorage()

	a := storage.CreateEntity()
	ecs.SetComponent(storage, a, Name{Value: "alice"})
	ecs.SetComponent(storage, a, Tag("admin"))
	ecs.SetComponent(storage, a, Health{Current: 7})

	b := storage.CreateEntity()
	ecs.SetComponent(storage, b, Tag("guest"))

	access := ecs.And2(
		ecs.Or(ecs.Read[Name](), ecs.Read[Tag]()),
		ecs.Opt(ecs.Read[Health]()),
	)
	for _, row := range ecs.Snapshot(storage, access) {
		label := "?"
		if name, ok := row.View.V1.Left(); ok {
			label = name.Value
		} else if tag, ok := row.View.V1.Right(); ok {
			label = string(*tag)
		}
		hp := row.View.V2.OrElse(&Health{Current: -1})
		fmt.Printf("%v: %s hp=%d\n", row.Id, label, hp.Current)
	}

	// Output:
	// entity#0: alice hp=7
	// entity#1: guest hp=-1
}
