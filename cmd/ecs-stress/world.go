package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/plus3/ecscore/ecs"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

// Lifetime counts down in seconds; the entity expires at zero.
type Lifetime struct {
	Remaining float64
}

// Static marks entities that never move.
type Static struct{}

// Tick is the per-tick context handed to every system.
type Tick struct {
	N  uint64
	Dt float64
}

type EventKind uint8

const (
	Expired EventKind = iota + 1
)

func (k EventKind) String() string {
	switch k {
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event is the message type of the stress world.
type Event struct {
	Kind   EventKind
	Entity ecs.EntityId
}

// Outcome is the terminal signal of a run.
type Outcome struct {
	Reason string
	Tick   uint64
}

type (
	moveIn   = ecs.Tuple2[*Position, *Velocity]
	moveOut  = ecs.Tuple2[Position, Velocity]
	ageFrame = ecs.UpdateFrame[Tick, Event, Outcome, Lifetime]
)

// World owns the simulation state shared by the stress systems.
type World struct {
	cfg    *Config
	rng    *rand.Rand
	logger *slog.Logger

	Respawned int
	Census    Census
}

// Census is what the read-only census system saw on the last tick.
type Census struct {
	Moving int
	Static int
}

func NewWorld(cfg *Config, logger *slog.Logger) *World {
	return &World{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
}

// Populate creates the initial entities. Every fourth one is static.
func (w *World) Populate(storage *ecs.Storage) {
	for i := 0; i < w.cfg.Entities; i++ {
		w.spawn(storage, i%4 == 3)
	}
}

func (w *World) spawn(storage *ecs.Storage, static bool) ecs.EntityId {
	id := storage.CreateEntity()
	ecs.SetComponent(storage, id, Position{
		X: w.rng.Float64() * w.cfg.WorldSize,
		Y: w.rng.Float64() * w.cfg.WorldSize,
	})
	ecs.SetComponent(storage, id, Lifetime{Remaining: w.rng.Float64() * w.cfg.MaxLifetime})
	if static {
		ecs.SetComponent(storage, id, Static{})
		return id
	}
	ecs.SetComponent(storage, id, Velocity{
		DX: w.rng.NormFloat64() * 10,
		DY: w.rng.NormFloat64() * 10,
	})
	return id
}

// Systems builds the per-tick pipeline in execution order.
func (w *World) Systems() *ecs.Scheduler[Tick, Event, Outcome] {
	return ecs.NewScheduler[Tick, Event, Outcome](
		ecs.NewSimpleSystem[Event, Outcome](
			"movement",
			ecs.And2(ecs.Read[Position](), ecs.Read[Velocity]()),
			ecs.SetAnd2(ecs.Set[Position](), ecs.Set[Velocity]()),
			w.move,
		),
		ecs.NewSystem("aging", ecs.Read[Lifetime](), ecs.Set[Lifetime](), w.age),
		ecs.NewSystem("respawn", ecs.Has[Lifetime](), ecs.NoWrite(),
			func([]ecs.Row[ecs.Nothing], *ecs.UpdateFrame[Tick, Event, Outcome, ecs.Nothing]) {},
			ecs.WithMessageHandler(w.respawn),
		),
		ecs.NewReadOnlySystem("census",
			ecs.And2(ecs.Has[Position](), ecs.Or(ecs.Read[Velocity](), ecs.Has[Static]())),
			w.census,
		),
	)
}

// move integrates positions and reflects velocities at the world edges.
func (w *World) move(t Tick, _ ecs.EntityId, in moveIn) (moveOut, bool) {
	pos, vel := *in.V1, *in.V2
	pos.X += vel.DX * t.Dt
	pos.Y += vel.DY * t.Dt

	if pos.X < 0 || pos.X > w.cfg.WorldSize {
		vel.DX = -vel.DX
		pos.X = min(max(pos.X, 0), w.cfg.WorldSize)
	}
	if pos.Y < 0 || pos.Y > w.cfg.WorldSize {
		vel.DY = -vel.DY
		pos.Y = min(max(pos.Y, 0), w.cfg.WorldSize)
	}
	return moveOut{V1: pos, V2: vel}, true
}

func (w *World) age(rows []ecs.Row[*Lifetime], frame *ageFrame) {
	for _, row := range rows {
		remaining := row.View.Remaining - frame.Context.Dt
		if remaining > 0 {
			frame.Write(row.Id, Lifetime{Remaining: remaining})
			continue
		}
		frame.Commands.Delete(row.Id)
		frame.Send(Event{Kind: Expired, Entity: row.Id})
	}
}

// respawn replaces every expired entity and leaves other messages queued.
func (w *World) respawn(storage *ecs.Storage, in []Event) []Event {
	out := in[:0]
	for _, ev := range in {
		if ev.Kind != Expired {
			out = append(out, ev)
			continue
		}
		id := w.spawn(storage, w.rng.IntN(4) == 3)
		w.Respawned++
		w.logger.Debug("respawned", "expired", ev.Entity, "entity", id)
	}
	return out
}

func (w *World) census(rows []ecs.Row[ecs.Tuple2[ecs.Nothing, ecs.Either[*Velocity, ecs.Nothing]]], frame *ecs.UpdateFrame[Tick, Event, Outcome, ecs.Nothing]) {
	w.Census = Census{}
	for _, row := range rows {
		if row.View.V2.IsLeft() {
			w.Census.Moving++
		} else {
			w.Census.Static++
		}
	}

	t := frame.Context
	switch {
	case len(rows) == 0:
		frame.Signal(Outcome{Reason: "extinct", Tick: t.N})
	case w.cfg.MaxTicks > 0 && t.N >= w.cfg.MaxTicks:
		frame.Signal(Outcome{Reason: "max ticks reached", Tick: t.N})
	}
}
