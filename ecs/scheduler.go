package ecs

import (
	"strings"
	"time"
)

// Container is a system made of other systems.
type Container[C, M, S any] interface {
	System[C, M, S]
	Systems() []System[C, M, S]
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Mode           Mode
	ExecutionCount int64
	SignalCount    int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	signalCount    int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs a dynamic list of systems in registration order. All members
// share the same context, message and signal types.
type Scheduler[C, M, S any] struct {
	systems     []System[C, M, S]
	systemStats []*systemStatsInternal
}

// NewScheduler creates a scheduler holding the given systems.
func NewScheduler[C, M, S any](systems ...System[C, M, S]) *Scheduler[C, M, S] {
	s := &Scheduler[C, M, S]{
		systems: make([]System[C, M, S], 0, len(systems)),
	}
	for _, system := range systems {
		s.Register(system)
	}
	return s
}

// Register appends a system. It runs after every system registered before it.
func (s *Scheduler[C, M, S]) Register(system System[C, M, S]) {
	if system == nil {
		panic("ecs: cannot register a nil system")
	}
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Run executes every system once in order. Every system runs even after one
// has signalled; the first signal is returned.
func (s *Scheduler[C, M, S]) Run(storage *Storage, queue *Queue[M], ctx C) (S, bool) {
	var sig signal[S]

	for i, system := range s.systems {
		start := time.Now()
		value, ok := system.Run(storage, queue, ctx)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		if ok {
			stats.signalCount++
		}

		sig.observe(value, ok)
	}

	return sig.value, sig.ok
}

func (s *Scheduler[C, M, S]) Name() string {
	return groupName(s.systems)
}

func (s *Scheduler[C, M, S]) Mode() Mode {
	return groupMode(s.systems)
}

// Systems returns the registered systems in execution order.
func (s *Scheduler[C, M, S]) Systems() []System[C, M, S] {
	return s.systems
}

// ReadOnlyRuns partitions the systems into maximal runs of consecutive systems
// with the same mode. Runs of read-only systems could execute concurrently.
func (s *Scheduler[C, M, S]) ReadOnlyRuns() [][]System[C, M, S] {
	var runs [][]System[C, M, S]
	start := 0
	for i := 1; i <= len(s.systems); i++ {
		if i < len(s.systems) && s.systems[i].Mode() == s.systems[start].Mode() {
			continue
		}
		runs = append(runs, s.systems[start:i:i])
		start = i
	}
	return runs
}

// Stats returns statistics about system execution.
func (s *Scheduler[C, M, S]) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           s.systems[i].Name(),
			Mode:           s.systems[i].Mode(),
			ExecutionCount: internal.executionCount,
			SignalCount:    internal.signalCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

// signal keeps the first terminal value reported during a tick.
type signal[S any] struct {
	value S
	ok    bool
}

func (s *signal[S]) observe(value S, ok bool) {
	if ok && !s.ok {
		s.value = value
		s.ok = true
	}
}

func groupName[C, M, S any](systems []System[C, M, S]) string {
	names := make([]string, len(systems))
	for i, system := range systems {
		names[i] = system.Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// groupMode is ReadOnly only when every member is.
func groupMode[C, M, S any](systems []System[C, M, S]) Mode {
	for _, system := range systems {
		if system.Mode() == Mutating {
			return Mutating
		}
	}
	return ReadOnly
}
