// Command ecs-stress drives a synthetic world of moving, expiring and
// respawning entities through the ecs runtime and reports tick timings.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/plus3/ecscore/ecs"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog := newLogger(cfg, os.Stderr)
	defer closeLog()

	if err := run(context.Background(), cfg, logger, os.Stdout); err != nil {
		logger.Error("stress test failed", "err", eris.ToString(err, true))
		closeLog()
		os.Exit(1)
	}
}

// newLogger writes to stderr and, when configured, to a rotated log file.
func newLogger(cfg *Config, stderr io.Writer) (*slog.Logger, func()) {
	level, _ := cfg.level()

	var out io.Writer = stderr
	closeFn := func() {}
	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    16, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = io.MultiWriter(stderr, file)
		closeFn = func() { _ = file.Close() }
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeFn
}

func startProfile(cfg *Config) interface{ Stop() } {
	switch cfg.Profile {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfilePath), profile.Quiet, profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.ProfilePath), profile.Quiet, profile.NoShutdownHook)
	default:
		return nil
	}
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger, out io.Writer) error {
	logger.Info("starting ECS stress test", "entities", cfg.Entities, "duration", cfg.Duration, "max_ticks", cfg.MaxTicks)

	storage := ecs.NewStorage(ecs.WithCapacity(cfg.Entities))
	world := NewWorld(cfg, logger)
	scheduler := world.Systems()

	report := &Report{
		Duration:       cfg.Duration,
		MaxTicks:       cfg.MaxTicks,
		Entities:       cfg.Entities,
		Systems:        len(scheduler.Systems()),
		WorldSize:      cfg.WorldSize,
		MaxLifetime:    cfg.MaxLifetime,
		GCPauseMetrics: cfg.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, 1024),
		},
	}

	driver := ecs.NewDriver[Tick, Event, Outcome](storage, scheduler,
		ecs.WithQueueCapacity(cfg.Entities/8+1),
		ecs.WithTickObserver(func(_ uint64, d time.Duration) {
			report.UpdateTime.Observe(d)
		}),
	)

	logger.Info("populating storage", "entities", cfg.Entities)
	world.Populate(storage)
	logger.Debug("population complete", "stats", storage.CollectStats())

	for _, batch := range scheduler.ReadOnlyRuns() {
		if batch[0].Mode() == ecs.ReadOnly {
			logger.Debug("read-only batch", "systems", len(batch), "first", batch[0].Name())
		}
	}

	if p := startProfile(cfg); p != nil {
		defer p.Stop()
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	logger.Info("running simulation", "duration", cfg.Duration, "interval", cfg.Interval)
	start := time.Now()
	outcome, err := simulate(ctx, cfg, driver)
	if err != nil {
		return err
	}

	report.Outcome = outcome
	report.TotalTime = time.Since(start)
	report.TotalUpdates = driver.Ticks()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.FinalEntities = storage.Len()
	report.Respawned = world.Respawned
	report.Census = world.Census
	report.Storage = storage.CollectStats()
	report.Scheduler = scheduler.Stats()
	if err := report.CollectHost(); err != nil {
		logger.Warn("host stats unavailable", "err", err)
	}

	logger.Info("simulation finished", "outcome", outcome, "ticks", report.TotalUpdates)

	if cfg.Format == "json" {
		return report.JSON(out)
	}

	fmt.Fprintln(out, "\n\n--- Stress Test Report ---")
	if err := report.Generate(out); err != nil {
		return eris.Wrap(err, "generate report")
	}
	fmt.Fprintln(out, "--- End of Report ---")
	return nil
}

// simulate advances the driver until a system signals or ctx ends, and
// describes why it stopped. Without an interval ticks run back to back.
func simulate(ctx context.Context, cfg *Config, driver *ecs.Driver[Tick, Event, Outcome]) (string, error) {
	next := func(dt time.Duration) Tick {
		return Tick{N: driver.Ticks() + 1, Dt: dt.Seconds()}
	}

	outcome, ok, err := driver.Run(ctx, cfg.Interval, next)
	switch {
	case ok:
		return describe(outcome), nil
	case eris.Is(err, context.DeadlineExceeded):
		return "duration elapsed", nil
	default:
		return "", eris.Wrap(err, "simulation interrupted")
	}
}

func describe(o Outcome) string {
	return fmt.Sprintf("%s at tick %d", o.Reason, o.Tick)
}
