package main

import (
	"flag"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. ECS_STRESS_ENTITIES=500.
const envPrefix = "ECS_STRESS"

// Config controls one stress run. Values come from, in increasing priority,
// built-in defaults, an optional config file, ECS_STRESS_* environment variables
// and command line flags.
type Config struct {
	Duration       time.Duration `mapstructure:"duration"`
	Interval       time.Duration `mapstructure:"interval"`
	MaxTicks       uint64        `mapstructure:"max-ticks"`
	Entities       int           `mapstructure:"entities"`
	WorldSize      float64       `mapstructure:"world-size"`
	MaxLifetime    float64       `mapstructure:"max-lifetime"`
	Seed           uint64        `mapstructure:"seed"`
	GCPauseMetrics bool          `mapstructure:"gc-pause-metrics"`
	Format         string        `mapstructure:"format"`
	Profile        string        `mapstructure:"profile"`
	ProfilePath    string        `mapstructure:"profile-path"`
	LogFile        string        `mapstructure:"log-file"`
	LogLevel       string        `mapstructure:"log-level"`
}

var defaults = map[string]any{
	"duration":         10 * time.Second,
	"interval":         time.Duration(0),
	"max-ticks":        uint64(0),
	"entities":         10000,
	"world-size":       1000.0,
	"max-lifetime":     5.0,
	"seed":             uint64(1),
	"gc-pause-metrics": false,
	"format":           "text",
	"profile":          "",
	"profile-path":     ".",
	"log-file":         "",
	"log-level":        "info",
}

// loadConfig parses args and layers them over the environment, the config file
// and the defaults.
func loadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("ecs-stress", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configFile := fs.String("config", "", "Optional YAML, JSON or TOML config file.")
	fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	fs.Duration("interval", 0, "Fixed tick interval; 0 runs ticks back to back.")
	fs.Uint64("max-ticks", 0, "Stop after this many ticks; 0 means no limit.")
	fs.Int("entities", 10000, "The initial number of entities to create.")
	fs.Float64("world-size", 1000, "Side length of the square world.")
	fs.Float64("max-lifetime", 5, "Upper bound in seconds of a spawned entity's lifetime.")
	fs.Uint64("seed", 1, "Random seed for entity placement.")
	fs.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	fs.String("format", "text", "Report format: text or json.")
	fs.String("profile", "", "Capture a profile: cpu or mem.")
	fs.String("profile-path", ".", "Directory profiles are written to.")
	fs.String("log-file", "", "Also write logs to this rotated file.")
	fs.String("log-level", "info", "Log level: debug, info, warn or error.")

	if err := fs.Parse(args); err != nil {
		return nil, eris.Wrap(err, "parse flags")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, eris.Wrapf(err, "read config %s", *configFile)
		}
	}

	// explicitly passed flags take precedence over every other layer
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			v.Set(f.Name, f.Value.String())
		}
	})

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, eris.Wrap(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Duration <= 0 && c.MaxTicks == 0:
		return eris.New("either duration or max-ticks must be positive")
	case c.Entities < 0:
		return eris.Errorf("entities must not be negative, got %d", c.Entities)
	case c.WorldSize <= 0:
		return eris.Errorf("world-size must be positive, got %g", c.WorldSize)
	case c.MaxLifetime <= 0:
		return eris.Errorf("max-lifetime must be positive, got %g", c.MaxLifetime)
	}

	switch c.Format {
	case "text", "json":
	default:
		return eris.Errorf("unknown report format %q", c.Format)
	}

	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return eris.Errorf("unknown profile mode %q", c.Profile)
	}

	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, eris.Wrapf(err, "log level %q", c.LogLevel)
	}
	return level, nil
}
