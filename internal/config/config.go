package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Loop    LoopConfig    `toml:"loop"`
	Stress  StressConfig  `toml:"stress"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type LoopConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	Duration time.Duration `toml:"duration"` // 0 runs until interrupted
}

type StressConfig struct {
	Entities            int     `toml:"entities"`
	ComponentsPerEntity int     `toml:"components_per_entity"`
	Churn               float64 `toml:"churn"` // fraction of entities replaced per tick (0.0-1.0)
	Systems             int     `toml:"systems"`
	Profile             string  `toml:"profile"` // "", "cpu" or "mem"
	Seed                int64   `toml:"seed"`
}

// Load reads a TOML file over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, eris.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the stress run cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Loop.TickRate <= 0:
		return eris.Errorf("loop.tick_rate must be positive, got %s", c.Loop.TickRate)
	case c.Stress.Entities < 0:
		return eris.Errorf("stress.entities must not be negative, got %d", c.Stress.Entities)
	case c.Stress.ComponentsPerEntity < 1:
		return eris.Errorf("stress.components_per_entity must be at least 1, got %d", c.Stress.ComponentsPerEntity)
	case c.Stress.Churn < 0 || c.Stress.Churn > 1:
		return eris.Errorf("stress.churn must be within 0.0-1.0, got %g", c.Stress.Churn)
	}
	switch c.Stress.Profile {
	case "", "cpu", "mem":
	default:
		return eris.Errorf("stress.profile must be cpu or mem, got %q", c.Stress.Profile)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Loop: LoopConfig{
			TickRate: 16 * time.Millisecond,
			Duration: 5 * time.Second,
		},
		Stress: StressConfig{
			Entities:            10000,
			ComponentsPerEntity: 4,
			Churn:               0.01,
			Systems:             4,
			Seed:                1,
		},
	}
}
