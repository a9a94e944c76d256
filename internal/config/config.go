package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that unmarshals from a TOML string such as
// "200ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	World      WorldConfig      `toml:"world"`
	Events     EventsConfig     `toml:"events"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	Seed            int64         `toml:"seed"`
	TickRate        Duration `toml:"tick_rate"`
	MaxCatchupTicks int      `toml:"max_catchup_ticks"` // cap per wakeup after a stall
	TurnBased       bool     `toml:"turn_based"`        // one tick per confirmed input line
	StatusInterval  int      `toml:"status_interval"`   // ticks between status logs, 0 = off
}

type WorldConfig struct {
	MapFile       string `toml:"map_file"`
	DataDir       string `toml:"data_dir"`
	ScriptsDir    string `toml:"scripts_dir"`
	DefaultWidth  int32  `toml:"default_width"`  // used when map_file is absent
	DefaultHeight int32  `toml:"default_height"`
}

type EventsConfig struct {
	Capacity int `toml:"capacity"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Seed:            1,
			TickRate:        Duration{200 * time.Millisecond},
			MaxCatchupTicks: 5,
			TurnBased:       false,
			StatusInterval:  50,
		},
		World: WorldConfig{
			MapFile:       "data/ville.map",
			DataDir:       "data/yaml",
			ScriptsDir:    "scripts",
			DefaultWidth:  256,
			DefaultHeight: 256,
		},
		Events: EventsConfig{
			Capacity: 1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
