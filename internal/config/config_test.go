package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petiteville.toml")
	doc := `
[simulation]
seed = 42
tick_rate = "50ms"
turn_based = true

[world]
map_file = "maps/test.map"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Simulation.Seed)
	}
	if cfg.Simulation.TickRate.Duration != 50*time.Millisecond {
		t.Errorf("tick rate = %s, want 50ms", cfg.Simulation.TickRate)
	}
	if !cfg.Simulation.TurnBased {
		t.Error("turn_based not read")
	}
	if cfg.World.MapFile != "maps/test.map" {
		t.Errorf("map file = %q", cfg.World.MapFile)
	}
	// Omitted keys keep their defaults.
	if cfg.Simulation.MaxCatchupTicks != 5 {
		t.Errorf("max catch-up = %d, want default 5", cfg.Simulation.MaxCatchupTicks)
	}
	if cfg.Events.Capacity != 1024 {
		t.Errorf("event capacity = %d, want default 1024", cfg.Events.Capacity)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging format = %q", cfg.Logging.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing config file accepted")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[simulation\nseed = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed TOML accepted")
	}

	badRate := filepath.Join(t.TempDir(), "rate.toml")
	if err := os.WriteFile(badRate, []byte("[simulation]\ntick_rate = \"soon\""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badRate); err == nil {
		t.Error("unparseable tick rate accepted")
	}
}
