package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/config"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/data"
	"github.com/petiteville/server/internal/scripting"
	"github.com/petiteville/server/internal/system"
	"github.com/petiteville/server/internal/tilemap"
	"github.com/petiteville/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(seed int64) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            petiteville  v0.1.0            \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mseed:\033[0m %d\n\n", seed)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main simulation host ──────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/petiteville.toml"
	if p := os.Getenv("PETITEVILLE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Simulation.Seed)

	// 3. Load the tile map (GIS output). A missing file is survivable for
	// local runs — a flat courtyard grid stands in — but a corrupt file is
	// not: bad magic or a bad version must fail loudly, never be repaired.
	printSection("world")

	tm, err := tilemap.Load(cfg.World.MapFile)
	switch {
	case err == nil:
		printOK(fmt.Sprintf("map %s (%dx%d, %d chunks)",
			cfg.World.MapFile, tm.Width(), tm.Height(), tm.ChunkCount()))
	case errors.Is(err, tilemap.ErrBadMagic), errors.Is(err, tilemap.ErrUnsupportedVersion):
		return fmt.Errorf("map file %s: %w", cfg.World.MapFile, err)
	case os.IsNotExist(err):
		tm, err = tilemap.New(cfg.World.DefaultWidth, cfg.World.DefaultHeight)
		if err != nil {
			return fmt.Errorf("default map: %w", err)
		}
		for y := int32(0); y < tm.Height(); y++ {
			for x := int32(0); x < tm.Width(); x++ {
				tm.SetTerrain(x, y, tilemap.Courtyard, 0)
			}
		}
		log.Warn("map file missing, using flat default grid",
			zap.String("file", cfg.World.MapFile),
			zap.Int32("width", tm.Width()), zap.Int32("height", tm.Height()))
	default:
		return fmt.Errorf("load map: %w", err)
	}

	// 4. Load data tables
	printSection("data")

	districts, err := data.LoadDistrictTable(filepath.Join(cfg.World.DataDir, "districts.yaml"))
	if err != nil {
		return fmt.Errorf("load districts: %w", err)
	}
	printStat("district names", districts.Count())

	speciesTable, err := data.LoadSpeciesTable(filepath.Join(cfg.World.DataDir, "species.yaml"))
	if err != nil {
		return fmt.Errorf("load species: %w", err)
	}
	printStat("species templates", speciesTable.Count())

	actionCfg, err := data.LoadActionConfig(filepath.Join(cfg.World.DataDir, "actions.yaml"))
	if err != nil {
		return fmt.Errorf("load action config: %w", err)
	}
	printStat("decision actions", len(actionCfg.Actions))
	if len(actionCfg.Actions) == 0 {
		log.Warn("empty decision config, every entity will idle")
	}

	// 5. Build the world state and scheduler
	st := world.NewState(world.Options{
		Seed:          cfg.Simulation.Seed,
		EventCapacity: cfg.Events.Capacity,
		Map:           tm,
		QuartierNames: districts.Quartiers,
	})
	runner := system.NewScheduler(st, ai.NewEngine(actionCfg))

	// 6. Initial population: spawn list first, then scenario scripts
	spawns, err := data.LoadSpawnList(filepath.Join(cfg.World.DataDir, "spawn.yaml"))
	if err != nil {
		return fmt.Errorf("load spawn list: %w", err)
	}
	spawned := 0
	for _, entry := range spawns {
		sp := speciesTable.Get(entry.Species)
		if sp == nil {
			log.Warn("spawn list references unknown species", zap.String("species", entry.Species))
			continue
		}
		if !tm.InBounds(entry.X, entry.Y) {
			log.Warn("spawn list entry out of bounds",
				zap.String("species", entry.Species),
				zap.Int32("x", entry.X), zap.Int32("y", entry.Y))
			continue
		}
		for i := 0; i < entry.Count; i++ {
			st.SpawnSpecies(sp, entry.X, entry.Y)
			spawned++
		}
	}
	printStat("spawned", spawned)

	luaEngine := scripting.NewEngine(st, speciesTable, log)
	defer luaEngine.Close()
	if err := luaEngine.LoadDir(filepath.Join(cfg.World.ScriptsDir, "scenario")); err != nil {
		return fmt.Errorf("scenario scripts: %w", err)
	}
	printStat("population", st.Pool.Count())
	fmt.Println()

	// 7. Run
	printSection("ready")
	if cfg.Simulation.TurnBased {
		printReady("turn-based mode: one tick per input line, 'q' to quit")
		fmt.Println()
		return runTurnBased(st, runner, log)
	}
	printReady(fmt.Sprintf("simulation loop (tick: %s)", cfg.Simulation.TickRate))
	fmt.Println()
	return runRealtime(st, runner, cfg.Simulation, log)
}

// runRealtime drives the simulation at a fixed cadence. After a stall the
// number of catch-up ticks per wakeup is capped so the simulation cannot run
// away; lost ticks are simply lost.
func runRealtime(st *world.State, runner *coresys.Runner, simCfg config.SimulationConfig, log *zap.Logger) error {
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(simCfg.TickRate.Duration)
	defer ticker.Stop()

	start := time.Now()
	executed := 0
	for {
		select {
		case <-ticker.C:
			target := int(time.Since(start) / simCfg.TickRate.Duration)
			pending := target - executed
			if simCfg.MaxCatchupTicks > 0 && pending > simCfg.MaxCatchupTicks {
				log.Warn("tick stall, capping catch-up",
					zap.Int("pending", pending),
					zap.Int("cap", simCfg.MaxCatchupTicks))
				executed = target - simCfg.MaxCatchupTicks
				pending = simCfg.MaxCatchupTicks
			}
			for i := 0; i < pending; i++ {
				system.Step(st, runner)
				executed++
				logStatus(st, simCfg, log)
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			log.Info("simulation stopped",
				zap.Uint64("ticks", uint64(st.Tick())),
				zap.Int("alive", st.Pool.Count()))
			return nil
		}
	}
}

// runTurnBased advances exactly one tick per confirmed input line.
func runTurnBased(st *world.State, runner *coresys.Runner, log *zap.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "q" {
			break
		}
		system.Step(st, runner)
		fmt.Print(st.StatusSummary())
		for _, line := range st.RecentEventLines(5) {
			fmt.Println(" ", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Info("simulation stopped",
		zap.Uint64("ticks", uint64(st.Tick())),
		zap.Int("alive", st.Pool.Count()))
	return nil
}

func logStatus(st *world.State, simCfg config.SimulationConfig, log *zap.Logger) {
	if simCfg.StatusInterval <= 0 || uint64(st.Tick())%uint64(simCfg.StatusInterval) != 0 {
		return
	}
	log.Info("status",
		zap.Uint64("tick", uint64(st.Tick())),
		zap.Int("alive", st.Pool.Count()),
		zap.Int("events", st.Events.Len()))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
