package main

import (
	"flag"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alohaaki7/liquidventures/components"
	"github.com/alohaaki7/liquidventures/config"
	"github.com/alohaaki7/liquidventures/engine"
	"github.com/alohaaki7/liquidventures/renderer"
	"github.com/alohaaki7/liquidventures/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	paced := flag.Bool("paced", false, "Pace headless ticks at the target FPS instead of free-running")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *headless {
		runHeadless(cfg, rngSeed, *maxTicks, *logStats, *outputDir, *paced)
		return
	}
	runWindowed(cfg, rngSeed, *maxTicks, *logStats)
}

// runWindowed mounts the engine into a raylib window paced by vsync.
func runWindowed(cfg *config.Config, seed int64, maxTicks int, logStats bool) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Liquid Ventures")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	eng := engine.New(engine.Options{
		Width:  rl.GetScreenWidth(),
		Height: rl.GetScreenHeight(),
		Seed:   seed,
	})
	if eng == nil {
		// No viewport to mount into; silent by design.
		return
	}

	fr := renderer.NewFrame(cfg, rand.New(rand.NewSource(seed+1)), seed,
		int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	defer fr.Unload()

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	statsEvery := int64(cfg.Telemetry.StatsWindow * float64(cfg.Screen.TargetFPS))
	if statsEvery < 1 {
		statsEvery = 1
	}

	slog.Info("starting windowed run", "seed", seed,
		"width", cfg.Screen.Width, "height", cfg.Screen.Height)

	for !rl.WindowShouldClose() {
		eng.HandleVisibility()
		if w, h, resized := eng.HandleResize(); resized {
			fr.Resize(int32(w), int32(h))
		}
		eng.HandleInput()

		perf.StartTick()
		perf.StartPhase(telemetry.PhaseMotion)
		eng.Step()
		perf.StartPhase(telemetry.PhaseRender)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		eng.Draw(fr)
		rl.EndDrawing()
		perf.EndTick()

		if logStats && eng.Tick() > 0 && eng.Tick()%statsEvery == 0 {
			perf.LogStats(eng.Tick())
		}
		if maxTicks > 0 && eng.Tick() >= int64(maxTicks) {
			break
		}
	}
}

// runHeadless runs the engine without graphics: grain goes to an in-memory
// surface and telemetry goes to slog and CSV.
func runHeadless(cfg *config.Config, seed int64, maxTicks int, logStats bool, outputDir string, paced bool) {
	eng := engine.New(engine.Options{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		Seed:   seed,
	})
	if eng == nil {
		return
	}

	surface := renderer.NewMemorySurface(cfg.Screen.Width, cfg.Screen.Height)
	grain := renderer.NewGrain(cfg.Render.GrainStride, cfg.Render.GrainStrength,
		rand.New(rand.NewSource(seed+1)))

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	windowTicks := int64(cfg.Telemetry.StatsWindow * float64(cfg.Screen.TargetFPS))
	coll := telemetry.NewCollector(windowTicks, float64(cfg.Screen.TargetFPS))

	om, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	slog.Info("starting headless run",
		"seed", seed,
		"max_ticks", maxTicks,
		"paced", paced,
		"particles", cfg.Field.ParticleCount,
	)

	// Everything after the step: grain, counters, window flush.
	after := func(wraps int, recreated bool) {
		perf.StartPhase(telemetry.PhaseGrain)
		grain.Apply(surface)
		perf.EndTick()

		coll.RecordTick(wraps)
		if recreated {
			coll.RecordRecreation()
		}
		if coll.WindowDone(eng.Tick()) {
			speeds, dists, frac := sampleField(eng, cfg)
			stats := coll.Flush(eng.Tick(), eng.Field().Count(), speeds, dists, frac)
			if logStats {
				stats.Log()
				perf.LogStats(eng.Tick())
			}
			if err := om.WriteTelemetry(stats); err != nil {
				slog.Error("telemetry write failed", "error", err)
			}
			if err := om.WritePerf(perf.Snapshot(eng.Tick())); err != nil {
				slog.Error("perf write failed", "error", err)
			}
		}
	}

	if paced {
		// Real-time pacing through the loop/scheduler pair. The perf tick
		// opens in the after callback here, so the motion phase reads zero;
		// use the free-running mode for motion timing.
		loop := engine.NewLoop(eng, engine.NewTickerScheduler(cfg.Screen.TargetFPS), func(wraps int, recreated bool) {
			perf.StartTick()
			after(wraps, recreated)
		})
		loop.Start()
		defer loop.Stop()
		for maxTicks == 0 || eng.Tick() < int64(maxTicks) {
			time.Sleep(100 * time.Millisecond)
		}
		slog.Info("max ticks reached", "tick", eng.Tick())
		return
	}

	for {
		perf.StartTick()
		perf.StartPhase(telemetry.PhaseMotion)
		wraps, recreated := eng.Step()
		after(wraps, recreated)
		if maxTicks > 0 && eng.Tick() >= int64(maxTicks) {
			slog.Info("max ticks reached", "tick", eng.Tick())
			return
		}
	}
}

// sampleField gathers end-of-window distributions from the live field.
func sampleField(eng *engine.Engine, cfg *config.Config) (speeds, dists []float64, influencedFrac float64) {
	px, py := eng.Pointer().Smoothed()
	radius := cfg.Derived.Radius32
	influenced := 0
	total := 0

	eng.Field().Each(func(pos *components.Position, drift *components.Drift, _ *components.Glow, _ *components.Oscillation) {
		speed := math.Hypot(float64(drift.VX), float64(drift.VY))
		dist := math.Hypot(float64(px-pos.X), float64(py-pos.Y))
		speeds = append(speeds, speed)
		dists = append(dists, dist)
		if float32(dist) < radius {
			influenced++
		}
		total++
	})

	if total > 0 {
		influencedFrac = float64(influenced) / float64(total)
	}
	return speeds, dists, influencedFrac
}
