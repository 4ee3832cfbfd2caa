package engine

import (
	"testing"

	"github.com/alohaaki7/liquidventures/components"
	"github.com/alohaaki7/liquidventures/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	return cfg
}

func TestNewWithoutViewportIsNil(t *testing.T) {
	cfg := testConfig(t)
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 720},
		{"zero height", 1280, 0},
		{"both zero", 0, 0},
		{"negative", -100, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Options{Width: tt.width, Height: tt.height, Seed: 1, Config: cfg})
			if e != nil {
				t.Fatalf("New(%dx%d) = %v, want nil", tt.width, tt.height, e)
			}
			// Absent mount is silent: everything on the nil engine is a no-op.
			e.Step()
			e.Resize(100, 100)
			e.SetVisible(false)
			e.PointerMoved(1, 2)
			e.TouchMoved(3, 4)
			if e.Running() {
				t.Error("nil engine reports Running")
			}
			if e.Tick() != 0 {
				t.Error("nil engine reports nonzero tick")
			}
		})
	}
}

func TestParticleCountConstantAcrossTicks(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 1280, Height: 720, Seed: 42, Config: cfg})

	for i := 0; i < 300; i++ {
		e.Step()
		if got := e.Field().Count(); got != cfg.Field.ParticleCount {
			t.Fatalf("tick %d: count = %d, want %d", i, got, cfg.Field.ParticleCount)
		}
	}
}

func TestPauseStopsAllMotion(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 1280, Height: 720, Seed: 42, Config: cfg})
	e.PointerMoved(100, 100)
	e.Step()

	var before []components.Position
	e.Field().Each(func(pos *components.Position, _ *components.Drift, _ *components.Glow, _ *components.Oscillation) {
		before = append(before, *pos)
	})
	tickBefore := e.Tick()

	e.SetVisible(false)
	for i := 0; i < 50; i++ {
		e.Step()
	}

	if e.Tick() != tickBefore {
		t.Errorf("tick advanced to %d while paused, want %d", e.Tick(), tickBefore)
	}
	i := 0
	e.Field().Each(func(pos *components.Position, _ *components.Drift, _ *components.Glow, _ *components.Oscillation) {
		if *pos != before[i] {
			t.Errorf("particle %d moved while paused: %v -> %v", i, before[i], *pos)
		}
		i++
	})

	// Resume ticks again
	e.SetVisible(true)
	e.Step()
	if e.Tick() != tickBefore+1 {
		t.Errorf("tick = %d after resume, want %d", e.Tick(), tickBefore+1)
	}
}

func TestResizeRecreatesField(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 1280, Height: 720, Seed: 42, Config: cfg})
	e.Step()

	e.Resize(320, 240)
	// Recreation happens at the start of the next tick, not immediately.
	if _, recreated := e.Step(); !recreated {
		t.Error("Step did not report the pending recreation")
	}
	if _, recreated := e.Step(); recreated {
		t.Error("Step reported a recreation twice for one resize")
	}

	if got := e.Field().Count(); got != cfg.Field.ParticleCount {
		t.Fatalf("count after resize = %d, want %d", got, cfg.Field.ParticleCount)
	}
	e.Field().Each(func(pos *components.Position, _ *components.Drift, glow *components.Glow, _ *components.Oscillation) {
		if pos.X < -glow.Size || pos.X > 320+glow.Size ||
			pos.Y < -glow.Size || pos.Y > 240+glow.Size {
			t.Errorf("particle at (%v,%v) outside resized viewport 320x240", pos.X, pos.Y)
		}
	})
}

func TestSingleParticleMovesTowardPointer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Field.ParticleCount = 1
	cfg.Field.DriftMax = 0
	cfg.Field.AmplitudeMin = 0
	cfg.Field.AmplitudeMax = 0
	cfg.Recompute()

	e := New(Options{Width: 200, Height: 200, Seed: 1, Config: cfg})

	// Pin the particle to the origin so the attraction direction is known.
	e.Field().Each(func(pos *components.Position, _ *components.Drift, _ *components.Glow, _ *components.Oscillation) {
		pos.X = 0
		pos.Y = 0
	})

	e.PointerMoved(1000, 1000)
	e.Step()

	var size float32
	e.Field().Each(func(pos *components.Position, _ *components.Drift, glow *components.Glow, _ *components.Oscillation) {
		size = glow.Size
		// The smoothed pointer is northeast of the particle and within the
		// influence radius, so the tick must move it strictly toward it.
		if pos.X <= 0 || pos.Y <= 0 {
			t.Errorf("particle did not move toward pointer: (%v,%v)", pos.X, pos.Y)
		}
		if pos.X > 200+size || pos.Y > 200+size {
			t.Errorf("particle at (%v,%v) escaped wrap bound %v", pos.X, pos.Y, 200+size)
		}
	})
}

func TestPointerInputNeverAdvancesSmoothing(t *testing.T) {
	cfg := testConfig(t)
	e := New(Options{Width: 1280, Height: 720, Seed: 42, Config: cfg})

	sx, sy := e.Pointer().Smoothed()
	// A burst of input events between ticks changes only the raw target.
	for i := 0; i < 1000; i++ {
		e.PointerMoved(float32(i), float32(-i))
	}
	gx, gy := e.Pointer().Smoothed()
	if gx != sx || gy != sy {
		t.Errorf("smoothed moved (%v,%v) -> (%v,%v) without a tick", sx, sy, gx, gy)
	}
	rx, ry := e.Pointer().Raw()
	if rx != 999 || ry != -999 {
		t.Errorf("raw = (%v,%v), want last write (999,-999)", rx, ry)
	}
}
