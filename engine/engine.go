// Package engine owns one glow field instance: its particles, pointer state,
// force model, viewport, and run/pause lifecycle.
package engine

import (
	"math/rand"
	"sync/atomic"

	"github.com/alohaaki7/liquidventures/config"
	"github.com/alohaaki7/liquidventures/field"
)

// State is the engine lifecycle state.
type State uint8

const (
	// Running means ticks are being performed.
	Running State = iota
	// Paused means the surface is not visible and no ticks occur.
	Paused
)

// Options configures a new engine instance.
type Options struct {
	Width  int
	Height int
	Seed   int64
	// Config overrides the global config when non-nil.
	Config *config.Config
}

// Engine is a single mounted glow field. Each mount produces an independent
// instance; there is no shared state between engines.
//
// A nil *Engine is a valid no-op: New returns nil when there is no viewport
// to mount into, and every method tolerates a nil receiver. Absent mount is a
// configuration-absence condition, not a failure.
type Engine struct {
	cfg     *config.Config
	rng     *rand.Rand
	field   *field.Field
	pointer *field.PointerTracker
	motion  *field.Motion

	width, height float32
	state         State
	needsRecreate bool

	// Atomic: a scheduler goroutine writes it while hosts poll it.
	tick atomic.Int64
}

// New creates an engine for the given viewport. Returns nil when the
// viewport is absent (non-positive width or height); the caller may use the
// nil engine freely and nothing will happen.
func New(opts Options) *Engine {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	w := float32(opts.Width)
	h := float32(opts.Height)

	e := &Engine{
		cfg:     cfg,
		rng:     rng,
		width:   w,
		height:  h,
		state:   Running,
		field:   field.NewField(cfg, rng, w, h),
		pointer: field.NewPointerTracker(cfg.Derived.Smoothing32, w/2, h/2),
		motion: field.NewMotion(
			cfg.Derived.Radius32,
			cfg.Derived.Gain32,
			cfg.Derived.TimeStep32,
		),
	}
	e.field.Populate(cfg.Field.ParticleCount)
	return e
}

// Step performs one synchronous tick: pending recreation, pointer smoothing,
// then the force update over all particles. No-op while paused. Returns the
// number of boundary wraps this tick and whether a pending recreation was
// applied.
func (e *Engine) Step() (wraps int, recreated bool) {
	if e == nil || e.state != Running {
		return 0, false
	}
	if e.needsRecreate {
		e.field.Recreate(e.width, e.height)
		e.needsRecreate = false
		recreated = true
	}
	e.pointer.Advance()
	wraps = e.motion.Step(e.field, e.pointer)
	e.tick.Add(1)
	return wraps, recreated
}

// Resize records the new viewport and flags the field for full recreation
// before the next tick's force update. Lifecycle state is unchanged.
func (e *Engine) Resize(width, height int) {
	if e == nil || width <= 0 || height <= 0 {
		return
	}
	e.width = float32(width)
	e.height = float32(height)
	e.needsRecreate = true
}

// SetVisible pauses the engine when the surface is hidden and resumes it
// when visible again. Resuming restarts from the current state; missed
// frames are never replayed.
func (e *Engine) SetVisible(visible bool) {
	if e == nil {
		return
	}
	if visible {
		e.state = Running
	} else {
		e.state = Paused
	}
}

// PointerMoved overwrites the raw pointer target. O(1), never triggers a
// redraw, and safe to call at any input rate.
func (e *Engine) PointerMoved(x, y float32) {
	if e == nil {
		return
	}
	e.pointer.SetTarget(x, y)
}

// TouchMoved is PointerMoved for the first touch point.
func (e *Engine) TouchMoved(x, y float32) {
	if e == nil {
		return
	}
	e.pointer.SetTarget(x, y)
}

// Running reports whether the engine is ticking.
func (e *Engine) Running() bool {
	return e != nil && e.state == Running
}

// Tick returns the number of completed ticks. Safe to call from any
// goroutine while a scheduler is ticking the engine.
func (e *Engine) Tick() int64 {
	if e == nil {
		return 0
	}
	return e.tick.Load()
}

// Field returns the particle field, nil on a nil engine.
func (e *Engine) Field() *field.Field {
	if e == nil {
		return nil
	}
	return e.field
}

// Pointer returns the pointer tracker, nil on a nil engine.
func (e *Engine) Pointer() *field.PointerTracker {
	if e == nil {
		return nil
	}
	return e.pointer
}

// Motion returns the force model, nil on a nil engine.
func (e *Engine) Motion() *field.Motion {
	if e == nil {
		return nil
	}
	return e.motion
}

// Viewport returns the current viewport dimensions.
func (e *Engine) Viewport() (width, height float32) {
	if e == nil {
		return 0, 0
	}
	return e.width, e.height
}
