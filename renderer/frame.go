package renderer

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alohaaki7/liquidventures/config"
)

// baseColor is the near-black indigo the canvas starts from and fades toward.
var baseColor = rl.Color{R: 10, G: 8, B: 22, A: 255}

// Frame renders one frame per call: trail fade fill, ambient wash, one radial
// glow per particle, then the grain pass. It keeps no per-particle state; the
// trail is a property of the retained canvas, not of Frame.
type Frame struct {
	canvas   *CanvasSurface
	grain    *Grain
	wash     *Wash
	fade     rl.Color
	midAlpha uint8
	colors   []rl.Color
}

// NewFrame creates the frame renderer and its canvas for the given viewport.
func NewFrame(cfg *config.Config, rng *rand.Rand, seed int64, width, height int32) *Frame {
	fade := baseColor
	fade.A = uint8(cfg.Render.FadeAlpha)

	colors := make([]rl.Color, len(cfg.Derived.Colors))
	for i, c := range cfg.Derived.Colors {
		colors[i] = rl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
	}

	return &Frame{
		canvas: NewCanvasSurface(width, height, baseColor),
		grain:  NewGrain(cfg.Render.GrainStride, cfg.Render.GrainStrength, rng),
		wash: NewWash(
			seed,
			float32(cfg.Render.WashScale),
			float32(cfg.Render.WashSpeed),
			uint8(cfg.Render.WashStrength),
		),
		fade:     fade,
		midAlpha: uint8(cfg.Render.GlowMidAlpha),
		colors:   colors,
	}
}

// Begin opens the frame: low-opacity fill over the previous frame content
// (the trail fade), then the ambient wash.
func (f *Frame) Begin(t float32) {
	f.canvas.Begin()

	w, h := f.canvas.Bounds()
	rl.DrawRectangle(0, 0, int32(w), int32(h), f.fade)

	if f.wash.Enabled() {
		cells := f.wash.Cells()
		cw := int32(w)/int32(cells) + 1
		ch := int32(h)/int32(cells) + 1
		for cy := 0; cy < cells; cy++ {
			for cx := 0; cx < cells; cx++ {
				tint := rl.Color{R: 60, G: 40, B: 140, A: f.wash.CellAlpha(cx, cy, t)}
				rl.DrawRectangle(int32(cx)*cw, int32(cy)*ch, cw, ch, tint)
			}
		}
	}
}

// Glow draws one particle glow at its rendered position.
func (f *Frame) Glow(x, y, size float32, colorIndex uint8) {
	if int(colorIndex) >= len(f.colors) {
		colorIndex = 0
	}
	DrawGlow(x, y, size, f.colors[colorIndex], f.midAlpha)
}

// End closes the frame, runs the grain pass, and blits the canvas to the
// screen.
func (f *Frame) End() {
	f.canvas.End()
	f.grain.Apply(f.canvas)
	f.canvas.Blit()
}

// Blit redraws the last finished frame without advancing anything. Used while
// the engine is paused so the window still presents.
func (f *Frame) Blit() {
	f.canvas.Blit()
}

// Resize replaces the canvas for a new viewport. The trail restarts from the
// base color.
func (f *Frame) Resize(width, height int32) {
	f.canvas.Unload()
	f.canvas = NewCanvasSurface(width, height, baseColor)
}

// Unload frees the canvas.
func (f *Frame) Unload() {
	f.canvas.Unload()
}
