package renderer

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Wash is a slow ambient background tint driven by smooth noise, drawn as a
// coarse grid of translucent cells under the glow layer.
type Wash struct {
	noise    opensimplex.Noise32
	scale    float32
	speed    float32
	strength uint8
	cells    int
}

// NewWash creates a wash generator. Strength 0 disables it.
func NewWash(seed int64, scale, speed float32, strength uint8) *Wash {
	return &Wash{
		noise:    opensimplex.NewNormalized32(seed),
		scale:    scale,
		speed:    speed,
		strength: strength,
		cells:    12,
	}
}

// Enabled reports whether the wash draws anything.
func (w *Wash) Enabled() bool {
	return w != nil && w.strength > 0
}

// CellAlpha returns the wash opacity for the grid cell at (cx, cy) at clock t.
// Exposed separately from drawing so the noise mapping is testable headless.
func (w *Wash) CellAlpha(cx, cy int, t float32) uint8 {
	n := w.noise.Eval3(
		float32(cx)*w.scale*64,
		float32(cy)*w.scale*64,
		t*w.speed,
	)
	return uint8(n * float32(w.strength))
}

// Cells returns the grid resolution per axis.
func (w *Wash) Cells() int {
	return w.cells
}
