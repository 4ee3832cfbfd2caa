package engine

import (
	"github.com/alohaaki7/liquidventures/components"
	"github.com/alohaaki7/liquidventures/renderer"
)

// Draw paints the current frame: trail fade and wash, one glow per particle
// at position plus oscillation offset, then grain. While paused it only
// re-presents the last finished frame.
func (e *Engine) Draw(fr *renderer.Frame) {
	if e == nil {
		return
	}
	if e.state != Running {
		fr.Blit()
		return
	}

	fr.Begin(e.motion.Time())
	e.field.Each(func(pos *components.Position, _ *components.Drift, glow *components.Glow, osc *components.Oscillation) {
		ox, oy := e.motion.Offset(osc)
		fr.Glow(pos.X+ox, pos.Y+oy, glow.Size, glow.Color)
	})
	fr.End()
}
