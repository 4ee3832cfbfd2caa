package field

import (
	"math"

	"github.com/alohaaki7/liquidventures/components"
)

// Motion advances every particle once per tick: base drift, pointer
// attraction, boundary wrap, in that order. The oscillation wobble is
// render-only and never feeds back into the stored position.
type Motion struct {
	radius   float32 // attraction cutoff distance
	gain     float32 // attraction displacement scale
	timeStep float32 // oscillation clock advance per tick
	time     float32 // monotonic oscillation clock
}

// NewMotion creates a force model with the given attraction parameters.
func NewMotion(radius, gain, timeStep float32) *Motion {
	return &Motion{radius: radius, gain: gain, timeStep: timeStep}
}

// Step advances all particles one tick against the smoothed pointer position
// and returns the number of boundary wraps that occurred.
func (m *Motion) Step(f *Field, tracker *PointerTracker) int {
	px, py := tracker.Smoothed()
	width, height := f.Size()
	wraps := 0

	f.Each(func(pos *components.Position, drift *components.Drift, glow *components.Glow, _ *components.Oscillation) {
		// 1. Base drift
		pos.X += drift.VX
		pos.Y += drift.VY

		// 2. Pointer attraction, linearly decaying to zero at the radius.
		// Particles beyond it are unaffected, which bounds cost and avoids
		// coupling the whole field to the pointer.
		dx := px - pos.X
		dy := py - pos.Y
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if force := Attraction(dist, m.radius); force > 0 {
			pos.X += dx * force * m.gain
			pos.Y += dy * force * m.gain
		}

		// 3. Boundary wrap with a margin of one glow radius, so the glow
		// fades out before the particle teleports to the opposite edge.
		var w bool
		pos.X, w = wrapAxis(pos.X, glow.Size, width)
		if w {
			wraps++
		}
		pos.Y, w = wrapAxis(pos.Y, glow.Size, height)
		if w {
			wraps++
		}
	})

	m.time += m.timeStep
	return wraps
}

// Attraction returns the pointer force in [0,1] for a particle at the given
// distance: 1 at dist 0, linearly down to 0 at the cutoff radius and beyond.
func Attraction(dist, radius float32) float32 {
	if radius <= 0 || dist >= radius {
		return 0
	}
	return 1 - dist/radius
}

// wrapAxis applies the toroidal boundary rule for one axis and reports
// whether the position wrapped.
func wrapAxis(v, size, dim float32) (float32, bool) {
	if v < -size {
		return dim + size, true
	}
	if v > dim+size {
		return -size, true
	}
	return v, false
}

// Offset returns the render-time oscillation offset for one particle at the
// current clock.
func (m *Motion) Offset(osc *components.Oscillation) (ox, oy float32) {
	ox = osc.Amplitude * float32(math.Sin(float64(m.time+osc.Phase)))
	oy = osc.Amplitude * float32(math.Cos(float64(0.8*m.time+osc.Phase)))
	return ox, oy
}

// Time returns the current oscillation clock.
func (m *Motion) Time() float32 {
	return m.time
}
