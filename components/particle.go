// Package components defines the ECS components of a glow particle.
package components

// Position is a particle's world position, mutated every tick.
type Position struct {
	X, Y float32
}

// Drift is a particle's constant base velocity, fixed at creation.
type Drift struct {
	VX, VY float32
}

// Glow holds a particle's render radius and palette index, fixed at creation.
type Glow struct {
	Size  float32
	Color uint8 // index into the configured palette
}

// Oscillation holds a particle's render-time wobble parameters, fixed at
// creation. Phase desynchronizes particles; Amplitude sets the wobble reach.
type Oscillation struct {
	Phase     float32
	Amplitude float32
}
