// Package field owns the glow particle set and the forces that move it.
package field

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/alohaaki7/liquidventures/components"
	"github.com/alohaaki7/liquidventures/config"
)

// Field owns the particle entities and their lifecycle. The RNG is injected
// so field construction is reproducible under a fixed seed.
type Field struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   *config.Config

	mapper *ecs.Map4[
		components.Position,
		components.Drift,
		components.Glow,
		components.Oscillation,
	]
	filter *ecs.Filter4[
		components.Position,
		components.Drift,
		components.Glow,
		components.Oscillation,
	]

	target        int
	width, height float32
}

// NewField creates an empty field sized to the given viewport.
func NewField(cfg *config.Config, rng *rand.Rand, width, height float32) *Field {
	world := ecs.NewWorld()

	f := &Field{
		world:  world,
		rng:    rng,
		cfg:    cfg,
		width:  width,
		height: height,
		mapper: ecs.NewMap4[
			components.Position,
			components.Drift,
			components.Glow,
			components.Oscillation,
		](world),
		filter: ecs.NewFilter4[
			components.Position,
			components.Drift,
			components.Glow,
			components.Oscillation,
		](world),
	}
	return f
}

// Populate creates exactly count particles with independently randomized
// attributes. A zero count leaves the field empty; downstream stages treat
// an empty field as a no-op.
func (f *Field) Populate(count int) {
	f.target = count
	for i := 0; i < count; i++ {
		f.spawnParticle()
	}
}

// Recreate discards all particles and regenerates the full target count for
// the new viewport. Deliberately not incremental: a resized viewport
// invalidates prior base positions.
func (f *Field) Recreate(width, height float32) {
	f.width = width
	f.height = height

	// Collect first; removing while a query is open is not allowed.
	var toRemove []ecs.Entity
	query := f.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		f.mapper.Remove(e)
	}

	for i := 0; i < f.target; i++ {
		f.spawnParticle()
	}
}

// spawnParticle creates one particle with fresh randoms within the
// configured ranges.
func (f *Field) spawnParticle() {
	d := &f.cfg.Derived

	pos := components.Position{
		X: f.rng.Float32() * f.width,
		Y: f.rng.Float32() * f.height,
	}
	drift := components.Drift{
		VX: (f.rng.Float32()*2 - 1) * d.DriftMax32,
		VY: (f.rng.Float32()*2 - 1) * d.DriftMax32,
	}
	glow := components.Glow{
		Size:  d.SizeMin32 + f.rng.Float32()*(d.SizeMax32-d.SizeMin32),
		Color: uint8(f.rng.Intn(len(d.Colors))),
	}
	osc := components.Oscillation{
		Phase:     f.rng.Float32() * 2 * math.Pi,
		Amplitude: d.AmplitudeMin32 + f.rng.Float32()*(d.AmplitudeMax32-d.AmplitudeMin32),
	}

	f.mapper.NewEntity(&pos, &drift, &glow, &osc)
}

// Each calls fn for every particle with mutable component access.
func (f *Field) Each(fn func(pos *components.Position, drift *components.Drift, glow *components.Glow, osc *components.Oscillation)) {
	query := f.filter.Query()
	for query.Next() {
		pos, drift, glow, osc := query.Get()
		fn(pos, drift, glow, osc)
	}
}

// Count returns the number of live particles.
func (f *Field) Count() int {
	n := 0
	query := f.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Size returns the current viewport dimensions.
func (f *Field) Size() (width, height float32) {
	return f.width, f.height
}
