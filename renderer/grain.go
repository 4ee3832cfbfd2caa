package renderer

import "math/rand"

// Grain perturbs a sparse subset of surface pixels each frame to add texture
// without full-resolution cost. Only every stride-th pixel is touched; each
// sampled R/G/B channel gets a symmetric random delta clamped to [0,255].
// Alpha is left alone.
type Grain struct {
	stride   int
	strength int
	rng      *rand.Rand
}

// NewGrain creates a grain pass. Stride below 1 is treated as 1; a strength
// at or below zero makes Apply a no-op.
func NewGrain(stride, strength int, rng *rand.Rand) *Grain {
	if stride < 1 {
		stride = 1
	}
	if strength < 0 {
		strength = 0
	}
	return &Grain{stride: stride, strength: strength, rng: rng}
}

// Apply perturbs the sampled pixels of s in place.
func (g *Grain) Apply(s Surface) {
	if g.strength <= 0 {
		return
	}
	px := s.ReadPixels()
	if len(px) == 0 {
		return
	}

	step := g.stride * 4
	span := 2*g.strength + 1
	for i := 0; i+3 < len(px); i += step {
		for c := 0; c < 3; c++ {
			delta := g.rng.Intn(span) - g.strength
			px[i+c] = clampByte(int(px[i+c]) + delta)
		}
	}
	s.WritePixels(px)
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
