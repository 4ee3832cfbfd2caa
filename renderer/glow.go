package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawGlow paints one soft radial glow: full color at the center, the
// configured mid-stop opacity at half radius, fully transparent at the rim.
// Two stacked gradient circles approximate the three-stop falloff.
func DrawGlow(x, y, size float32, col rl.Color, midAlpha uint8) {
	mid := col
	// Scale the mid stop by the palette entry's own translucency.
	mid.A = uint8(uint16(midAlpha) * uint16(col.A) / 255)

	cx := int32(x)
	cy := int32(y)
	outer := rl.Color{R: mid.R, G: mid.G, B: mid.B, A: 0}

	rl.DrawCircleGradient(cx, cy, size, mid, outer)
	rl.DrawCircleGradient(cx, cy, size*0.5, col, mid)
}
