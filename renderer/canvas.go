package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CanvasSurface is a raylib render texture implementing Surface. Drawing
// between Begin and End accumulates into the retained texture; the trail
// fade is emergent from never fully clearing it.
type CanvasSurface struct {
	target rl.RenderTexture2D
	width  int32
	height int32
}

// NewCanvasSurface creates a render texture sized to the viewport, cleared
// once to the given base color.
func NewCanvasSurface(width, height int32, base rl.Color) *CanvasSurface {
	c := &CanvasSurface{
		target: rl.LoadRenderTexture(width, height),
		width:  width,
		height: height,
	}
	rl.BeginTextureMode(c.target)
	rl.ClearBackground(base)
	rl.EndTextureMode()
	return c
}

// Begin redirects drawing into the retained texture.
func (c *CanvasSurface) Begin() {
	rl.BeginTextureMode(c.target)
}

// End stops drawing into the texture.
func (c *CanvasSurface) End() {
	rl.EndTextureMode()
}

// Blit draws the retained texture to the screen. Render textures are
// y-flipped, hence the negative source height.
func (c *CanvasSurface) Blit() {
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(c.width), Height: -float32(c.height)}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{}, rl.White)
}

// Bounds returns the surface dimensions.
func (c *CanvasSurface) Bounds() (int, int) {
	return int(c.width), int(c.height)
}

// ReadPixels reads the texture back into an RGBA byte buffer.
func (c *CanvasSurface) ReadPixels() []byte {
	img := rl.LoadImageFromTexture(c.target.Texture)
	defer rl.UnloadImage(img)

	colors := rl.LoadImageColors(img)
	px := make([]byte, len(colors)*4)
	for i, col := range colors {
		px[i*4] = col.R
		px[i*4+1] = col.G
		px[i*4+2] = col.B
		px[i*4+3] = col.A
	}
	return px
}

// WritePixels uploads an RGBA byte buffer back into the texture.
func (c *CanvasSurface) WritePixels(px []byte) {
	colors := make([]color.RGBA, len(px)/4)
	for i := range colors {
		colors[i] = color.RGBA{R: px[i*4], G: px[i*4+1], B: px[i*4+2], A: px[i*4+3]}
	}
	rl.UpdateTexture(c.target.Texture, colors)
}

// Unload frees the render texture.
func (c *CanvasSurface) Unload() {
	rl.UnloadRenderTexture(c.target)
}
