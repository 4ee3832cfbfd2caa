// Package renderer draws glow field frames: trail fade, radial glows, grain.
package renderer

// Surface is a drawing target whose retained pixel buffer can be read back
// and rewritten. The grain pass runs against this capability so it can be
// tested on an in-memory buffer without a rendering backend.
type Surface interface {
	// Bounds returns the surface dimensions in pixels.
	Bounds() (width, height int)
	// ReadPixels returns the RGBA pixel buffer, 4 bytes per pixel.
	ReadPixels() []byte
	// WritePixels replaces the pixel buffer with px.
	WritePixels(px []byte)
}

// MemorySurface is a plain RGBA buffer implementing Surface. Used by tests
// and headless runs.
type MemorySurface struct {
	width, height int
	px            []byte
}

// NewMemorySurface creates a zeroed in-memory surface.
func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{
		width:  width,
		height: height,
		px:     make([]byte, width*height*4),
	}
}

// Bounds returns the surface dimensions.
func (s *MemorySurface) Bounds() (int, int) {
	return s.width, s.height
}

// ReadPixels returns a copy of the pixel buffer.
func (s *MemorySurface) ReadPixels() []byte {
	out := make([]byte, len(s.px))
	copy(out, s.px)
	return out
}

// WritePixels replaces the pixel buffer.
func (s *MemorySurface) WritePixels(px []byte) {
	copy(s.px, px)
}
