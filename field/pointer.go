package field

// PointerTracker decouples bursty pointer input from the tick rate. Input
// handlers overwrite the raw target; the smoothed position advances toward it
// once per tick by an exponential approach that never overshoots.
type PointerTracker struct {
	rawX, rawY           float32
	smoothedX, smoothedY float32
	k                    float32
}

// NewPointerTracker creates a tracker with both raw and smoothed position at
// (x, y). The smoothing factor is clamped to (0,1].
func NewPointerTracker(k, x, y float32) *PointerTracker {
	if k <= 0 || k > 1 {
		k = 1
	}
	return &PointerTracker{
		rawX: x, rawY: y,
		smoothedX: x, smoothedY: y,
		k: k,
	}
}

// SetTarget overwrites the raw target unconditionally. Last write wins; no
// queuing, and the smoothed position is never touched here.
func (t *PointerTracker) SetTarget(x, y float32) {
	t.rawX = x
	t.rawY = y
}

// Advance moves the smoothed position one step toward the raw target.
// Called exactly once per tick.
func (t *PointerTracker) Advance() {
	t.smoothedX += (t.rawX - t.smoothedX) * t.k
	t.smoothedY += (t.rawY - t.smoothedY) * t.k
}

// Smoothed returns the per-tick smoothed position.
func (t *PointerTracker) Smoothed() (x, y float32) {
	return t.smoothedX, t.smoothedY
}

// Raw returns the latest raw target.
func (t *PointerTracker) Raw() (x, y float32) {
	return t.rawX, t.rawY
}
