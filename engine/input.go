package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// HandleInput forwards the host window's pointer state to the tracker.
// Touch wins over the mouse when present; only the first touch point counts.
func (e *Engine) HandleInput() {
	if e == nil {
		return
	}
	if rl.GetTouchPointCount() > 0 {
		tp := rl.GetTouchPosition(0)
		e.TouchMoved(tp.X, tp.Y)
		return
	}
	mp := rl.GetMousePosition()
	e.PointerMoved(mp.X, mp.Y)
}

// HandleResize propagates a window resize to the engine. Returns the new
// dimensions and whether a resize happened, so the host can resize its
// renderer too.
func (e *Engine) HandleResize() (width, height int, resized bool) {
	if e == nil || !rl.IsWindowResized() {
		return 0, 0, false
	}
	width = rl.GetScreenWidth()
	height = rl.GetScreenHeight()
	e.Resize(width, height)
	return width, height, true
}

// HandleVisibility maps window hidden/minimized state onto the engine
// lifecycle and reports the current visibility.
func (e *Engine) HandleVisibility() bool {
	if e == nil {
		return false
	}
	visible := !rl.IsWindowHidden() && !rl.IsWindowMinimized()
	e.SetVisible(visible)
	return visible
}
