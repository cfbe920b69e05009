package loupe

import "github.com/hajimehoshi/ebiten/v2"

// CtrlWheel reads Ebitengine's global wheel state and delivers wheel events
// with the current cursor position and control-key state.
//
// Ebitengine reports no wheel "target": the wheel is sampled window-wide,
// which is what zoom wants — a fast scroll that drifts off the surface keeps
// zooming. Ebitengine's y-offset is positive when scrolling up; events are
// delivered with the browser-style sign (positive = down) the controller's
// arithmetic expects.
type CtrlWheel struct {
	handler func(WheelEvent) bool

	// Seams for tests; default to the ebiten package functions.
	wheel          func() (float64, float64)
	cursorPosition func() (int, int)
	keyPressed     func(ebiten.Key) bool
}

// NewCtrlWheel creates a wheel source reading Ebitengine's global input state.
func NewCtrlWheel() *CtrlWheel {
	return &CtrlWheel{
		wheel:          ebiten.Wheel,
		cursorPosition: ebiten.CursorPosition,
		keyPressed:     ebiten.IsKeyPressed,
	}
}

// Attach sets the handler receiving wheel events, replacing any previous
// handler.
func (w *CtrlWheel) Attach(h func(WheelEvent) bool) {
	w.handler = h
}

// Detach removes the handler; subsequent wheel input is ignored entirely.
func (w *CtrlWheel) Detach() {
	w.handler = nil
}

// Update samples the wheel once and delivers at most one event. No-op
// without an attached handler or when the wheel did not move.
func (w *CtrlWheel) Update() {
	if w.handler == nil {
		return
	}
	_, dy := w.wheel()
	if dy == 0 {
		return
	}
	x, y := w.cursorPosition()
	ctrl := w.keyPressed(ebiten.KeyControl) ||
		w.keyPressed(ebiten.KeyControlLeft) ||
		w.keyPressed(ebiten.KeyControlRight)
	w.handler(WheelEvent{
		X:      float64(x),
		Y:      float64(y),
		DeltaY: -dy,
		Ctrl:   ctrl,
	})
}
