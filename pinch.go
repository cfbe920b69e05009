package loupe

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TouchPinch recognizes two-finger pinch gestures from Ebitengine touch
// input and emits them as pinch samples.
//
// Exactly two touches form a pinch. The cumulative factor is the current
// finger distance divided by the distance at gesture start. A lifted finger
// ends the gesture; a third finger, or a different pair of touch IDs
// replacing the tracked pair, cancels it — the recognizer gives up rather
// than guess which fingers the user means.
type TouchPinch struct {
	handler PinchHandler

	ids       []ebiten.TouchID
	active    bool
	id0, id1  ebiten.TouchID
	startDist float64
	last      PinchSample

	// Seams for tests; default to the ebiten package functions.
	appendTouchIDs func([]ebiten.TouchID) []ebiten.TouchID
	touchPosition  func(ebiten.TouchID) (int, int)
}

// NewTouchPinch creates a recognizer reading Ebitengine's global touch state.
func NewTouchPinch() *TouchPinch {
	return &TouchPinch{
		appendTouchIDs: ebiten.AppendTouchIDs,
		touchPosition:  ebiten.TouchPosition,
	}
}

// Attach sets the handler receiving recognized pinch events, replacing any
// previous handler.
func (p *TouchPinch) Attach(h PinchHandler) {
	p.handler = h
}

// Detach removes the handler and abandons any gesture in progress without
// emitting an end event.
func (p *TouchPinch) Detach() {
	p.handler = nil
	p.active = false
}

// Update polls the current touches and emits at most one gesture transition
// plus at most one move per call. No-op without an attached handler.
func (p *TouchPinch) Update() {
	if p.handler == nil {
		return
	}
	p.ids = p.appendTouchIDs(p.ids[:0])

	switch {
	case len(p.ids) == 2:
		p.updatePair(p.ids[0], p.ids[1])
	case len(p.ids) > 2:
		if p.active {
			p.active = false
			p.handler.PinchCancel()
		}
	default:
		if p.active {
			p.active = false
			p.handler.PinchEnd()
		}
	}
}

func (p *TouchPinch) updatePair(t0, t1 ebiten.TouchID) {
	if p.active && !p.samePair(t0, t1) {
		// The tracked pair was replaced within a single frame.
		p.active = false
		p.handler.PinchCancel()
	}

	x0, y0 := p.touchPosition(t0)
	x1, y1 := p.touchPosition(t1)
	center := Vec2{
		X: float64(x0+x1) / 2,
		Y: float64(y0+y1) / 2,
	}
	dist := math.Hypot(float64(x1-x0), float64(y1-y0))

	if !p.active {
		p.active = true
		p.id0, p.id1 = t0, t1
		p.startDist = dist
		p.last = PinchSample{Center: center, Factor: 1}
		p.handler.PinchStart(p.last)
		return
	}

	factor := 1.0
	if p.startDist > 0 {
		factor = dist / p.startDist
	}
	s := PinchSample{Center: center, Factor: factor}
	// Only emit when the fingers actually moved; a steady two-finger hold
	// must not keep scheduling frames.
	if s != p.last {
		p.last = s
		p.handler.PinchMove(s)
	}
}

func (p *TouchPinch) samePair(t0, t1 ebiten.TouchID) bool {
	return (t0 == p.id0 && t1 == p.id1) || (t0 == p.id1 && t1 == p.id0)
}
