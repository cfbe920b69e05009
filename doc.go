// Package loupe provides continuous zoom gestures for [Ebitengine] surfaces.
//
// Loupe coordinates three overlapping zoom input paths — two-finger touch
// pinch, ctrl-modified wheel scroll, and trackpad pinch (which desktop
// platforms report as modifier-wheel) — into a single, jitter-free scale
// applied to a host surface.
//
// # Quick start
//
// Wrap anything that can scale behind the [Surface] interface (or use the
// ready-made [ImageSurface]), wire up the default input sources, and call
// [Controller.Update] once per frame:
//
//	surface := loupe.NewImageSurface(img, loupe.Rect{Width: 960, Height: 640})
//	zoom := loupe.NewController(surface, loupe.NewTouchPinch(), loupe.NewCtrlWheel())
//	zoom.Attach()
//
//	// in your ebiten.Game:
//	func (g *Game) Update() error {
//		g.surface.Update()
//		g.zoom.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// # How it works
//
// The controller owns no rendering state. It translates pinch samples and
// wheel events into ordered mutations of the surface's scale and scale
// center. Pinch samples are coalesced to at most one scale mutation per
// frame, always reflecting the most recent finger positions, and the
// end-of-gesture reset is strictly ordered after the last coalesced
// mutation. Wheel zooming is suspended for the full duration of a pinch so
// the two paths never fight.
//
// Input sources are interfaces ([GestureSource], [WheelSource]); the
// controller's state machine depends only on the [PinchSample] and
// [WheelEvent] shapes. [ScriptGestures] and [ScriptWheel] are queue-backed
// sources for automated tests, and [GestureScript] replays JSON-scripted
// interaction sequences through them.
//
// [Ebitengine]: https://ebitengine.org
package loupe
