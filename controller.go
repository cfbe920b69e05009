package loupe

import (
	"runtime"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Per-notch wheel zoom steps. Trackpad scroll deltas on darwin are much
// larger than mouse-wheel deltas, and trackpad pinch arrives there as
// modifier-wheel, so the step is tuned up to keep pinch speed usable.
const (
	wheelRateDefault = 0.03
	wheelRateDarwin  = 0.045
)

// defaultWheelRate returns the platform wheel zoom step.
func defaultWheelRate() float64 {
	if runtime.GOOS == "darwin" {
		return wheelRateDarwin
	}
	return wheelRateDefault
}

// Controller translates pinch and ctrl-wheel input into ordered, coalesced
// mutations of a Surface's scale and scale center.
//
// The controller is single-goroutine and frame-driven: all state transitions
// happen inside Update, Attach, and Detach, which must be called from the
// game loop goroutine.
//
// Two zoom paths, never both live:
//
//   - Discrete: ctrl-modified wheel notches. Each notch repositions the
//     scale center under the cursor and multiplies the scale by
//     1 − sign(deltaY) × WheelRate. Wheel events without ctrl are not
//     consumed.
//   - Continuous: pinch gestures. Moves within one frame coalesce into a
//     single scale mutation using the latest sample; the multiplier is the
//     incremental factor since the last applied frame, not since gesture
//     start. Wheel handling is detached for the whole gesture and reattached
//     only after the end-of-gesture reset, which itself runs strictly after
//     the last coalesced mutation.
type Controller struct {
	surface  Surface
	gestures GestureSource
	wheel    WheelSource

	// WheelRate is the per-notch zoom step for ctrl-wheel zooming. Defaults
	// to the platform rate. Set before Attach.
	WheelRate float64

	attached bool
	pinching bool

	// Coalescing state: at most one mutation per frame. last always holds
	// the most recent sample; oldScale is the cumulative factor already
	// applied to the surface.
	framePending   bool
	finalizeQueued bool
	last           PinchSample
	oldScale       float64

	anim *gween.Tween
}

// NewController creates a controller for the given surface and input
// sources. Call Attach before the first Update.
func NewController(surface Surface, gestures GestureSource, wheel WheelSource) *Controller {
	return &Controller{
		surface:   surface,
		gestures:  gestures,
		wheel:     wheel,
		WheelRate: defaultWheelRate(),
		oldScale:  1,
	}
}

// Attach begins listening to both input sources. Calling Attach again
// without an intervening Detach is undefined behavior.
func (c *Controller) Attach() {
	c.gestures.Attach(gestureAdapter{c})
	c.wheel.Attach(c.handleWheel)
	c.attached = true
}

// Detach removes all listeners and drops any pending coalesced frame. If a
// pinch is in flight, the surface is restored to its idle state (transform
// hint cleared, scroll listeners reattached) without applying the pending
// mutation.
func (c *Controller) Detach() {
	if !c.attached {
		return
	}
	c.gestures.Detach()
	c.wheel.Detach()
	c.framePending = false
	c.finalizeQueued = false
	c.anim = nil
	if c.pinching {
		c.pinching = false
		c.oldScale = 1
		c.surface.SetTransforming(false)
		if ss, ok := c.surface.(ScrollSurface); ok {
			ss.AttachScrollListeners()
		}
	}
	c.attached = false
}

// Pinching reports whether a pinch gesture is currently in progress.
func (c *Controller) Pinching() bool {
	return c.pinching
}

// Update advances the controller by one frame: polls the input sources,
// applies the pending coalesced mutation (if any), and steps the zoom
// animation. dt is the frame duration in seconds.
func (c *Controller) Update(dt float64) {
	if !c.attached {
		return
	}
	c.wheel.Update()
	c.gestures.Update()
	c.runPendingFrame()
	c.stepAnim(dt)
}

// ZoomTo animates the surface's scale to target over duration seconds.
// Ignored while a pinch is in progress; any gesture or wheel zoom that
// starts later cancels the animation (the user takes over).
func (c *Controller) ZoomTo(target float64, duration float32, easeFn ease.TweenFunc) {
	if c.pinching {
		return
	}
	c.anim = gween.New(float32(c.surface.Scale()), float32(target), duration, easeFn)
}

// --- Wheel path ---

func (c *Controller) handleWheel(ev WheelEvent) bool {
	if !ev.Ctrl {
		return false
	}
	c.anim = nil
	c.surface.UpdateScaleCenter(Vec2{X: ev.X, Y: ev.Y})
	c.surface.SetScale(c.surface.Scale() * (1 - sign(ev.DeltaY)*c.WheelRate))
	return true
}

// --- Pinch path ---

// gestureAdapter feeds source events into the controller's state machine
// without exposing the PinchHandler methods on Controller itself.
type gestureAdapter struct {
	c *Controller
}

func (a gestureAdapter) PinchStart(s PinchSample) { a.c.pinchStart(s) }
func (a gestureAdapter) PinchMove(s PinchSample)  { a.c.pinchMove(s) }
func (a gestureAdapter) PinchEnd()                { a.c.pinchEnd() }
func (a gestureAdapter) PinchCancel()             { a.c.pinchEnd() }

func (c *Controller) pinchStart(s PinchSample) {
	c.anim = nil
	// Reset the baseline even if already pinching: a lost end signal must
	// not leak a stale baseline into the new gesture's incremental math.
	c.oldScale = 1
	c.last = s
	c.finalizeQueued = false
	if c.pinching {
		return
	}
	c.pinching = true
	c.surface.SetTransforming(true)
	c.wheel.Detach()
	if ss, ok := c.surface.(ScrollSurface); ok {
		ss.DetachScrollListeners()
	}
}

func (c *Controller) pinchMove(s PinchSample) {
	if !c.pinching {
		return
	}
	c.last = s
	c.framePending = true
}

func (c *Controller) pinchEnd() {
	if !c.pinching {
		return
	}
	if c.framePending {
		// The in-flight frame must apply before the baseline resets, or the
		// stale baseline would cause a visible scale jump. Queue the reset
		// behind it.
		c.finalizeQueued = true
		return
	}
	c.finalize()
}

// runPendingFrame applies the coalesced mutation scheduled this frame: one
// scale multiplication by the incremental factor since the last applied
// frame, anchored at the latest sample's center.
func (c *Controller) runPendingFrame() {
	if !c.framePending {
		return
	}
	c.framePending = false
	c.surface.UpdateScaleCenter(c.last.Center)
	c.surface.SetScale(c.surface.Scale() * c.last.Factor / c.oldScale)
	c.oldScale = c.last.Factor
	if c.finalizeQueued {
		c.finalize()
	}
}

// finalize returns the controller to Idle: scale center back to the surface
// midpoint, baseline reset, transform hint cleared, and both the wheel
// handler and the surface's scroll listeners reattached.
func (c *Controller) finalize() {
	c.pinching = false
	c.finalizeQueued = false
	c.oldScale = 1
	c.surface.SetScaleCenter(Vec2{X: 0.5, Y: 0.5})
	c.surface.SetTransforming(false)
	c.wheel.Attach(c.handleWheel)
	if ss, ok := c.surface.(ScrollSurface); ok {
		ss.AttachScrollListeners()
	}
}

// --- Zoom animation ---

func (c *Controller) stepAnim(dt float64) {
	if c.anim == nil {
		return
	}
	v, done := c.anim.Update(float32(dt))
	c.surface.SetScale(float64(v))
	if done {
		c.anim = nil
	}
}
