package loupe

// PinchSample is one recognized pinch observation: the gesture center in
// screen pixel coordinates, and the cumulative scale factor — the ratio of
// the current finger separation to the separation at gesture start.
//
// Both the touch recognizer and any external gesture library are adapted to
// this one shape at the boundary; the controller's state machine never sees
// a concrete source's event types.
type PinchSample struct {
	Center Vec2
	Factor float64
}

// PinchHandler receives pinch gesture phases from a GestureSource.
//
// Start carries the first sample (factor 1). Move may arrive any number of
// times per frame. End and Cancel carry no sample; handlers must treat them
// as synonyms, since recognizers emit cancel unreliably (a pinch briefly
// misclassified as a pan cancels rather than ends).
type PinchHandler interface {
	PinchStart(s PinchSample)
	PinchMove(s PinchSample)
	PinchEnd()
	PinchCancel()
}

// GestureSource produces pinch gesture events for an attached handler.
//
// A source with no handler attached recognizes and emits nothing. Update is
// called once per frame by the controller and performs whatever polling the
// source needs.
type GestureSource interface {
	Attach(h PinchHandler)
	Detach()
	Update()
}

// WheelEvent is a single wheel scroll notch. X and Y are the cursor position
// in screen pixels. DeltaY follows the browser convention: positive scrolls
// down (zoom out), negative scrolls up (zoom in). Ctrl reports whether a
// control key was held.
type WheelEvent struct {
	X, Y   float64
	DeltaY float64
	Ctrl   bool
}

// WheelSource delivers wheel events to an attached handler. The handler
// returns whether it consumed the event; unconsumed events are left to
// default handling (typically the surface's own scroll listeners).
//
// Wheel events are sampled window-wide, not hit-tested against the surface,
// so zooming keeps working when the cursor drifts off the surface during a
// fast scroll.
type WheelSource interface {
	Attach(h func(WheelEvent) bool)
	Detach()
	Update()
}
