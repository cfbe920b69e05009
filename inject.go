package loupe

// Synthetic input sources for automated testing and scripted interaction.
// They implement GestureSource and WheelSource over an explicit queue
// instead of polled hardware state, so tests can deliver any number of
// events within a single frame — which is exactly what exercises the
// controller's frame coalescing.

type pinchPhase uint8

const (
	phasePinchStart pinchPhase = iota
	phasePinchMove
	phasePinchEnd
	phasePinchCancel
)

type scriptGestureEvent struct {
	phase  pinchPhase
	sample PinchSample
}

// ScriptGestures is a GestureSource fed programmatically. Queued events are
// all delivered on the next Update call, in order. Events queued while no
// handler is attached are dropped, matching a detached listener.
type ScriptGestures struct {
	handler PinchHandler
	queue   []scriptGestureEvent
}

// NewScriptGestures creates an empty synthetic gesture source.
func NewScriptGestures() *ScriptGestures {
	return &ScriptGestures{}
}

// StartPinch queues a pinch start at the given screen center (factor 1).
func (s *ScriptGestures) StartPinch(center Vec2) {
	s.queue = append(s.queue, scriptGestureEvent{
		phase:  phasePinchStart,
		sample: PinchSample{Center: center, Factor: 1},
	})
}

// MovePinch queues a pinch move with the given center and cumulative factor.
func (s *ScriptGestures) MovePinch(center Vec2, factor float64) {
	s.queue = append(s.queue, scriptGestureEvent{
		phase:  phasePinchMove,
		sample: PinchSample{Center: center, Factor: factor},
	})
}

// EndPinch queues a pinch end.
func (s *ScriptGestures) EndPinch() {
	s.queue = append(s.queue, scriptGestureEvent{phase: phasePinchEnd})
}

// CancelPinch queues a pinch cancel.
func (s *ScriptGestures) CancelPinch() {
	s.queue = append(s.queue, scriptGestureEvent{phase: phasePinchCancel})
}

// Attach sets the handler receiving queued events.
func (s *ScriptGestures) Attach(h PinchHandler) {
	s.handler = h
}

// Detach removes the handler. Queued events are kept but will be dropped by
// the next Update if no handler is attached by then.
func (s *ScriptGestures) Detach() {
	s.handler = nil
}

// Update drains the queue, delivering every queued event to the attached
// handler in order.
func (s *ScriptGestures) Update() {
	queue := s.queue
	s.queue = s.queue[:0]
	if s.handler == nil {
		return
	}
	for _, evt := range queue {
		switch evt.phase {
		case phasePinchStart:
			s.handler.PinchStart(evt.sample)
		case phasePinchMove:
			s.handler.PinchMove(evt.sample)
		case phasePinchEnd:
			s.handler.PinchEnd()
		case phasePinchCancel:
			s.handler.PinchCancel()
		}
	}
}

// ScriptWheel is a WheelSource fed programmatically. Queued events are all
// delivered on the next Update call, in order. Consumed and Passed count
// how events were handled, so tests can assert that unmodified wheel input
// is left to default handling.
type ScriptWheel struct {
	handler func(WheelEvent) bool
	queue   []WheelEvent

	// Consumed counts events the handler consumed.
	Consumed int
	// Passed counts events delivered but left to default handling, plus
	// events dropped because no handler was attached.
	Passed int
}

// NewScriptWheel creates an empty synthetic wheel source.
func NewScriptWheel() *ScriptWheel {
	return &ScriptWheel{}
}

// Wheel queues a wheel event.
func (s *ScriptWheel) Wheel(ev WheelEvent) {
	s.queue = append(s.queue, ev)
}

// Attach sets the handler receiving queued events.
func (s *ScriptWheel) Attach(h func(WheelEvent) bool) {
	s.handler = h
}

// Detach removes the handler; queued events fall through to Passed.
func (s *ScriptWheel) Detach() {
	s.handler = nil
}

// Update drains the queue, delivering every queued event in order.
func (s *ScriptWheel) Update() {
	queue := s.queue
	s.queue = s.queue[:0]
	for _, ev := range queue {
		if s.handler != nil && s.handler(ev) {
			s.Consumed++
		} else {
			s.Passed++
		}
	}
}
