package loupe

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Factor float64 `json:"factor,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScriptFile is the top-level JSON structure for a gesture script.
type gestureScriptFile struct {
	Steps []gestureStep `json:"steps"`
}

// GestureScript replays a scripted interaction sequence through synthetic
// input sources, one step per frame, for automated headless testing.
//
// Script format:
//
//	{"steps": [
//	  {"action": "pinchstart", "x": 480, "y": 320},
//	  {"action": "pinchmove", "x": 480, "y": 320, "factor": 1.3},
//	  {"action": "pinchend"},
//	  {"action": "wait", "frames": 3},
//	  {"action": "wheel", "x": 100, "y": 100, "deltaY": 120, "ctrl": true}
//	]}
//
// Actions: pinchstart, pinchmove, pinchend, pinchcancel, wheel, wait.
type GestureScript struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureScript, error) {
	var script gestureScriptFile
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, step := range script.Steps {
		switch step.Action {
		case "pinchstart", "pinchmove", "pinchend", "pinchcancel", "wheel", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, step.Action)
		}
	}
	return &GestureScript{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *GestureScript) Done() bool {
	return r.done
}

// Step executes the next script step, queuing its event into the matching
// synthetic source. Call once per frame before the sources' Update. A wait
// step consumes its full frame count before the next step runs.
func (r *GestureScript) Step(gestures *ScriptGestures, wheel *ScriptWheel) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}

	step := r.steps[r.cursor]
	r.cursor++

	switch step.Action {
	case "pinchstart":
		gestures.StartPinch(Vec2{X: step.X, Y: step.Y})
	case "pinchmove":
		gestures.MovePinch(Vec2{X: step.X, Y: step.Y}, step.Factor)
	case "pinchend":
		gestures.EndPinch()
	case "pinchcancel":
		gestures.CancelPinch()
	case "wheel":
		wheel.Wheel(WheelEvent{X: step.X, Y: step.Y, DeltaY: step.DeltaY, Ctrl: step.Ctrl})
	case "wait":
		if step.Frames > 1 {
			r.waitCount = step.Frames - 1
		}
	}

	if r.cursor >= len(r.steps) {
		r.done = true
	}
}
