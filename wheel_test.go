package loupe

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeWheelState drives a CtrlWheel through the test seams.
type fakeWheelState struct {
	dy       float64
	x, y     int
	ctrlHeld bool
}

func newFakeCtrlWheel() (*CtrlWheel, *fakeWheelState) {
	st := &fakeWheelState{}
	w := NewCtrlWheel()
	w.wheel = func() (float64, float64) { return 0, st.dy }
	w.cursorPosition = func() (int, int) { return st.x, st.y }
	w.keyPressed = func(k ebiten.Key) bool {
		return st.ctrlHeld && (k == ebiten.KeyControl ||
			k == ebiten.KeyControlLeft || k == ebiten.KeyControlRight)
	}
	return w, st
}

func TestCtrlWheelDeliversEvent(t *testing.T) {
	w, st := newFakeCtrlWheel()
	var got []WheelEvent
	w.Attach(func(ev WheelEvent) bool {
		got = append(got, ev)
		return true
	})

	st.dy = 1 // ebiten: positive = scroll up
	st.x, st.y = 120, 80
	st.ctrlHeld = true
	w.Update()

	if len(got) != 1 {
		t.Fatalf("delivered %d events, want 1", len(got))
	}
	ev := got[0]
	if ev.DeltaY != -1 {
		t.Errorf("DeltaY = %v, want -1 (browser-style sign)", ev.DeltaY)
	}
	if ev.X != 120 || ev.Y != 80 {
		t.Errorf("position = (%v, %v), want (120, 80)", ev.X, ev.Y)
	}
	if !ev.Ctrl {
		t.Error("Ctrl = false, want true")
	}
}

func TestCtrlWheelNoMovementNoEvent(t *testing.T) {
	w, _ := newFakeCtrlWheel()
	count := 0
	w.Attach(func(WheelEvent) bool { count++; return true })

	w.Update()

	if count != 0 {
		t.Errorf("delivered %d events for an idle wheel, want 0", count)
	}
}

func TestCtrlWheelReportsCtrlState(t *testing.T) {
	tests := []struct {
		name string
		held bool
	}{
		{"ctrl held", true},
		{"ctrl released", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, st := newFakeCtrlWheel()
			var got WheelEvent
			w.Attach(func(ev WheelEvent) bool { got = ev; return false })

			st.dy = -2
			st.ctrlHeld = tt.held
			w.Update()

			if got.Ctrl != tt.held {
				t.Errorf("Ctrl = %v, want %v", got.Ctrl, tt.held)
			}
			if got.DeltaY != 2 {
				t.Errorf("DeltaY = %v, want 2", got.DeltaY)
			}
		})
	}
}

func TestCtrlWheelDetached(t *testing.T) {
	w, st := newFakeCtrlWheel()
	count := 0
	w.Attach(func(WheelEvent) bool { count++; return true })
	w.Detach()

	st.dy = 1
	w.Update()

	if count != 0 {
		t.Errorf("delivered %d events after Detach, want 0", count)
	}
}
