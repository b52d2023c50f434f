package fusion

import (
	"testing"

	"skyfall/signal"
)

func TestOneShotFiresExactlyOnce(t *testing.T) {
	l := NewLayer()
	l.IngestKey("KeyP", true)

	fired := 0
	for i := 0; i < 10; i++ {
		if l.Poll().Pause {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("pause fired %d times across 10 polls while held, want 1", fired)
	}

	// Release and press again: a fresh edge must fire again.
	l.IngestKey("KeyP", false)
	l.IngestKey("KeyP", true)
	if !l.Poll().Pause {
		t.Fatalf("new press after release should fire again")
	}
}

func TestOneShotRequiresRelease(t *testing.T) {
	l := NewLayer()
	l.IngestKey("KeyR", true)
	l.Poll()
	l.IngestKey("KeyR", true) // key repeat while held
	if l.Poll().Restart {
		t.Fatalf("key repeat while held must not re-fire restart")
	}
}

func TestStartSuppressedByPrimary(t *testing.T) {
	l := NewLayer()
	l.IngestKey("Space", true)
	l.IngestKey("Enter", true)
	if l.Poll().Start {
		t.Fatalf("start must not fire while primary action is held")
	}
	// The suppressed press is dropped, not deferred.
	l.IngestKey("Space", false)
	if l.Poll().Start {
		t.Fatalf("suppressed start must not fire on a later poll")
	}
}

func TestKeyboardBeatsMouse(t *testing.T) {
	l := NewLayer()
	l.IngestMouseMove(800, 300, 800, 600) // right edge, mouse x = +1
	l.IngestKey("KeyA", true)

	in := l.Poll()
	if in.Source != SourceKeyboard || in.AxisX != -1 {
		t.Fatalf("held key should win over mouse: source=%v axisX=%f", in.Source, in.AxisX)
	}

	l.IngestKey("KeyA", false)
	in = l.Poll()
	if in.Source != SourceMouse || in.AxisX != 1 {
		t.Fatalf("mouse should take over when no key is held: source=%v axisX=%f", in.Source, in.AxisX)
	}
}

func TestMouseMapping(t *testing.T) {
	l := NewLayer()
	l.IngestMouseMove(400, 300, 800, 600)
	in := l.Poll()
	if in.AxisX != 0 || in.AxisY != 0 {
		t.Fatalf("viewport center should map to (0,0), got (%f,%f)", in.AxisX, in.AxisY)
	}
	l.IngestMouseMove(-50, 9000, 800, 600)
	in = l.Poll()
	if in.AxisX < -1 || in.AxisX > 1 || in.AxisY < -1 || in.AxisY > 1 {
		t.Fatalf("out-of-viewport mouse must clamp, got (%f,%f)", in.AxisX, in.AxisY)
	}
}

func TestGestureAuthoritativeWhenEnabled(t *testing.T) {
	l := NewLayer()
	l.SetSourceEnabled(true)
	l.IngestConditioned(signal.Conditioned{AxisX: 0.5, AxisY: -0.25, Gesture: signal.GesturePinch})
	l.IngestKey("KeyD", true) // evaluated but not surfaced

	in := l.Poll()
	if in.Source != SourceGesture {
		t.Fatalf("source = %v, want gesture", in.Source)
	}
	if in.AxisX != 0.5 || in.AxisY != -0.25 {
		t.Fatalf("gesture axes not surfaced: (%f,%f)", in.AxisX, in.AxisY)
	}
	if !in.Primary {
		t.Fatalf("pinch should drive the primary action")
	}
}

func TestDisableSuppressesStaleGesture(t *testing.T) {
	l := NewLayer()
	l.SetSourceEnabled(true)
	l.IngestConditioned(signal.Conditioned{AxisX: 1, Gesture: signal.GestureFist})
	l.SetSourceEnabled(false)

	in := l.Poll()
	if in.Source == SourceGesture || in.AxisX != 0 || in.Primary {
		t.Fatalf("disabled gesture source must be fully suppressed: %+v", in)
	}
}

func TestSourceChangedNotification(t *testing.T) {
	l := NewLayer()
	var gotSource Source
	var gotLabel string
	calls := 0
	l.SetSourceChanged(func(s Source, label string) {
		gotSource, gotLabel = s, label
		calls++
	})

	l.SetSourceEnabled(true)
	if calls != 1 || gotSource != SourceGesture || gotLabel != "Hand Tracking" {
		t.Fatalf("enable notification wrong: calls=%d source=%v label=%q", calls, gotSource, gotLabel)
	}
	l.SetSourceEnabled(true) // no toggle, no notification
	if calls != 1 {
		t.Fatalf("redundant enable must not notify, calls=%d", calls)
	}
	l.SetSourceEnabled(false)
	if calls != 2 || gotSource != SourceKeyboard {
		t.Fatalf("disable notification wrong: calls=%d source=%v", calls, gotSource)
	}
}

func TestPrimaryFromMouseButton(t *testing.T) {
	l := NewLayer()
	l.IngestMouseButton(0, true)
	if !l.Poll().Primary {
		t.Fatalf("held primary mouse button should drive the primary action")
	}
	l.IngestMouseButton(2, false) // other buttons ignored
	if !l.Poll().Primary {
		t.Fatalf("non-primary button must not affect the primary action")
	}
	l.IngestMouseButton(0, false)
	if l.Poll().Primary {
		t.Fatalf("release should clear the primary action")
	}
}
