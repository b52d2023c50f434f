package signal

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func detected(x, y float32, g Gesture) Sample {
	return Sample{Detected: true, Pos: mgl32.Vec2{x, y}, Gesture: g, Confidence: 0.9}
}

func TestConstantInputConverges(t *testing.T) {
	c := NewConditioner(DefaultConfig())

	var out Conditioned
	for i := 0; i < PosWindow+2; i++ {
		out = c.Process(detected(0.7, 0.3, GestureOpen))
	}

	// A constant stream must converge to the single-sample value.
	ref := NewConditioner(DefaultConfig()).Process(detected(0.7, 0.3, GestureOpen))
	if abs32(out.AxisX-ref.AxisX) > 1e-6 || abs32(out.AxisY-ref.AxisY) > 1e-6 {
		t.Fatalf("constant input did not converge: got (%f,%f) want (%f,%f)",
			out.AxisX, out.AxisY, ref.AxisX, ref.AxisY)
	}
}

func TestWeightedMeanFavorsNewSamples(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	for i := 0; i < PosWindow; i++ {
		c.Process(detected(0.3, 0.5, GestureNone))
	}
	out := c.Process(detected(0.8, 0.5, GestureNone))

	// Weights 1..5 over [0.3 ×4, 0.8]: mean = (0.3·10 + 0.8·5)/15 ≈ 0.4667,
	// well past a plain average step. Mirrored X, so a raw move right maps
	// to an axis move left.
	plain := NewConditioner(DefaultConfig())
	for i := 0; i < PosWindow; i++ {
		plain.Process(detected(0.3, 0.5, GestureNone))
	}
	before := plain.Process(detected(0.3, 0.5, GestureNone))
	if out.AxisX >= before.AxisX {
		t.Fatalf("expected the new sample to pull the axis: before=%f after=%f", before.AxisX, out.AxisX)
	}
}

func TestDeadzoneSticksPosition(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	first := c.Process(detected(0.5, 0.5, GestureNone))
	second := c.Process(detected(0.504, 0.5, GestureNone))

	if first.AxisX != second.AxisX || first.AxisY != second.AxisY {
		t.Fatalf("positions within dead-zone must emit identical output: (%f,%f) vs (%f,%f)",
			first.AxisX, first.AxisY, second.AxisX, second.AxisY)
	}
}

func TestDeadzoneReleasesOnLargeMove(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	first := c.Process(detected(0.5, 0.5, GestureNone))
	var out Conditioned
	for i := 0; i < PosWindow; i++ {
		out = c.Process(detected(0.75, 0.5, GestureNone))
	}
	if out.AxisX == first.AxisX {
		t.Fatalf("expected a large move to escape the dead-zone")
	}
}

func TestGestureHysteresisMajority(t *testing.T) {
	c := NewConditioner(DefaultConfig())

	c.Process(detected(0.5, 0.5, GesturePinch))
	out := c.Process(detected(0.5, 0.5, GesturePinch))
	if out.Gesture != GesturePinch {
		t.Fatalf("2/3 pinch should stabilize to pinch, got %v", out.Gesture)
	}
	out = c.Process(detected(0.5, 0.5, GestureOpen))
	if out.Gesture != GesturePinch {
		t.Fatalf("[pinch,pinch,open] should hold pinch, got %v", out.Gesture)
	}
}

func TestGestureHysteresisNoMajorityHoldsPrior(t *testing.T) {
	c := NewConditioner(DefaultConfig())

	c.Process(detected(0.5, 0.5, GesturePinch))
	c.Process(detected(0.5, 0.5, GestureOpen))
	out := c.Process(detected(0.5, 0.5, GestureFist))
	if out.Gesture != GestureNone {
		t.Fatalf("no tag reached majority, expected prior tag (none), got %v", out.Gesture)
	}
}

func TestAbsenceDecaysToNone(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	for i := 0; i < GestureWindow; i++ {
		c.Process(detected(0.5, 0.5, GestureFist))
	}

	var out Conditioned
	for i := 0; i < GestureWindow; i++ {
		out = c.Process(Sample{Detected: false})
		if out.Confidence != 0 || out.Stable {
			t.Fatalf("decay output must force confidence=0 stable=false, got conf=%f stable=%v",
				out.Confidence, out.Stable)
		}
	}
	if out.Gesture != GestureNone {
		t.Fatalf("gesture after full decay = %v, want none", out.Gesture)
	}
}

func TestAbsenceKeepsLastPosition(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	var held Conditioned
	for i := 0; i < PosWindow; i++ {
		held = c.Process(detected(0.3, 0.6, GestureOpen))
	}
	out := c.Process(Sample{Detected: false})
	if out.AxisX != held.AxisX || out.AxisY != held.AxisY {
		t.Fatalf("decay should hold the last accepted position, got (%f,%f) want (%f,%f)",
			out.AxisX, out.AxisY, held.AxisX, held.AxisY)
	}
}

func TestStabilityFlag(t *testing.T) {
	c := NewConditioner(DefaultConfig())

	out := c.Process(detected(0.5, 0.5, GestureNone))
	if out.Stable {
		t.Fatalf("a single sample must not be stable")
	}
	for i := 0; i < StableMinSamples; i++ {
		out = c.Process(detected(0.5, 0.5, GestureNone))
	}
	if !out.Stable {
		t.Fatalf("constant position should be stable after %d samples", StableMinSamples)
	}

	out = c.Process(detected(0.9, 0.1, GestureNone))
	if out.Stable {
		t.Fatalf("a jump should break stability")
	}
}

func TestOutOfRangeInputClamped(t *testing.T) {
	c := NewConditioner(DefaultConfig())
	var out Conditioned
	for i := 0; i < PosWindow; i++ {
		out = c.Process(detected(4.0, -3.0, GestureNone))
	}
	if out.AxisX < -1 || out.AxisX > 1 || out.AxisY < -1 || out.AxisY > 1 {
		t.Fatalf("axes must stay in [-1,1], got (%f,%f)", out.AxisX, out.AxisY)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
