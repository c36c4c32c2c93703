package predict

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestVisualOffsetDecay(t *testing.T) {
	var v VisualOffset
	v.AddCorrection(mgl32.Vec3{1, 0, 0})
	if v.Vec() != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("offset should oppose the correction, got %v", v.Vec())
	}

	// One tick worth of decay at the default rate.
	v.Decay(0.05)
	if got := v.Vec()[0]; math32.Abs(got+0.85) > 1e-5 {
		t.Fatalf("expected -0.85 after one tick, got %v", got)
	}

	// Decay is frame-rate independent: two half-tick steps equal one full
	// tick step.
	a := VisualOffset{}
	a.AddCorrection(mgl32.Vec3{1, 0, 0})
	a.Decay(0.025)
	a.Decay(0.025)
	b := VisualOffset{}
	b.AddCorrection(mgl32.Vec3{1, 0, 0})
	b.Decay(0.05)
	if math32.Abs(a.Vec()[0]-b.Vec()[0]) > 1e-5 {
		t.Fatalf("split decay %v differs from whole decay %v", a.Vec()[0], b.Vec()[0])
	}
}

func TestVisualOffsetAccumulates(t *testing.T) {
	var v VisualOffset
	v.AddCorrection(mgl32.Vec3{0.5, 0, 0})
	v.AddCorrection(mgl32.Vec3{0, 0.25, 0})
	if v.Vec() != (mgl32.Vec3{-0.5, -0.25, 0}) {
		t.Fatalf("corrections should accumulate, got %v", v.Vec())
	}

	v.Reset()
	if v.Vec() != (mgl32.Vec3{}) {
		t.Fatalf("reset should zero the offset, got %v", v.Vec())
	}
}

func TestVisualOffsetCustomRate(t *testing.T) {
	fast := VisualOffset{Rate: 0.5}
	slow := VisualOffset{Rate: 0.05}
	fast.AddCorrection(mgl32.Vec3{1, 0, 0})
	slow.AddCorrection(mgl32.Vec3{1, 0, 0})

	fast.Decay(0.05)
	slow.Decay(0.05)
	if math32.Abs(fast.Vec()[0]) >= math32.Abs(slow.Vec()[0]) {
		t.Fatalf("higher rate should decay faster: %v vs %v", fast.Vec()[0], slow.Vec()[0])
	}
}
