package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestTableTrig(t *testing.T) {
	if MCSin(0) != 0 {
		t.Fatalf("MCSin(0) = %v", MCSin(0))
	}
	if math32.Abs(MCCos(0)-1) > 1e-4 {
		t.Fatalf("MCCos(0) = %v", MCCos(0))
	}
	if math32.Abs(MCSin(math32.Pi/2)-1) > 1e-4 {
		t.Fatalf("MCSin(pi/2) = %v", MCSin(math32.Pi/2))
	}
	// The table has 65536 entries per turn; values stay within one step of
	// the true function.
	for _, angle := range []float32{0.3, 1.1, 2.7, -0.9, 5.5} {
		if math32.Abs(MCSin(angle)-math32.Sin(angle)) > 1e-3 {
			t.Fatalf("MCSin(%v) = %v, want about %v", angle, MCSin(angle), math32.Sin(angle))
		}
	}
}

func TestClampFloat(t *testing.T) {
	if got := ClampFloat(5, 0, 1); got != 1 {
		t.Fatalf("clamp above = %v", got)
	}
	if got := ClampFloat(-5, 0, 1); got != 0 {
		t.Fatalf("clamp below = %v", got)
	}
	if got := ClampFloat(0.5, 0, 1); got != 0.5 {
		t.Fatalf("clamp inside = %v", got)
	}
}

func TestVec3HzDistSqr(t *testing.T) {
	if got := Vec3HzDistSqr(mgl32.Vec3{3, 100, 4}); got != 25 {
		t.Fatalf("Y must be ignored, got %v", got)
	}
}

func TestVecConversionRoundtrip(t *testing.T) {
	v := mgl32.Vec3{0.1, -42.5, 1e6}
	if Vec64To32(Vec32To64(v)) != v {
		t.Fatalf("roundtrip changed %v", v)
	}
	if Vec32To64(v) == (mgl64.Vec3{}) {
		t.Fatal("conversion lost the vector")
	}
}
