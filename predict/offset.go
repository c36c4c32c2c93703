package predict

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/oracmc/stride/game"
)

// DefaultOffsetDecay is the per-tick decay rate of the visual offset.
const DefaultOffsetDecay = float32(0.15)

// VisualOffset is the render-only positional delta that masks the
// instantaneous jump of a physics correction: the physics state snaps
// immediately, the visual pose keeps the offset and eases toward the real
// position as the offset decays.
type VisualOffset struct {
	offset mgl32.Vec3

	// Rate is the per-tick decay rate; zero falls back to DefaultOffsetDecay.
	Rate float32
}

// AddCorrection accumulates the positional error of a correction so the
// rendered pose stays where the old prediction was.
func (v *VisualOffset) AddCorrection(correction mgl32.Vec3) {
	v.offset = v.offset.Sub(correction)
}

// Decay advances the exponential decay by dt seconds: the offset shrinks by
// factor (1-rate)^(dt*tickRate) per call.
func (v *VisualOffset) Decay(dt float32) {
	rate := v.Rate
	if rate <= 0 {
		rate = DefaultOffsetDecay
	}
	v.offset = v.offset.Mul(math32.Pow(1-rate, dt*game.TicksPerSecond))
}

// Vec returns the current offset to add to the physics position when
// rendering.
func (v *VisualOffset) Vec() mgl32.Vec3 {
	return v.offset
}

// Reset zeroes the offset, as done on session boundaries and hard teleports
// where continuity is deliberately broken.
func (v *VisualOffset) Reset() {
	v.offset = mgl32.Vec3{}
}
