package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var sinTable []float32

func init() {
	sinTable = make([]float32, 65536)
	for i := 0; i < 65536; i++ {
		sinTable[i] = math32.Sin(float32(i) * math32.Pi * 2 / 65536)
	}
}

// MCSin returns the Minecraft table sin of the given angle in radians.
func MCSin(val float32) float32 {
	return sinTable[uint16(val*10430.378)&65535]
}

// MCCos returns the Minecraft table cos of the given angle in radians.
func MCCos(val float32) float32 {
	return sinTable[uint16(val*10430.378+16384.0)&65535]
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}
