package sim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/oracmc/stride/game"
	"github.com/oracmc/stride/world"
)

var liquidProbeOffsets = [3]float32{game.LiquidProbeFeet, game.LiquidProbeMid, game.LiquidProbeHead}

// inWater samples three points along the vertical player profile for water
// block ids.
func (s *Simulator) inWater(pos mgl32.Vec3) bool {
	for _, off := range liquidProbeOffsets {
		probe := cube.PosFromVec3(mgl32.Vec3{pos[0], pos[1] + off, pos[2]})
		if world.IsWater(world.StateAt(s.World, probe)) {
			return true
		}
	}
	return false
}

// surfaceAssistClear reports whether the player, having collided horizontally
// while swimming, would find free non-liquid space after hopping 0.6 up along
// the attempted motion. When it does, the surface-assist nudge applies.
func (s *Simulator) surfaceAssistClear(pos, vel mgl32.Vec3) bool {
	offset := mgl32.Vec3{vel[0], vel[1] + game.StepHeight, vel[2]}
	if len(world.GetNearbyBBoxes(s.World, BoxAt(pos).Translate(offset))) > 0 {
		return false
	}
	return !s.inWater(pos.Add(offset))
}
