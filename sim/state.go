package sim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/oracmc/stride/game"
)

// PlayerState is the kinematic snapshot of the locally controlled player. Pos
// is the world-space feet position and Vel is displacement per tick. It is a
// plain value: every simulation step produces a fresh copy, and session
// boundaries (connect, respawn, hard teleport) replace it wholesale.
type PlayerState struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	OnGround bool
	Flying   bool

	Yaw   float32
	Pitch float32
}

// BoundingBox returns the capsule-approximating box of the player standing at
// the state's feet position.
func (st PlayerState) BoundingBox() cube.BBox {
	return BoxAt(st.Pos)
}

// BoxAt returns the player collision box for the given feet position.
func BoxAt(pos mgl32.Vec3) cube.BBox {
	return cube.Box(
		pos[0]-game.PlayerHalfWidth,
		pos[1],
		pos[2]-game.PlayerHalfWidth,
		pos[0]+game.PlayerHalfWidth,
		pos[1]+game.PlayerHeight,
		pos[2]+game.PlayerHalfWidth,
	)
}
