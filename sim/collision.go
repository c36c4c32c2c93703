package sim

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/oracmc/stride/game"
	"github.com/oracmc/stride/world"
)

// CollisionResult is the outcome of sweeping the player box by an intended
// velocity. Vel has every blocked component zeroed, not just the position
// clamped.
type CollisionResult struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	OnGround            bool
	HorizontalCollision bool

	CollideX, CollideY, CollideZ bool
}

const collideEpsilon = float32(1e-5)

// ResolveCollisions performs the pure AABB-vs-voxel resolution for one tick:
// axes are resolved in the fixed order Y, X, Z against every candidate box
// independently, with an auto-step retry when horizontal movement is blocked
// while supported.
func (s *Simulator) ResolveCollisions(pos, vel mgl32.Vec3, wasOnGround bool) CollisionResult {
	bb := BoxAt(pos)
	bbList := world.GetNearbyBBoxes(s.World, bb.Extend(vel))

	moved, movedBB := sweep(bb, bbList, vel)

	hitX := moved.X() != vel.X()
	hitY := moved.Y() != vel.Y()
	hitZ := moved.Z() != vel.Z()

	// A flat-blocked horizontal move while supported (or while landing this
	// tick) may instead clear a step-height ledge. The taller sweep is only
	// accepted when it actually travels farther in the XZ plane.
	if (hitX || hitZ) && (wasOnGround || (hitY && vel.Y() < 0)) {
		stepped, steppedBB := stepSweep(bb, bbList, vel)
		if game.Vec3HzDistSqr(stepped) > game.Vec3HzDistSqr(moved) {
			moved, movedBB = stepped, steppedBB
		}
	}

	endPos := mgl32.Vec3{
		(movedBB.Min().X() + movedBB.Max().X()) * 0.5,
		movedBB.Min().Y(),
		(movedBB.Min().Z() + movedBB.Max().Z()) * 0.5,
	}

	result := CollisionResult{
		Pos:      endPos,
		Vel:      vel,
		CollideX: math32.Abs(vel.X()-moved.X()) >= collideEpsilon,
		CollideY: math32.Abs(vel.Y()-moved.Y()) >= collideEpsilon,
		CollideZ: math32.Abs(vel.Z()-moved.Z()) >= collideEpsilon,
	}
	result.HorizontalCollision = result.CollideX || result.CollideZ

	if result.CollideX {
		result.Vel[0] = 0
	}
	if result.CollideY {
		result.Vel[1] = 0
	}
	if result.CollideZ {
		result.Vel[2] = 0
	}

	// Primary grounding: vertical motion blocked while falling. The probe
	// below is a deliberately redundant secondary check; the two can disagree
	// on non-trivial shapes and both are load-bearing.
	result.OnGround = (result.CollideY && vel.Y() < 0) || s.groundProbe(endPos)
	return result
}

// sweep clips the intended velocity against every candidate box, one axis at
// a time in the order Y, X, Z, translating the box between axes.
func sweep(bb cube.BBox, bbList []cube.BBox, vel mgl32.Vec3) (mgl32.Vec3, cube.BBox) {
	dy := vel.Y()
	for _, box := range bbList {
		dy = clipY(box, bb, dy)
	}
	bb = bb.Translate(mgl32.Vec3{0, dy, 0})

	dx := vel.X()
	for _, box := range bbList {
		dx = clipX(box, bb, dx)
	}
	bb = bb.Translate(mgl32.Vec3{dx, 0, 0})

	dz := vel.Z()
	for _, box := range bbList {
		dz = clipZ(box, bb, dz)
	}
	bb = bb.Translate(mgl32.Vec3{0, 0, dz})

	return mgl32.Vec3{dx, dy, dz}, bb
}

// stepSweep retries the sweep with a step-height lift: up, then the full
// horizontal deltas, then back down onto whatever was stepped onto.
func stepSweep(bb cube.BBox, bbList []cube.BBox, vel mgl32.Vec3) (mgl32.Vec3, cube.BBox) {
	up := game.StepHeight
	for _, box := range bbList {
		up = clipY(box, bb, up)
	}
	bb = bb.Translate(mgl32.Vec3{0, up, 0})

	dx := vel.X()
	for _, box := range bbList {
		dx = clipX(box, bb, dx)
	}
	bb = bb.Translate(mgl32.Vec3{dx, 0, 0})

	dz := vel.Z()
	for _, box := range bbList {
		dz = clipZ(box, bb, dz)
	}
	bb = bb.Translate(mgl32.Vec3{0, 0, dz})

	down := -up
	for _, box := range bbList {
		down = clipY(box, bb, down)
	}
	bb = bb.Translate(mgl32.Vec3{0, down, 0})

	return mgl32.Vec3{dx, up + down, dz}, bb
}

// groundProbe intersects a thin box 0.001 to 0.02 below the feet with solid
// geometry.
func (s *Simulator) groundProbe(pos mgl32.Vec3) bool {
	probe := cube.Box(
		pos[0]-game.PlayerHalfWidth,
		pos[1]-0.02,
		pos[2]-game.PlayerHalfWidth,
		pos[0]+game.PlayerHalfWidth,
		pos[1]-0.001,
		pos[2]+game.PlayerHalfWidth,
	)
	return len(world.GetNearbyBBoxes(s.World, probe)) > 0
}
