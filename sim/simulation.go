package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/oracmc/stride/game"
	"github.com/oracmc/stride/world"
)

// Options configure behaviour that is not part of the per-tick input.
type Options struct {
	// AllowFlight enables the flight branch for states with Flying set.
	AllowFlight bool
	// FlySpeed is the configured creative-fly speed; zero means the default.
	FlySpeed float32
}

// Simulator advances a PlayerState one fixed tick at a time against a
// read-only block source. It is a pure function of its inputs: the same
// state, input and world always produce the same result, which is what makes
// prediction replay possible at all.
type Simulator struct {
	World world.Source
	Opts  Options
}

// NewSimulator returns a Simulator over the given block source.
func NewSimulator(src world.Source, opts Options) *Simulator {
	return &Simulator{World: src, Opts: opts}
}

// SimulateTick advances the state by one simulation tick.
func (s *Simulator) SimulateTick(prev PlayerState, input InputState) PlayerState {
	st := prev
	st.Yaw, st.Pitch = input.Yaw, input.Pitch

	// Wish axes; the unit-length clamp happens inside moveRelative.
	forward, strafe := input.Forward, input.Strafe
	if input.Sneak {
		forward *= game.SneakMultiplier
		strafe *= game.SneakMultiplier
	}

	if st.Flying && s.Opts.AllowFlight {
		return s.simulateFlight(st, input, forward, strafe)
	}

	inWater := s.inWater(st.Pos)
	var groundFriction float32
	if inWater {
		if input.Jump {
			st.Vel[1] += game.SwimUpAcceleration
		}
		st = moveRelative(st, forward, strafe, game.WaterMoveSpeed)
	} else {
		if input.Jump && st.OnGround {
			st.Vel[1] = game.JumpMotion
			if input.Sprint {
				st.Vel[0] -= game.MCSin(st.Yaw) * game.SprintJumpBoost
				st.Vel[2] += game.MCCos(st.Yaw) * game.SprintJumpBoost
			}
		}

		groundFriction = game.AirFriction
		accel := game.AirAcceleration
		if input.Sprint {
			accel *= game.SprintMultiplier
		}
		if st.OnGround {
			groundFriction = game.DefaultSlipperiness * game.AirFriction
			f3 := groundFriction * groundFriction * groundFriction
			speed := game.WalkSpeed
			if input.Sprint {
				speed *= game.SprintMultiplier
			}
			accel = speed * game.GroundAccelerationBase / f3
		}
		st = moveRelative(st, forward, strafe, accel)
	}

	if st.OnGround && input.Sneak {
		st.Vel = s.clampToLedge(st.Pos, st.Vel)
	}

	res := s.ResolveCollisions(st.Pos, st.Vel, st.OnGround)
	st.Pos = res.Pos
	st.OnGround = res.OnGround

	vel := res.Vel
	if inWater {
		vel[0] *= game.WaterDrag
		vel[1] *= game.WaterDrag
		vel[2] *= game.WaterDrag
		vel[1] -= game.WaterGravity
		if res.HorizontalCollision && s.surfaceAssistClear(st.Pos, vel) {
			vel[1] = game.WaterSurfaceAssist
		}
	} else {
		if !st.OnGround {
			vel[1] -= game.NormalGravity
			vel[1] *= game.VerticalDrag
		}
		vel[0] *= groundFriction
		vel[2] *= groundFriction
	}
	st.Vel = vel
	return st
}

func (s *Simulator) simulateFlight(st PlayerState, input InputState, forward, strafe float32) PlayerState {
	speed := s.flySpeed()
	if input.Sprint {
		speed *= game.FlySprintMultiplier
	}
	if input.Jump {
		st.Vel[1] += speed * game.FlyVerticalAccelMultiplier
	}
	if input.Sneak {
		st.Vel[1] -= speed * game.FlyVerticalAccelMultiplier
	}
	st = moveRelative(st, forward, strafe, speed)

	res := s.ResolveCollisions(st.Pos, st.Vel, st.OnGround)
	st.Pos = res.Pos
	st.OnGround = res.OnGround

	vel := res.Vel
	vel[0] *= game.FlyHorizontalDamping
	vel[2] *= game.FlyHorizontalDamping
	vel[1] *= game.FlyVerticalDamping
	st.Vel = vel
	return st
}

func (s *Simulator) flySpeed() float32 {
	if s.Opts.FlySpeed > 0 {
		return s.Opts.FlySpeed
	}
	return game.DefaultFlySpeed
}

// moveRelative applies horizontal acceleration toward the wish vector, scaled
// so the wish never exceeds unit length, rotated into world space by the yaw.
func moveRelative(st PlayerState, forward, strafe, speed float32) PlayerState {
	force := forward*forward + strafe*strafe
	if force < 1e-4 {
		return st
	}
	force = speed / math32.Max(math32.Sqrt(force), 1.0)
	mf, ms := forward*force, strafe*force

	sin, cos := game.MCSin(st.Yaw), game.MCCos(st.Yaw)
	st.Vel[0] += ms*cos - mf*sin
	st.Vel[2] += mf*cos + ms*sin
	return st
}

// clampToLedge shrinks the horizontal velocity in 0.05 steps along X, Z and
// the diagonal until the sneaking player keeps block support one cell below
// the feet.
func (s *Simulator) clampToLedge(pos, vel mgl32.Vec3) mgl32.Vec3 {
	const offset = float32(0.05)
	bb := BoxAt(pos)
	xMov, zMov := vel.X(), vel.Z()

	for xMov != 0 && len(world.GetNearbyBBoxes(s.World, bb.Translate(mgl32.Vec3{xMov, -1, 0}))) == 0 {
		if xMov < offset && xMov >= -offset {
			xMov = 0
		} else if xMov > 0 {
			xMov -= offset
		} else {
			xMov += offset
		}
	}
	for zMov != 0 && len(world.GetNearbyBBoxes(s.World, bb.Translate(mgl32.Vec3{0, -1, zMov}))) == 0 {
		if zMov < offset && zMov >= -offset {
			zMov = 0
		} else if zMov > 0 {
			zMov -= offset
		} else {
			zMov += offset
		}
	}
	for xMov != 0 && zMov != 0 && len(world.GetNearbyBBoxes(s.World, bb.Translate(mgl32.Vec3{xMov, -1, zMov}))) == 0 {
		if xMov < offset && xMov >= -offset {
			xMov = 0
		} else if xMov > 0 {
			xMov -= offset
		} else {
			xMov += offset
		}
		if zMov < offset && zMov >= -offset {
			zMov = 0
		} else if zMov > 0 {
			zMov -= offset
		} else {
			zMov += offset
		}
	}

	vel[0], vel[2] = xMov, zMov
	return vel
}
