package predict

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oracmc/stride/game"
	"github.com/oracmc/stride/settings"
	"github.com/oracmc/stride/sim"
)

func newTestSession() *Session {
	set := settings.Default()
	set.BufferCapacity = 64
	return NewSession(emptyWorld{}, set, nil)
}

func TestSessionTickPipeline(t *testing.T) {
	s := newTestSession()

	var states []sim.PlayerState
	for i := 0; i < 10; i++ {
		states = append(states, s.Tick(sim.InputState{Forward: 1}))
	}
	if s.CurrentTick() != 10 {
		t.Fatalf("expected tick 10 after 10 ticks, got %d", s.CurrentTick())
	}
	if s.State() != states[9] {
		t.Fatal("session state should be the last simulated state")
	}
	if states[9].Pos[2] <= states[0].Pos[2] {
		t.Fatal("walking forward should advance the position")
	}
	if frame, ok := s.buf.Frame(5); !ok || frame.State != states[5] {
		t.Fatal("every tick should be recorded in the prediction buffer")
	}
}

func TestSessionSoftCorrection(t *testing.T) {
	s := newTestSession()

	var states []sim.PlayerState
	for i := 0; i < 10; i++ {
		states = append(states, s.Tick(sim.InputState{Forward: 1}))
	}

	// An authoritative pose half a block to the side of the tick-5
	// prediction shifts the whole subsequent lineage by that error.
	pose := ServerPose{
		TickEstimate: 5,
		Pos:          game.Vec32To64(states[5].Pos).Add(mgl64.Vec3{0.5, 0, 0}),
		Yaw:          states[5].Yaw,
		Pitch:        states[5].Pitch,
		OnGround:     states[5].OnGround,
	}
	s.QueueServerPose(pose)
	next := s.Tick(sim.InputState{Forward: 1})

	if math32.Abs(next.Pos[0]-(states[9].Pos[0]+0.5)) > 1e-3 {
		t.Fatalf("corrected X should carry the server error, got %v", next.Pos[0])
	}

	// The render pose lags behind the corrected physics pose and converges
	// monotonically as the offset decays.
	gap := func(r mgl64.Vec3) float64 {
		return math.Abs(r.X() - float64(s.State().Pos[0]))
	}
	r1 := s.RenderPos(0.05)
	if gap(r1) < 0.1 {
		t.Fatalf("render pose should lag right after a correction, gap %v", gap(r1))
	}
	prev := gap(r1)
	for i := 0; i < 20; i++ {
		g := gap(s.RenderPos(0.05))
		if g > prev {
			t.Fatalf("render gap grew from %v to %v", prev, g)
		}
		prev = g
	}
	if prev > 0.02 {
		t.Fatalf("render pose should have converged, gap still %v", prev)
	}
}

func TestSessionHardTeleport(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 5; i++ {
		s.Tick(sim.InputState{Forward: 1})
	}

	s.ApplyServerPose(ServerPose{TickEstimate: 2, Pos: mgl64.Vec3{100, 50, 100}, OnGround: false})

	st := s.State()
	if st.Pos != (game.Vec64To32(mgl64.Vec3{100, 50, 100})) {
		t.Fatalf("state should snap to the teleport target, got %v", st.Pos)
	}
	// Continuity is deliberately broken: the render pose snaps too.
	if r := s.RenderPos(0); r != game.Vec32To64(st.Pos) {
		t.Fatalf("render pose should snap on teleport, got %v", r)
	}
	if _, ok := s.buf.Frame(1); ok {
		t.Fatal("history before the teleport tick should be truncated")
	}
}

func TestSessionSnapsWithoutHistory(t *testing.T) {
	s := newTestSession()
	s.ApplyServerPose(ServerPose{TickEstimate: 0, Pos: mgl64.Vec3{8, 4, 8}, OnGround: true})

	st := s.State()
	if st.Pos != game.Vec64To32(mgl64.Vec3{8, 4, 8}) || !st.OnGround {
		t.Fatalf("session without history should adopt the server pose, got %+v", st)
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 5; i++ {
		s.Tick(sim.InputState{Forward: 1, Jump: true})
	}
	s.QueueServerPose(ServerPose{TickEstimate: 1, Pos: mgl64.Vec3{9, 9, 9}})

	s.Reset(mgl64.Vec3{1, 2, 3})
	if s.CurrentTick() != 0 {
		t.Fatalf("reset should rewind the tick counter, got %d", s.CurrentTick())
	}
	if s.State().Pos != game.Vec64To32(mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("reset should place the player at the spawn, got %v", s.State().Pos)
	}
	if _, ok := s.buf.LatestTick(); ok {
		t.Fatal("reset should clear the prediction history")
	}

	// The queued pose must not leak into the new life.
	st := s.Tick(sim.InputState{})
	if st.Pos[0] != 1 || st.Pos[2] != 3 {
		t.Fatalf("stale queued pose applied after reset, pos %v", st.Pos)
	}
}

func TestStateDigest(t *testing.T) {
	a, b := newTestSession(), newTestSession()
	for i := 0; i < 30; i++ {
		in := sim.InputState{Forward: 1, Jump: i%4 == 0, Yaw: float32(i) * 0.2}
		a.Tick(in)
		b.Tick(in)
	}
	if a.StateDigest() != b.StateDigest() {
		t.Fatal("identical sessions should produce identical digests")
	}

	b.Tick(sim.InputState{Strafe: 1})
	a.Tick(sim.InputState{Forward: 1})
	if a.StateDigest() == b.StateDigest() {
		t.Fatal("diverged sessions should produce different digests")
	}

	st := a.State()
	flipped := st
	flipped.OnGround = !flipped.OnGround
	if DigestState(st) == DigestState(flipped) {
		t.Fatal("digest should be sensitive to the ground flag")
	}
}
