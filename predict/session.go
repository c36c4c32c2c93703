package predict

import (
	"io"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/oracmc/stride/game"
	"github.com/oracmc/stride/settings"
	"github.com/oracmc/stride/sim"
	"github.com/oracmc/stride/world"
)

// Session is the simulation actor: it owns the player state, the prediction
// buffer and the visual offset, and advances them through the fixed pipeline
// sample input -> simulate -> push history -> emit. Authoritative poses may
// be queued from any goroutine; they are drained at the next tick boundary so
// a correction never interleaves mid-tick.
type Session struct {
	log *logrus.Logger
	set settings.Settings

	sim *sim.Simulator
	rec *Reconciler
	buf *Buffer

	state  sim.PlayerState
	offset VisualOffset
	tick   uint32

	mu      sync.Mutex
	pending []ServerPose
}

// NewSession creates a session over the given block source. A nil logger
// discards all output.
func NewSession(src world.Source, set settings.Settings, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	simulator := sim.NewSimulator(src, sim.Options{
		AllowFlight: set.AllowFlight,
		FlySpeed:    set.FlySpeed,
	})
	return &Session{
		log: log,
		set: set,
		sim: simulator,
		rec: &Reconciler{
			Sim:           simulator,
			NoiseFloor:    set.NoiseFloor,
			SnapThreshold: set.SnapThreshold,
		},
		buf:    NewBuffer(set.BufferCapacity),
		offset: VisualOffset{Rate: set.OffsetDecay},
	}
}

// Tick runs one fixed simulation step: queued server poses are applied first,
// then the input is simulated, the resulting frame recorded, and the new
// state returned for the caller to render and transmit.
func (s *Session) Tick(input sim.InputState) sim.PlayerState {
	s.drainServerPoses()

	st := s.sim.SimulateTick(s.state, input)
	s.buf.Push(Frame{Tick: s.tick, Input: input, State: st})
	s.state = st
	s.tick++
	return st
}

// QueueServerPose records an authoritative pose for application at the next
// tick boundary. Safe to call from the network goroutine.
func (s *Session) QueueServerPose(pose ServerPose) {
	s.mu.Lock()
	s.pending = append(s.pending, pose)
	s.mu.Unlock()
}

func (s *Session) drainServerPoses() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, pose := range pending {
		s.ApplyServerPose(pose)
	}
}

// ApplyServerPose reconciles one authoritative pose against the prediction
// history. With no history at all the session snaps to the server pose
// directly; an unreconcilable pose (still-ahead tick, fully evicted range) is
// dropped and retried implicitly by the next, fresher pose.
func (s *Session) ApplyServerPose(pose ServerPose) {
	latest, ok := s.buf.LatestTick()
	if !ok {
		s.state = sim.PlayerState{
			Pos:      game.Vec64To32(pose.Pos),
			Yaw:      pose.Yaw,
			Pitch:    pose.Pitch,
			OnGround: pose.OnGround,
		}
		return
	}

	st, res, ok := s.rec.Reconcile(s.buf, pose, latest, s.state)
	if !ok {
		return
	}
	s.state = st

	if res.HardTeleport {
		s.offset.Reset()
		s.log.WithFields(diagFields(res)).Warn("hard teleport: prediction discarded")
		return
	}
	s.offset.AddCorrection(res.Correction)
	s.log.WithFields(diagFields(res)).Debug("soft correction applied")
}

// RenderPos advances the visual-offset decay by dt seconds and returns the
// pose the renderer should draw: physics position plus the remaining offset.
func (s *Session) RenderPos(dt float32) mgl64.Vec3 {
	s.offset.Decay(dt)
	return game.Vec32To64(s.state.Pos.Add(s.offset.Vec()))
}

// State returns the current predicted state.
func (s *Session) State() sim.PlayerState {
	return s.state
}

// CurrentTick returns the tick the next Tick call will be recorded as.
func (s *Session) CurrentTick() uint32 {
	return s.tick
}

// SetFlying toggles the flight branch for subsequent ticks.
func (s *Session) SetFlying(flying bool) {
	s.state.Flying = flying
}

// Reset replaces the state wholesale and recreates the history, as required
// on every connect, respawn and disconnect boundary.
func (s *Session) Reset(pos mgl64.Vec3) {
	s.state = sim.PlayerState{Pos: game.Vec64To32(pos)}
	s.buf.Clear()
	s.offset.Reset()
	s.tick = 0

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

func diagFields(res Result) logrus.Fields {
	fields := logrus.Fields{}
	if res.Diagnostics == nil {
		return fields
	}
	for el := res.Diagnostics.Front(); el != nil; el = el.Next() {
		fields[el.Key] = el.Value
	}
	return fields
}
