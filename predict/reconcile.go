package predict

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oracmc/stride/game"
	"github.com/oracmc/stride/sim"
)

// ServerPose is the authoritative pose event decoded from a server position
// update. TickEstimate is the network layer's estimate of which local tick
// the pose corresponds to (current tick minus estimated one-way latency in
// whole ticks); the reconciler treats it as given.
type ServerPose struct {
	TickEstimate uint32
	Pos          mgl64.Vec3
	Yaw, Pitch   float32
	OnGround     bool
}

// Result describes a correction that was applied. Correction is the raw
// positional error at the anchor tick, consumed only by visual smoothing and
// diagnostics, never by the network layer.
type Result struct {
	Correction    mgl32.Vec3
	ReplayedTicks int
	HardTeleport  bool

	Diagnostics *orderedmap.OrderedMap[string, any]
}

// Default correction thresholds. Below the noise floor a discrepancy is
// ignored outright; at or beyond the snap threshold prediction is discarded
// wholesale.
const (
	DefaultNoiseFloor    = float32(0.001)
	DefaultSnapThreshold = float32(3.0)
)

// Reconciler merges late-arriving authoritative poses into prediction
// history. Soft corrections never discard input history: they replay it from
// the corrected anchor, which keeps small errors invisible. Hard teleports
// sacrifice continuity for guaranteed convergence on large desyncs.
type Reconciler struct {
	Sim *sim.Simulator

	// Zero values fall back to the defaults above.
	NoiseFloor    float32
	SnapThreshold float32
}

// Reconcile compares the server pose against the buffered prediction for its
// tick and returns the corrected current state. The third return is false
// when nothing needed to happen: the error was below the noise floor, the
// pose was not older than the client tick, or no frame near the server tick
// survives in the ring (in which case the caller may snap directly).
func (r *Reconciler) Reconcile(buf *Buffer, pose ServerPose, clientTick uint32, current sim.PlayerState) (sim.PlayerState, Result, bool) {
	serverTick := pose.TickEstimate
	if serverTick >= clientTick {
		return current, Result{}, false
	}

	anchor, ok := buf.Frame(serverTick)
	if !ok {
		// The ring already evicted the exact tick; the nearest older frame
		// still present is accepted as a best-effort anchor.
		anchor, ok = r.scanBack(buf, serverTick)
	}
	if !ok {
		return current, Result{}, false
	}

	serverPos := game.Vec64To32(pose.Pos)
	correction := serverPos.Sub(anchor.State.Pos)
	errLen := correction.Len()
	if errLen < r.noiseFloor() {
		return current, Result{}, false
	}

	if errLen >= r.snapThreshold() {
		st := sim.PlayerState{
			Pos:      serverPos,
			Yaw:      pose.Yaw,
			Pitch:    pose.Pitch,
			OnGround: pose.OnGround,
			Flying:   current.Flying,
		}
		buf.TruncateOlderThan(serverTick)
		res := Result{Correction: correction, HardTeleport: true}
		res.Diagnostics = r.diagnostics(pose, anchor.Tick, clientTick, errLen, res)
		return st, res, true
	}

	// Soft correction: re-simulate every buffered input forward from the
	// authoritative anchor, overwriting stored states so future
	// reconciliations see the corrected lineage.
	st := anchor.State
	st.Pos = serverPos
	st.Yaw, st.Pitch = pose.Yaw, pose.Pitch
	st.OnGround = pose.OnGround

	replayed := 0
	for tick := anchor.Tick + 1; tick <= clientTick; tick++ {
		input := sim.NeutralInput(st)
		if frame, ok := buf.Frame(tick); ok {
			input = frame.Input
		}
		st = r.Sim.SimulateTick(st, input)
		buf.SetState(tick, st)
		replayed++
	}

	res := Result{Correction: correction, ReplayedTicks: replayed}
	res.Diagnostics = r.diagnostics(pose, anchor.Tick, clientTick, errLen, res)
	return st, res, true
}

// scanBack walks backward from the evicted server tick looking for the
// nearest older frame still present, bounded by one ring length.
func (r *Reconciler) scanBack(buf *Buffer, serverTick uint32) (Frame, bool) {
	limit := uint32(0)
	if ringCap := uint32(buf.Cap()); serverTick > ringCap {
		limit = serverTick - ringCap
	}
	for tick := serverTick; tick > limit; tick-- {
		if frame, ok := buf.Frame(tick - 1); ok {
			return frame, true
		}
	}
	return Frame{}, false
}

func (r *Reconciler) diagnostics(pose ServerPose, anchorTick, clientTick uint32, errLen float32, res Result) *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("server_tick", pose.TickEstimate)
	data.Set("anchor_tick", anchorTick)
	data.Set("client_tick", clientTick)
	data.Set("error", errLen)
	data.Set("replayed", res.ReplayedTicks)
	data.Set("hard_teleport", res.HardTeleport)
	return data
}

func (r *Reconciler) noiseFloor() float32 {
	if r.NoiseFloor > 0 {
		return r.NoiseFloor
	}
	return DefaultNoiseFloor
}

func (r *Reconciler) snapThreshold() float32 {
	if r.SnapThreshold > 0 {
		return r.SnapThreshold
	}
	return DefaultSnapThreshold
}
