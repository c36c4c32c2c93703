package predict

import "github.com/oracmc/stride/sim"

// Frame is the atomic unit of prediction history: the input sampled for a
// tick and the state that simulating it produced. Tick is the authoritative
// key. A frame's input is never rewritten once stored; reconciliation may
// overwrite the state of later frames during replay.
type Frame struct {
	Tick  uint32
	Input sim.InputState
	State sim.PlayerState
}

// DefaultCapacity is the ring capacity used in normal operation; tests use
// smaller rings.
const DefaultCapacity = 512

// Buffer is a fixed-capacity tick-indexed ring of predicted frames. Slots are
// addressed by tick modulo capacity, so once more than capacity ticks have
// been pushed, older ticks alias onto newer ones and read as absent. A single
// producer pushes ticks in non-decreasing order; the buffer is not safe for
// concurrent writers.
type Buffer struct {
	frames []Frame
	valid  []bool

	latest uint32
	empty  bool
}

// NewBuffer returns a buffer with the given fixed capacity. Capacity never
// changes after construction; a non-positive value falls back to
// DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		frames: make([]Frame, capacity),
		valid:  make([]bool, capacity),
		empty:  true,
	}
}

// Cap returns the fixed slot count of the ring.
func (b *Buffer) Cap() int {
	return len(b.frames)
}

// Len returns the number of frames currently readable from the ring.
func (b *Buffer) Len() int {
	n := 0
	for _, v := range b.valid {
		if v {
			n++
		}
	}
	return n
}

// LatestTick returns the most recently pushed tick. The second return is
// false until the first push.
func (b *Buffer) LatestTick() (uint32, bool) {
	return b.latest, !b.empty
}

// Push stores a frame at its ring slot, evicting whatever older tick occupied
// it. It never blocks and never fails.
func (b *Buffer) Push(frame Frame) {
	idx := int(frame.Tick) % len(b.frames)
	b.frames[idx] = frame
	b.valid[idx] = true
	b.latest = frame.Tick
	b.empty = false
}

// Frame returns the stored frame for the tick, or false if the slot was
// evicted by ring aliasing, invalidated, or never written.
func (b *Buffer) Frame(tick uint32) (Frame, bool) {
	idx := int(tick) % len(b.frames)
	if !b.valid[idx] || b.frames[idx].Tick != tick {
		return Frame{}, false
	}
	return b.frames[idx], true
}

// SetState overwrites the stored state of an existing frame, leaving its
// input untouched. It reports whether the frame was present.
func (b *Buffer) SetState(tick uint32, state sim.PlayerState) bool {
	idx := int(tick) % len(b.frames)
	if !b.valid[idx] || b.frames[idx].Tick != tick {
		return false
	}
	b.frames[idx].State = state
	return true
}

// TruncateOlderThan invalidates every slot holding a tick strictly older than
// tickMin. Slots are flagged, not cleared; the frames stay in place until the
// ring overwrites them.
func (b *Buffer) TruncateOlderThan(tickMin uint32) {
	for idx := range b.frames {
		if b.valid[idx] && b.frames[idx].Tick < tickMin {
			b.valid[idx] = false
		}
	}
}

// Clear invalidates the entire ring, as done on connect and respawn
// boundaries so no stale history survives into the next session.
func (b *Buffer) Clear() {
	for idx := range b.valid {
		b.valid[idx] = false
	}
	b.latest = 0
	b.empty = true
}
