package predict

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/oracmc/stride/sim"
)

// DigestState hashes the canonical byte layout of a state. Two states with
// the same digest simulated from the same inputs stay in lockstep, which
// makes the digest a cheap desync probe for diagnostics and determinism
// tests.
func DigestState(st sim.PlayerState) uint64 {
	var buf [33]byte
	le := binary.LittleEndian
	le.PutUint32(buf[0:], math.Float32bits(st.Pos[0]))
	le.PutUint32(buf[4:], math.Float32bits(st.Pos[1]))
	le.PutUint32(buf[8:], math.Float32bits(st.Pos[2]))
	le.PutUint32(buf[12:], math.Float32bits(st.Vel[0]))
	le.PutUint32(buf[16:], math.Float32bits(st.Vel[1]))
	le.PutUint32(buf[20:], math.Float32bits(st.Vel[2]))
	le.PutUint32(buf[24:], math.Float32bits(st.Yaw))
	le.PutUint32(buf[28:], math.Float32bits(st.Pitch))
	if st.OnGround {
		buf[32] |= 1
	}
	if st.Flying {
		buf[32] |= 2
	}
	return xxh3.Hash(buf[:])
}

// StateDigest digests the session's current predicted state.
func (s *Session) StateDigest() uint64 {
	return DigestState(s.state)
}
