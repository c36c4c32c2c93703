package world

import "github.com/ethaniccc/float32-cube/cube"

// Height is the build limit of the world in blocks.
const Height = 256

// Source is a read-only surface over decoded chunk storage, queried by integer
// block coordinate. Implementations must tolerate concurrent reads; nothing in
// this module ever writes through it.
type Source interface {
	// BlockAt returns the 16-bit block state at the given position. The low
	// 4 bits carry the variant/meta and the remaining bits the block id.
	BlockAt(pos cube.Pos) uint16
}

// StateAt queries src with the world-bound sentinels applied: anything below
// y=0 reads as solid stone and anything at or above Height reads as air. Step
// and ledge behaviour at the world bounds depends on these defaults.
func StateAt(src Source, pos cube.Pos) uint16 {
	if pos[1] < 0 {
		return State(IDStone, 0)
	}
	if pos[1] >= Height {
		return State(IDAir, 0)
	}
	return src.BlockAt(pos)
}

// State packs a block id and meta value into a 16-bit block state.
func State(id uint16, meta uint8) uint16 {
	return id<<4 | uint16(meta&0xF)
}

// BlockID returns the id part of a block state.
func BlockID(state uint16) uint16 {
	return state >> 4
}

// BlockMeta returns the variant/meta part of a block state.
func BlockMeta(state uint16) uint8 {
	return uint8(state & 0xF)
}
