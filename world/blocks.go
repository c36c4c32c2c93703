package world

// Numeric block ids relevant to collision and liquid handling. Everything not
// classified below resolves to a full-cube collision shape.
const (
	IDAir          uint16 = 0
	IDStone        uint16 = 1
	IDFlowingWater uint16 = 8
	IDStillWater   uint16 = 9

	IDStoneSlab  uint16 = 44
	IDWoodenSlab uint16 = 126

	IDOakStairs          uint16 = 53
	IDCobblestoneStairs  uint16 = 67
	IDBrickStairs        uint16 = 108
	IDStoneBrickStairs   uint16 = 109
	IDNetherBrickStairs  uint16 = 114
	IDSandstoneStairs    uint16 = 128
	IDSpruceStairs       uint16 = 134
	IDBirchStairs        uint16 = 135
	IDJungleStairs       uint16 = 136
	IDQuartzStairs       uint16 = 156
	IDAcaciaStairs       uint16 = 163
	IDDarkOakStairs      uint16 = 164
	IDRedSandstoneStairs uint16 = 180

	IDOakFence         uint16 = 85
	IDNetherBrickFence uint16 = 113
	IDSpruceFence      uint16 = 188
	IDBirchFence       uint16 = 189
	IDJungleFence      uint16 = 190
	IDDarkOakFence     uint16 = 191
	IDAcaciaFence      uint16 = 192

	IDOakFenceGate     uint16 = 107
	IDSpruceFenceGate  uint16 = 183
	IDBirchFenceGate   uint16 = 184
	IDJungleFenceGate  uint16 = 185
	IDDarkOakFenceGate uint16 = 186
	IDAcaciaFenceGate  uint16 = 187

	IDIronBars         uint16 = 101
	IDGlassPane        uint16 = 102
	IDStainedGlassPane uint16 = 160
)

// shapeKind classifies a block id for collision-box construction.
type shapeKind uint8

const (
	shapeFullCube shapeKind = iota
	shapeEmpty
	shapeSlab
	shapeStairs
	shapeFence
	shapeFenceGate
	shapePane
)

var shapeKinds = map[uint16]shapeKind{
	IDAir:          shapeEmpty,
	IDFlowingWater: shapeEmpty,
	IDStillWater:   shapeEmpty,

	IDStoneSlab:  shapeSlab,
	IDWoodenSlab: shapeSlab,

	IDOakStairs:          shapeStairs,
	IDCobblestoneStairs:  shapeStairs,
	IDBrickStairs:        shapeStairs,
	IDStoneBrickStairs:   shapeStairs,
	IDNetherBrickStairs:  shapeStairs,
	IDSandstoneStairs:    shapeStairs,
	IDSpruceStairs:       shapeStairs,
	IDBirchStairs:        shapeStairs,
	IDJungleStairs:       shapeStairs,
	IDQuartzStairs:       shapeStairs,
	IDAcaciaStairs:       shapeStairs,
	IDDarkOakStairs:      shapeStairs,
	IDRedSandstoneStairs: shapeStairs,

	IDOakFence:         shapeFence,
	IDNetherBrickFence: shapeFence,
	IDSpruceFence:      shapeFence,
	IDBirchFence:       shapeFence,
	IDJungleFence:      shapeFence,
	IDDarkOakFence:     shapeFence,
	IDAcaciaFence:      shapeFence,

	IDOakFenceGate:     shapeFenceGate,
	IDSpruceFenceGate:  shapeFenceGate,
	IDBirchFenceGate:   shapeFenceGate,
	IDJungleFenceGate:  shapeFenceGate,
	IDDarkOakFenceGate: shapeFenceGate,
	IDAcaciaFenceGate:  shapeFenceGate,

	IDIronBars:         shapePane,
	IDGlassPane:        shapePane,
	IDStainedGlassPane: shapePane,
}

func kindOf(state uint16) shapeKind {
	if k, ok := shapeKinds[BlockID(state)]; ok {
		return k
	}
	return shapeFullCube
}

// IsWater reports whether the block state is still or flowing water.
func IsWater(state uint16) bool {
	id := BlockID(state)
	return id == IDFlowingWater || id == IDStillWater
}

// IsFullCube reports whether the block state occupies its entire cell.
func IsFullCube(state uint16) bool {
	return kindOf(state) == shapeFullCube
}
