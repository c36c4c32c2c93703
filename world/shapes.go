package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fencePostMin, fencePostMax = float32(0.375), float32(0.625)
	fenceHeight                = float32(1.5)
	panePostMin, panePostMax   = float32(0.4375), float32(0.5625)
)

var fullCubeBox = cube.Box(0, 0, 0, 1, 1, 1)

// CollisionBoxes returns the world-space collision boxes of the block at pos.
// Liquids and air have none. Slabs, stairs, fences, fence gates and panes get
// their exact vanilla shapes; every other block occupies its full cell.
func CollisionBoxes(src Source, pos cube.Pos) []cube.BBox {
	state := StateAt(src, pos)
	origin := pos.Vec3()

	switch kindOf(state) {
	case shapeEmpty:
		return nil
	case shapeSlab:
		if BlockMeta(state)&0x8 != 0 {
			return []cube.BBox{cube.Box(0, 0.5, 0, 1, 1, 1).Translate(origin)}
		}
		return []cube.BBox{cube.Box(0, 0, 0.0, 1, 0.5, 1).Translate(origin)}
	case shapeStairs:
		return stairBoxes(state, origin)
	case shapeFence:
		return fenceBoxes(src, pos, origin)
	case shapeFenceGate:
		return fenceGateBoxes(state, origin)
	case shapePane:
		return paneBoxes(src, pos, origin)
	default:
		return []cube.BBox{fullCubeBox.Translate(origin)}
	}
}

// stairBoxes builds the base slab plus the half-cell riser. The facing lives
// in meta bits 0x3 (0 east, 1 west, 2 south, 3 north) and bit 0x4 flips the
// stair upside down.
func stairBoxes(state uint16, origin mgl32.Vec3) []cube.BBox {
	meta := BlockMeta(state)
	upsideDown := meta&0x4 != 0

	base := cube.Box(0, 0, 0, 1, 0.5, 1)
	riser := cube.Box(0, 0.5, 0, 1, 1, 1)
	if upsideDown {
		base = cube.Box(0, 0.5, 0, 1, 1, 1)
		riser = cube.Box(0, 0, 0, 1, 0.5, 1)
	}

	switch meta & 0x3 {
	case 0: // east
		riser = clipBoxX(riser, 0.5, 1)
	case 1: // west
		riser = clipBoxX(riser, 0, 0.5)
	case 2: // south
		riser = clipBoxZ(riser, 0.5, 1)
	case 3: // north
		riser = clipBoxZ(riser, 0, 0.5)
	}
	return []cube.BBox{base.Translate(origin), riser.Translate(origin)}
}

func fenceBoxes(src Source, pos cube.Pos, origin mgl32.Vec3) []cube.BBox {
	boxes := []cube.BBox{cube.Box(fencePostMin, 0, fencePostMin, fencePostMax, fenceHeight, fencePostMax).Translate(origin)}
	if fenceConnects(src, cube.Pos{pos[0] - 1, pos[1], pos[2]}) {
		boxes = append(boxes, cube.Box(0, 0, fencePostMin, fencePostMin, fenceHeight, fencePostMax).Translate(origin))
	}
	if fenceConnects(src, cube.Pos{pos[0] + 1, pos[1], pos[2]}) {
		boxes = append(boxes, cube.Box(fencePostMax, 0, fencePostMin, 1, fenceHeight, fencePostMax).Translate(origin))
	}
	if fenceConnects(src, cube.Pos{pos[0], pos[1], pos[2] - 1}) {
		boxes = append(boxes, cube.Box(fencePostMin, 0, 0, fencePostMax, fenceHeight, fencePostMin).Translate(origin))
	}
	if fenceConnects(src, cube.Pos{pos[0], pos[1], pos[2] + 1}) {
		boxes = append(boxes, cube.Box(fencePostMin, 0, fencePostMax, fencePostMax, fenceHeight, 1).Translate(origin))
	}
	return boxes
}

func fenceConnects(src Source, pos cube.Pos) bool {
	state := StateAt(src, pos)
	switch kindOf(state) {
	case shapeFence, shapeFenceGate, shapeFullCube:
		return true
	default:
		return false
	}
}

// fenceGateBoxes returns the closed-gate bar; an open gate (meta bit 0x4) has
// no collision at all. Gate facing 0/2 runs along the X axis, 1/3 along Z.
func fenceGateBoxes(state uint16, origin mgl32.Vec3) []cube.BBox {
	meta := BlockMeta(state)
	if meta&0x4 != 0 {
		return nil
	}
	if meta&0x1 == 0 {
		return []cube.BBox{cube.Box(0, 0, fencePostMin, 1, fenceHeight, fencePostMax).Translate(origin)}
	}
	return []cube.BBox{cube.Box(fencePostMin, 0, 0, fencePostMax, fenceHeight, 1).Translate(origin)}
}

func paneBoxes(src Source, pos cube.Pos, origin mgl32.Vec3) []cube.BBox {
	boxes := []cube.BBox{cube.Box(panePostMin, 0, panePostMin, panePostMax, 1, panePostMax).Translate(origin)}
	if paneConnects(src, cube.Pos{pos[0] - 1, pos[1], pos[2]}) {
		boxes = append(boxes, cube.Box(0, 0, panePostMin, panePostMin, 1, panePostMax).Translate(origin))
	}
	if paneConnects(src, cube.Pos{pos[0] + 1, pos[1], pos[2]}) {
		boxes = append(boxes, cube.Box(panePostMax, 0, panePostMin, 1, 1, panePostMax).Translate(origin))
	}
	if paneConnects(src, cube.Pos{pos[0], pos[1], pos[2] - 1}) {
		boxes = append(boxes, cube.Box(panePostMin, 0, 0, panePostMax, 1, panePostMin).Translate(origin))
	}
	if paneConnects(src, cube.Pos{pos[0], pos[1], pos[2] + 1}) {
		boxes = append(boxes, cube.Box(panePostMin, 0, panePostMax, panePostMax, 1, 1).Translate(origin))
	}
	return boxes
}

func paneConnects(src Source, pos cube.Pos) bool {
	state := StateAt(src, pos)
	switch kindOf(state) {
	case shapePane, shapeFullCube:
		return true
	default:
		return false
	}
}

// GetNearbyBBoxes collects every block collision box intersecting the given
// bounding box. The search covers all cells the box touches.
func GetNearbyBBoxes(src Source, bb cube.BBox) []cube.BBox {
	min, max := bb.Min(), bb.Max()
	minX, minY, minZ := int(math32.Floor(min[0])), int(math32.Floor(min[1])), int(math32.Floor(min[2]))
	maxX, maxY, maxZ := int(math32.Ceil(max[0])), int(math32.Ceil(max[1])), int(math32.Ceil(max[2]))

	var boxes []cube.BBox
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				for _, box := range CollisionBoxes(src, cube.Pos{x, y, z}) {
					if box.IntersectsWith(bb) {
						boxes = append(boxes, box)
					}
				}
			}
		}
	}
	return boxes
}

func clipBoxX(bb cube.BBox, min, max float32) cube.BBox {
	return cube.Box(min, bb.Min().Y(), bb.Min().Z(), max, bb.Max().Y(), bb.Max().Z())
}

func clipBoxZ(bb cube.BBox, min, max float32) cube.BBox {
	return cube.Box(bb.Min().X(), bb.Min().Y(), min, bb.Max().X(), bb.Max().Y(), max)
}
