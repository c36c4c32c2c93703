package sim

import "github.com/ethaniccc/float32-cube/cube"

// The clip helpers clamp a single axis of intended movement of the moving box
// against one stationary block box, leaving the delta untouched when the boxes
// do not overlap on the other two axes. Comparisons are deliberately strict:
// boxes that merely touch do not block.

func clipY(box, moving cube.BBox, dy float32) float32 {
	if moving.Max().X() <= box.Min().X() || moving.Min().X() >= box.Max().X() {
		return dy
	}
	if moving.Max().Z() <= box.Min().Z() || moving.Min().Z() >= box.Max().Z() {
		return dy
	}
	if dy > 0 && moving.Max().Y() <= box.Min().Y() {
		if d := box.Min().Y() - moving.Max().Y(); d < dy {
			dy = d
		}
	} else if dy < 0 && moving.Min().Y() >= box.Max().Y() {
		if d := box.Max().Y() - moving.Min().Y(); d > dy {
			dy = d
		}
	}
	return dy
}

func clipX(box, moving cube.BBox, dx float32) float32 {
	if moving.Max().Y() <= box.Min().Y() || moving.Min().Y() >= box.Max().Y() {
		return dx
	}
	if moving.Max().Z() <= box.Min().Z() || moving.Min().Z() >= box.Max().Z() {
		return dx
	}
	if dx > 0 && moving.Max().X() <= box.Min().X() {
		if d := box.Min().X() - moving.Max().X(); d < dx {
			dx = d
		}
	} else if dx < 0 && moving.Min().X() >= box.Max().X() {
		if d := box.Max().X() - moving.Min().X(); d > dx {
			dx = d
		}
	}
	return dx
}

func clipZ(box, moving cube.BBox, dz float32) float32 {
	if moving.Max().X() <= box.Min().X() || moving.Min().X() >= box.Max().X() {
		return dz
	}
	if moving.Max().Y() <= box.Min().Y() || moving.Min().Y() >= box.Max().Y() {
		return dz
	}
	if dz > 0 && moving.Max().Z() <= box.Min().Z() {
		if d := box.Min().Z() - moving.Max().Z(); d < dz {
			dz = d
		}
	} else if dz < 0 && moving.Min().Z() >= box.Max().Z() {
		if d := box.Max().Z() - moving.Min().Z(); d > dz {
			dz = d
		}
	}
	return dz
}
