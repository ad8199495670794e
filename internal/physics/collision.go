package physics

import (
	"voxcast/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// CanOccupy reports whether a body at (x, y, z) fits: floor(x) and floor(y)
// must be inside the grid and the cell at (floor(z), floor(y), floor(x))
// must be Empty.
func CanOccupy(vol Volume, x, y, z float32) bool {
	return vol.Get(floorToInt(z), floorToInt(y), floorToInt(x)) == world.Empty
}

// TryMove applies delta one axis at a time against the current z-layer:
// first an X-only trial, then a Y-only trial from the possibly updated x.
// Each trial is accepted or rejected on its own, so a body can slip past a
// solid diagonal corner when both single-axis cells are free.
func TryMove(vol Volume, pos, delta mgl32.Vec3) mgl32.Vec3 {
	if nx := pos.X() + delta.X(); CanOccupy(vol, nx, pos.Y(), pos.Z()) {
		pos[0] = nx
	}
	if ny := pos.Y() + delta.Y(); CanOccupy(vol, pos.X(), ny, pos.Z()) {
		pos[1] = ny
	}
	return pos
}

// CellBelowBlocks reports whether the cell directly under pos blocks. Below
// layer 0 there is no grid; that counts as solid ground.
func CellBelowBlocks(vol Volume, pos mgl32.Vec3) bool {
	z := floorToInt(pos.Z()) - 1
	if z < 0 {
		return true
	}
	return vol.Get(z, floorToInt(pos.Y()), floorToInt(pos.X())).Blocks()
}
