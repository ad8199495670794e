package physics

import (
	"math"

	"voxcast/internal/profiling"
	"voxcast/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultStepSize    = 0.05
	DefaultMaxDistance = 9.5
)

// Volume is the read side of a voxel grid.
type Volume interface {
	Get(z, y, x int) world.Cell
}

// Face classifies which side of a cell a ray struck. It is a shading hint
// only; physics never looks at it.
type Face int

const (
	FaceNone Face = iota
	FaceFloor
	FaceEdgeX
	FaceEdgeZ
	FaceFlat
)

func (f Face) String() string {
	switch f {
	case FaceFloor:
		return "floor"
	case FaceEdgeX:
		return "edge-x"
	case FaceEdgeZ:
		return "edge-z"
	case FaceFlat:
		return "flat"
	default:
		return "none"
	}
}

// RayHit stores the result of a march. Cell and Prev are (z, y, x).
type RayHit struct {
	Cell     [3]int
	Prev     [3]int
	Distance float32
	Steps    int
	Face     Face
	Hit      bool
}

// March advances from start along direction in fixed steps of stepSize and
// reports the first blocking cell. A ray whose next sample would leave the
// grid, or whose distance exceeds maxDist, is a miss.
func March(start, direction mgl32.Vec3, stepSize, maxDist float32, vol Volume) RayHit {
	return MarchWithin(start, direction, stepSize, maxDist, 0, vol)
}

// MarchWithin is March with a lower layer bound: samples with z < minLayer
// count as outside the grid.
func MarchWithin(start, direction mgl32.Vec3, stepSize, maxDist float32, minLayer int, vol Volume) RayHit {
	profiling.CountRay()

	if stepSize <= 0 {
		return RayHit{}
	}

	cell := CellAt(start, direction, 0)
	if !sampleable(vol, cell, minLayer) {
		return RayHit{}
	}
	prev := cell

	for i := 0; ; i++ {
		dist := float32(i) * stepSize
		if dist > maxDist {
			return RayHit{}
		}

		if vol.Get(cell[0], cell[1], cell[2]).Blocks() {
			return RayHit{
				Cell:     cell,
				Prev:     prev,
				Distance: dist,
				Steps:    i,
				Face:     ClassifyFace(cell, prev),
				Hit:      true,
			}
		}

		next := CellAt(start, direction, float32(i+1)*stepSize)
		if !sampleable(vol, next, minLayer) {
			return RayHit{}
		}
		prev, cell = cell, next
	}
}

// CellAt returns the (z, y, x) cell containing start + direction*dist.
func CellAt(start, direction mgl32.Vec3, dist float32) [3]int {
	pos := start.Add(direction.Mul(dist))
	return [3]int{floorToInt(pos.Z()), floorToInt(pos.Y()), floorToInt(pos.X())}
}

// ClassifyFace compares the hit cell against the cell sampled one step
// earlier. Both are (z, y, x).
func ClassifyFace(cell, prev [3]int) Face {
	switch {
	case cell[0] == 0:
		return FaceFloor
	case cell[2] != prev[2]:
		return FaceEdgeX
	case cell[0] != prev[0]:
		return FaceEdgeZ
	default:
		return FaceFlat
	}
}

func sampleable(vol Volume, c [3]int, minLayer int) bool {
	return c[0] >= minLayer && vol.Get(c[0], c[1], c[2]) != world.OutOfBounds
}

// floorToInt maps NaN and values beyond the int range to -1 so they always
// land outside the grid.
func floorToInt(v float32) int {
	f := math.Floor(float64(v))
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return -1
	}
	return int(f)
}
