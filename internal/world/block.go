package world

// Cell is the value stored in one voxel. Solid and Empty are the only
// values the simulation interprets; any other rune read from a map file is
// kept as an opaque value so it survives a load/save cycle unchanged.
type Cell rune

const (
	Solid Cell = '#'
	Empty Cell = '.'

	// OutOfBounds is returned by Grid.Get for coordinates outside the grid.
	// It can never be stored in a cell.
	OutOfBounds Cell = -1
)

// Blocks reports whether the cell stops rays and bodies. Everything except
// Empty does, including opaque cells and OutOfBounds.
func (c Cell) Blocks() bool {
	return c != Empty
}

// IsOpaque reports whether the cell holds a value other than Solid or Empty.
func (c Cell) IsOpaque() bool {
	return c != Solid && c != Empty && c != OutOfBounds
}

func (c Cell) String() string {
	switch c {
	case Solid:
		return "solid"
	case Empty:
		return "empty"
	case OutOfBounds:
		return "out-of-bounds"
	default:
		return "opaque(" + string(rune(c)) + ")"
	}
}
