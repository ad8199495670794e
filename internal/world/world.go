package world

import "slices"

// Default grid dimensions.
const (
	DefaultLayers = 21
	DefaultRows   = 64
	DefaultCols   = 64
)

// Grid is a fixed-size voxel volume indexed [z][y][x]. Layer z=0 is the
// floor.
type Grid struct {
	layers, rows, cols int
	cells              []Cell
	version            uint64
}

// New returns a layers×rows×cols grid in its reset state.
func New(layers, rows, cols int) *Grid {
	g := &Grid{
		layers: layers,
		rows:   rows,
		cols:   cols,
		cells:  make([]Cell, layers*rows*cols),
	}
	g.Reset()
	return g
}

// NewDefault returns a reset 21×64×64 grid.
func NewDefault() *Grid {
	return New(DefaultLayers, DefaultRows, DefaultCols)
}

// Size returns the grid dimensions as (layers, rows, cols), i.e. (z, y, x).
func (g *Grid) Size() (int, int, int) {
	return g.layers, g.rows, g.cols
}

// InBounds reports whether (z, y, x) addresses a cell of the grid.
func (g *Grid) InBounds(z, y, x int) bool {
	return z >= 0 && z < g.layers && y >= 0 && y < g.rows && x >= 0 && x < g.cols
}

// Get returns the cell at (z, y, x), or OutOfBounds outside the grid.
func (g *Grid) Get(z, y, x int) Cell {
	if !g.InBounds(z, y, x) {
		return OutOfBounds
	}
	return g.cells[g.index(z, y, x)]
}

// Set stores c at (z, y, x). Callers validate coordinates; writes outside
// the grid and writes of OutOfBounds are dropped.
func (g *Grid) Set(z, y, x int, c Cell) {
	if !g.InBounds(z, y, x) || c == OutOfBounds {
		return
	}
	g.cells[g.index(z, y, x)] = c
	g.version++
}

// Reset makes layer 0 Solid and every other layer Empty.
func (g *Grid) Reset() {
	floor := g.rows * g.cols
	for i := range g.cells {
		if i < floor {
			g.cells[i] = Solid
		} else {
			g.cells[i] = Empty
		}
	}
	g.version++
}

// Version increases on every mutation.
func (g *Grid) Version() uint64 {
	return g.version
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		layers:  g.layers,
		rows:    g.rows,
		cols:    g.cols,
		cells:   slices.Clone(g.cells),
		version: g.version,
	}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.layers == o.layers && g.rows == o.rows && g.cols == o.cols &&
		slices.Equal(g.cells, o.cells)
}

// Count returns the number of cells holding c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

func (g *Grid) index(z, y, x int) int {
	return (z*g.rows+y)*g.cols + x
}
