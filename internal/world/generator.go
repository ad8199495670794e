package world

import (
	"math"
)

// Generator scatters solid mounds over a fresh grid from a noise heightmap.
// A margin along the map edge is left open so the default spawn is free.
type Generator struct {
	seed        int64
	scale       float64
	threshold   float64
	maxHeight   int
	margin      int
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewGenerator creates a generator with default settings.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:        seed,
		scale:       1.0 / 8.0,
		threshold:   0.6,
		maxHeight:   4,
		margin:      2,
		octaves:     3,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

// HeightAt returns how many solid layers stand on the floor at (y, x).
func (g *Generator) HeightAt(y, x int) int {
	n := octaveNoise2D(float64(x)*g.scale, float64(y)*g.scale, g.seed, g.octaves, g.persistence, g.lacunarity)
	if n < g.threshold {
		return 0
	}
	h := int(math.Ceil((n - g.threshold) / (1 - g.threshold) * float64(g.maxHeight)))
	return min(max(h, 1), g.maxHeight)
}

// Populate resets grid and raises the heightmap on top of the floor.
func (g *Generator) Populate(grid *Grid) {
	grid.Reset()
	layers, rows, cols := grid.Size()
	for y := g.margin; y < rows-g.margin; y++ {
		for x := g.margin; x < cols-g.margin; x++ {
			top := min(g.HeightAt(y, x), layers-1)
			for z := 1; z <= top; z++ {
				grid.Set(z, y, x, Solid)
			}
		}
	}
}

// Generate returns a new populated grid.
func (g *Generator) Generate(layers, rows, cols int) *Grid {
	grid := New(layers, rows, cols)
	g.Populate(grid)
	return grid
}
