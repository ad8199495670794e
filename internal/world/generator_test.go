package world

import (
	"testing"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(123).Generate(DefaultLayers, DefaultRows, DefaultCols)
	b := NewGenerator(123).Generate(DefaultLayers, DefaultRows, DefaultCols)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}

	c := NewGenerator(124).Generate(DefaultLayers, DefaultRows, DefaultCols)
	if a.Equal(c) {
		t.Error("different seeds produced identical grids")
	}
}

func TestGeneratorKeepsFloorAndMargin(t *testing.T) {
	g := NewGenerator(7).Generate(DefaultLayers, DefaultRows, DefaultCols)
	layers, rows, cols := g.Size()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.Get(0, y, x) != Solid {
				t.Fatalf("floor missing at (%d, %d)", y, x)
			}
			edge := y < 2 || x < 2 || y >= rows-2 || x >= cols-2
			for z := 1; z < layers; z++ {
				if edge && g.Get(z, y, x) != Empty {
					t.Fatalf("margin cell (%d, %d, %d) not empty", z, y, x)
				}
			}
		}
	}

	if g.Count(Solid) == rows*cols {
		t.Error("expected some mounds above the floor")
	}
}

func TestGeneratorHeightBounds(t *testing.T) {
	gen := NewGenerator(99)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			h := gen.HeightAt(y, x)
			if h < 0 || h > gen.maxHeight {
				t.Fatalf("HeightAt(%d, %d) = %d out of [0, %d]", y, x, h, gen.maxHeight)
			}
		}
	}
}

func TestGeneratorClampsToGrid(t *testing.T) {
	g := NewGenerator(5).Generate(2, 16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if g.Get(0, y, x) != Solid {
				t.Fatalf("floor missing at (%d, %d)", y, x)
			}
		}
	}
}

func TestPopulateResetsFirst(t *testing.T) {
	g := New(3, 8, 8)
	g.Set(2, 0, 0, Solid)
	NewGenerator(1).Populate(g)
	if g.Get(2, 0, 0) != Empty {
		t.Error("Populate kept a stale cell inside the margin")
	}
}
