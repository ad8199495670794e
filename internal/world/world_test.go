package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridHasSolidFloorOnly(t *testing.T) {
	g := New(3, 4, 5)

	for z := 0; z < 3; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 5; x++ {
				want := Empty
				if z == 0 {
					want = Solid
				}
				require.Equal(t, want, g.Get(z, y, x), "cell %d,%d,%d", z, y, x)
			}
		}
	}
	assert.Equal(t, 20, g.Count(Solid))
	assert.Equal(t, 40, g.Count(Empty))
}

func TestDefaultDimensions(t *testing.T) {
	z, y, x := NewDefault().Size()
	assert.Equal(t, 21, z)
	assert.Equal(t, 64, y)
	assert.Equal(t, 64, x)
}

func TestGetOutOfBounds(t *testing.T) {
	g := New(2, 2, 2)

	for _, c := range [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{2, 0, 0}, {0, 2, 0}, {0, 0, 2},
	} {
		assert.Equal(t, OutOfBounds, g.Get(c[0], c[1], c[2]), "coords %v", c)
		assert.False(t, g.InBounds(c[0], c[1], c[2]))
	}
}

func TestSetAndResetFloorEditable(t *testing.T) {
	g := New(2, 3, 3)
	g.Set(0, 1, 1, Empty)
	g.Set(1, 2, 2, Solid)
	assert.Equal(t, Empty, g.Get(0, 1, 1))
	assert.Equal(t, Solid, g.Get(1, 2, 2))

	g.Reset()
	assert.Equal(t, Solid, g.Get(0, 1, 1))
	assert.Equal(t, Empty, g.Get(1, 2, 2))
}

func TestSetIgnoresInvalidWrites(t *testing.T) {
	g := New(2, 2, 2)
	before := g.Clone()

	g.Set(5, 0, 0, Solid)
	g.Set(1, 1, 1, OutOfBounds)

	assert.True(t, g.Equal(before))
}

func TestVersionAdvancesOnMutation(t *testing.T) {
	g := New(2, 2, 2)
	v := g.Version()
	g.Set(1, 0, 0, Solid)
	assert.Greater(t, g.Version(), v)
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(2, 2, 2)
	c := g.Clone()
	g.Set(1, 1, 1, Solid)

	assert.Equal(t, Empty, c.Get(1, 1, 1))
	assert.False(t, g.Equal(c))
}

func TestCellBlocks(t *testing.T) {
	assert.True(t, Solid.Blocks())
	assert.True(t, OutOfBounds.Blocks())
	assert.True(t, Cell('x').Blocks())
	assert.False(t, Empty.Blocks())

	assert.True(t, Cell('x').IsOpaque())
	assert.False(t, Solid.IsOpaque())
}
