package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	g := New(2, 2, 3)
	g.Set(1, 1, 2, Solid)

	assert.Equal(t, "###\n###\n...\n..#\n", string(Encode(g)))
}

func TestCodecRoundTrip(t *testing.T) {
	g := New(3, 5, 5)
	g.Set(1, 2, 4, Solid)
	g.Set(2, 0, 0, Solid)
	g.Set(0, 3, 3, Empty)

	got, err := Decode(Encode(g), 3, 5, 5)
	require.NoError(t, err)
	assert.True(t, got.Equal(g))
}

func TestCodecPreservesOpaqueCells(t *testing.T) {
	src := "#x\n#é\n.?\n..\n"

	g, err := Decode([]byte(src), 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, Cell('x'), g.Get(0, 0, 1))
	assert.Equal(t, Cell('é'), g.Get(0, 1, 1))
	assert.Equal(t, src, string(Encode(g)))
}

func TestDecodeShortMap(t *testing.T) {
	_, err := Decode([]byte("##\n##\n"), 2, 2, 2)
	assert.ErrorIs(t, err, ErrShortMap)
}

func TestDecodeShortRow(t *testing.T) {
	_, err := Decode([]byte("##\n#\n..\n..\n"), 2, 2, 2)
	require.ErrorIs(t, err, ErrShortRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecodeToleratesCRLFAndExtras(t *testing.T) {
	src := strings.Join([]string{"###\r", "###", "..#", "...", "ignored"}, "\n")

	g, err := Decode([]byte(src), 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, Solid, g.Get(0, 0, 1))
	assert.Equal(t, Empty, g.Get(1, 0, 1))
}
