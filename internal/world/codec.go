package world

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrShortMap is returned when a map has fewer lines than layers×rows.
	ErrShortMap = errors.New("map has too few lines")
	// ErrShortRow is returned when a map line has fewer cells than the grid width.
	ErrShortRow = errors.New("map line has too few cells")
)

// Encode writes the grid as text: one rune per cell, z-major then y-major
// then x-minor, one line per (z, y) row.
func Encode(g *Grid) []byte {
	var buf bytes.Buffer
	buf.Grow(len(g.cells) + g.layers*g.rows)
	for z := 0; z < g.layers; z++ {
		for y := 0; y < g.rows; y++ {
			row := g.cells[g.index(z, y, 0) : g.index(z, y, 0)+g.cols]
			for _, c := range row {
				buf.WriteRune(rune(c))
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Decode parses a map produced by Encode into a layers×rows×cols grid.
// Extra lines and extra cells per line are ignored.
func Decode(data []byte, layers, rows, cols int) (*Grid, error) {
	lines := strings.Split(string(data), "\n")
	want := layers * rows
	if len(lines) < want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShortMap, len(lines), want)
	}

	g := &Grid{
		layers: layers,
		rows:   rows,
		cols:   cols,
		cells:  make([]Cell, layers*rows*cols),
	}
	for n := 0; n < want; n++ {
		line := strings.TrimSuffix(lines[n], "\r")
		if utf8.RuneCountInString(line) < cols {
			return nil, fmt.Errorf("%w: line %d", ErrShortRow, n+1)
		}
		i := n * cols
		for _, r := range line {
			if i == (n+1)*cols {
				break
			}
			g.cells[i] = Cell(r)
			i++
		}
	}
	return g, nil
}
