package graphics

import (
	"image"
	"image/color"
)

// Shade is the discrete colour class of one raster sample.
type Shade uint8

const (
	ShadeBackground Shade = iota
	ShadeFloor
	ShadeEdgeX
	ShadeEdgeZ
	ShadeWall
	shadeCount
)

func (s Shade) String() string {
	switch s {
	case ShadeBackground:
		return "background"
	case ShadeFloor:
		return "floor"
	case ShadeEdgeX:
		return "edge-x"
	case ShadeEdgeZ:
		return "edge-z"
	case ShadeWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Palette maps each shade to its display colour.
var Palette = [shadeCount]color.RGBA{
	ShadeBackground: {R: 0, G: 255, B: 255, A: 255},
	ShadeFloor:      {R: 0, G: 128, B: 0, A: 255},
	ShadeEdgeX:      {R: 255, G: 255, B: 255, A: 255},
	ShadeEdgeZ:      {R: 242, G: 242, B: 242, A: 255},
	ShadeWall:       {R: 230, G: 230, B: 230, A: 255},
}

// CrosshairColor is the colour of the aim dot at the raster centre.
var CrosshairColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

const crosshairSize = 3

// Frame is one rendered raster. Samples are taken every SampleStep pixels;
// Shades is row-major with Cols entries per row.
type Frame struct {
	Cols       int
	Rows       int
	SampleStep float32
	Width      int
	Height     int
	Shades     []Shade
}

// NewFrame allocates a background-filled frame for a width×height raster.
func NewFrame(width, height int, step float32) *Frame {
	cols := sampleCount(width, step)
	rows := sampleCount(height, step)
	return &Frame{
		Cols:       cols,
		Rows:       rows,
		SampleStep: step,
		Width:      width,
		Height:     height,
		Shades:     make([]Shade, cols*rows),
	}
}

// sampleCount returns how many k satisfy k*step < limit.
func sampleCount(limit int, step float32) int {
	if step <= 0 || limit <= 0 {
		return 0
	}
	n := 0
	for float32(n)*step < float32(limit) {
		n++
	}
	return n
}

// At returns the shade of a sample; out-of-range samples read as background.
func (f *Frame) At(col, row int) Shade {
	if col < 0 || col >= f.Cols || row < 0 || row >= f.Rows {
		return ShadeBackground
	}
	return f.Shades[row*f.Cols+col]
}

func (f *Frame) set(col, row int, s Shade) {
	f.Shades[row*f.Cols+col] = s
}

// Image expands the frame to a Width×Height RGBA raster and marks the centre.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	if f.Cols == 0 || f.Rows == 0 {
		return img
	}
	for py := 0; py < f.Height; py++ {
		row := min(int(float32(py)/f.SampleStep), f.Rows-1)
		for px := 0; px < f.Width; px++ {
			col := min(int(float32(px)/f.SampleStep), f.Cols-1)
			img.SetRGBA(px, py, Palette[f.At(col, row)])
		}
	}

	cx, cy := f.Width/2, f.Height/2
	for dy := -crosshairSize / 2; dy <= crosshairSize/2; dy++ {
		for dx := -crosshairSize / 2; dx <= crosshairSize/2; dx++ {
			img.SetRGBA(cx+dx, cy+dy, CrosshairColor)
		}
	}
	return img
}
