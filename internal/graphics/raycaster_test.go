package graphics

import (
	"image"
	"image/color"
	"testing"

	"voxcast/internal/physics"
	"voxcast/internal/player"
	"voxcast/internal/profiling"
	"voxcast/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallGrid() *world.Grid {
	g := world.New(3, 64, 64)
	for z := 1; z < 3; z++ {
		for y := 0; y < 64; y++ {
			g.Set(z, y, 36, world.Solid)
		}
	}
	return g
}

func serialSettings() RenderSettings {
	s := DefaultRenderSettings()
	s.Workers = 1
	return s
}

func TestFrameSampleCounts(t *testing.T) {
	f := NewFrame(DefaultWidth, DefaultHeight, DefaultSampleStep)
	assert.Equal(t, 339, f.Cols)
	assert.Equal(t, 170, f.Rows)
	assert.Len(t, f.Shades, 339*170)

	empty := NewFrame(10, 10, 0)
	assert.Zero(t, empty.Cols)
	assert.Zero(t, empty.Rows)
}

func TestRenderShades(t *testing.T) {
	r := NewRaycaster(serialSettings())
	defer r.Close()

	s := player.New(mgl32.Vec3{32, 32.5, 1.7}, 0, 0)
	f := r.Render(s, wallGrid())

	assert.Equal(t, ShadeBackground, f.At(0, 0), "sky above the wall")
	assert.Equal(t, ShadeFloor, f.At(f.Cols/2, f.Rows-1))
	assert.Equal(t, ShadeEdgeX, f.At(f.Cols/2, f.Rows/2), "wall face seen head-on")
}

func TestRenderLookingDown(t *testing.T) {
	r := NewRaycaster(serialSettings())
	defer r.Close()

	s := player.New(mgl32.Vec3{32, 32.5, 1.7}, 1, -1.5)
	f := r.Render(s, world.New(3, 64, 64))
	assert.Equal(t, ShadeFloor, f.At(f.Cols/2, f.Rows/2))
}

func TestParallelMatchesSerial(t *testing.T) {
	g := wallGrid()
	g.Set(1, 30, 33, world.Solid)
	g.Set(2, 35, 34, world.Solid)
	s := player.New(mgl32.Vec3{32, 32.5, 1.7}, 0.3, -0.1)

	serial := NewRaycaster(serialSettings())
	defer serial.Close()
	parallelSettings := DefaultRenderSettings()
	parallelSettings.Workers = 4
	parallel := NewRaycaster(parallelSettings)
	defer parallel.Close()

	want := serial.Render(s, g)
	got := parallel.Render(s, g)
	require.Equal(t, want.Cols, got.Cols)
	assert.Equal(t, want.Shades, got.Shades)
}

func TestRenderCountsRays(t *testing.T) {
	r := NewRaycaster(serialSettings())
	defer r.Close()

	profiling.ResetFrame()
	f := r.Render(player.NewAtSpawn(), world.NewDefault())
	assert.Equal(t, int64(f.Cols*f.Rows), profiling.FrameRays())
	assert.Contains(t, profiling.Snapshot(), "graphics.Render")
}

func TestShadeOf(t *testing.T) {
	assert.Equal(t, ShadeBackground, ShadeOf(physics.RayHit{}))
	assert.Equal(t, ShadeFloor, ShadeOf(physics.RayHit{Hit: true, Face: physics.FaceFloor}))
	assert.Equal(t, ShadeEdgeX, ShadeOf(physics.RayHit{Hit: true, Face: physics.FaceEdgeX}))
	assert.Equal(t, ShadeEdgeZ, ShadeOf(physics.RayHit{Hit: true, Face: physics.FaceEdgeZ}))
	assert.Equal(t, ShadeWall, ShadeOf(physics.RayHit{Hit: true, Face: physics.FaceFlat}))
}

func TestFrameImage(t *testing.T) {
	f := NewFrame(40, 20, DefaultSampleStep)
	for i := range f.Shades {
		f.Shades[i] = ShadeWall
	}
	f.set(0, 0, ShadeFloor)

	img := f.Image()
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	assert.Equal(t, Palette[ShadeFloor], img.RGBAAt(0, 0))
	assert.Equal(t, Palette[ShadeWall], img.RGBAAt(39, 19))
	assert.Equal(t, CrosshairColor, img.RGBAAt(20, 10))
	assert.Equal(t, ShadeBackground, f.At(-1, 0))
	assert.Equal(t, ShadeBackground, f.At(0, f.Rows))
}

func TestDrawStatus(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 60))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], []uint8{white.R, white.G, white.B, white.A})
	}

	lines := StatusLines(player.NewAtSpawn(), 7, 60)
	require.Len(t, lines, 3)
	assert.Equal(t, "Pos: 1.00, 1.00, 1.70", lines[0])
	assert.Contains(t, lines[1], "grounded")
	assert.Equal(t, "Tick: 7 | FPS: 60", lines[2])

	DrawStatus(img, lines...)
	changed := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != white {
				changed++
			}
		}
	}
	assert.Positive(t, changed)
}
