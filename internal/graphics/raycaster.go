package graphics

import (
	"runtime"
	"sync"

	"voxcast/internal/physics"
	"voxcast/internal/player"
	"voxcast/internal/profiling"

	"github.com/alitto/pond/v2"
)

// Raster and camera defaults.
const (
	DefaultWidth      = 400
	DefaultHeight     = 200
	DefaultSampleStep = 1.18
	DefaultFOV        = 1.26 // ~72°
	DefaultVFOV       = 0.7  // ~40°
)

// RenderSettings configures the raster, the view cone and the ray march.
type RenderSettings struct {
	Width       int
	Height      int
	SampleStep  float32
	FOV         float32
	VFOV        float32
	StepSize    float32
	MaxDistance float32
	// Workers is the number of rows marched concurrently; 0 means one per CPU.
	Workers int
}

func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		SampleStep:  DefaultSampleStep,
		FOV:         DefaultFOV,
		VFOV:        DefaultVFOV,
		StepSize:    physics.DefaultStepSize,
		MaxDistance: physics.DefaultMaxDistance,
	}
}

// Raycaster renders frames by marching one ray per raster sample.
type Raycaster struct {
	settings RenderSettings
	pool     pond.Pool
}

// NewRaycaster creates a raycaster. With a single worker rows are marched
// on the calling goroutine.
func NewRaycaster(settings RenderSettings) *Raycaster {
	workers := settings.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	settings.Workers = workers

	r := &Raycaster{settings: settings}
	if workers > 1 {
		r.pool = pond.NewPool(workers)
	}
	return r
}

// Settings returns the effective settings.
func (r *Raycaster) Settings() RenderSettings {
	return r.settings
}

// Close stops the worker pool. The raycaster must not be used afterwards.
func (r *Raycaster) Close() {
	if r.pool != nil {
		r.pool.StopAndWait()
	}
}

// Render marches the view of s against vol. vol must not change while the
// call runs; pass a snapshot, not the live grid.
func (r *Raycaster) Render(s player.State, vol physics.Volume) *Frame {
	defer profiling.Track("graphics.Render")()

	f := NewFrame(r.settings.Width, r.settings.Height, r.settings.SampleStep)
	if r.pool == nil {
		for row := 0; row < f.Rows; row++ {
			r.renderRow(f, row, s, vol)
		}
		return f
	}

	var wg sync.WaitGroup
	for row := 0; row < f.Rows; row++ {
		row := row
		wg.Add(1)
		r.pool.Submit(func() {
			defer wg.Done()
			r.renderRow(f, row, s, vol)
		})
	}
	wg.Wait()
	return f
}

func (r *Raycaster) renderRow(f *Frame, row int, s player.State, vol physics.Volume) {
	st := r.settings
	eye := s.EyePosition()
	y := float32(row) * st.SampleStep
	pitch := s.Pitch + st.VFOV/2 - y*st.VFOV/float32(st.Height)

	for col := 0; col < f.Cols; col++ {
		x := float32(col) * st.SampleStep
		yaw := s.Yaw - st.FOV/2 + x*st.FOV/float32(st.Width)
		hit := physics.March(eye, player.Direction(yaw, pitch), st.StepSize, st.MaxDistance, vol)
		f.set(col, row, ShadeOf(hit))
	}
}

// ShadeOf maps a march result to its shade.
func ShadeOf(hit physics.RayHit) Shade {
	if !hit.Hit {
		return ShadeBackground
	}
	switch hit.Face {
	case physics.FaceFloor:
		return ShadeFloor
	case physics.FaceEdgeX:
		return ShadeEdgeX
	case physics.FaceEdgeZ:
		return ShadeEdgeZ
	default:
		return ShadeWall
	}
}
