package main

import (
	"fmt"
	"os"

	"voxcast/internal/graphics"
	"voxcast/internal/player"
	"voxcast/internal/world"
)

// writeSnapshot renders a single frame without opening a window.
func writeSnapshot(path string, scale int, grid *world.Grid, state player.State, settings graphics.RenderSettings) error {
	r := graphics.NewRaycaster(settings)
	defer r.Close()

	img := r.Render(state, grid).Image()
	graphics.DrawStatus(img, graphics.StatusLines(state, 0, 0)...)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := graphics.WritePNG(f, graphics.Upscale(img, scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
