package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"voxcast/internal/player"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var hudColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

const (
	hudMarginX = 4
	hudMarginY = 2
)

// StatusLines formats the player readout shown in the top-left corner.
func StatusLines(s player.State, tick int64, fps int) []string {
	return []string{
		fmt.Sprintf("Pos: %.2f, %.2f, %.2f", s.Position[0], s.Position[1], s.Position[2]),
		fmt.Sprintf("Yaw: %.2f Pitch: %.2f | %s", s.Yaw, s.Pitch, s.Vertical),
		fmt.Sprintf("Tick: %d | FPS: %d", tick, fps),
	}
}

// DrawStatus writes lines top to bottom onto img.
func DrawStatus(img draw.Image, lines ...string) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(hudColor),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(hudMarginX, hudMarginY+face.Metrics().Ascent.Ceil()+i*lineHeight)
		d.DrawString(line)
	}
}
