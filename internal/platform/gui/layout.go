package gui

import (
	"image"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

// Avatar tilt limits in radians.
const (
	maxTiltUp   = -0.45
	maxTiltDown = 1.2
	tiltPerUnit = 1.0 / 600 // Radians per unit/s of vertical velocity
)

// spriteNames lists every sprite the window can use for the given layers.
func spriteNames(layers []config.ParallaxLayer) []string {
	names := []string{assets.Background, assets.Bird, assets.BirdDeath, assets.Pipe}
	for _, l := range layers {
		names = append(names, assets.ParallaxName(l.Name))
	}
	return names
}

// sheetFrame returns the rectangle of frame index within a horizontal strip of
// frames equally wide sprites. Out-of-range indexes wrap.
func sheetFrame(bounds image.Rectangle, frames, index int) image.Rectangle {
	if frames <= 1 {
		return bounds
	}
	index %= frames
	if index < 0 {
		index += frames
	}
	w := bounds.Dx() / frames
	x := bounds.Min.X + index*w
	return image.Rect(x, bounds.Min.Y, x+w, bounds.Max.Y)
}

// tileOffset returns where the first copy of a horizontally repeating tile
// starts so the layer appears scrolled by scroll*speed. The result is in (-tile, 0].
func tileOffset(scroll, speed, tile float64) float64 {
	if tile <= 0 {
		return 0
	}
	off := math.Mod(scroll*speed, tile)
	if off < 0 {
		off += tile
	}
	if off == 0 {
		return 0
	}
	return -off
}

// tilt maps vertical velocity to a rotation: nose up while rising, down while falling.
func tilt(velocity float64) float64 {
	return math.Max(maxTiltUp, math.Min(maxTiltDown, velocity*tiltPerUnit))
}

// centeredX returns the x at which text of n debug glyphs is centred in width.
func centeredX(width float64, n int) int {
	return int((width - float64(n*glyphW)) / 2)
}

// logicalSize rounds the world up to whole pixels for Layout.
func logicalSize(world config.WorldConfig) (int, int) {
	return int(math.Ceil(world.Width)), int(math.Ceil(world.Height))
}
