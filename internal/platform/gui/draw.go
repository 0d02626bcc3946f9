package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	skyColor     = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	pipeColor    = color.RGBA{0x5e, 0xa8, 0x2e, 0xff}
	pipeCapColor = color.RGBA{0x73, 0xbf, 0x2e, 0xff}
	birdColor    = color.RGBA{0xf8, 0xd8, 0x20, 0xff}
	wingColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	beakColor    = color.RGBA{0xf8, 0x70, 0x20, 0xff}
	deathColor   = color.RGBA{0xd8, 0x30, 0x30, 0xff}
	panelColor   = color.RGBA{0x10, 0x14, 0x20, 0xc8}
)

// Height of the placeholder pipe cap and how far it overhangs the pipe body.
const (
	capHeight   = 24
	capOverhang = 4
)

// spriteScale is the avatar sprite width relative to its collision diameter.
const spriteScale = 1.4

// placeholderLayer describes how a parallax layer is drawn without a sprite.
type placeholderLayer struct {
	anchor float64 // Bottom edge as a fraction of world height
	height float64 // Fraction of world height
	tile   float64 // Repeat distance in world units
	color  color.RGBA
}

var placeholderLayers = map[string]placeholderLayer{
	"clouds": {anchor: 0.25, height: 0.06, tile: 240, color: color.RGBA{0xf0, 0xf8, 0xff, 0xd0}},
	"hills":  {anchor: 0.95, height: 0.12, tile: 320, color: color.RGBA{0x6c, 0xc0, 0x60, 0xff}},
	"ground": {anchor: 1.0, height: 0.05, tile: 48, color: color.RGBA{0xde, 0xd8, 0x95, 0xff}},
}

// drawScene renders a snapshot at logical resolution.
func drawScene(dst *ebiten.Image, s flappy.Snapshot, sprites *spriteSet, title string) {
	drawBackground(dst, s, sprites)
	for _, layer := range s.Parallax {
		if layer.Name == "ground" {
			continue // Drawn over the obstacles
		}
		drawLayer(dst, s, sprites, layer.Name, layer.Speed)
	}
	for _, o := range s.Obstacles {
		drawObstacle(dst, s, o, sprites)
	}
	for _, layer := range s.Parallax {
		if layer.Name == "ground" {
			drawLayer(dst, s, sprites, layer.Name, layer.Speed)
		}
	}
	drawAvatar(dst, s, sprites)
	drawHUD(dst, s, title)
}

func drawBackground(dst *ebiten.Image, s flappy.Snapshot, sprites *spriteSet) {
	img, ok := sprites.get(assets.Background)
	if !ok {
		dst.Fill(skyColor)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.World.Width/float64(b.Dx()), s.World.Height/float64(b.Dy()))
	dst.DrawImage(img, op)
}

// drawLayer tiles one parallax layer across the world width.
func drawLayer(dst *ebiten.Image, s flappy.Snapshot, sprites *spriteSet, name string, speed float64) {
	p, known := placeholderLayers[name]
	if !known {
		p = placeholderLayer{anchor: 1, height: 0.1, tile: s.World.Width, color: pipeColor}
	}
	bottom := s.World.Height * p.anchor

	if img, ok := sprites.get(assets.ParallaxName(name)); ok {
		b := img.Bounds()
		tile := float64(b.Dx())
		for x := tileOffset(s.Scroll, speed, tile); x < s.World.Width; x += tile {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, bottom-float64(b.Dy()))
			dst.DrawImage(img, op)
		}
		return
	}

	h := s.World.Height * p.height
	for x := tileOffset(s.Scroll, speed, p.tile); x < s.World.Width; x += p.tile {
		switch name {
		case "ground":
			vector.DrawFilledRect(dst, float32(x), float32(bottom-h), float32(p.tile/2), float32(h), p.color, false)
			vector.DrawFilledRect(dst, float32(x+p.tile/2), float32(bottom-h), float32(p.tile/2), float32(h), beakColor, false)
		default:
			r := float32(h / 2)
			vector.DrawFilledCircle(dst, float32(x+p.tile/4), float32(bottom)-r, r, p.color, true)
			vector.DrawFilledCircle(dst, float32(x+p.tile/4)+r, float32(bottom)-r*0.7, r*0.7, p.color, true)
		}
	}
}

// drawObstacle draws the upper barrier mirrored so both caps face the gap.
func drawObstacle(dst *ebiten.Image, s flappy.Snapshot, o flappy.Obstacle, sprites *spriteSet) {
	if img, ok := sprites.get(assets.Pipe); ok {
		scale := o.Width / float64(img.Bounds().Dx())

		top := &ebiten.DrawImageOptions{}
		top.GeoM.Scale(scale, -scale)
		top.GeoM.Translate(o.X, o.Top)
		dst.DrawImage(img, top)

		bottom := &ebiten.DrawImageOptions{}
		bottom.GeoM.Scale(scale, scale)
		bottom.GeoM.Translate(o.X, o.Bottom)
		dst.DrawImage(img, bottom)
		return
	}

	capX, capW := float32(o.X)-capOverhang, float32(o.Width)+2*capOverhang
	for _, r := range []core.RectF{o.TopRect(), o.BottomRect(s.World.Height)} {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), pipeColor, false)
	}
	vector.DrawFilledRect(dst, capX, float32(o.Top)-capHeight, capW, capHeight, pipeCapColor, false)
	vector.DrawFilledRect(dst, capX, float32(o.Bottom), capW, capHeight, pipeCapColor, false)
}

// drawAvatar picks the sprite from the animation frame; nothing is drawn once hidden.
func drawAvatar(dst *ebiten.Image, s flappy.Snapshot, sprites *spriteSet) {
	if s.Frame.Hidden {
		return
	}
	a := s.Avatar

	name, frames := assets.Bird, s.FlapFrames
	if s.Frame.Mode == flappy.AnimDeath {
		name, frames = assets.BirdDeath, s.DeathFrames
	}

	if img, ok := sprites.frame(name, frames, s.Frame.Index); ok {
		b := img.Bounds()
		scale := 2 * a.Radius * spriteScale / float64(b.Dx())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(scale, scale)
		if s.Frame.Mode != flappy.AnimDeath {
			op.GeoM.Rotate(tilt(a.Velocity))
		}
		op.GeoM.Translate(a.X, a.Y)
		dst.DrawImage(img, op)
		return
	}

	x, y, r := float32(a.X), float32(a.Y), float32(a.Radius)
	if s.Frame.Mode == flappy.AnimDeath {
		shrink := 1 - float32(s.Frame.Index)/float32(max(frames, 1))
		vector.DrawFilledCircle(dst, x, y, r*shrink, deathColor, true)
		return
	}

	vector.DrawFilledCircle(dst, x, y, r, birdColor, true)
	wingY := y + float32(s.Frame.Index-1)*r/3
	vector.DrawFilledCircle(dst, x-r/2, wingY, r/2.5, wingColor, true)
	vector.DrawFilledRect(dst, x+r*0.6, y-r/5, r*0.7, r/2.5, beakColor, false)
}

// drawHUD prints the score line and the phase prompt with the debug font.
func drawHUD(dst *ebiten.Image, s flappy.Snapshot, title string) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d  Best: %d", s.Score, s.HighScore), 8, 8)

	switch s.Phase {
	case flappy.PhaseNotStarted:
		drawPanel(dst, s, title, "Press SPACE, click or tap to flap")
	case flappy.PhaseGameOver:
		heading := "GAME OVER"
		if s.NewRecord {
			heading = "NEW HIGH SCORE!"
		}
		drawPanel(dst, s, heading, fmt.Sprintf("Score: %d  |  Flap to restart", s.Score))
	}
}

func drawPanel(dst *ebiten.Image, s flappy.Snapshot, heading, sub string) {
	n := max(len(heading), len(sub))
	w := float32(n*glyphW + 4*glyphW)
	h := float32(4 * glyphH)
	x := (float32(s.World.Width) - w) / 2
	y := (float32(s.World.Height) - h) / 2
	vector.DrawFilledRect(dst, x, y, w, h, panelColor, false)

	ebitenutil.DebugPrintAt(dst, heading, centeredX(s.World.Width, len(heading)), int(y)+glyphH/2)
	ebitenutil.DebugPrintAt(dst, sub, centeredX(s.World.Width, len(sub)), int(y)+2*glyphH+glyphH/2)
}
