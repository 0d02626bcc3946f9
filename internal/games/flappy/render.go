package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Terminal glyphs.
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	BodyChar      = '●'
	BeakChar      = '>'
)

// Wing glyph per flap-sheet index: up, level, down, tucked.
var wingGlyphs = []rune{'╯', '─', '╮', '·'}

// Burst glyph per death-sheet index.
var deathGlyphs = []rune{'✸', '✶', '*', '·'}

var parallaxPatterns = map[string]struct {
	pattern string
	row     float64 // Fraction of world height
	color   core.Color
}{
	"clouds": {"   .-~~-.        ", 0.12, core.ColorWhite},
	"hills":  {"      /\\    __   /\\/\\   ", 0.93, core.ColorGray},
	"ground": {"▔▔▔▔╱▔▔▔", 1.0, core.ColorOrange},
}

// viewport maps world units to terminal cells. Cells are about twice as tall
// as they are wide, so one row covers two columns' worth of world units.
type viewport struct {
	scale      float64 // Columns per world unit
	offX, offY float64
	cols, rows int
}

func newViewport(world config.WorldConfig, cols, rows int) viewport {
	v := viewport{cols: cols, rows: rows}
	if world.Width <= 0 || world.Height <= 0 {
		return v
	}
	v.scale = math.Min(float64(cols)/world.Width, 2*float64(rows)/world.Height)
	v.offX = (float64(cols) - world.Width*v.scale) / 2
	v.offY = (float64(rows) - world.Height*v.scale/2) / 2
	return v
}

// cellEpsilon absorbs rounding so exact cell boundaries land on the right cell.
const cellEpsilon = 1e-9

func (v viewport) col(x float64) int {
	return int(math.Floor(v.offX + x*v.scale + cellEpsilon))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(v.offY + y*v.scale/2 + cellEpsilon))
}

// area returns the cell rectangle covered by the world.
func (v viewport) area(world config.WorldConfig) core.Rect {
	x0, y0 := v.col(0), v.row(0)
	x1, y1 := v.col(world.Width), v.row(world.Height)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current session into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot(), g.title)
}

// Draw renders a snapshot letterboxed into dst.
func Draw(dst *core.Screen, s Snapshot, title string) {
	dst.Clear()

	v := newViewport(s.World, dst.Width(), dst.Height())
	area := v.area(s.World)
	if area.W <= 0 || area.H <= 0 {
		dst.DrawTextCentered(dst.Height()/2, "window too small", core.ColorRed)
		return
	}

	drawBackdrop(dst, s, v, area)

	for _, o := range s.Obstacles {
		drawObstacle(dst, o, v, area)
	}

	drawAvatar(dst, s, v, area)

	hud := fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.HighScore)
	dst.DrawTextColored(area.X+1, area.Y, hud, core.ColorBrightWhite)

	switch s.Phase {
	case PhaseNotStarted:
		drawCenteredMessage(dst, area, title, "Press SPACE or click to flap")
	case PhaseGameOver:
		heading := "GAME OVER"
		if s.NewRecord {
			heading = "NEW HIGH SCORE!"
		}
		drawCenteredMessage(dst, area, heading,
			fmt.Sprintf("Score: %d  |  Press SPACE to restart", s.Score))
	}
}

// drawBackdrop draws each parallax layer as a repeating pattern on its own row,
// offset by the distance scrolled times the layer speed.
func drawBackdrop(dst *core.Screen, s Snapshot, v viewport, area core.Rect) {
	for _, layer := range s.Parallax {
		p, ok := parallaxPatterns[layer.Name]
		if !ok {
			continue
		}
		pattern := []rune(p.pattern)
		y := v.row(s.World.Height * p.row)
		if y >= area.Bottom() {
			y = area.Bottom() - 1
		}

		shift := int(s.Scroll * layer.Speed * v.scale)
		for x := area.X; x < area.Right(); x++ {
			i := (x - area.X + shift) % len(pattern)
			if i < 0 {
				i += len(pattern)
			}
			if pattern[i] != ' ' {
				dst.SetColored(x, y, pattern[i], p.color)
			}
		}
	}
}

// drawObstacle renders a barrier pair clipped to the world area.
func drawObstacle(dst *core.Screen, o Obstacle, v viewport, area core.Rect) {
	x0 := core.Max(v.col(o.X), area.X)
	x1 := core.Min(v.col(o.Right()), area.Right())
	if x1 <= x0 {
		return
	}

	gapTop := v.row(o.Top)
	gapBottom := v.row(o.Bottom)

	// Upper barrier
	for y := area.Y; y < gapTop && y < area.Bottom(); y++ {
		ch, c := PipeChar, core.ColorGreen
		if y == gapTop-1 {
			ch, c = PipeCapBottom, core.ColorBrightGreen
		}
		dst.DrawHLine(x0, y, x1-x0, ch, c)
	}

	// Lower barrier
	for y := core.Max(gapBottom, area.Y); y < area.Bottom(); y++ {
		ch, c := PipeChar, core.ColorGreen
		if y == gapBottom {
			ch, c = PipeCapTop, core.ColorBrightGreen
		}
		dst.DrawHLine(x0, y, x1-x0, ch, c)
	}
}

// drawAvatar draws the body with a wing glyph picked by the animation frame.
func drawAvatar(dst *core.Screen, s Snapshot, v viewport, area core.Rect) {
	if s.Frame.Hidden {
		return
	}

	x := v.col(s.Avatar.X)
	y := core.Clamp(v.row(s.Avatar.Y), area.Y, area.Bottom()-1)

	if s.Frame.Mode == AnimDeath {
		dst.SetColored(x, y, deathGlyphs[s.Frame.Index%len(deathGlyphs)], core.ColorRed)
		return
	}

	dst.SetColored(x-1, y, wingGlyphs[s.Frame.Index%len(wingGlyphs)], core.ColorBrightWhite)
	dst.SetColored(x, y, BodyChar, core.ColorBrightYellow)
	dst.SetColored(x+1, y, BeakChar, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the world area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))

	// Calculate box dimensions
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := area.X + (area.W-boxW)/2
	boxY := area.Y + (area.H-boxH)/2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-sw)/2, boxY+3, subtitle, core.ColorWhite)
}
