package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Snapshot is a read-only copy of everything a render surface draws.
type Snapshot struct {
	Phase       Phase
	Avatar      Avatar
	Obstacles   []Obstacle
	Score       int
	HighScore   int
	NewRecord   bool
	Frame       Frame
	Elapsed     float64
	Scroll      float64
	Speed       float64
	World       config.WorldConfig
	Parallax    []config.ParallaxLayer
	FlapFrames  int // Sprites in the flap sheet
	DeathFrames int // Sprites in the death sheet
}

// Snapshot copies the current session for rendering.
// The obstacle slice is a copy; mutating it does not affect the game.
func (g *Game) Snapshot() Snapshot {
	s := &g.session
	return Snapshot{
		Phase:       s.Phase,
		Avatar:      s.Avatar,
		Obstacles:   append([]Obstacle(nil), s.Obstacles...),
		Score:       s.Score,
		HighScore:   s.HighScore,
		NewRecord:   s.RecordBroken,
		Frame:       s.Anim.Frame(),
		Elapsed:     s.Elapsed,
		Scroll:      s.Scroll,
		Speed:       s.Speed,
		World:       g.cfg.World,
		Parallax:    g.cfg.Parallax,
		FlapFrames:  sheetSize(g.cfg.Animation.FlapOrder, g.cfg.Animation.IdleFrame),
		DeathFrames: g.cfg.Animation.DeathFrames,
	}
}

// NextObstacle returns the first obstacle the avatar has not yet cleared.
func (s Snapshot) NextObstacle() (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.Right() >= s.Avatar.X-s.Avatar.Radius {
			return o, true
		}
	}
	return Obstacle{}, false
}

// sheetSize is the number of sprites a sheet needs to cover every referenced index.
func sheetSize(order []int, idle int) int {
	m := idle
	for _, f := range order {
		if f > m {
			m = f
		}
	}
	return m + 1
}
