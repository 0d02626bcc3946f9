package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeScores records every call made by the game.
type fakeScores struct {
	best  int
	loads int
	saves []int
}

func (f *fakeScores) LoadHighScore() int {
	f.loads++
	return f.best
}

func (f *fakeScores) SaveHighScore(score int) {
	f.saves = append(f.saves, score)
	f.best = score
}

func newTestGame(cfg config.FlappyConfig, seed int64) *Game {
	g := NewClassic(cfg)
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

// corridorConfig produces a world where the avatar floats motionless in a gap
// that never moves vertically, so only obstacle motion decides the score.
func corridorConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Physics.FlapImpulse = 0
	cfg.Obstacles.GapHeight = 300
	cfg.Obstacles.Margin = 170
	return cfg
}

// run ticks g for the given number of frames and returns every event seen.
func run(g *Game, frames int, dt float64) []core.Event {
	var events []core.Event
	core.Step(frames, dt, func(dt float64) {
		events = append(events, g.Tick(dt).Events...)
	})
	return events
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
