// Package flappy implements the Flappy Bird engine: a gravity-bound avatar kept
// aloft by flaps, threading an endless stream of obstacle pairs.
//
// The engine never schedules itself. A driver calls Activate for every discrete
// input and Tick once per displayed frame; render surfaces read Snapshot.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the session state machine: NotStarted -> Running -> GameOver -> NotStarted.
type Game struct {
	id    string
	title string

	cfg        config.FlappyConfig
	runtime    core.RuntimeConfig
	gen        *Generator
	difficulty *config.DifficultyManager
	clock      *core.FrameClock
	scores     core.HighScoreStore

	session Session
	events  []core.Event
}

// New creates a game for the given mode, ready to play with a zero seed.
// Call Reset to apply a runtime configuration.
func New(id, title string, cfg config.FlappyConfig) *Game {
	g := &Game{
		id:         id,
		title:      title,
		cfg:        cfg,
		gen:        NewGenerator(0, cfg),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		clock:      core.NewFrameClock(cfg.Physics.MaxDelta),
	}
	g.session.Anim = NewAnimator(cfg.Animation)
	g.resetSession()
	return g
}

// ID returns the mode identifier, also used as the high-score key prefix.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Config returns the world configuration the game runs with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset applies a runtime configuration: reseeds obstacle placement, reads the
// high score once from the store and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.scores = rc.HighScores
	g.gen.Reseed(rc.Seed)

	g.session.HighScore = 0
	if g.scores != nil {
		if best := g.scores.LoadHighScore(); best > 0 {
			g.session.HighScore = best
		}
	}

	g.events = g.events[:0]
	g.resetSession()
}

// resetSession restores the avatar, score and obstacles for a new play-through.
// The high score and RNG sequence carry over.
func (g *Game) resetSession() {
	s := &g.session
	s.Phase = PhaseNotStarted
	s.Avatar = Avatar{
		X:      g.cfg.Player.X,
		Y:      g.cfg.StartY(),
		Radius: g.cfg.Player.Radius,
	}
	s.Obstacles = g.gen.SpawnInitial(s.Obstacles)
	s.Score = 0
	s.Elapsed = 0
	s.Scroll = 0
	s.Speed = g.cfg.Obstacles.Speed
	s.RecordBroken = false
	s.Anim.Reset()
}

// Activate is the single input entry point. It flaps while ready or running
// and starts a new session after a game over. It never fails.
func (g *Game) Activate() {
	s := &g.session
	switch s.Phase {
	case PhaseNotStarted:
		s.Phase = PhaseRunning
		g.emit(core.EventStart, 0)
		g.flap()
	case PhaseRunning:
		g.flap()
	case PhaseGameOver:
		g.resetSession()
		g.emit(core.EventReset, 0)
	}
}

func (g *Game) flap() {
	g.session.Avatar.Flap(g.cfg.Physics.FlapImpulse)
	g.session.Anim.StartFlap()
	g.emit(core.EventFlap, 0)
}

// Tick advances the simulation by one frame of dt seconds (clamped).
// Outside the running phase only the animation advances.
func (g *Game) Tick(dt float64) core.StepResult {
	dt = g.clock.Clamp(dt)
	s := &g.session

	if s.Phase == PhaseRunning {
		g.simulate(dt)
	}

	s.Anim.Update(dt)

	if s.Phase == PhaseRunning {
		g.updateScore()
	}

	result := core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
	g.events = g.events[:0]
	return result
}

// simulate runs physics, obstacle motion and the collision check for one frame.
func (g *Game) simulate(dt float64) {
	s := &g.session

	s.Avatar.Integrate(g.cfg.Physics.Gravity, dt)

	s.Speed = g.difficulty.Speed(g.cfg.Obstacles.Speed, s.Score, s.Elapsed)
	s.Obstacles, _ = g.gen.AdvanceAndRecycle(s.Obstacles, s.Speed, dt)
	s.Obstacles, _ = g.gen.BufferAhead(s.Obstacles)
	s.Elapsed += dt
	s.Scroll += s.Speed * dt

	if hit := Collide(s.Avatar, s.Obstacles, g.cfg.World.Height); hit != CollisionNone {
		s.Phase = PhaseGameOver
		s.Anim.StartDeath()
		g.emit(core.EventCollision, int(hit))
	}
}

// updateScore awards one point per obstacle newly behind the avatar and
// persists every new maximum.
func (g *Game) updateScore() {
	s := &g.session

	passed := ScorePassed(s.Obstacles, s.Avatar.X)
	for i := 0; i < passed; i++ {
		s.Score++
		g.emit(core.EventScore, s.Score)
	}

	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	if g.scores != nil {
		g.scores.SaveHighScore(s.HighScore)
	}
	if !s.RecordBroken {
		s.RecordBroken = true
		g.emit(core.EventNewHighScore, s.HighScore)
	}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// State returns the coarse status for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.session.Phase.String(),
		Score:     g.session.Score,
		HighScore: g.session.HighScore,
		GameOver:  g.session.Phase == PhaseGameOver,
	}
}

// Phase returns the current lifecycle state.
func (g *Game) Phase() Phase {
	return g.session.Phase
}
