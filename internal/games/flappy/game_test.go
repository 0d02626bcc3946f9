package flappy

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestNewGameIsReady(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	s := g.Snapshot()

	if s.Phase != PhaseNotStarted {
		t.Errorf("phase = %v, want ready", s.Phase)
	}
	if s.Avatar.Y != 320 || s.Avatar.Velocity != 0 || s.Avatar.X != 100 {
		t.Errorf("avatar = %+v", s.Avatar)
	}
	if len(s.Obstacles) == 0 || s.Obstacles[0].X != 400 {
		t.Errorf("obstacles = %+v", s.Obstacles)
	}
}

func TestReadyStateIsFrozen(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	before := g.Snapshot()

	events := run(g, 120, 1.0/60)

	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Error("ticking while ready should not change the session")
	}
	if len(events) != 0 {
		t.Errorf("unexpected events while ready: %v", events)
	}
}

func TestActivateStartsAndFlaps(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)

	g.Activate()

	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", g.Phase())
	}
	if v := g.Snapshot().Avatar.Velocity; v != -400 {
		t.Errorf("velocity = %f, want -400", v)
	}

	events := g.Tick(0).Events
	if !core.HasEvent(events, core.EventStart) || !core.HasEvent(events, core.EventFlap) {
		t.Errorf("events = %v, want start and flap", events)
	}

	// A second activation only flaps
	g.Activate()
	events = g.Tick(0).Events
	if core.HasEvent(events, core.EventStart) || !core.HasEvent(events, core.EventFlap) {
		t.Errorf("events = %v, want flap only", events)
	}
}

func TestTickOrderMovesAvatarAndObstacles(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	g.Activate()

	g.Tick(0.1)
	s := g.Snapshot()

	// v = -400 + 1500*0.1 = -250; y = 320 - 25
	if !approx(s.Avatar.Velocity, -250) || !approx(s.Avatar.Y, 295) {
		t.Errorf("avatar = %+v, want v=-250 y=295", s.Avatar)
	}
	if !approx(s.Obstacles[0].X, 385) {
		t.Errorf("first obstacle at %v, want 385", s.Obstacles[0].X)
	}
}

func TestTickClampsDelta(t *testing.T) {
	a := newTestGame(config.DefaultFlappyConfig(), 5)
	b := newTestGame(config.DefaultFlappyConfig(), 5)
	a.Activate()
	b.Activate()

	a.Tick(5)
	b.Tick(0.1)

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("a long frame should be clamped to the maximum step")
	}

	before := a.Snapshot()
	a.Tick(-1)
	if !reflect.DeepEqual(before, a.Snapshot()) {
		t.Error("a negative delta should not move the simulation")
	}
}

func TestTickZeroIsIdempotent(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 9)
	g.Activate()
	run(g, 30, 1.0/60)

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		if events := g.Tick(0).Events; len(events) != 0 {
			t.Fatalf("Tick(0) emitted %v", events)
		}
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Tick(0) should not change the session")
	}
}

func TestFallEndsInGroundCollision(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	g.Activate()

	var events []core.Event
	for i := 0; i < 600 && g.Phase() != PhaseGameOver; i++ {
		events = append(events, g.Tick(1.0/60).Events...)
	}

	if g.Phase() != PhaseGameOver {
		t.Fatal("falling avatar should end the session")
	}
	if !g.State().GameOver {
		t.Error("state should report game over")
	}

	var hit core.Event
	for _, e := range events {
		if e.Kind == core.EventCollision {
			hit = e
		}
	}
	if Collision(hit.Value) != CollisionGround {
		t.Errorf("collision = %v, want ground", Collision(hit.Value))
	}
	if f := g.Snapshot().Frame; f.Mode != AnimDeath {
		t.Errorf("frame = %+v, want death animation", f)
	}

	// Frozen apart from the animation
	frozen := g.Snapshot()
	run(g, 10, 1.0/60)
	after := g.Snapshot()
	if after.Avatar != frozen.Avatar || !reflect.DeepEqual(after.Obstacles, frozen.Obstacles) {
		t.Error("world should not move after game over")
	}

	// The death sequence completes and hides the avatar
	run(g, 60, 1.0/60)
	if !g.Snapshot().Frame.Hidden {
		t.Error("avatar should be hidden once the death sequence finishes")
	}
}

func TestActivateAfterGameOverResets(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	g.Activate()
	for i := 0; i < 600 && g.Phase() != PhaseGameOver; i++ {
		g.Tick(1.0 / 60)
	}

	g.Activate()

	s := g.Snapshot()
	if s.Phase != PhaseNotStarted {
		t.Fatalf("phase = %v, want ready", s.Phase)
	}
	if s.Score != 0 || s.Avatar.Velocity != 0 || s.Avatar.Y != 320 {
		t.Errorf("session not reset: %+v", s)
	}
	if s.Obstacles[0].X != 400 || s.Obstacles[0].Passed {
		t.Errorf("obstacles not respawned: %+v", s.Obstacles)
	}
	if s.Frame.Mode != AnimIdle || s.Frame.Hidden {
		t.Errorf("animation not cleared: %+v", s.Frame)
	}
	if events := g.Tick(0).Events; !core.HasEvent(events, core.EventReset) {
		t.Errorf("events = %v, want reset", events)
	}

	// The next activation starts a new run
	g.Activate()
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}
}

func TestScoreIndependentOfFrameRate(t *testing.T) {
	score := func(fps int) int {
		g := newTestGame(corridorConfig(), 1)
		g.Activate()
		run(g, 20*fps, 1.0/float64(fps))
		if g.Phase() != PhaseRunning {
			t.Fatalf("%d fps: session ended early", fps)
		}
		return g.State().Score
	}

	at60 := score(60)
	at120 := score(120)

	if at60 != 11 {
		t.Errorf("score at 60 fps = %d, want 11", at60)
	}
	if at60 != at120 {
		t.Errorf("scores differ: %d at 60 fps, %d at 120 fps", at60, at120)
	}
}

func TestScoreEvents(t *testing.T) {
	g := newTestGame(corridorConfig(), 1)
	g.Activate()

	events := run(g, 20*60, 1.0/60)

	if n := countEvents(events, core.EventScore); n != 11 {
		t.Errorf("score events = %d, want 11", n)
	}
	if n := countEvents(events, core.EventNewHighScore); n != 1 {
		t.Errorf("new high score events = %d, want 1", n)
	}
	if !g.Snapshot().NewRecord {
		t.Error("snapshot should flag the new record")
	}
}

func TestObstaclesStayOrderedAndBounded(t *testing.T) {
	g := newTestGame(corridorConfig(), 3)
	g.Activate()

	for i := 0; i < 60*60; i++ {
		g.Tick(1.0 / 60)
		obs := g.Snapshot().Obstacles
		if len(obs) > 8 {
			t.Fatalf("frame %d: %d obstacles buffered", i, len(obs))
		}
		for j := 1; j < len(obs); j++ {
			if obs[j].X <= obs[j-1].X {
				t.Fatalf("frame %d: obstacles out of order", i)
			}
		}
	}
}

func TestHighScoreStore(t *testing.T) {
	t.Run("loaded once and saved on every new maximum", func(t *testing.T) {
		store := &fakeScores{best: 3}
		g := NewClassic(corridorConfig())
		g.Reset(core.RuntimeConfig{Seed: 1, HighScores: store})

		if g.State().HighScore != 3 {
			t.Errorf("high score = %d, want 3", g.State().HighScore)
		}

		g.Activate()
		run(g, 20*60, 1.0/60)

		if store.loads != 1 {
			t.Errorf("loads = %d, want 1", store.loads)
		}
		want := []int{4, 5, 6, 7, 8, 9, 10, 11}
		if !reflect.DeepEqual(store.saves, want) {
			t.Errorf("saves = %v, want %v", store.saves, want)
		}
		if g.State().HighScore != 11 {
			t.Errorf("high score = %d, want 11", g.State().HighScore)
		}
	})

	t.Run("lower score is not saved", func(t *testing.T) {
		store := &fakeScores{best: 50}
		g := NewClassic(corridorConfig())
		g.Reset(core.RuntimeConfig{Seed: 1, HighScores: store})

		g.Activate()
		events := run(g, 20*60, 1.0/60)

		if len(store.saves) != 0 {
			t.Errorf("saves = %v, want none", store.saves)
		}
		if core.HasEvent(events, core.EventNewHighScore) {
			t.Error("no new high score expected")
		}
	})

	t.Run("nil store", func(t *testing.T) {
		g := NewClassic(corridorConfig())
		g.Reset(core.RuntimeConfig{Seed: 1})
		g.Activate()
		run(g, 5*60, 1.0/60)
		if g.State().HighScore != g.State().Score {
			t.Errorf("in-memory high score = %d, score = %d", g.State().HighScore, g.State().Score)
		}
	})
}

func TestHighScoreSurvivesRestart(t *testing.T) {
	g := newTestGame(corridorConfig(), 1)
	g.Activate()
	run(g, 5*60, 1.0/60)
	best := g.State().Score
	if best == 0 {
		t.Fatal("expected some score after five seconds")
	}

	// Force a game over by moving the avatar out of the world
	g.session.Avatar.Y = -100
	g.Tick(1.0 / 60)
	g.Activate()

	if g.State().HighScore != best || g.State().Score != 0 {
		t.Errorf("state = %+v, want high score %d and score 0", g.State(), best)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig(), 1)
	s := g.Snapshot()
	s.Obstacles[0].X = -1000

	if g.Snapshot().Obstacles[0].X == -1000 {
		t.Error("mutating a snapshot should not affect the game")
	}
	if s.FlapFrames != 4 || s.DeathFrames != 4 {
		t.Errorf("sheet sizes = %d, %d; want 4, 4", s.FlapFrames, s.DeathFrames)
	}
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		g := newTestGame(config.DefaultFlappyConfig(), 12345)
		pilot := NewAutopilot()
		core.Step(30*60, 1.0/60, func(dt float64) {
			if pilot.ShouldActivate(g.Snapshot(), false) {
				g.Activate()
			}
			g.Tick(dt)
		})
		return g.Snapshot()
	}

	if a, b := play(), play(); !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs should produce identical sessions")
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}
