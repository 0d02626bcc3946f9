package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestGapRange(t *testing.T) {
	g := NewGenerator(1, config.DefaultFlappyConfig())
	lo, hi := g.GapRange()
	if lo != 100 || hi != 360 {
		t.Errorf("GapRange() = [%v, %v], want [100, 360]", lo, hi)
	}
}

func TestGenerateKeepsGapInvariant(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for seed := int64(0); seed < 200; seed++ {
		g := NewGenerator(seed, cfg)
		for i := 0; i < 20; i++ {
			o := g.Generate(500)
			if o.Top < 100 || o.Top > 360 {
				t.Fatalf("seed %d: top %v outside [100, 360]", seed, o.Top)
			}
			if o.Top != math.Trunc(o.Top) {
				t.Fatalf("seed %d: top %v not quantized", seed, o.Top)
			}
			if o.GapHeight() != cfg.Obstacles.GapHeight {
				t.Fatalf("seed %d: gap %v, want %v", seed, o.GapHeight(), cfg.Obstacles.GapHeight)
			}
			if o.Passed || o.X != 500 || o.Width != cfg.Obstacles.Width {
				t.Fatalf("seed %d: unexpected obstacle %+v", seed, o)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a, b := NewGenerator(7, cfg), NewGenerator(7, cfg)
	for i := 0; i < 50; i++ {
		if a.Generate(0) != b.Generate(0) {
			t.Fatalf("generators with the same seed diverged at %d", i)
		}
	}
}

func TestSpawnInitial(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := NewGenerator(3, cfg)

	obs := g.SpawnInitial(nil)

	// First at 100+300, pitch 260, covering 480+260
	want := []float64{400, 660, 920}
	if len(obs) != len(want) {
		t.Fatalf("spawned %d obstacles, want %d", len(obs), len(want))
	}
	for i, x := range want {
		if obs[i].X != x {
			t.Errorf("obstacle %d at %v, want %v", i, obs[i].X, x)
		}
	}

	// Reusing the slice replaces the previous contents
	obs[0].Passed = true
	obs = g.SpawnInitial(obs)
	if len(obs) != 3 || obs[0].Passed {
		t.Errorf("SpawnInitial should start a fresh sequence, got %+v", obs)
	}
}

func TestBufferAhead(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := NewGenerator(3, cfg)

	t.Run("far enough", func(t *testing.T) {
		obs := []Obstacle{{X: 740}}
		got, added := g.BufferAhead(obs)
		if added || len(got) != 1 {
			t.Errorf("no obstacle should be added, got %d", len(got))
		}
	})

	t.Run("appends one pitch right", func(t *testing.T) {
		obs := []Obstacle{{X: 200}, {X: 739}}
		got, added := g.BufferAhead(obs)
		if !added || len(got) != 3 || got[2].X != 999 {
			t.Errorf("BufferAhead() = %+v, %v", got, added)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, added := g.BufferAhead(nil)
		if !added || len(got) != 1 || got[0].X != 740 {
			t.Errorf("BufferAhead(nil) = %+v, %v", got, added)
		}
	})
}

func TestAdvanceMovesBySpeed(t *testing.T) {
	g := NewGenerator(1, config.DefaultFlappyConfig())
	obs := []Obstacle{{X: 500, Width: 60}}

	for i := 0; i < 12; i++ {
		obs, _ = g.AdvanceAndRecycle(obs, 150, 1.0/60)
	}

	if math.Abs(obs[0].X-470) > 1e-9 {
		t.Errorf("x = %v, want 470", obs[0].X)
	}
}

func TestAdvanceEvictsOnlyPassed(t *testing.T) {
	g := NewGenerator(1, config.DefaultFlappyConfig())
	obs := []Obstacle{
		{X: -130, Width: 60, Passed: true},  // right edge -70 after zero motion: evicted
		{X: -130, Width: 60, Passed: false}, // never scored: kept
		{X: -100, Width: 60, Passed: true},  // right edge -40: kept
		{X: 300, Width: 60},
	}

	got, removed := g.AdvanceAndRecycle(obs, 150, 0)
	if removed != 1 || len(got) != 3 {
		t.Fatalf("removed %d, kept %d; want 1, 3", removed, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].X < got[i-1].X {
			t.Errorf("order not preserved: %+v", got)
		}
	}
}

func TestScorePassed(t *testing.T) {
	obs := []Obstacle{
		{X: 0, Width: 60, Passed: true},
		{X: 30, Width: 60},
		{X: 39, Width: 60},
		{X: 41, Width: 60},
	}

	if n := ScorePassed(obs, 100); n != 2 {
		t.Errorf("first pass scored %d, want 2", n)
	}
	if n := ScorePassed(obs, 100); n != 0 {
		t.Errorf("second pass scored %d, want 0", n)
	}
	if obs[3].Passed {
		t.Error("obstacle with right edge beyond the avatar should not be passed")
	}
}
