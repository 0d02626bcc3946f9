package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func newSimGame(seed int64) *flappy.Game {
	g := flappy.NewClassic(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	return g
}

func TestSimulateDeterministic(t *testing.T) {
	first, err := simulate(newSimGame(7), 60, 10)
	if err != nil {
		t.Fatal(err)
	}
	second, err := simulate(newSimGame(7), 60, 10)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("same seed gave %+v and %+v", first, second)
	}
	if first.Duration > 10+1e-6 {
		t.Errorf("duration = %v, want at most 10s", first.Duration)
	}
	if !first.Crashed && first.Duration < 10-1e-6 {
		t.Errorf("run stopped at %vs without crashing", first.Duration)
	}
}

func TestPrintScores(t *testing.T) {
	modes := []registry.GameInfo{
		{ID: flappy.ModeClassic, Title: "Flappy Bird"},
		{ID: flappy.ModeRush, Title: "Flappy Rush"},
	}
	entries := []storage.HighScoreEntry{
		{Mode: flappy.ModeClassic, Score: 42, UpdatedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	printScores(&buf, modes, entries)
	out := buf.String()

	for _, want := range []string{"Flappy Bird", "42", "2026-03-01 12:30", "Flappy Rush"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRequireMode(t *testing.T) {
	if err := requireMode(flappy.ModeClassic); err != nil {
		t.Errorf("requireMode(%q) = %v", flappy.ModeClassic, err)
	}
	if err := requireMode("dino"); err == nil {
		t.Error("requireMode(dino) should fail")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/tmp/flappy-home")
	if got := expandHome("~/.flappy/flappy.log"); got != "/tmp/flappy-home/.flappy/flappy.log" {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/var/log/flappy.log"); got != "/var/log/flappy.log" {
		t.Errorf("expandHome changed an absolute path: %q", got)
	}
}
