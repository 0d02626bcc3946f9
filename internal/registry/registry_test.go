package registry

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                   { return s.id }
func (s stubGame) Title() string                { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)     {}
func (s stubGame) Activate()                    {}
func (s stubGame) Tick(float64) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)          {}
func (s stubGame) State() core.GameState        { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub", func(config.FlappyConfig) Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}

	g, err := Create("zz_stub", config.DefaultFlappyConfig())
	if err != nil || g.ID() != "zz_stub" {
		t.Errorf("Create() = %v, %v", g, err)
	}

	if _, err := Create("missing", config.DefaultFlappyConfig()); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func(config.FlappyConfig) Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func(config.FlappyConfig) Game { return stubGame{id: "zz_dup"} })
}
