package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play the given mode in the terminal. Without a mode, a menu lets you
pick one and returns to it after every game.

Controls:
  Space/Up/W/Enter - Flap (also starts and restarts)
  Left click       - Flap
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Menu:
  Up/Down/j/k      - Navigate
  Enter/Space      - Select
  Tab              - Best scores

Examples:
  flappy play
  flappy play flappy
  flappy play flappy_rush --difficulty hard
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	e, err := newEnv(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	sm := e.sound()
	defer sm.Cleanup()

	if len(args) == 1 {
		if err := requireMode(args[0]); err != nil {
			return err
		}
		w, h := terminalSize()
		_, err := playMode(e, sm, args[0], core.RuntimeConfig{ScreenW: w, ScreenH: h})
		return err
	}
	return menuLoop(e, sm)
}

// menuLoop shows the mode picker until the user quits.
func menuLoop(e *env, sm *audio.SoundManager) error {
	w, h := terminalSize()
	cfg := core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: flagFPS}

	for {
		result, err := tui.RunMenu(e.store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(e.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		ok, err := playMode(e, sm, result.GameID, cfg)
		if err != nil {
			e.logger.Error("game ended with error", "mode", result.GameID, "error", err)
			return err
		}
		if !ok {
			continue // Backed out of the preset picker
		}
	}
}

// playMode runs one terminal session of mode. It reports false when the user
// backed out before the game started.
func playMode(e *env, sm *audio.SoundManager, mode string, screen core.RuntimeConfig) (bool, error) {
	cfg := e.cfg
	if mode == flappy.ModeRush && flagDifficulty == "" {
		preset, ok, err := tui.RunPresetSelector("Flappy Rush", screen)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		config.ApplyFlappyPreset(&cfg, preset)
	}

	game, rc, err := e.create(mode, cfg, screen.ScreenW, screen.ScreenH)
	if err != nil {
		return false, err
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	e.logger.Info("session started", "mode", mode, "seed", rc.Seed)
	state, err := tui.Run(game, rc, tui.Options{
		Sound:    sm,
		Logger:   e.logger,
		MaxDelta: cfg.Physics.MaxDelta,
	})
	if err != nil {
		return false, fmt.Errorf("running %s: %w", mode, err)
	}
	e.logger.Info("session ended", "mode", mode, "score", state.Score, "best", state.HighScore)
	return true, nil
}
