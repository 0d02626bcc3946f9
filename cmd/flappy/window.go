package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
)

var (
	flagAssets string
	flagScale  float64
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a window and play the given mode (default: flappy).

Sprites are read from --assets as bird.png, bird_death.png, pipe.png,
background.png and parallax_<layer>.png. The bird sheets are horizontal
strips of equally wide frames. Missing files are drawn as shapes.

Controls:
  Space/Up/W/Enter - Flap (also starts and restarts)
  Left click/Tap   - Flap

Examples:
  flappy window
  flappy window flappy_rush --scale 1.5
  flappy window --assets ./sprites`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "~/.flappy/assets", "Directory holding sprite PNGs")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size as a multiple of the world size")
}

func runWindow(_ *cobra.Command, args []string) error {
	mode := flappy.ModeClassic
	if len(args) == 1 {
		mode = args[0]
	}
	if err := requireMode(mode); err != nil {
		return err
	}

	e, err := newEnv(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	game, rc, err := e.create(mode, e.cfg, 0, 0)
	if err != nil {
		return err
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	game.Reset(rc)

	session, ok := game.(gui.Session)
	if !ok {
		return fmt.Errorf("mode %q cannot be shown in a window", mode)
	}

	sm := e.sound()
	defer sm.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e.logger.Info("window session started", "mode", mode, "seed", rc.Seed)
	state, err := gui.Run(ctx, session, gui.Options{
		Sound:    sm,
		Logger:   e.logger,
		Assets:   assets.NewLoader(os.DirFS(expandHome(flagAssets)), e.logger),
		Scale:    flagScale,
		TPS:      flagFPS,
		MaxDelta: e.cfg.Physics.MaxDelta,
	})
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	e.logger.Info("window session ended", "mode", mode, "score", state.Score, "best", state.HighScore)
	return nil
}
