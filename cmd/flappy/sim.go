package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagSeconds float64
	flagRuns    int
	flagSave    bool
	flagReal    bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run the autopilot without a display",
	Long: `Play the given mode (default: flappy) with the built-in autopilot on a
fixed-step virtual clock and print the score of every run. Runs are
deterministic for a given --seed and --fps.

Examples:
  flappy sim
  flappy sim flappy_rush --runs 5 --seconds 60
  flappy sim --seed 42 --fps 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 30, "Simulated seconds per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record new best scores in the database")
	simCmd.Flags().BoolVar(&flagReal, "realtime", false, "Pace runs on the wall clock instead of a virtual one")
}

// simResult is the outcome of one autopilot run.
type simResult struct {
	Score    int
	Crashed  bool
	Duration float64
}

func runSim(cmd *cobra.Command, args []string) error {
	mode := flappy.ModeClassic
	if len(args) == 1 {
		mode = args[0]
	}
	if err := requireMode(mode); err != nil {
		return err
	}

	e, err := newEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Autopilot - %s, seed %d, %d fps, %.0fs per run\n\n", mode, seed, fps, flagSeconds)
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %s\n", "Run", "Score", "Time", "Result")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %s\n", "---", "-----", "----", "------")

	best := 0
	for i := 0; i < flagRuns; i++ {
		game, rc, err := e.create(mode, e.cfg, 0, 0)
		if err != nil {
			return err
		}
		if !flagSave {
			rc.HighScores = nil
		}
		rc.Seed = seed + int64(i)
		game.Reset(rc)

		var res simResult
		if flagReal {
			res, err = simulateRealtime(cmd.Context(), game, fps, flagSeconds)
		} else {
			res, err = simulate(game, fps, flagSeconds)
		}
		if err != nil {
			return err
		}
		outcome := "survived"
		if res.Crashed {
			outcome = "crashed"
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-8s  %s\n", i+1, res.Score, fmt.Sprintf("%.1fs", res.Duration), outcome)
		best = max(best, res.Score)
	}

	fmt.Fprintf(out, "\nBest: %d\n", best)
	return nil
}

type snapshotter interface {
	Snapshot() flappy.Snapshot
}

// pilotStep returns the per-frame callback that lets the autopilot play game
// and records the outcome into res. It stops advancing after a crash.
func pilotStep(game registry.Game, res *simResult) (func(dt float64), error) {
	snap, ok := game.(snapshotter)
	if !ok {
		return nil, fmt.Errorf("mode %q cannot be simulated", game.ID())
	}

	pilot := flappy.NewAutopilot()
	return func(dt float64) {
		if res.Crashed {
			return
		}
		if pilot.ShouldActivate(snap.Snapshot(), false) {
			game.Activate()
		}
		result := game.Tick(dt)
		res.Score = result.State.Score
		res.Duration += dt
		res.Crashed = result.State.GameOver
	}, nil
}

// simulate drives game with the autopilot on a fixed-step clock until it
// crashes or seconds have elapsed.
func simulate(game registry.Game, fps int, seconds float64) (simResult, error) {
	var res simResult
	step, err := pilotStep(game, &res)
	if err != nil {
		return res, err
	}
	core.Step(int(seconds*float64(fps)), 1/float64(fps), step)
	return res, nil
}

// simulateRealtime is simulate on the wall clock with clamped frame deltas.
func simulateRealtime(ctx context.Context, game registry.Game, fps int, seconds float64) (simResult, error) {
	var res simResult
	step, err := pilotStep(game, &res)
	if err != nil {
		return res, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(seconds*float64(time.Second)))
	defer cancel()

	err = core.Drive(ctx, fps, core.NewFrameClock(core.DefaultMaxDelta), func(dt float64) {
		step(dt)
		if res.Crashed {
			cancel()
		}
	})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return res, err
	}
	return res, nil
}
