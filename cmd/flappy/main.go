// flappy is a side-scrolling flap-through-the-gaps game for the terminal and the desktop.
//
// Usage:
//
//	flappy list              - List available modes
//	flappy play [mode]       - Play in the terminal (menu when no mode is given)
//	flappy window [mode]     - Play in a desktop window
//	flappy sim [mode]        - Run the autopilot headless and print the scores
//	flappy scores            - Show the best score of every mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/flappy.db)
//	--config <path>       - Load a custom flappy.yaml
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Log file (default: ~/.flappy/flappy.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - keep the bird aloft through an endless stream of pipes",
	Long: `Flappy is a side-scrolling game: flap to stay in the air and thread the
gaps between pipe pairs. One point per pipe passed.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run the autopilot without a display
  scores   - View best scores

Examples:
  flappy play
  flappy play flappy_rush --difficulty hard
  flappy window --seed 42
  flappy sim --runs 10
  flappy scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/flappy.db", "Path to high score database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flappy.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.flappy/flappy.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}
