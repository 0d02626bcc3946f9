package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score of every mode",
	Long: `Display the stored best score of every registered mode.

Examples:
  flappy scores
  flappy scores --db ./flappy.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening high score database: %w", err)
	}
	defer store.Close()

	entries, err := store.HighScores()
	if err != nil {
		return fmt.Errorf("retrieving high scores: %w", err)
	}

	printScores(cmd.OutOrStdout(), registry.List(), entries)
	return nil
}

func printScores(out io.Writer, modes []registry.GameInfo, entries []storage.HighScoreEntry) {
	byMode := make(map[string]storage.HighScoreEntry, len(entries))
	for _, e := range entries {
		byMode[e.Mode] = e
	}

	fmt.Fprintln(out, "Best Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-14s  %-6s  %s\n", "Mode", "Best", "Set")
	fmt.Fprintf(out, "  %-14s  %-6s  %s\n", "----", "----", "---")

	for _, m := range modes {
		e, ok := byMode[m.ID]
		if !ok {
			fmt.Fprintf(out, "  %-14s  %-6s  %s\n", m.Title, "-", "-")
			continue
		}
		fmt.Fprintf(out, "  %-14s  %-6d  %s\n", m.Title, e.Score, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
