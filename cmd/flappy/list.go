package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play <id>' or 'flappy window <id>' to play a mode.")
}
