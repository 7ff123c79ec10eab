package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board interactively",
	Long: `Start with a board picker.

Use arrow keys or j/k to choose, Enter to play and Tab for the score
table. Esc in a game returns here; the board is saved.

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./t2048.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := newApp(appOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	deps := tui.Deps{
		Scores:   a.backend,
		Analyzer: a.analyzer(),
		Config:   a.cfg,
		Logger:   a.logger,
	}
	if err := tui.RunSession(a.backend, deps, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.close()
		os.Exit(1)
	}
}
