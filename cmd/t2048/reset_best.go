package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagResetAll    bool
	flagResetScores bool
)

var resetBestCmd = &cobra.Command{
	Use:   "reset-best [variant]",
	Short: "Reset a best score to 0",
	Long: `Set the best score of a board to 0. The game in progress is kept.

Examples:
  t2048 reset-best
  t2048 reset-best 2048_5x5 --scores
  t2048 reset-best --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResetBest,
}

func init() {
	resetBestCmd.Flags().BoolVar(&flagResetAll, "all", false, "Reset every board")
	resetBestCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also clear recorded scores")
}

func runResetBest(_ *cobra.Command, args []string) {
	var ids []string
	if flagResetAll {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	} else {
		ids = []string{variantArg(args)}
	}

	a, err := newApp(appOptions{RequireStorage: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	failed := false
	for _, id := range ids {
		if err := t2048.ClearBestScore(a.backend, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting %s: %v\n", id, err)
			failed = true
			continue
		}
		if flagResetScores {
			if err := a.backend.ClearScores(id); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing scores for %s: %v\n", id, err)
				failed = true
				continue
			}
		}
		fmt.Printf("Reset %s\n", id)
	}

	if failed {
		a.close()
		os.Exit(1)
	}
}
