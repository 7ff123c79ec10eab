package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every board variant with its size and best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	a, err := newApp(appOptions{RequireStorage: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-12s  %-4s  %s\n", maxIDLen, "ID", "Title", "Size", "Best")
	fmt.Printf("  %-*s  %-12s  %-4s  %s\n", maxIDLen, "--", "-----", "----", "----")

	for _, g := range games {
		size := "?"
		if v, err := t2048.VariantByID(g.ID); err == nil {
			size = fmt.Sprintf("%dx%d", v.Size, v.Size)
		}
		best, err := t2048.ReadBestScore(a.backend, g.ID)
		if err != nil {
			a.logger.Warn("cannot read best score", "variant", g.ID, "err", err)
		}
		fmt.Printf("  %-*s  %-12s  %-4s  %d\n", maxIDLen, g.ID, g.Title, size, best)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a board.")
}
