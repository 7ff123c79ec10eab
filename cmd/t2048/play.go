package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Play the given board variant, resuming the saved game if there is one.

Controls:
  Arrows/WASD/HJKL - Slide tiles (mouse drag works too)
  U                - Undo
  N                - New game
  X                - Reset best score (asks first)
  ?                - Board analysis
  P                - Pause
  Esc              - Back to the menu
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play 2048_3x3
  t2048 play 2048_6x6 --difficulty easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := variantArg(args)

	a, err := newApp(appOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	game, err := registry.Create(gameID, a.gameOptions(a.backend))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	deps := tui.Deps{
		Scores:   a.backend,
		Analyzer: a.analyzer(),
		Config:   a.cfg,
		Logger:   a.logger,
	}
	cfg := runtimeConfig()

	back, err := tui.Run(game, deps, cfg)
	if err == nil && back {
		err = tui.RunSession(a.backend, deps, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		a.close()
		os.Exit(1)
	}
}
