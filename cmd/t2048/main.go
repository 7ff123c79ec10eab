// t2048 plays 2048 in the terminal.
//
// Usage:
//
//	t2048 play [variant]      - Play a board (default: 2048)
//	t2048 menu                - Pick a board interactively
//	t2048 list                - List board variants and best scores
//	t2048 scores [variant]    - Show finished-game scores
//	t2048 reset-best <variant> - Reset a best score
//	t2048 hint [variant]      - Analyze the saved board once
//	t2048 serve               - Start SSH server for remote play
//	t2048 hintd               - Serve board analysis over HTTP
//
// Global flags:
//
//	--fps <rate>          - Animation frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible spawns
//	--db <path>           - SQLite database path (overrides config)
//	--config <path>       - Config YAML layered over the defaults
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register board variants
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding tile puzzle for the terminal.

Slide the board with the arrow keys, WASD or a mouse drag. Equal tiles
merge and add their value to the score; a new tile appears after every
move. The game ends when the board is full and nothing can merge.

Boards and best scores are saved after every move, so a game picks up
where it left off.

Examples:
  t2048 play
  t2048 play 2048_5x5 --difficulty hard
  t2048 menu
  t2048 scores 2048
  t2048 serve --ssh :2222
  t2048 hintd --addr :8080`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Animation frame rate")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to SQLite database (overrides config)")
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetBestCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(hintdCmd)
}
