package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTable bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show scores of finished games",
	Long: `Display the top scores recorded when a board locked up.

Examples:
  t2048 scores
  t2048 scores 2048_5x5 --limit 20
  t2048 scores --table
  t2048 scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every board (SQLite only)")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := variantArg(args)

	a, err := newApp(appOptions{RequireStorage: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	if flagScoresAll {
		printAllStats(a.backend)
		return
	}

	if flagScoresTable {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(a.backend, gameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	game, err := registry.Create(gameID, registry.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	scores, err := a.backend.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No finished games yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := a.backend.HighScore(gameID); err == nil {
		fmt.Printf("Highest finished game: %d\n", high)
	}
	if best, err := t2048.ReadBestScore(a.backend, gameID); err == nil {
		fmt.Printf("Best score: %d\n", best)
	}

	// The SQLite store also keeps aggregates
	if st, ok := a.backend.(*storage.Store); ok {
		if stats, err := st.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
			fmt.Printf("Games: %d  Average: %.0f  Last played: %s\n",
				stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}

func printAllStats(backend storage.Backend) {
	st, ok := backend.(*storage.Store)
	if !ok {
		fmt.Fprintln(os.Stderr, "Summaries need the sqlite storage driver.")
		return
	}
	stats, err := st.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No finished games yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Board", "Games", "High", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "-----", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		gs := stats[id]
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.0f  %s\n",
			id, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
