package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/analysis"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagHintStdin bool
	flagHintJSON  bool
)

var hintCmd = &cobra.Command{
	Use:   "hint [variant]",
	Short: "Analyze a board once",
	Long: `Ask the configured hint provider about the saved board of a variant,
or about a board read from stdin as {"boardState": [[...]], "score": N}.

Examples:
  t2048 hint
  t2048 hint 2048_5x5 --json
  echo '{"boardState":[[2,2],[0,4]],"score":8}' | t2048 hint --stdin`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().BoolVar(&flagHintStdin, "stdin", false, "Read the board from stdin")
	hintCmd.Flags().BoolVar(&flagHintJSON, "json", false, "Print the raw response")
}

func runHint(_ *cobra.Command, args []string) {
	a, err := newApp(appOptions{LogToStderr: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	var req analysis.Request
	if flagHintStdin {
		req, err = readRequest(os.Stdin)
	} else {
		req, err = savedRequest(a.backend, variantArg(args))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.close()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Hint.Timeout)
	defer cancel()

	resp, err := analysis.Advise(ctx, a.analyzer(), req)
	if err != nil {
		a.logger.Warn("analysis failed", "err", err)
	}

	if flagHintJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(resp)
		return
	}
	fmt.Println(resp.Text())
}

func readRequest(r io.Reader) (analysis.Request, error) {
	var req analysis.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("cannot parse board: %w", err)
	}
	return req, req.Validate()
}

// savedRequest builds a request from the saved game of variant.
func savedRequest(store storage.StateStore, variant string) (analysis.Request, error) {
	v, err := t2048.VariantByID(variant)
	if err != nil {
		return analysis.Request{}, err
	}
	raw, err := store.Get(t2048.StateKey(variant))
	if errors.Is(err, storage.ErrNotFound) {
		return analysis.Request{}, fmt.Errorf("no saved game for %s; play one first", variant)
	}
	if err != nil {
		return analysis.Request{}, err
	}
	st, err := t2048.DecodeState(raw, v.Size)
	if err != nil {
		return analysis.Request{}, err
	}
	grid, err := t2048.TilesToGrid(st.Tiles, v.Size)
	if err != nil {
		return analysis.Request{}, err
	}
	return analysis.Request{BoardState: grid.Ints(), Score: st.Score}, nil
}
