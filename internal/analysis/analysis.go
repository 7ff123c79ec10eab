// Package analysis asks a hint provider for commentary on a board.
// Providers only narrate; they never choose or play a move.
package analysis

import (
	"context"
	"errors"
	"fmt"
)

const (
	// FallbackMessage is shown when the provider fails.
	FallbackMessage = "Sorry, I couldn't analyze the board right now. Please try again later."

	// EncouragementMessage is shown when the provider decides the analysis
	// is not worth showing.
	EncouragementMessage = "You're on the right track! Keep merging those tiles."
)

// MaxBoardSize bounds accepted boards.
const MaxBoardSize = 8

// ErrBadRequest is returned for a request that does not describe a board.
var ErrBadRequest = errors.New("analysis: bad request")

// Request is the board handed to a provider.
type Request struct {
	BoardState [][]int `json:"boardState"`
	Score      int     `json:"score"`
}

// Response is the provider's answer.
type Response struct {
	Analysis           string `json:"analysis"`
	ShouldShowAnalysis bool   `json:"shouldShowAnalysis"`
}

// Analyzer produces commentary for a board.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (Response, error)
}

// AnalyzerFunc adapts a function to Analyzer.
type AnalyzerFunc func(ctx context.Context, req Request) (Response, error)

func (f AnalyzerFunc) Analyze(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// Advise calls a and never fails: errors become the fallback message.
func Advise(ctx context.Context, a Analyzer, req Request) (Response, error) {
	if a == nil {
		return Fallback(), errors.New("analysis: no provider configured")
	}
	resp, err := a.Analyze(ctx, req)
	if err != nil {
		return Fallback(), err
	}
	return resp, nil
}

// Fallback returns the response shown when the provider fails.
func Fallback() Response {
	return Response{Analysis: FallbackMessage, ShouldShowAnalysis: true}
}

// Text returns what the UI displays for r.
func (r Response) Text() string {
	if !r.ShouldShowAnalysis {
		return EncouragementMessage
	}
	return r.Analysis
}

// Validate checks that the request holds a square board of tile values.
func (r Request) Validate() error {
	size := len(r.BoardState)
	if size < 2 || size > MaxBoardSize {
		return fmt.Errorf("%w: board size %d", ErrBadRequest, size)
	}
	for i, row := range r.BoardState {
		if len(row) != size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadRequest, i, len(row), size)
		}
		for j, v := range row {
			if v != 0 && (v < 2 || v&(v-1) != 0) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrBadRequest, i, j, v)
			}
		}
	}
	if r.Score < 0 {
		return fmt.Errorf("%w: negative score", ErrBadRequest)
	}
	return nil
}
