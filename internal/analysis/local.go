package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Local narrates a board with a one-move lookahead. It needs no network.
type Local struct {
	// LowScore marks scores below which advice is always shown.
	LowScore int
}

// NewLocal returns a Local with default thresholds.
func NewLocal() *Local {
	return &Local{LowScore: 1000}
}

type candidate struct {
	dir     t2048.Direction
	delta   int
	merges  int
	empty   int
	largest int
	corner  bool
}

func (c candidate) rank() int {
	r := c.delta + c.empty*8 + c.merges*4
	if c.corner {
		r += 32
	}
	return r
}

// Analyze implements Analyzer.
func (l *Local) Analyze(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	grid := t2048.Grid(req.BoardState)
	size := grid.Size()
	tiles := t2048.TilesFromGrid(grid)

	var cands []candidate
	for _, dir := range t2048.Directions {
		res := t2048.ApplyMove(tiles, size, dir)
		if !res.Moved {
			continue
		}
		after, err := t2048.TilesToGrid(res.Tiles, size)
		if err != nil {
			return Response{}, err
		}
		largest := t2048.MaxTile(res.Tiles)
		merges := 0
		for _, t := range res.Tiles {
			if t.IsMerged {
				merges++
			}
		}
		cands = append(cands, candidate{
			dir:     dir,
			delta:   res.ScoreDelta,
			merges:  merges,
			empty:   len(t2048.EmptyCells(after)),
			largest: largest,
			corner:  inCorner(after, largest),
		})
	}

	if len(cands) == 0 {
		return Response{
			Analysis:           "No move changes this board. Undo a step if you can, or start a new game.",
			ShouldShowAnalysis: true,
		}, nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].rank() > cands[j].rank()
	})

	var sb strings.Builder
	if pairs := describePairs(grid); pairs != "" {
		fmt.Fprintf(&sb, "Merges available: %s. ", pairs)
	} else {
		sb.WriteString("No equal neighbours right now, so this turn is about positioning. ")
	}

	best := cands[0]
	fmt.Fprintf(&sb, "Try %s: %s", best.dir, describeCandidate(best))
	if best.corner {
		fmt.Fprintf(&sb, ", and your %d sits in a corner", best.largest)
	}
	sb.WriteString(".")

	if len(cands) > 1 {
		alt := cands[1]
		fmt.Fprintf(&sb, " %s also works: %s.", alt.dir, describeCandidate(alt))
	}

	empty := len(t2048.EmptyCells(grid))
	if empty <= 2 {
		sb.WriteString(" The board is crowded; favour moves that free cells over big merges.")
	}

	show := req.Score < l.LowScore || len(cands) <= 2 || empty <= 2
	return Response{Analysis: sb.String(), ShouldShowAnalysis: show}, nil
}

func describeCandidate(c candidate) string {
	switch c.merges {
	case 0:
		return fmt.Sprintf("no merge, %d empty cells after", c.empty)
	case 1:
		return fmt.Sprintf("1 merge for +%d, %d empty cells after", c.delta, c.empty)
	default:
		return fmt.Sprintf("%d merges for +%d, %d empty cells after", c.merges, c.delta, c.empty)
	}
}

// describePairs lists values that have an equal orthogonal neighbour,
// counting each adjacent pair once.
func describePairs(g t2048.Grid) string {
	counts := map[int]int{}
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if c+1 < size && g[r][c+1] == v {
				counts[v]++
			}
			if r+1 < size && g[r+1][c] == v {
				counts[v]++
			}
		}
	}
	if len(counts) == 0 {
		return ""
	}

	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	parts := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 1 {
			parts = append(parts, fmt.Sprintf("%d+%d", v, v))
		} else {
			parts = append(parts, fmt.Sprintf("%d+%d (x%d)", v, v, counts[v]))
		}
	}
	return strings.Join(parts, ", ")
}

// inCorner reports whether value sits in one of the four corners.
func inCorner(g t2048.Grid, value int) bool {
	size := g.Size()
	if size == 0 || value == 0 {
		return false
	}
	last := size - 1
	return g[0][0] == value || g[0][last] == value || g[last][0] == value || g[last][last] == value
}
