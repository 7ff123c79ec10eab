package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// Snapshot is a read-only copy of the board for the hint collaborator.
type Snapshot struct {
	Board Grid
	Score int
}

// Snapshot returns a deep copy of the board and score. Later moves do not
// affect it.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Board: s.Grid(), Score: s.score}
}

// Snapshot returns the board in platform form.
func (g *Game) Snapshot() core.BoardSnapshot {
	if g.session == nil {
		return core.BoardSnapshot{}
	}
	snap := g.session.Snapshot()
	return core.BoardSnapshot{Board: snap.Board.Ints(), Score: snap.Score}
}
