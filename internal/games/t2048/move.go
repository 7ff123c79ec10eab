package t2048

import "strings"

// Direction represents a move direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four valid directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// ParseDirection converts "up", "Down", "LEFT", ... to a Direction.
func ParseDirection(s string) Direction {
	switch strings.ToLower(s) {
	case "up":
		return DirUp
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	default:
		return DirNone
	}
}

// Step records where one source tile went during a move.
type Step struct {
	ID   int  // Source tile id
	From Cell // Position before the move
	To   Cell // Position after the move
	Into int  // Id of the resulting tile (differs from ID for an absorbed tile)
}

// MoveResult is the outcome of ApplyMove.
type MoveResult struct {
	Tiles      []Tile
	ScoreDelta int
	Moved      bool
	Trail      []Step
}

// ApplyMove slides and merges tiles toward dir.
//
// Each row or column is handled on its own: tiles are taken in board order,
// reversed for Down and Right so the scan starts at the edge the tiles move
// toward, and equal neighbours merge pairwise in a single pass. The merged
// tile keeps the id of the first tile of the pair and is never compared
// again in the same move, so 2,2,2 becomes 4,2 rather than 8. Survivors are
// then packed against the edge.
//
// Transient flags from the previous move are cleared on every tile. An
// invalid direction returns the tiles unchanged with Moved false. Tiles
// outside the grid are dropped.
func ApplyMove(tiles []Tile, size int, dir Direction) MoveResult {
	if !dir.Valid() {
		return MoveResult{Tiles: CloneTiles(tiles)}
	}

	lines := make([][]Tile, size)
	for _, t := range SettleTiles(tiles) {
		idx, pos := lineIndex(t, dir)
		if idx < 0 || idx >= size || pos < 0 || pos >= size {
			continue
		}
		lines[idx] = append(lines[idx], t)
	}

	var res MoveResult
	res.Tiles = make([]Tile, 0, len(tiles))

	for idx, line := range lines {
		orderLine(line, dir)

		slot := 0
		for j := 0; j < len(line); j++ {
			cur := line[j]
			to := slotCell(idx, slot, size, dir)

			if j+1 < len(line) && line[j+1].Value == cur.Value {
				next := line[j+1]
				merged := cur
				merged.Value *= 2
				merged.IsMerged = true
				merged.Row, merged.Col = to.Row, to.Col

				res.Tiles = append(res.Tiles, merged)
				res.ScoreDelta += merged.Value
				res.Moved = true
				res.Trail = append(res.Trail,
					Step{ID: cur.ID, From: cur.Cell(), To: to, Into: cur.ID},
					Step{ID: next.ID, From: next.Cell(), To: to, Into: cur.ID},
				)
				j++
			} else {
				moved := cur
				moved.Row, moved.Col = to.Row, to.Col
				if moved.Cell() != cur.Cell() {
					res.Moved = true
				}
				res.Tiles = append(res.Tiles, moved)
				res.Trail = append(res.Trail, Step{ID: cur.ID, From: cur.Cell(), To: to, Into: cur.ID})
			}
			slot++
		}
	}

	sortRowMajor(res.Tiles)
	return res
}

// lineIndex returns which line a tile belongs to for dir and its position
// along that line.
func lineIndex(t Tile, dir Direction) (idx, pos int) {
	if dir == DirLeft || dir == DirRight {
		return t.Row, t.Col
	}
	return t.Col, t.Row
}

// orderLine sorts a line in board order, reversed for Down and Right.
func orderLine(line []Tile, dir Direction) {
	for i := 1; i < len(line); i++ {
		for j := i; j > 0 && linePos(line[j], dir) < linePos(line[j-1], dir); j-- {
			line[j], line[j-1] = line[j-1], line[j]
		}
	}
	if dir == DirDown || dir == DirRight {
		for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
			line[i], line[j] = line[j], line[i]
		}
	}
}

func linePos(t Tile, dir Direction) int {
	_, pos := lineIndex(t, dir)
	return pos
}

// slotCell returns the cell of the slot-th position from the edge dir
// points at.
func slotCell(idx, slot, size int, dir Direction) Cell {
	switch dir {
	case DirLeft:
		return Cell{Row: idx, Col: slot}
	case DirRight:
		return Cell{Row: idx, Col: size - 1 - slot}
	case DirUp:
		return Cell{Row: slot, Col: idx}
	default:
		return Cell{Row: size - 1 - slot, Col: idx}
	}
}
