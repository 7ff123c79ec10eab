package t2048

import (
	"errors"
	"fmt"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 4

var (
	// ErrCellOccupied is returned when two tiles claim the same cell.
	ErrCellOccupied = errors.New("t2048: cell occupied by two tiles")
	// ErrOutOfBounds is returned for a tile outside the grid.
	ErrOutOfBounds = errors.New("t2048: tile out of bounds")
)

// Cell is a board coordinate.
type Cell struct {
	Row int
	Col int
}

// Grid is a dense size x size matrix of tile values, 0 for empty.
// It is always derived from a tile list and never stored as state.
type Grid [][]int

// NewGrid returns an empty grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// TilesToGrid projects tiles onto a dense grid.
func TilesToGrid(tiles []Tile, size int) (Grid, error) {
	g := NewGrid(size)
	for _, t := range tiles {
		if t.Row < 0 || t.Row >= size || t.Col < 0 || t.Col >= size {
			return nil, fmt.Errorf("%w: tile %d at (%d,%d)", ErrOutOfBounds, t.ID, t.Row, t.Col)
		}
		if g[t.Row][t.Col] != 0 {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, t.Row, t.Col)
		}
		g[t.Row][t.Col] = t.Value
	}
	return g, nil
}

// TilesFromGrid builds a tile list from a grid, numbering tiles 1, 2, ...
// in row-major order.
func TilesFromGrid(g Grid) []Tile {
	var tiles []Tile
	id := 1
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				continue
			}
			tiles = append(tiles, Tile{ID: id, Value: v, Row: r, Col: c})
			id++
		}
	}
	return tiles
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether two grids hold the same values.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Ints returns the grid as a plain matrix.
func (g Grid) Ints() [][]int {
	return [][]int(g.Clone())
}

// EmptyCells returns all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HighestID returns the largest tile id, or 0 for no tiles.
func HighestID(tiles []Tile) int {
	highest := 0
	for _, t := range tiles {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}

// MaxTile returns the largest tile value, or 0 for no tiles.
func MaxTile(tiles []Tile) int {
	maxVal := 0
	for _, t := range tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}
