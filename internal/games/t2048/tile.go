// Package t2048 implements the 2048 sliding tile puzzle: an immutable tile
// model, the move engine, game-over detection and a persistent session with
// undo history.
package t2048

import "sort"

// Tile is a single numbered tile. Tiles are values: a move never edits a
// tile in place, it builds a new slice.
type Tile struct {
	ID    int `json:"id"`
	Value int `json:"value"`
	Row   int `json:"row"`
	Col   int `json:"col"`

	// Transient flags, true only in the move result that produced them.
	IsNew    bool `json:"isNew,omitempty"`
	IsMerged bool `json:"isMerged,omitempty"`
}

// Cell returns the tile position.
func (t Tile) Cell() Cell {
	return Cell{Row: t.Row, Col: t.Col}
}

// Settled returns the tile with its transient flags cleared.
func (t Tile) Settled() Tile {
	t.IsNew = false
	t.IsMerged = false
	return t
}

// SettleTiles returns a copy of tiles with all transient flags cleared.
func SettleTiles(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	for i, t := range tiles {
		out[i] = t.Settled()
	}
	return out
}

// CloneTiles returns an independent copy of tiles.
func CloneTiles(tiles []Tile) []Tile {
	if tiles == nil {
		return nil
	}
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}

// sortRowMajor orders tiles by row, then column.
func sortRowMajor(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Row != tiles[j].Row {
			return tiles[i].Row < tiles[j].Row
		}
		return tiles[i].Col < tiles[j].Col
	})
}

// isPowerOfTwo reports whether v is 2, 4, 8, ...
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
