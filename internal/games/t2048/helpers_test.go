package t2048

import "sort"

// sameTiles reports whether a and b hold the same tiles, ignoring order and
// transient flags.
func sameTiles(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := sortedByID(SettleTiles(a)), sortedByID(SettleTiles(b))
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func sortedByID(tiles []Tile) []Tile {
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })
	return tiles
}

// sumValues returns the total of all tile values.
func sumValues(tiles []Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Value
	}
	return sum
}
