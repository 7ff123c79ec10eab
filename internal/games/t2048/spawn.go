package t2048

// Rand is the randomness a session needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// DefaultFourProbability is the chance a spawned tile is a 4.
const DefaultFourProbability = 0.1

// SpawnTile places a 2 (or a 4 with probability fourProb) on a uniformly
// random empty cell. It returns the new tile list and false when the board
// is full.
func SpawnTile(tiles []Tile, size int, rng Rand, fourProb float64, ids *IDAllocator) ([]Tile, bool) {
	grid, err := TilesToGrid(tiles, size)
	if err != nil {
		return tiles, false
	}
	empty := EmptyCells(grid)
	if len(empty) == 0 {
		return tiles, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	out := make([]Tile, len(tiles), len(tiles)+1)
	copy(out, tiles)
	out = append(out, Tile{
		ID:    ids.Next(),
		Value: value,
		Row:   cell.Row,
		Col:   cell.Col,
		IsNew: true,
	})
	sortRowMajor(out)
	return out, true
}
