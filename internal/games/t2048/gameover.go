package t2048

// IsGameOver returns true if the grid is full and no two orthogonal
// neighbours share a value.
func IsGameOver(g Grid) bool {
	size := g.Size()
	for r := range size {
		for c := range size {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	for r := range size {
		for c := range size {
			val := g[r][c]
			// Check right neighbor
			if c < size-1 && g[r][c+1] == val {
				return false
			}
			// Check bottom neighbor
			if r < size-1 && g[r+1][c] == val {
				return false
			}
		}
	}
	return true
}

// CanMove returns true if any move is possible.
func CanMove(g Grid) bool {
	return !IsGameOver(g)
}
