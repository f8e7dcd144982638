package life

// NextState applies Conway's transition table to one cell given the number of
// live cells in its Moore neighbourhood.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
