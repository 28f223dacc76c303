package game

import "github.com/vovakirdan/tui-2048/internal/grid"

// UserHasWon scans the board in row-major order and returns the first cell
// holding a value >= threshold. It is not a pure query: on success it sets
// the won flag, so Won stays true afterwards, and logs the first win at Info.
func (m *Model) UserHasWon() (grid.Cell, bool) {
	n := m.grid.Dimension()
	for row := range n {
		for col := range n {
			c := grid.Cell{Row: row, Col: col}
			if m.mustGet(c) >= m.threshold {
				if !m.won {
					m.logger.Info("threshold reached", "cell", c, "threshold", m.threshold, "score", m.score)
				}
				m.won = true
				return c, true
			}
		}
	}
	return grid.Cell{}, false
}

// UserHasLost reports whether the board is full and no two orthogonally
// adjacent cells hold equal values, so no direction can change the board.
// It inspects adjacency directly and never runs a trial move. A loss sets
// the lost flag and is logged at Info.
func (m *Model) UserHasLost() bool {
	if m.lost {
		return true
	}
	if len(m.grid.EmptyCells()) > 0 {
		return false
	}
	if hasPossibleMerge(m.grid.Values()) {
		return false
	}

	m.lost = true
	m.logger.Info("no moves left", "score", m.score, "max_tile", m.MaxTile())
	return true
}

// hasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles are equal.
func hasPossibleMerge(board [][]int) bool {
	n := len(board)
	for y := range n {
		for x := range n {
			val := board[y][x]
			if val == 0 {
				continue
			}
			if x < n-1 && board[y][x+1] == val {
				return true
			}
			if y < n-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// Won reports whether UserHasWon has ever returned true.
func (m *Model) Won() bool {
	return m.won
}

// Lost reports whether UserHasLost has ever returned true.
func (m *Model) Lost() bool {
	return m.lost
}
