package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned for values outside Up..Right.
var ErrInvalidDirection = errors.New("grid: invalid direction")

// Direction is the direction tiles travel during a move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four move directions.
var Directions = []Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection converts a name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// cellAt maps a (line, index) pair to a physical cell so that index 0 is
// always the cell tiles travel toward. Rows serve left/right moves and
// columns serve up/down moves.
func (d Direction) cellAt(line, index, n int) Cell {
	switch d {
	case Left:
		return Cell{Row: line, Col: index}
	case Right:
		return Cell{Row: line, Col: n - 1 - index}
	case Up:
		return Cell{Row: index, Col: line}
	default: // Down
		return Cell{Row: n - 1 - index, Col: line}
	}
}

// CellsInLine returns, for each of the N lines perpendicular to the move
// axis, its cells in traversal order with the destination end first.
func (g *Grid) CellsInLine(d Direction) ([][]Cell, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	n := g.dimension
	lines := make([][]Cell, n)
	for line := range n {
		cells := make([]Cell, n)
		for index := range n {
			cells[index] = d.cellAt(line, index, n)
		}
		lines[line] = cells
	}
	return lines, nil
}
