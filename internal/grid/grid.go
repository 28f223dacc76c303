// Package grid implements the square tile storage used by the 2048 model.
// It holds values only: no scoring, no merging, no randomness.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a cell lies outside [0, dimension).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrInvalidValue is returned when a tile value is not a power of two >= 2.
	ErrInvalidValue = errors.New("grid: invalid tile value")

	// ErrInvalidDimension is returned by New for dimensions below 1.
	ErrInvalidDimension = errors.New("grid: invalid dimension")
)

// Cell is a (row, column) coordinate into the grid.
type Cell struct {
	Row int
	Col int
}

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an NxN array of tile values. Zero means empty.
type Grid struct {
	dimension int
	cells     [][]int
}

// New creates an empty grid of the given dimension.
func New(dimension int) (*Grid, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dimension)
	}

	g := &Grid{dimension: dimension}
	g.cells = make([][]int, dimension)
	for row := range g.cells {
		g.cells[row] = make([]int, dimension)
	}
	return g, nil
}

// FromValues builds a grid from a square matrix of values.
// Values must be 0 or tile values.
func FromValues(values [][]int) (*Grid, error) {
	g, err := New(len(values))
	if err != nil {
		return nil, err
	}
	for row, line := range values {
		if len(line) != g.dimension {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, row, len(line), g.dimension)
		}
		for col, v := range line {
			if err := g.Set(Cell{Row: row, Col: col}, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Dimension returns N.
func (g *Grid) Dimension() int {
	return g.dimension
}

// Contains reports whether the cell lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.dimension && c.Col >= 0 && c.Col < g.dimension
}

func (g *Grid) check(c Cell) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.dimension, g.dimension)
	}
	return nil
}

// Get returns the value at a cell, 0 if the cell is empty.
func (g *Grid) Get(c Cell) (int, error) {
	if err := g.check(c); err != nil {
		return 0, err
	}
	return g.cells[c.Row][c.Col], nil
}

// Set writes a value into a cell. A value of 0 clears the cell.
func (g *Grid) Set(c Cell, value int) error {
	if err := g.check(c); err != nil {
		return err
	}
	if value != 0 && !IsTileValue(value) {
		return fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	g.cells[c.Row][c.Col] = value
	return nil
}

// Clear empties a cell.
func (g *Grid) Clear(c Cell) error {
	return g.Set(c, 0)
}

// EmptyCells returns all empty cells in row-major order.
func (g *Grid) EmptyCells() []Cell {
	var empty []Cell
	for row := range g.dimension {
		for col := range g.dimension {
			if g.cells[row][col] == 0 {
				empty = append(empty, Cell{Row: row, Col: col})
			}
		}
	}
	return empty
}

// Values returns a copy of the cell matrix.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.dimension)
	for row := range g.cells {
		out[row] = append([]int(nil), g.cells[row]...)
	}
	return out
}

// IsTileValue reports whether v is a legal tile: a power of two >= 2.
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
