package grid

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := New(4)
	if err != nil {
		t.Fatalf("New(4) failed: %v", err)
	}
	if g.Dimension() != 4 {
		t.Errorf("Dimension() = %d, want 4", g.Dimension())
	}
	if got := len(g.EmptyCells()); got != 16 {
		t.Errorf("len(EmptyCells()) = %d, want 16", got)
	}

	if _, err := New(0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("New(0) error = %v, want ErrInvalidDimension", err)
	}
}

func TestGetSetBounds(t *testing.T) {
	g, _ := New(3)

	tests := []struct {
		name string
		cell Cell
		ok   bool
	}{
		{"origin", Cell{0, 0}, true},
		{"far corner", Cell{2, 2}, true},
		{"negative row", Cell{-1, 0}, false},
		{"negative col", Cell{0, -1}, false},
		{"row too large", Cell{3, 0}, false},
		{"col too large", Cell{0, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setErr := g.Set(tt.cell, 2)
			_, getErr := g.Get(tt.cell)
			if tt.ok {
				if setErr != nil || getErr != nil {
					t.Errorf("Set/Get(%s) errors = %v, %v, want nil", tt.cell, setErr, getErr)
				}
				return
			}
			if !errors.Is(setErr, ErrOutOfBounds) {
				t.Errorf("Set(%s) error = %v, want ErrOutOfBounds", tt.cell, setErr)
			}
			if !errors.Is(getErr, ErrOutOfBounds) {
				t.Errorf("Get(%s) error = %v, want ErrOutOfBounds", tt.cell, getErr)
			}
		})
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	g, _ := New(2)
	for _, v := range []int{1, 3, 6, -2, 12} {
		if err := g.Set(Cell{0, 0}, v); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Set(value %d) error = %v, want ErrInvalidValue", v, err)
		}
	}
	if err := g.Set(Cell{0, 0}, 2048); err != nil {
		t.Errorf("Set(2048) failed: %v", err)
	}
	if err := g.Clear(Cell{0, 0}); err != nil {
		t.Errorf("Clear() failed: %v", err)
	}
	if v, _ := g.Get(Cell{0, 0}); v != 0 {
		t.Errorf("Get() after Clear = %d, want 0", v)
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	g, err := FromValues([][]int{
		{2, 0},
		{0, 4},
	})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	empty := g.EmptyCells()
	want := []Cell{{0, 1}, {1, 0}}
	if len(empty) != len(want) {
		t.Fatalf("EmptyCells() = %v, want %v", empty, want)
	}
	for i := range want {
		if empty[i] != want[i] {
			t.Errorf("EmptyCells()[%d] = %s, want %s", i, empty[i], want[i])
		}
	}
}

func TestCellsInLine(t *testing.T) {
	g, _ := New(3)

	tests := []struct {
		dir   Direction
		line  int
		cells []Cell
	}{
		{Left, 1, []Cell{{1, 0}, {1, 1}, {1, 2}}},
		{Right, 1, []Cell{{1, 2}, {1, 1}, {1, 0}}},
		{Up, 2, []Cell{{0, 2}, {1, 2}, {2, 2}}},
		{Down, 0, []Cell{{2, 0}, {1, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			lines, err := g.CellsInLine(tt.dir)
			if err != nil {
				t.Fatalf("CellsInLine(%s) failed: %v", tt.dir, err)
			}
			if len(lines) != 3 {
				t.Fatalf("len(lines) = %d, want 3", len(lines))
			}
			got := lines[tt.line]
			for i := range tt.cells {
				if got[i] != tt.cells[i] {
					t.Errorf("line %d = %v, want %v", tt.line, got, tt.cells)
					break
				}
			}
		})
	}

	if _, err := g.CellsInLine(Direction(9)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("CellsInLine(9) error = %v, want ErrInvalidDirection", err)
	}
}

func TestCellsInLineCoversGrid(t *testing.T) {
	g, _ := New(4)
	for _, d := range Directions {
		lines, _ := g.CellsInLine(d)
		seen := make(map[Cell]bool)
		for _, line := range lines {
			for _, c := range line {
				if seen[c] {
					t.Errorf("%s: cell %s visited twice", d, c)
				}
				seen[c] = true
			}
		}
		if len(seen) != 16 {
			t.Errorf("%s: visited %d cells, want 16", d, len(seen))
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v, want %v", d.String(), got, err, d)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(sideways) error = %v, want ErrInvalidDirection", err)
	}
}

func TestIsTileValue(t *testing.T) {
	tests := []struct {
		v    int
		want bool
	}{
		{0, false}, {1, false}, {2, true}, {3, false}, {4, true}, {1024, true}, {1536, false},
	}
	for _, tt := range tests {
		if got := IsTileValue(tt.v); got != tt.want {
			t.Errorf("IsTileValue(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
