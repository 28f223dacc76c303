package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []grid.Direction
		wantErr bool
	}{
		{"commas", "left,up,right", []grid.Direction{grid.Left, grid.Up, grid.Right}, false},
		{"mixed separators", "down, Left\tUP", []grid.Direction{grid.Down, grid.Left, grid.Up}, false},
		{"empty", "", []grid.Direction{}, false},
		{"unknown name", "left,sideways", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoves(tt.input)
			if tt.wantErr {
				if !errors.Is(err, grid.ErrInvalidDirection) {
					t.Errorf("ParseMoves(%q) error = %v, want ErrInvalidDirection", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoves(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMoves(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReplayIsRepeatable(t *testing.T) {
	moves, err := ParseMoves("left,up,right,down,left,left,up,down")
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}

	a, err := Replay(classicConfig(99), moves, nil)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	b, err := Replay(classicConfig(99), moves, nil)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Errorf("replays differ:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
	if got := a.Snapshot().Moves; got != len(moves) {
		t.Errorf("Snapshot().Moves = %d, want %d", got, len(moves))
	}
}

func TestReplayStopsWhenGameEnds(t *testing.T) {
	cfg := classicConfig(7)
	cfg.Dimension = 2
	cfg.Threshold = 4

	moves := make([]grid.Direction, 0, 200)
	for range 50 {
		moves = append(moves, grid.Left, grid.Up, grid.Right, grid.Down)
	}

	s, err := Replay(cfg, moves, nil)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !s.Over() {
		t.Fatalf("State() = %v, want the game to have ended", s.State())
	}
	if got := s.Snapshot().Moves; got >= len(moves) {
		t.Errorf("Snapshot().Moves = %d, want fewer than %d after the game ended", got, len(moves))
	}
}

func TestParseBoard(t *testing.T) {
	got, err := ParseBoard("2,2,0/0, 4,0/0,0,8")
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}
	want := [][]int{{2, 2, 0}, {0, 4, 0}, {0, 0, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBoard() = %v, want %v", got, want)
	}

	if _, err := ParseBoard("2,x/0,0"); err == nil {
		t.Error("ParseBoard() with a non-number should fail")
	}
}

func TestReplayFromBoard(t *testing.T) {
	cfg := classicConfig(3)
	board := [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}

	s, err := New(cfg, nil, WithBoard(board))
	if err != nil {
		t.Fatalf("New(WithBoard) failed: %v", err)
	}
	if !reflect.DeepEqual(s.Board(), board) {
		t.Errorf("Board() = %v, want the starting position without extra tiles", s.Board())
	}

	if err := s.Move(grid.Left); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if s.Score() != 4 {
		t.Errorf("Score() = %d, want 4", s.Score())
	}
	if got := countTiles(s.Board()); got != 3 {
		t.Errorf("tiles after merge and insert = %d, want 3", got)
	}

	cfg.Dimension = 3
	if _, err := New(cfg, nil, WithBoard(board)); err == nil {
		t.Error("New() with a board of the wrong size should fail")
	}
	cfg.Dimension = 4
	if _, err := New(cfg, nil, WithBoard([][]int{{3, 0}, {0, 0}})); err == nil {
		t.Error("New() with a non-tile value should fail")
	}
}
