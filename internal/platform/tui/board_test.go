package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

func sampleBoard() [][]int {
	return [][]int{
		{2, 0, 0, 4},
		{0, 128, 0, 0},
		{0, 0, 16, 0},
		{1024, 0, 0, 2},
	}
}

func TestBoardViewRender(t *testing.T) {
	screen := core.NewScreen(80, 24)
	var v BoardView
	v.Render(screen, BoardState{
		Board:     sampleBoard(),
		Score:     12,
		Best:      40,
		Moves:     3,
		MaxTile:   1024,
		Threshold: 2048,
	})

	out := screen.String()
	for _, want := range []string{"2048", "Score: 12", "Best: 40", "Moves: 3", "Goal: 2048", "128", "1024", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GAME OVER") || strings.Contains(out, "YOU WIN!") {
		t.Error("render shows an overlay for a running game")
	}
}

func TestBoardViewTileColors(t *testing.T) {
	screen := core.NewScreen(80, 24)
	var v BoardView
	v.Render(screen, BoardState{Board: sampleBoard(), Threshold: 2048})

	r := v.tileRect(1, 1)
	if got := screen.GetCell(r.X, r.Y).Color; got != core.ColorTile128 {
		t.Errorf("tile (1,1) color = %v, want ColorTile128", got)
	}
	r = v.tileRect(0, 1)
	if got := screen.GetCell(r.X, r.Y).Color; got != core.ColorEmpty {
		t.Errorf("empty slot color = %v, want ColorEmpty", got)
	}
}

func TestBoardViewBestTracksScore(t *testing.T) {
	screen := core.NewScreen(80, 24)
	var v BoardView
	v.Render(screen, BoardState{Board: sampleBoard(), Score: 500, Best: 100, Threshold: 2048})

	if !strings.Contains(screen.String(), "Best: 500") {
		t.Error("Best should show the current score once it is higher")
	}
}

func TestBoardViewOverlays(t *testing.T) {
	tests := []struct {
		name  string
		state BoardState
		want  string
	}{
		{"paused", BoardState{Paused: true}, "PAUSED"},
		{"won", BoardState{Won: true, WinCell: grid.Cell{Row: 1, Col: 1}}, "YOU WIN!"},
		{"won cell", BoardState{Won: true, WinCell: grid.Cell{Row: 1, Col: 1}}, "(1,1)"},
		{"lost", BoardState{Lost: true}, "GAME OVER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			tc.state.Board = sampleBoard()
			tc.state.Threshold = 128
			var v BoardView
			v.Render(screen, tc.state)

			if !strings.Contains(screen.String(), tc.want) {
				t.Errorf("render missing %q:\n%s", tc.want, screen.String())
			}
		})
	}
}

func TestBoardViewCompactLayout(t *testing.T) {
	// Too short for three-line tiles, tall enough for one-line tiles.
	screen := core.NewScreen(60, 14)
	var v BoardView
	v.Render(screen, BoardState{Board: sampleBoard(), Threshold: 2048})

	if v.layout.tileH != 1 {
		t.Errorf("tile height = %d, want compact layout", v.layout.tileH)
	}
	if !strings.Contains(screen.String(), "1024") {
		t.Error("compact render missing tile values")
	}
}

func TestBoardViewTooSmall(t *testing.T) {
	screen := core.NewScreen(20, 5)
	var v BoardView
	v.Render(screen, BoardState{Board: sampleBoard(), Threshold: 2048})

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}
}

func TestBoardViewAnimation(t *testing.T) {
	board := [][]int{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	anim := NewAnimator(4, 4)
	anim.TilesMerged([2]grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 3}}, grid.Cell{Row: 0, Col: 0}, 4)
	anim.ScoreChanged(4)
	anim.Flush()

	screen := core.NewScreen(80, 24)
	var v BoardView
	v.Render(screen, BoardState{Board: board, Score: 4, Threshold: 2048, Animator: anim})

	if out := screen.String(); !strings.Contains(out, "+4") {
		t.Errorf("render missing score delta:\n%s", out)
	}
	// Both halves start at their source cells showing the pre-merge value.
	for _, col := range []float64{0, 3} {
		r := v.tileRect(0, col)
		if got := screen.GetCell(r.X, r.Y).Color; got != core.ColorTile2 {
			t.Errorf("tile (0,%v) color = %v, want ColorTile2", col, got)
		}
	}
}

func TestCompactValue(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{512, "512"},
		{2048, "2k"},
		{131072, "128k"},
	}

	for _, tc := range tests {
		if got := compactValue(tc.value); got != tc.want {
			t.Errorf("compactValue(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColor(0, 0, "hi", core.ColorTile2)
	screen.DrawText(0, 1, "there")

	out := RenderScreen(screen)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "there") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, want 1", got)
	}
}
