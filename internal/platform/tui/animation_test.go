package tui

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

func TestAnimatorSlideThenPop(t *testing.T) {
	a := NewAnimator(2, 2)
	a.TileMoved(grid.Cell{Row: 0, Col: 3}, grid.Cell{Row: 0, Col: 0}, 2)
	a.TileInserted(grid.Cell{Row: 1, Col: 1}, 4)

	if a.Animating() {
		t.Fatal("Animating() = true before Flush")
	}

	a.Flush()
	if a.phase != PhaseSlide {
		t.Fatalf("phase = %v, want PhaseSlide", a.phase)
	}
	if got := len(a.Slides()); got != 1 {
		t.Fatalf("len(Slides()) = %d, want 1", got)
	}
	if a.Pops() != nil {
		t.Error("Pops() should be empty during the slide phase")
	}
	if !a.Hidden(grid.Cell{Row: 0, Col: 0}) {
		t.Error("slide destination should be hidden")
	}
	if !a.Hidden(grid.Cell{Row: 1, Col: 1}) {
		t.Error("inserted tile should be hidden until it pops")
	}
	if a.Hidden(grid.Cell{Row: 3, Col: 3}) {
		t.Error("untouched cell should not be hidden")
	}

	if !a.Tick() {
		t.Fatal("Tick() = false after first slide tick")
	}
	if p := a.Slides()[0].Progress; p != 0.5 {
		t.Errorf("Progress = %v, want 0.5", p)
	}
	if !a.Tick() {
		t.Fatal("Tick() = false, want pop phase to follow")
	}
	if a.phase != PhasePop {
		t.Fatalf("phase = %v, want PhasePop", a.phase)
	}
	if got := a.Pops(); len(got) != 1 || got[0].Value != 4 || !got[0].IsNew {
		t.Errorf("Pops() = %+v, want one new 4", got)
	}
	if a.Hidden(grid.Cell{Row: 0, Col: 0}) {
		t.Error("nothing should be hidden during the pop phase")
	}

	a.Tick()
	if a.Tick() {
		t.Error("Tick() = true after pop phase ended")
	}
	if a.phase != PhaseNone {
		t.Errorf("phase = %v, want PhaseNone", a.phase)
	}
}

func TestAnimatorMerge(t *testing.T) {
	a := NewAnimator(1, 1)
	to := grid.Cell{Row: 0, Col: 0}
	a.TilesMerged([2]grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, to, 4)
	a.ScoreChanged(4)
	a.TileInserted(grid.Cell{Row: 3, Col: 3}, 2)
	a.Flush()

	slides := a.Slides()
	if len(slides) != 2 {
		t.Fatalf("len(Slides()) = %d, want 2", len(slides))
	}
	for i, s := range slides {
		if s.Value != 2 || !s.Merged || s.To != to {
			t.Errorf("slide %d = %+v, want merged 2 -> %v", i, s, to)
		}
	}
	if a.ScoreDelta() != 4 {
		t.Errorf("ScoreDelta() = %d, want 4", a.ScoreDelta())
	}
	if a.MergedAt(to) {
		t.Error("MergedAt() should be false while sliding")
	}

	a.Tick()
	if !a.MergedAt(to) {
		t.Error("MergedAt() should be true while the new tile pops")
	}
	if a.MergedAt(grid.Cell{Row: 0, Col: 1}) {
		t.Error("MergedAt() should be false for the vacated cell")
	}
}

func TestAnimatorScoreDelta(t *testing.T) {
	a := NewAnimator(4, 4)
	a.ScoreChanged(8)
	a.Flush()
	if a.ScoreDelta() != 8 {
		t.Fatalf("ScoreDelta() = %d, want 8", a.ScoreDelta())
	}

	a.TileMoved(grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 0}, 2)
	a.Flush()
	if a.ScoreDelta() != 0 {
		t.Errorf("ScoreDelta() after a slide-only move = %d, want 0", a.ScoreDelta())
	}

	a.ScoreChanged(20)
	a.Flush()
	if a.ScoreDelta() != 12 {
		t.Errorf("ScoreDelta() = %d, want 12", a.ScoreDelta())
	}
}

func TestAnimatorZeroDurations(t *testing.T) {
	a := NewAnimator(0, 0)
	a.TileMoved(grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 0}, 2)
	a.TileInserted(grid.Cell{Row: 2, Col: 2}, 2)
	a.Flush()

	if a.Animating() {
		t.Error("Animating() = true with zero durations")
	}
	if a.Tick() {
		t.Error("Tick() = true with zero durations")
	}
}

func TestAnimatorFlushReplacesRunning(t *testing.T) {
	a := NewAnimator(10, 10)
	a.TileMoved(grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 0}, 2)
	a.Flush()
	a.Tick()

	a.Flush()
	if a.Animating() {
		t.Error("Flush() with nothing staged should stop the running animation")
	}

	a.Finish()
	if a.Slides() != nil || a.Pops() != nil {
		t.Error("Finish() should drop all animations")
	}
}

func TestTileAnimationPosition(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		wantCol  float64
	}{
		{"start", 0, 0},
		{"eased middle", 0.5, 1.5},
		{"end", 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := TileAnimation{
				From:     grid.Cell{Row: 1, Col: 0},
				To:       grid.Cell{Row: 1, Col: 2},
				Progress: tc.progress,
			}
			row, col := a.Position()
			if row != 1 || col != tc.wantCol {
				t.Errorf("Position() = (%v, %v), want (1, %v)", row, col, tc.wantCol)
			}
		})
	}
}
