package tui

import (
	"slices"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Value    int       // Tile value shown while animating
	From     grid.Cell // Start cell
	To       grid.Cell // End cell
	Progress float64   // 0.0 → 1.0
	Merged   bool      // Half of a merge (for visual effect)
	IsNew    bool      // New tile (for pop effect)
}

// Position returns the current (row, col) position, eased.
func (a TileAnimation) Position() (row, col float64) {
	t := easeOutQuad(a.Progress)
	row = core.Lerp(float64(a.From.Row), float64(a.To.Row), t)
	col = core.Lerp(float64(a.From.Col), float64(a.To.Col), t)
	return row, col
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// Animator turns model events into slide and pop animations.
// Events collected during a move are staged until Flush, which starts the
// slide phase; inserted tiles pop once the slide finishes.
type Animator struct {
	slideTicks int
	popTicks   int

	stagedSlides []TileAnimation
	stagedPops   []TileAnimation
	stagedScore  int

	phase      AnimationPhase
	ticks      int
	slides     []TileAnimation
	pops       []TileAnimation
	merged     []grid.Cell
	score      int
	scoreDelta int
}

// NewAnimator creates an animator with the given phase durations in ticks.
// A duration of zero or less skips that phase.
func NewAnimator(slideTicks, popTicks int) *Animator {
	return &Animator{
		slideTicks: slideTicks,
		popTicks:   popTicks,
	}
}

// ScoreChanged implements game.Observer.
func (a *Animator) ScoreChanged(score int) {
	a.stagedScore = score
}

// TileMoved implements game.Observer.
func (a *Animator) TileMoved(from, to grid.Cell, value int) {
	a.stagedSlides = append(a.stagedSlides, TileAnimation{Value: value, From: from, To: to})
}

// TilesMerged implements game.Observer. Both halves slide into the target
// showing the pre-merge value.
func (a *Animator) TilesMerged(from [2]grid.Cell, to grid.Cell, value int) {
	for _, src := range from {
		a.stagedSlides = append(a.stagedSlides, TileAnimation{
			Value:  value / 2,
			From:   src,
			To:     to,
			Merged: true,
		})
	}
}

// TileInserted implements game.Observer.
func (a *Animator) TileInserted(at grid.Cell, value int) {
	a.stagedPops = append(a.stagedPops, TileAnimation{Value: value, From: at, To: at, IsNew: true})
}

// Flush starts animating everything staged since the previous Flush.
// Any animation still running is finished first.
func (a *Animator) Flush() {
	a.Finish()

	a.slides, a.stagedSlides = a.stagedSlides, nil
	a.pops, a.stagedPops = a.stagedPops, nil
	for _, s := range a.slides {
		if s.Merged && !slices.Contains(a.merged, s.To) {
			a.merged = append(a.merged, s.To)
		}
	}
	if a.stagedScore > a.score {
		a.scoreDelta = a.stagedScore - a.score
		a.score = a.stagedScore
	} else {
		a.scoreDelta = 0
	}

	a.ticks = 0
	switch {
	case len(a.slides) > 0 && a.slideTicks > 0:
		a.phase = PhaseSlide
	case len(a.pops) > 0 && a.popTicks > 0:
		a.phase = PhasePop
	default:
		a.reset()
	}
}

// Tick advances the animation state.
// Returns true if animation is still in progress.
func (a *Animator) Tick() bool {
	if a.phase == PhaseNone {
		return false
	}

	a.ticks++

	duration := a.slideTicks
	current := a.slides
	if a.phase == PhasePop {
		duration = a.popTicks
		current = a.pops
	}

	progress := core.ClampF(float64(a.ticks)/float64(duration), 0, 1)
	for i := range current {
		current[i].Progress = progress
	}

	if a.ticks >= duration {
		a.finishPhase()
	}
	return a.phase != PhaseNone
}

// finishPhase completes the current animation phase.
func (a *Animator) finishPhase() {
	if a.phase == PhaseSlide && len(a.pops) > 0 && a.popTicks > 0 {
		a.phase = PhasePop
		a.ticks = 0
		a.slides = nil
		return
	}
	a.reset()
}

// Finish drops any running animation.
func (a *Animator) Finish() {
	a.reset()
}

func (a *Animator) reset() {
	a.phase = PhaseNone
	a.ticks = 0
	a.slides = nil
	a.pops = nil
	a.merged = nil
}

// Animating reports whether any animation is running.
func (a *Animator) Animating() bool {
	return a.phase != PhaseNone
}

// Slides returns the running slide animations.
func (a *Animator) Slides() []TileAnimation {
	if a.phase != PhaseSlide {
		return nil
	}
	return a.slides
}

// Pops returns the running pop animations.
func (a *Animator) Pops() []TileAnimation {
	if a.phase != PhasePop {
		return nil
	}
	return a.pops
}

// ScoreDelta returns the points gained by the last flushed move.
func (a *Animator) ScoreDelta() int {
	return a.scoreDelta
}

// Hidden reports whether the static tile at cell must not be drawn because
// an animation is drawing it instead.
func (a *Animator) Hidden(cell grid.Cell) bool {
	if a.phase != PhaseSlide {
		return false
	}
	for _, s := range a.slides {
		if s.To == cell {
			return true
		}
	}
	for _, p := range a.pops {
		if p.To == cell {
			return true
		}
	}
	return false
}

// MergedAt reports whether cell holds a freshly merged tile. Merges are
// highlighted while the new tile pops in.
func (a *Animator) MergedAt(cell grid.Cell) bool {
	return a.phase == PhasePop && slices.Contains(a.merged, cell)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
