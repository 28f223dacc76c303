package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Observer receives the granular tile operations produced while the model
// resolves moves and inserts tiles. Calls are synchronous and happen in the
// order the operations were applied to the grid.
type Observer interface {
	// ScoreChanged is called after every merge with the new total score.
	ScoreChanged(score int)

	// TileMoved reports a single tile sliding without merging.
	TileMoved(from, to grid.Cell, value int)

	// TilesMerged reports two tiles combining at to. value is the doubled value.
	TilesMerged(from [2]grid.Cell, to grid.Cell, value int)

	// TileInserted reports a new tile appearing in an empty cell.
	TileInserted(at grid.Cell, value int)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) ScoreChanged(int)                         {}
func (NopObserver) TileMoved(grid.Cell, grid.Cell, int)      {}
func (NopObserver) TilesMerged([2]grid.Cell, grid.Cell, int) {}
func (NopObserver) TileInserted(grid.Cell, int)              {}

// EventKind identifies the type of a recorded Event.
type EventKind int

const (
	EventMove EventKind = iota
	EventMerge
	EventInsert
	EventScore
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventMerge:
		return "merge"
	case EventInsert:
		return "insert"
	case EventScore:
		return "score"
	default:
		return "unknown"
	}
}

// Event is a single observer notification captured by a Recorder.
// From holds the source cells: one for a move, two for a merge, none for
// inserts and score changes.
type Event struct {
	Kind  EventKind
	From  []grid.Cell
	To    grid.Cell
	Value int // tile value, or the new score for EventScore
}

// String formats the event for logs and test failures.
func (e Event) String() string {
	switch e.Kind {
	case EventMove:
		return fmt.Sprintf("move %s->%s (%d)", e.From[0], e.To, e.Value)
	case EventMerge:
		return fmt.Sprintf("merge %s+%s->%s (%d)", e.From[0], e.From[1], e.To, e.Value)
	case EventInsert:
		return fmt.Sprintf("insert %s (%d)", e.To, e.Value)
	case EventScore:
		return fmt.Sprintf("score %d", e.Value)
	default:
		return "unknown event"
	}
}

// Recorder is an Observer that stores every event it receives.
type Recorder struct {
	Events []Event
}

// ScoreChanged records a score event.
func (r *Recorder) ScoreChanged(score int) {
	r.Events = append(r.Events, Event{Kind: EventScore, Value: score})
}

// TileMoved records a move event.
func (r *Recorder) TileMoved(from, to grid.Cell, value int) {
	r.Events = append(r.Events, Event{Kind: EventMove, From: []grid.Cell{from}, To: to, Value: value})
}

// TilesMerged records a merge event.
func (r *Recorder) TilesMerged(from [2]grid.Cell, to grid.Cell, value int) {
	r.Events = append(r.Events, Event{Kind: EventMerge, From: []grid.Cell{from[0], from[1]}, To: to, Value: value})
}

// TileInserted records an insert event.
func (r *Recorder) TileInserted(at grid.Cell, value int) {
	r.Events = append(r.Events, Event{Kind: EventInsert, To: at, Value: value})
}

// Count returns the number of recorded events of the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Multi fans events out to several observers in order.
type Multi []Observer

func (m Multi) ScoreChanged(score int) {
	for _, o := range m {
		o.ScoreChanged(score)
	}
}

func (m Multi) TileMoved(from, to grid.Cell, value int) {
	for _, o := range m {
		o.TileMoved(from, to, value)
	}
}

func (m Multi) TilesMerged(from [2]grid.Cell, to grid.Cell, value int) {
	for _, o := range m {
		o.TilesMerged(from, to, value)
	}
}

func (m Multi) TileInserted(at grid.Cell, value int) {
	for _, o := range m {
		o.TileInserted(at, value)
	}
}

// LogObserver writes every event to a logger at Debug level.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) ScoreChanged(score int) {
	o.Logger.Debug("board event", "event", "score", "score", score)
}

func (o LogObserver) TileMoved(from, to grid.Cell, value int) {
	o.Logger.Debug("board event", "event", "move", "from", from, "to", to, "value", value)
}

func (o LogObserver) TilesMerged(from [2]grid.Cell, to grid.Cell, value int) {
	o.Logger.Debug("board event", "event", "merge", "from", from[0], "with", from[1], "to", to, "value", value)
}

func (o LogObserver) TileInserted(at grid.Cell, value int) {
	o.Logger.Debug("board event", "event", "insert", "cell", at, "value", value)
}
