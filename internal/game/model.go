// Package game implements the 2048 game model: move resolution over a Grid,
// a serialized move queue, score tracking, tile insertion, and win/loss
// detection. Every grid mutation is reported to an Observer.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// DefaultQueueCapacity bounds the number of pending moves.
const DefaultQueueCapacity = 64

var (
	// ErrQueueFull is returned by QueueMove when the pending queue is at capacity.
	ErrQueueFull = errors.New("game: move queue full")

	// ErrBoardFull is returned when inserting into a grid with no empty cells.
	// Callers treat it as a no-op.
	ErrBoardFull = errors.New("game: no empty cell for insertion")

	// ErrInvalidThreshold is returned by New for thresholds below 1.
	ErrInvalidThreshold = errors.New("game: invalid threshold")
)

// moveRequest is a queued move and its completion callback.
type moveRequest struct {
	dir        grid.Direction
	onComplete func(changed bool)
}

// Model owns a Grid, the running score and the win/loss flags.
//
// Moves go through QueueMove. The queue and the processing flag guarantee
// that at most one move is being resolved at any time: a call made while a
// move is in flight (including from inside an observer or completion
// callback) only appends, and the active drain loop picks it up once the
// current move has fully committed.
type Model struct {
	grid      *grid.Grid
	score     int
	threshold int
	observer  Observer
	rng       *rand.Rand
	logger    *log.Logger

	mu         sync.Mutex
	queue      []moveRequest
	capacity   int
	processing bool

	won   bool
	lost  bool
	moves int
}

// Option configures a Model.
type Option func(*Model)

// WithRand sets the random source used for tile placement.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) {
		m.rng = rng
	}
}

// WithQueueCapacity sets the maximum number of pending moves.
func WithQueueCapacity(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.capacity = n
		}
	}
}

// WithLogger sets the logger for move and insertion tracing.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithGrid starts the model from an existing grid instead of an empty one.
// The grid's dimension overrides the dimension passed to New.
func WithGrid(g *grid.Grid) Option {
	return func(m *Model) {
		if g != nil {
			m.grid = g
		}
	}
}

// New creates a model for an empty dimension x dimension grid. Any
// positive threshold is accepted; a board is won once a tile reaches it.
func New(dimension, threshold int, observer Observer, opts ...Option) (*Model, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}
	if observer == nil {
		observer = NopObserver{}
	}

	m := &Model{
		threshold: threshold,
		observer:  observer,
		capacity:  DefaultQueueCapacity,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.grid == nil {
		g, err := grid.New(dimension)
		if err != nil {
			return nil, err
		}
		m.grid = g
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return m, nil
}

// QueueMove appends a move request. If no move is in flight it is resolved
// immediately on the calling goroutine, followed by any requests queued in
// the meantime. onComplete may be nil.
func (m *Model) QueueMove(dir grid.Direction, onComplete func(changed bool)) error {
	if !dir.Valid() {
		return fmt.Errorf("game: queue move: %w: %d", grid.ErrInvalidDirection, int(dir))
	}

	m.mu.Lock()
	if len(m.queue) >= m.capacity {
		m.mu.Unlock()
		return ErrQueueFull
	}
	m.queue = append(m.queue, moveRequest{dir: dir, onComplete: onComplete})
	if m.processing {
		m.mu.Unlock()
		return nil
	}
	m.processing = true
	m.mu.Unlock()

	m.drain()
	return nil
}

// drain resolves queued moves one at a time until the queue is empty.
// If a move or its callback panics, the processing flag is released so the
// next QueueMove resumes with whatever is still queued.
func (m *Model) drain() {
	done := false
	defer func() {
		if !done {
			m.mu.Lock()
			m.processing = false
			m.mu.Unlock()
		}
	}()

	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			m.processing = false
			done = true
			m.mu.Unlock()
			return
		}
		req := m.queue[0]
		m.queue[0] = moveRequest{}
		m.queue = m.queue[1:]
		m.mu.Unlock()

		changed := m.performMove(req.dir)
		if req.onComplete != nil {
			req.onComplete(changed)
		}
	}
}

// Pending returns the number of queued moves not yet resolved.
func (m *Model) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// performMove resolves every line for dir, committing each to the grid and
// emitting its events before moving on to the next line.
func (m *Model) performMove(dir grid.Direction) bool {
	lines, err := m.grid.CellsInLine(dir)
	if err != nil {
		// QueueMove validated dir already.
		panic(err)
	}

	changed := false
	gained := 0
	for _, cells := range lines {
		values := make([]int, len(cells))
		for i, c := range cells {
			values[i] = m.mustGet(c)
		}

		res := mergeLine(cells, values)
		m.commit(res)
		gained += res.gained
		if res.changed {
			changed = true
		}
	}

	m.moves++
	m.logger.Debug("move resolved", "dir", dir, "changed", changed, "gained", gained, "score", m.score, "pending", m.Pending())
	return changed
}

// commit writes a resolved line back to the grid and notifies the observer.
func (m *Model) commit(res lineResult) {
	for i, c := range res.cells {
		v := 0
		if i < len(res.slots) {
			v = res.slots[i].value
		}
		m.mustSet(c, v)
	}

	for i, s := range res.slots {
		to := res.cells[i]
		switch {
		case s.merged():
			m.observer.TilesMerged([2]grid.Cell{s.sources[0], s.sources[1]}, to, s.value)
			m.score += s.value
			m.observer.ScoreChanged(m.score)
		case s.sources[0] != to:
			m.observer.TileMoved(s.sources[0], to, s.value)
		}
	}
}

// InsertTile places value at an empty cell and emits an insert event.
func (m *Model) InsertTile(at grid.Cell, value int) error {
	current, err := m.grid.Get(at)
	if err != nil {
		return fmt.Errorf("game: insert tile: %w", err)
	}
	if current != 0 {
		return fmt.Errorf("game: insert tile: cell %s already holds %d", at, current)
	}
	if err := m.grid.Set(at, value); err != nil {
		return fmt.Errorf("game: insert tile: %w", err)
	}

	m.logger.Debug("tile inserted", "cell", at, "value", value)
	m.observer.TileInserted(at, value)
	return nil
}

// InsertTileAtRandomLocation places value in an empty cell chosen uniformly
// at random. It returns ErrBoardFull, changing nothing, if the grid is full.
func (m *Model) InsertTileAtRandomLocation(value int) (grid.Cell, error) {
	empty := m.grid.EmptyCells()
	if len(empty) == 0 {
		return grid.Cell{}, ErrBoardFull
	}

	cell := empty[m.rng.Intn(len(empty))]
	if err := m.InsertTile(cell, value); err != nil {
		return grid.Cell{}, err
	}
	return cell, nil
}

// mustGet reads a cell produced by the grid's own traversal.
func (m *Model) mustGet(c grid.Cell) int {
	v, err := m.grid.Get(c)
	if err != nil {
		panic(err)
	}
	return v
}

// mustSet writes a merge result; values are always valid tiles or 0.
func (m *Model) mustSet(c grid.Cell, v int) {
	if err := m.grid.Set(c, v); err != nil {
		panic(err)
	}
}

// Score returns the running score.
func (m *Model) Score() int {
	return m.score
}

// Threshold returns the winning tile value.
func (m *Model) Threshold() int {
	return m.threshold
}

// Dimension returns the grid dimension.
func (m *Model) Dimension() int {
	return m.grid.Dimension()
}

// Moves returns the number of moves resolved so far, including no-op moves.
func (m *Model) Moves() int {
	return m.moves
}

// Board returns a copy of the tile values.
func (m *Model) Board() [][]int {
	return m.grid.Values()
}

// Tile returns the value at a cell, 0 if empty.
func (m *Model) Tile(c grid.Cell) (int, error) {
	return m.grid.Get(c)
}

// MaxTile returns the highest tile value on the board.
func (m *Model) MaxTile() int {
	maxVal := 0
	for _, row := range m.grid.Values() {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
