// Package session drives one game of 2048 the way a front end does: it
// forwards moves to the model and, after each move that changed the board,
// checks for a win, inserts a new tile and checks for a loss.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// ErrGameOver is returned by Move once the game has been won, lost or finished.
var ErrGameOver = errors.New("session: game is over")

// State is the lifecycle state of a session.
type State string

const (
	StatePlaying   State = "playing"
	StateWon       State = "won"
	StateLost      State = "lost"
	StateAbandoned State = "abandoned"
)

// Config holds the parameters of a single game.
type Config struct {
	Variant       string  // score key, e.g. "classic"
	Dimension     int     // board size N
	Threshold     int     // winning tile
	Spawn4        float64 // probability of inserting a 4 instead of a 2
	Seed          int64   // RNG seed; 0 picks one from the clock
	QueueCapacity int     // pending move limit; 0 uses the model default
}

// Result is the summary of a finished game.
type Result struct {
	SessionID string
	Variant   string
	Player    string
	Score     int
	MaxTile   int
	Moves     int
	State     State
	Duration  time.Duration
}

// ScoreSaver persists finished games.
type ScoreSaver interface {
	SaveResult(r Result) error
}

// Session owns one game model and the follow-up policy around it.
type Session struct {
	id      string
	cfg     Config
	model   *game.Model
	rng     *rand.Rand
	logger  *log.Logger
	saver   ScoreSaver
	player  string
	started time.Time

	board      [][]int // starting position, nil for a fresh game
	state      State
	winCell    grid.Cell
	finishOnce sync.Once
	saveErr    error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger shared by the session and its model.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScoreSaver sets where the result is saved when the game ends.
func WithScoreSaver(saver ScoreSaver) Option {
	return func(s *Session) {
		s.saver = saver
	}
}

// WithPlayer records the player name (e.g. the SSH user) in the result.
func WithPlayer(name string) Option {
	return func(s *Session) {
		s.player = name
	}
}

// WithBoard starts the game from the given tile values instead of two
// random 2-tiles. The board must be cfg.Dimension square.
func WithBoard(values [][]int) Option {
	return func(s *Session) {
		s.board = values
	}
}

// New starts a game: it builds the model and inserts two 2-tiles.
func New(cfg Config, observer game.Observer, opts ...Option) (*Session, error) {
	if cfg.Spawn4 < 0 || cfg.Spawn4 > 1 {
		return nil, fmt.Errorf("session: spawn4 probability %v out of range", cfg.Spawn4)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		logger:  log.New(io.Discard),
		started: time.Now(),
		state:   StatePlaying,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id[:8])

	modelOpts := []game.Option{
		game.WithRand(s.rng),
		game.WithLogger(s.logger),
	}
	if cfg.QueueCapacity > 0 {
		modelOpts = append(modelOpts, game.WithQueueCapacity(cfg.QueueCapacity))
	}
	if s.board != nil {
		g, err := grid.FromValues(s.board)
		if err != nil {
			return nil, fmt.Errorf("session: starting board: %w", err)
		}
		if g.Dimension() != cfg.Dimension {
			return nil, fmt.Errorf("session: starting board is %dx%d, want %dx%d",
				g.Dimension(), g.Dimension(), cfg.Dimension, cfg.Dimension)
		}
		modelOpts = append(modelOpts, game.WithGrid(g))
	}

	model, err := game.New(cfg.Dimension, cfg.Threshold, observer, modelOpts...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.model = model

	if s.board == nil {
		for range 2 {
			if _, err := s.model.InsertTileAtRandomLocation(2); err != nil {
				return nil, fmt.Errorf("session: initial tile: %w", err)
			}
		}
	}

	s.logger.Info("game started",
		"variant", cfg.Variant,
		"dimension", cfg.Dimension,
		"threshold", cfg.Threshold,
		"seed", cfg.Seed,
	)
	return s, nil
}

// Move queues a move. When the move changes the board, the follow-up runs
// before Move returns.
func (s *Session) Move(dir grid.Direction) error {
	if s.state != StatePlaying {
		return ErrGameOver
	}

	return s.model.QueueMove(dir, func(changed bool) {
		if changed {
			s.followUp()
		}
	})
}

// followUp checks for a win; otherwise inserts a tile and checks for a loss.
func (s *Session) followUp() {
	if s.state != StatePlaying {
		return
	}

	if cell, won := s.model.UserHasWon(); won {
		s.winCell = cell
		s.end(StateWon)
		return
	}

	value := 2
	if s.rng.Float64() < s.cfg.Spawn4 {
		value = 4
	}
	if _, err := s.model.InsertTileAtRandomLocation(value); err != nil && !errors.Is(err, game.ErrBoardFull) {
		s.logger.Error("insert failed", "error", err)
	}

	if s.model.UserHasLost() {
		s.end(StateLost)
	}
}

// Finish ends a game that is still in progress as abandoned. It is a
// no-op for games that already ended.
func (s *Session) Finish() error {
	if s.state == StatePlaying {
		s.end(StateAbandoned)
	}
	return s.saveErr
}

// end moves to a terminal state and saves the result once.
func (s *Session) end(state State) {
	s.state = state
	s.finishOnce.Do(func() {
		r := s.Result()
		s.logger.Info("game ended", "state", state, "score", r.Score, "max_tile", r.MaxTile, "moves", r.Moves)

		if s.saver == nil || r.Score == 0 {
			return
		}
		if err := s.saver.SaveResult(r); err != nil {
			s.saveErr = fmt.Errorf("session: save result: %w", err)
			s.logger.Warn("could not save result", "error", err)
		}
	})
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns the game parameters.
func (s *Session) Config() Config {
	return s.cfg
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Over reports whether the game has ended for any reason.
func (s *Session) Over() bool {
	return s.state != StatePlaying
}

// WinningCell returns the cell that reached the threshold, if the game was won.
func (s *Session) WinningCell() (grid.Cell, bool) {
	return s.winCell, s.state == StateWon
}

// Score returns the running score.
func (s *Session) Score() int {
	return s.model.Score()
}

// Board returns a copy of the tile values.
func (s *Session) Board() [][]int {
	return s.model.Board()
}

// Model exposes the underlying game model.
func (s *Session) Model() *game.Model {
	return s.model
}

// Result summarizes the game so far.
func (s *Session) Result() Result {
	return Result{
		SessionID: s.id,
		Variant:   s.cfg.Variant,
		Player:    s.player,
		Score:     s.model.Score(),
		MaxTile:   s.model.MaxTile(),
		Moves:     s.model.Moves(),
		State:     s.state,
		Duration:  time.Since(s.started),
	}
}
