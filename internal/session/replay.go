package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// ParseMoves reads a list of direction names separated by commas or
// whitespace, e.g. "left,up right".
func ParseMoves(s string) ([]grid.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	moves := make([]grid.Direction, 0, len(fields))
	for i, f := range fields {
		d, err := grid.ParseDirection(strings.ToLower(f))
		if err != nil {
			return nil, fmt.Errorf("session: move %d: %w", i+1, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// ParseBoard reads rows separated by "/" with comma separated values,
// e.g. "2,2,0/0,4,0/0,0,0". Empty cells are written as 0.
func ParseBoard(s string) ([][]int, error) {
	var board [][]int
	for i, line := range strings.Split(strings.TrimSpace(s), "/") {
		var row []int
		for _, field := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("session: board row %d: %w", i+1, err)
			}
			row = append(row, v)
		}
		board = append(board, row)
	}
	return board, nil
}

// Replay starts a game from cfg and applies moves in order. Moves after the
// game has ended are ignored. A fixed cfg.Seed makes the outcome repeatable.
func Replay(cfg Config, moves []grid.Direction, observer game.Observer, opts ...Option) (*Session, error) {
	s, err := New(cfg, observer, opts...)
	if err != nil {
		return nil, err
	}

	for i, d := range moves {
		if err := s.Move(d); err != nil {
			if errors.Is(err, ErrGameOver) {
				s.logger.Debug("replay stopped", "applied", i, "remaining", len(moves)-i)
				break
			}
			return nil, fmt.Errorf("session: replay move %d: %w", i+1, err)
		}
	}
	return s, nil
}
