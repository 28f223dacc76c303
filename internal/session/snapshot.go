package session

// Snapshot captures the complete game state, as printed by a replay.
type Snapshot struct {
	Variant   string
	Dimension int
	Threshold int
	Score     int
	Board     [][]int
	MaxTile   int
	Moves     int
	State     State
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Variant:   s.cfg.Variant,
		Dimension: s.cfg.Dimension,
		Threshold: s.cfg.Threshold,
		Score:     s.model.Score(),
		Board:     s.model.Board(),
		MaxTile:   s.model.MaxTile(),
		Moves:     s.model.Moves(),
		State:     s.state,
	}
}
