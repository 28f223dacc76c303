package core

// RuntimeConfig contains the display parameters for one front-end session.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Animation ticks per second (default 60)
	SlideTicks int   // Ticks a slide animation lasts
	PopTicks   int   // Ticks a new-tile pop lasts
	Seed       int64 // RNG seed for deterministic tile placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		SlideTicks: 8, // ~133ms at 60fps
		PopTicks:   6, // ~100ms at 60fps
		Seed:       0, // 0 means use current time
	}
}
