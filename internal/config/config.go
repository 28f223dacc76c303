// Package config provides YAML-based configuration loading, environment
// overrides and difficulty presets for the 2048 game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for the game and its front ends.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig selects the board variant and optionally overrides its parameters.
// Zero values (and a nil Spawn4) mean "use the variant's value".
type GameConfig struct {
	Variant       string   `yaml:"variant" env:"T2048_VARIANT"`
	Dimension     int      `yaml:"dimension" env:"T2048_DIMENSION"`
	Threshold     int      `yaml:"threshold" env:"T2048_THRESHOLD"`
	Spawn4        *float64 `yaml:"spawn4" env:"T2048_SPAWN4"`
	QueueCapacity int      `yaml:"queue_capacity" env:"T2048_QUEUE_CAPACITY"`
}

// DisplayConfig defines animation timing for the terminal front end.
type DisplayConfig struct {
	TickRate   int `yaml:"tick_rate" env:"T2048_TICK_RATE"`
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"T2048_DB"`
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"T2048_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key_path" env:"T2048_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"T2048_IDLE_TIMEOUT"`
}

// Settings are the resolved game parameters used to build a session.
type Settings struct {
	VariantID     string
	Title         string
	Dimension     int
	Threshold     int
	Spawn4        float64
	QueueCapacity int
}

// Resolve combines the selected variant with any explicit overrides.
func (c Config) Resolve() (Settings, error) {
	id := c.Game.Variant
	if id == "" {
		id = registry.DefaultVariant
	}

	v, err := registry.Get(id)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s := Settings{
		VariantID:     v.ID,
		Title:         v.Title,
		Dimension:     v.Dimension,
		Threshold:     v.Threshold,
		Spawn4:        v.Spawn4,
		QueueCapacity: c.Game.QueueCapacity,
	}
	if c.Game.Dimension > 0 {
		s.Dimension = c.Game.Dimension
	}
	if c.Game.Threshold > 0 {
		s.Threshold = c.Game.Threshold
	}
	if c.Game.Spawn4 != nil {
		s.Spawn4 = *c.Game.Spawn4
	}
	return s, nil
}

// ForVariant resolves settings for another variant. Board overrides are
// dropped because they were chosen for the configured variant; the spawn
// probability override and queue capacity are kept.
func (c Config) ForVariant(id string) (Settings, error) {
	c.Game.Variant = id
	c.Game.Dimension = 0
	c.Game.Threshold = 0
	return c.Resolve()
}

// ScoreKey returns the identifier scores are stored under. Customized
// boards get their own leaderboard.
func (s Settings) ScoreKey() string {
	v, err := registry.Get(s.VariantID)
	if err == nil && v.Dimension == s.Dimension && v.Threshold == s.Threshold {
		return s.VariantID
	}
	return fmt.Sprintf("%s-%dx%d-%d", s.VariantID, s.Dimension, s.Dimension, s.Threshold)
}

// SessionConfig builds the parameters of one game from the settings.
func (s Settings) SessionConfig(seed int64) session.Config {
	return session.Config{
		Variant:       s.ScoreKey(),
		Dimension:     s.Dimension,
		Threshold:     s.Threshold,
		Spawn4:        s.Spawn4,
		Seed:          seed,
		QueueCapacity: s.QueueCapacity,
	}
}

// Runtime builds the front-end runtime config for a screen of the given size.
func (d DisplayConfig) Runtime(width, height int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   d.TickRate,
		SlideTicks: d.SlideTicks,
		PopTicks:   d.PopTicks,
		Seed:       seed,
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	s, err := c.Resolve()
	if err != nil {
		return err
	}

	switch {
	case s.Dimension < 2:
		return fmt.Errorf("%w: dimension %d, want >= 2", ErrInvalid, s.Dimension)
	case !grid.IsTileValue(s.Threshold) || s.Threshold < 4:
		return fmt.Errorf("%w: threshold %d, want a power of two >= 4", ErrInvalid, s.Threshold)
	case s.Spawn4 < 0 || s.Spawn4 > 1:
		return fmt.Errorf("%w: spawn4 %v, want 0..1", ErrInvalid, s.Spawn4)
	case c.Game.QueueCapacity < 0:
		return fmt.Errorf("%w: queue_capacity %d, want >= 0", ErrInvalid, c.Game.QueueCapacity)
	case c.Display.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d, want > 0", ErrInvalid, c.Display.TickRate)
	case c.Display.SlideTicks < 0 || c.Display.PopTicks < 0:
		return fmt.Errorf("%w: animation ticks must not be negative", ErrInvalid)
	}
	return nil
}
