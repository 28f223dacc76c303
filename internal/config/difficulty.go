package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Difficulty only changes how often a 4 spawns instead of a 2.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Spawn4ForPreset returns the 4-tile probability for a difficulty preset.
func Spawn4ForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 0.05, nil
	case DifficultyNormal:
		return 0.10, nil
	case DifficultyHard:
		return 0.25, nil
	default:
		return 0, fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, preset)
	}
}

// ApplyDifficultyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyDifficultyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	p, err := Spawn4ForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Game.Spawn4 = &p
	return nil
}
