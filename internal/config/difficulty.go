package config

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned for a difficulty name that is not defined.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists the presets in increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyNormal, DifficultyHard, DifficultyExpert}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// StartTier returns the tier a session begins at under the preset. The tier
// still only goes up from there.
func (p DifficultyPreset) StartTier() int {
	switch p {
	case DifficultyHard:
		return 2
	case DifficultyExpert:
		return 4
	default:
		return 0
	}
}

// ApplyPreset overrides the configured preset, typically from a CLI flag.
// An empty name leaves the config unchanged.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	p, err := ParsePreset(name)
	if err != nil {
		return err
	}
	cfg.Difficulty.Preset = p
	return nil
}
