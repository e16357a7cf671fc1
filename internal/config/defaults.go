package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/blockfall.yaml.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			FallInterval:      0.33,
			ControlInterval:   0.1,
			FastFallInterval:  0.03,
			BlinkInterval:     0.1,
			BlinkIterations:   5,
			ChunkFallInterval: 0.03,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
		Input: InputConfig{
			HoldTimeout: 0.08,
			Keys: map[string][]string{
				"left":       {"left", "a"},
				"right":      {"right", "d"},
				"rotate_cw":  {"up", "x"},
				"rotate_ccw": {"z"},
				"soft_drop":  {"down", "s"},
				"hard_drop":  {" "},
				"pause":      {"p", "esc"},
				"confirm":    {"enter"},
				"menu_up":    {"up", "k"},
				"menu_down":  {"down", "j"},
				"cancel":     {"esc", "backspace"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
