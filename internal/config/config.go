// Package config provides YAML-based configuration loading for blockfall:
// simulation timing, the difficulty preset and terminal key bindings.
package config

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/blockfall"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Config is the full blockfall configuration file.
type Config struct {
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// TimingConfig holds the simulation intervals in seconds.
type TimingConfig struct {
	FallInterval      float64 `yaml:"fall_interval"`
	ControlInterval   float64 `yaml:"control_interval"`
	FastFallInterval  float64 `yaml:"fast_fall_interval"`
	BlinkInterval     float64 `yaml:"blink_interval"`
	BlinkIterations   int     `yaml:"blink_iterations"`
	ChunkFallInterval float64 `yaml:"chunk_fall_interval"`
}

// DifficultyConfig selects the starting tier by preset name.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// InputConfig maps logical keys to terminal key names.
type InputConfig struct {
	HoldTimeout float64             `yaml:"hold_timeout"` // seconds without a repeat before a key counts as released
	Keys        map[string][]string `yaml:"keys"`
}

// ToEngine converts the timing section to the simulation's Timing.
func (t TimingConfig) ToEngine() blockfall.Timing {
	return blockfall.Timing{
		Fall:            t.FallInterval,
		Control:         t.ControlInterval,
		FastFall:        t.FastFallInterval,
		Blink:           t.BlinkInterval,
		BlinkIterations: t.BlinkIterations,
		ChunkFall:       t.ChunkFallInterval,
	}
}

// Bindings resolves the key table. Unknown logical key names are an error.
func (in InputConfig) Bindings() (map[core.Key][]string, error) {
	out := make(map[core.Key][]string, len(in.Keys))
	for name, keys := range in.Keys {
		k, err := core.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("input.keys: %w", err)
		}
		out[k] = keys
	}
	return out, nil
}

// Validate checks the parts of the file the engine cannot check itself.
func (c Config) Validate() error {
	if err := c.Timing.ToEngine().Validate(); err != nil {
		return fmt.Errorf("timing: %w", err)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	if c.Input.HoldTimeout <= 0 {
		return fmt.Errorf("input.hold_timeout must be positive, got %v", c.Input.HoldTimeout)
	}
	if _, err := c.Input.Bindings(); err != nil {
		return err
	}
	return nil
}
