package config

import (
	"errors"
	"testing"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name     string
		expected DifficultyPreset
		tier     int
	}{
		{"", DifficultyNormal, 0},
		{"normal", DifficultyNormal, 0},
		{"hard", DifficultyHard, 2},
		{"expert", DifficultyExpert, 4},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.name)
		if err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.name, got, tt.expected)
		}
		if got.StartTier() != tt.tier {
			t.Errorf("%q.StartTier() = %d, expected %d", got, got.StartTier(), tt.tier)
		}
	}

	if _, err := ParsePreset("easy"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(\"easy\") error = %v, expected ErrUnknownPreset", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()

	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Fatalf("ApplyPreset(\"\") failed: %v", err)
	}
	if cfg.Difficulty.Preset != DifficultyNormal {
		t.Errorf("empty override changed preset to %q", cfg.Difficulty.Preset)
	}

	if err := ApplyPreset(&cfg, "expert"); err != nil {
		t.Fatalf("ApplyPreset(expert) failed: %v", err)
	}
	if cfg.Difficulty.Preset != DifficultyExpert {
		t.Errorf("Preset = %q, expected expert", cfg.Difficulty.Preset)
	}

	if err := ApplyPreset(&cfg, "bogus"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ApplyPreset(bogus) error = %v, expected ErrUnknownPreset", err)
	}
	if cfg.Difficulty.Preset != DifficultyExpert {
		t.Errorf("failed override changed preset to %q", cfg.Difficulty.Preset)
	}
}
