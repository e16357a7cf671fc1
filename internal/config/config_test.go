package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/blockfall/internal/blockfall"
	"github.com/vovakirdan/blockfall/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultTimingMatchesEngine(t *testing.T) {
	got := Default().Timing.ToEngine()
	if got != blockfall.DefaultTiming() {
		t.Errorf("ToEngine() = %+v, expected %+v", got, blockfall.DefaultTiming())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
timing:
  fall_interval: 0.5
input:
  keys:
    hard_drop: [enter]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Timing.FallInterval != 0.5 {
		t.Errorf("FallInterval = %v, expected 0.5", cfg.Timing.FallInterval)
	}
	if cfg.Timing.ControlInterval != 0.1 {
		t.Errorf("ControlInterval = %v, expected default 0.1", cfg.Timing.ControlInterval)
	}
	if got := cfg.Input.Keys["hard_drop"]; !reflect.DeepEqual(got, []string{"enter"}) {
		t.Errorf("hard_drop = %v, expected [enter]", got)
	}
	if got := cfg.Input.Keys["left"]; !reflect.DeepEqual(got, []string{"left", "a"}) {
		t.Errorf("left = %v, expected defaults to survive", got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative interval", "timing:\n  blink_interval: -1\n"},
		{"zero iterations", "timing:\n  blink_iterations: 0\n"},
		{"unknown preset", "difficulty:\n  preset: nightmare\n"},
		{"unknown key", "input:\n  keys:\n    jump: [w]\n"},
		{"zero hold timeout", "input:\n  hold_timeout: 0\n"},
		{"bad yaml", "timing: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.data)
			}
		})
	}
}

func TestUnknownPresetIsSentinel(t *testing.T) {
	_, err := Parse([]byte("difficulty:\n  preset: nightmare\n"))
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Parse error = %v, expected ErrUnknownPreset", err)
	}
}

func TestInvalidTimingIsSentinel(t *testing.T) {
	_, err := Parse([]byte("timing:\n  fall_interval: 0\n"))
	if !errors.Is(err, blockfall.ErrInvalidTiming) {
		t.Errorf("Parse error = %v, expected ErrInvalidTiming", err)
	}
}

func TestBindings(t *testing.T) {
	b, err := Default().Input.Bindings()
	if err != nil {
		t.Fatalf("Bindings failed: %v", err)
	}
	for _, k := range core.Keys() {
		if len(b[k]) == 0 {
			t.Errorf("logical key %v has no default binding", k)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Contains(data, []byte("fall_interval: 0.33")) {
		t.Errorf("Marshal output missing fall_interval:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  preset: hard\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("Preset = %q, expected %q", cfg.Difficulty.Preset, DifficultyHard)
	}

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	_, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}

	local := filepath.Join("configs", FileName)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("difficulty:\n  preset: expert\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, _ := Load("")
	if source != local || cfg.Difficulty.Preset != DifficultyExpert {
		t.Errorf("Load() = (%q, %q), expected local expert config", source, cfg.Difficulty.Preset)
	}

	user := filepath.Join(home, ".blockfall", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("difficulty:\n  preset: hard\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, _ = Load("")
	if source != user || cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("Load() = (%q, %q), expected user hard config", source, cfg.Difficulty.Preset)
	}
}
