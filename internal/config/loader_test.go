package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML is the last fallback of Load; it must agree with
	// the hardcoded defaults.
	var cfg TrackerConfig
	if err := yaml.Unmarshal(defaultTrackerYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := DefaultTrackerConfig()
	if cfg != want {
		t.Errorf("embedded default = %+v, expected %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
arena:
  width: 200.0
  height: 100.0
  ball_radius: 10.0
timing:
  reveal_seconds: 1.0
  tracking_seconds: 3.0
start:
  total_balls: 5
  target_count: 2
  speed: 1.5
difficulty:
  target_cap: 4
  target_every: 2
  speed_every: 2
  speed_step: 0.5
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Arena.Width != 200.0 || cfg.Arena.BallRadius != 10.0 {
		t.Errorf("arena not loaded: %+v", cfg.Arena)
	}
	if cfg.Timing.TrackingSeconds != 3.0 {
		t.Errorf("timing not loaded: %+v", cfg.Timing)
	}
	if cfg.Start.TotalBalls != 5 || cfg.Start.TargetCount != 2 {
		t.Errorf("start config not loaded: %+v", cfg.Start)
	}
	if cfg.Difficulty.TargetCap != 4 || cfg.Difficulty.SpeedStep != 0.5 {
		t.Errorf("difficulty not loaded: %+v", cfg.Difficulty)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/tracker.yaml")
	if err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestSettingsConversion(t *testing.T) {
	cfg := DefaultTrackerConfig()
	s := cfg.Settings()

	if s.ArenaW != 400.0 || s.ArenaH != 240.0 || s.BallRadius != 15.0 {
		t.Errorf("arena settings wrong: %+v", s)
	}
	if s.RevealSeconds != 2.5 || s.TrackingSeconds != 6.0 {
		t.Errorf("timing settings wrong: %+v", s)
	}
	if s.Start.Level != 1 || s.Start.TotalBalls != 3 || s.Start.TargetCount != 1 || s.Start.Speed != 2.0 {
		t.Errorf("start config wrong: %+v", s.Start)
	}
	if s.Progression.TargetCap != 5 || s.Progression.SpeedStep != 0.25 {
		t.Errorf("progression wrong: %+v", s.Progression)
	}
}
