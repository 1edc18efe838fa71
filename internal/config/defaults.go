package config

import (
	_ "embed"
)

//go:embed defaults/tracker.yaml
var defaultTrackerYAML []byte

// DefaultTrackerConfig returns the standard game configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		Arena: ArenaConfig{
			Width:      400.0,
			Height:     240.0,
			BallRadius: 15.0,
		},
		Timing: TimingConfig{
			RevealSeconds:   2.5,
			TrackingSeconds: 6.0,
		},
		Start: StartConfig{
			TotalBalls:  3,
			TargetCount: 1,
			Speed:       2.0,
		},
		Difficulty: DifficultyConfig{
			TargetCap:   5,
			TargetEvery: 2,
			SpeedEvery:  3,
			SpeedStep:   0.25,
		},
	}
}
