// Package config provides YAML-based game configuration loading for the
// tracker game. Defaults reproduce the standard ruleset; a user config can
// tune arena size, phase timing, and the difficulty curve.
package config

import "github.com/vovakirdan/tui-tracker/internal/game"

// TrackerConfig contains all configuration for the tracker game.
type TrackerConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Timing     TimingConfig     `yaml:"timing"`
	Start      StartConfig      `yaml:"start"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the simulation space, in arena units.
type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	BallRadius float64 `yaml:"ball_radius"`
}

// TimingConfig defines the phase windows, in seconds.
type TimingConfig struct {
	RevealSeconds   float64 `yaml:"reveal_seconds"`
	TrackingSeconds float64 `yaml:"tracking_seconds"`
}

// StartConfig defines the level 1 parameters.
type StartConfig struct {
	TotalBalls  uint32  `yaml:"total_balls"`
	TargetCount uint32  `yaml:"target_count"`
	Speed       float64 `yaml:"speed"`
}

// DifficultyConfig defines the progression curve.
type DifficultyConfig struct {
	TargetCap   uint32  `yaml:"target_cap"`
	TargetEvery uint32  `yaml:"target_every"`
	SpeedEvery  uint32  `yaml:"speed_every"`
	SpeedStep   float64 `yaml:"speed_step"`
}

// Settings converts the loaded configuration into engine settings.
func (c TrackerConfig) Settings() game.Settings {
	return game.Settings{
		ArenaW:          c.Arena.Width,
		ArenaH:          c.Arena.Height,
		BallRadius:      c.Arena.BallRadius,
		RevealSeconds:   c.Timing.RevealSeconds,
		TrackingSeconds: c.Timing.TrackingSeconds,
		Start: game.LevelConfig{
			Level:       1,
			TotalBalls:  c.Start.TotalBalls,
			TargetCount: c.Start.TargetCount,
			Speed:       c.Start.Speed,
		},
		Progression: game.Progression{
			TargetCap:   c.Difficulty.TargetCap,
			TargetEvery: c.Difficulty.TargetEvery,
			SpeedEvery:  c.Difficulty.SpeedEvery,
			SpeedStep:   c.Difficulty.SpeedStep,
		},
	}
}
