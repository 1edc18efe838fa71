package game

import (
	"math"
	"math/rand"
)

// LevelConfig holds the parameters of a single level attempt.
// Derived deterministically from the level index by the progression rules;
// immutable once computed for an attempt.
type LevelConfig struct {
	Level       uint32  // 1-based level index
	TotalBalls  uint32  // Number of balls in the arena
	TargetCount uint32  // How many of them are targets
	Speed       float64 // Velocity magnitude in arena units per tick
}

// Generate produces the initial ball arrangement for a level.
// Positions are drawn uniformly within [radius, dim-radius] on each axis
// (balls may overlap at spawn; there is no minimum-separation rule), and
// headings uniformly in [0, 2π). The first TargetCount balls are the targets
// and start highlighted; the rest start neutral.
func Generate(cfg LevelConfig, rng *rand.Rand, radius, arenaW, arenaH float64) []Ball {
	balls := make([]Ball, 0, cfg.TotalBalls)
	for i := uint32(0); i < cfg.TotalBalls; i++ {
		angle := rng.Float64() * 2 * math.Pi
		b := Ball{
			X:      radius + rng.Float64()*(arenaW-2*radius),
			Y:      radius + rng.Float64()*(arenaH-2*radius),
			VX:     math.Cos(angle) * cfg.Speed,
			VY:     math.Sin(angle) * cfg.Speed,
			Radius: radius,
		}
		if i < cfg.TargetCount {
			b.Target = true
			b.Visual = VisualHighlighted
		}
		balls = append(balls, b)
	}
	return balls
}
