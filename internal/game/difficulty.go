package game

// Progression holds the difficulty-curve knobs. The defaults reproduce the
// fixed formula: one extra ball per level, one extra target on even levels
// up to the cap, and a speed bump every third level.
type Progression struct {
	TargetCap   uint32  // Maximum simultaneous targets
	TargetEvery uint32  // Add a target when the new level index divides by this
	SpeedEvery  uint32  // Add SpeedStep when the new level index divides by this
	SpeedStep   float64 // Speed increment in arena units per tick
}

// DefaultProgression returns the standard difficulty curve.
func DefaultProgression() Progression {
	return Progression{
		TargetCap:   5,
		TargetEvery: 2,
		SpeedEvery:  3,
		SpeedStep:   0.25,
	}
}

// DefaultStart returns the level 1 configuration.
func DefaultStart() LevelConfig {
	return LevelConfig{
		Level:       1,
		TotalBalls:  3,
		TargetCount: 1,
		Speed:       2.0,
	}
}

// Next computes the configuration of the level after prev. Pure function:
// TotalBalls strictly increases every level; TargetCount and Speed are
// non-decreasing step functions, TargetCount capped at TargetCap.
func (p Progression) Next(prev LevelConfig) LevelConfig {
	next := LevelConfig{
		Level:       prev.Level + 1,
		TotalBalls:  prev.TotalBalls + 1,
		TargetCount: prev.TargetCount,
		Speed:       prev.Speed,
	}
	if p.TargetEvery > 0 && next.Level%p.TargetEvery == 0 && prev.TargetCount < p.TargetCap {
		next.TargetCount = prev.TargetCount + 1
	}
	if p.SpeedEvery > 0 && next.Level%p.SpeedEvery == 0 {
		next.Speed = prev.Speed + p.SpeedStep
	}
	return next
}
