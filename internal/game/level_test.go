package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerateTargetCount(t *testing.T) {
	const arenaW, arenaH, radius = 400.0, 240.0, 15.0

	configs := []LevelConfig{
		{Level: 1, TotalBalls: 3, TargetCount: 1, Speed: 2.0},
		{Level: 4, TotalBalls: 6, TargetCount: 3, Speed: 2.25},
		{Level: 10, TotalBalls: 12, TargetCount: 5, Speed: 2.75},
	}

	for _, cfg := range configs {
		for seed := int64(0); seed < 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			balls := Generate(cfg, rng, radius, arenaW, arenaH)

			if uint32(len(balls)) != cfg.TotalBalls {
				t.Fatalf("config %+v seed %d: got %d balls, expected %d", cfg, seed, len(balls), cfg.TotalBalls)
			}

			targets := 0
			for _, b := range balls {
				if b.Target {
					targets++
					if b.Visual != VisualHighlighted {
						t.Errorf("target ball should spawn highlighted, got %v", b.Visual)
					}
				} else if b.Visual != VisualNeutral {
					t.Errorf("non-target ball should spawn neutral, got %v", b.Visual)
				}
			}
			if uint32(targets) != cfg.TargetCount {
				t.Errorf("config %+v seed %d: got %d targets, expected %d", cfg, seed, targets, cfg.TargetCount)
			}
		}
	}
}

func TestGenerateSpawnBounds(t *testing.T) {
	const arenaW, arenaH, radius = 400.0, 240.0, 15.0
	cfg := LevelConfig{Level: 5, TotalBalls: 50, TargetCount: 5, Speed: 2.5}
	rng := rand.New(rand.NewSource(42))

	balls := Generate(cfg, rng, radius, arenaW, arenaH)
	for i, b := range balls {
		if b.X < radius || b.X > arenaW-radius {
			t.Errorf("ball %d spawned at x=%v, outside [%v, %v]", i, b.X, radius, arenaW-radius)
		}
		if b.Y < radius || b.Y > arenaH-radius {
			t.Errorf("ball %d spawned at y=%v, outside [%v, %v]", i, b.Y, radius, arenaH-radius)
		}
		if b.Radius != radius {
			t.Errorf("ball %d has radius %v, expected %v", i, b.Radius, radius)
		}
	}
}

func TestGenerateVelocityMagnitude(t *testing.T) {
	const arenaW, arenaH, radius = 400.0, 240.0, 15.0
	cfg := LevelConfig{Level: 3, TotalBalls: 20, TargetCount: 2, Speed: 2.25}
	rng := rand.New(rand.NewSource(99))

	balls := Generate(cfg, rng, radius, arenaW, arenaH)
	for i, b := range balls {
		mag := math.Sqrt(b.VX*b.VX + b.VY*b.VY)
		if math.Abs(mag-cfg.Speed) > 1e-9 {
			t.Errorf("ball %d velocity magnitude %v, expected %v", i, mag, cfg.Speed)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	const arenaW, arenaH, radius = 400.0, 240.0, 15.0
	cfg := LevelConfig{Level: 2, TotalBalls: 4, TargetCount: 2, Speed: 2.0}

	a := Generate(cfg, rand.New(rand.NewSource(123)), radius, arenaW, arenaH)
	b := Generate(cfg, rand.New(rand.NewSource(123)), radius, arenaW, arenaH)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("same seed should produce identical balls, ball %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
