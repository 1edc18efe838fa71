package game

import "testing"

func TestProgressionFirstLevels(t *testing.T) {
	p := DefaultProgression()

	tests := []struct {
		name string
		prev LevelConfig
		want LevelConfig
	}{
		{
			name: "level 1 to 2 adds a target, speed unchanged",
			prev: LevelConfig{Level: 1, TotalBalls: 3, TargetCount: 1, Speed: 2.0},
			want: LevelConfig{Level: 2, TotalBalls: 4, TargetCount: 2, Speed: 2.0},
		},
		{
			name: "level 2 to 3 keeps targets, bumps speed",
			prev: LevelConfig{Level: 2, TotalBalls: 4, TargetCount: 2, Speed: 2.0},
			want: LevelConfig{Level: 3, TotalBalls: 5, TargetCount: 2, Speed: 2.25},
		},
		{
			name: "level 3 to 4 adds a target",
			prev: LevelConfig{Level: 3, TotalBalls: 5, TargetCount: 2, Speed: 2.25},
			want: LevelConfig{Level: 4, TotalBalls: 6, TargetCount: 3, Speed: 2.25},
		},
		{
			name: "target count stops at the cap",
			prev: LevelConfig{Level: 9, TotalBalls: 11, TargetCount: 5, Speed: 2.75},
			want: LevelConfig{Level: 10, TotalBalls: 12, TargetCount: 5, Speed: 2.75},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Next(tc.prev)
			if got != tc.want {
				t.Errorf("Next(%+v) = %+v, expected %+v", tc.prev, got, tc.want)
			}
		})
	}
}

func TestProgressionMonotonic(t *testing.T) {
	p := DefaultProgression()
	cfg := DefaultStart()

	for i := 0; i < 100; i++ {
		next := p.Next(cfg)

		if next.Level != cfg.Level+1 {
			t.Fatalf("level should increment by 1, got %d after %d", next.Level, cfg.Level)
		}
		if next.TotalBalls != cfg.TotalBalls+1 {
			t.Fatalf("total balls should increase by exactly 1 every level, got %d after %d", next.TotalBalls, cfg.TotalBalls)
		}
		if next.TargetCount < cfg.TargetCount {
			t.Fatalf("target count decreased from %d to %d at level %d", cfg.TargetCount, next.TargetCount, next.Level)
		}
		if next.TargetCount > p.TargetCap {
			t.Fatalf("target count %d exceeds cap %d at level %d", next.TargetCount, p.TargetCap, next.Level)
		}
		if next.Speed < cfg.Speed {
			t.Fatalf("speed decreased from %v to %v at level %d", cfg.Speed, next.Speed, next.Level)
		}

		cfg = next
	}

	if cfg.TargetCount != 5 {
		t.Errorf("target count should reach the cap of 5 after 100 levels, got %d", cfg.TargetCount)
	}
}

func TestDefaultStart(t *testing.T) {
	start := DefaultStart()
	want := LevelConfig{Level: 1, TotalBalls: 3, TargetCount: 1, Speed: 2.0}
	if start != want {
		t.Errorf("DefaultStart() = %+v, expected %+v", start, want)
	}
}
