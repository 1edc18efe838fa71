package tui

import (
	"testing"

	"github.com/vovakirdan/tui-tracker/internal/core"
	"github.com/vovakirdan/tui-tracker/internal/game"
)

func TestLayoutCellToArena(t *testing.T) {
	lay := newLayout(82, 28, game.DefaultSettings())

	tests := []struct {
		name         string
		cellX, cellY int
		wantInside   bool
	}{
		{"top-left field cell", lay.fieldX, lay.fieldY, true},
		{"bottom-right field cell", lay.fieldX + lay.fieldW - 1, lay.fieldY + lay.fieldH - 1, true},
		{"hud row", 5, 0, false},
		{"left border", 0, lay.fieldY, false},
		{"below field", lay.fieldX, lay.fieldY + lay.fieldH, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax, ay, ok := lay.cellToArena(tt.cellX, tt.cellY)
			if ok != tt.wantInside {
				t.Fatalf("cellToArena(%d, %d) inside = %v, want %v", tt.cellX, tt.cellY, ok, tt.wantInside)
			}
			if !ok {
				return
			}
			if ax < 0 || ax > lay.arenaW || ay < 0 || ay > lay.arenaH {
				t.Errorf("mapped point (%f, %f) outside arena", ax, ay)
			}
		})
	}
}

func TestDrawBallsUsesVisualColors(t *testing.T) {
	settings := game.DefaultSettings()
	screen := core.NewScreen(82, 28)
	lay := newLayout(82, 28, settings)

	balls := []game.Ball{
		{X: settings.ArenaW / 2, Y: settings.ArenaH / 2, Radius: settings.BallRadius, Visual: game.VisualHighlighted},
	}
	drawBalls(screen, lay, balls)

	// The cell under the ball's center must carry the highlight color
	cx := lay.fieldX + lay.fieldW/2
	cy := lay.fieldY + lay.fieldH/2
	cell := screen.GetCell(cx, cy)
	if cell.Rune != ballRune {
		t.Errorf("expected ball rune at center, got %q", cell.Rune)
	}
	if cell.Color != core.ColorBrightYellow {
		t.Errorf("expected highlight color, got %v", cell.Color)
	}

	// Cells far from any ball stay empty
	if got := screen.Get(lay.fieldX, lay.fieldY); got != ' ' {
		t.Errorf("expected empty corner cell, got %q", got)
	}
}
