package game

import (
	"math"

	"github.com/vovakirdan/tui-tracker/internal/core"
)

// VisualState describes how a ball should be drawn.
type VisualState int

const (
	VisualNeutral     VisualState = iota // Indistinguishable from other balls
	VisualHighlighted                    // Marked as a target (reveal phase, or revealed after a miss)
	VisualCorrect                        // Clicked and was a target
	VisualIncorrect                      // Clicked and was not a target
)

// String returns a human-readable name for the visual state.
func (v VisualState) String() string {
	switch v {
	case VisualNeutral:
		return "Neutral"
	case VisualHighlighted:
		return "Highlighted"
	case VisualCorrect:
		return "Correct"
	case VisualIncorrect:
		return "Incorrect"
	default:
		return "Unknown"
	}
}

// Ball is a single moving circular body in the arena.
// Position and velocity are in arena units (not screen cells); the platform
// layer projects arena coordinates onto the terminal.
type Ball struct {
	X, Y   float64 // Center position
	VX, VY float64 // Velocity per tick
	Radius float64
	Target bool // Whether this ball must be identified by the player
	Visual VisualState
}

// Advance moves the ball by its velocity, reflecting off arena walls.
// Each axis is checked independently; both may flip in the same tick.
// Reflection keeps the ball's leading edge within [Radius, dim-Radius].
func (b *Ball) Advance(arenaW, arenaH float64) {
	if b.X-b.Radius <= 0 {
		b.VX = math.Abs(b.VX)
	} else if b.X+b.Radius >= arenaW {
		b.VX = -math.Abs(b.VX)
	}
	if b.Y-b.Radius <= 0 {
		b.VY = math.Abs(b.VY)
	} else if b.Y+b.Radius >= arenaH {
		b.VY = -math.Abs(b.VY)
	}
	b.X = core.ClampF(b.X+b.VX, b.Radius, arenaW-b.Radius)
	b.Y = core.ClampF(b.Y+b.VY, b.Radius, arenaH-b.Radius)
}

// Contains reports whether the point (x, y) lies within the ball's radius.
func (b *Ball) Contains(x, y float64) bool {
	return core.Dist(b.X, b.Y, x, y) <= b.Radius
}
