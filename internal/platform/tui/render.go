package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tracker/internal/core"
	"github.com/vovakirdan/tui-tracker/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

const ballRune = '●'

// layout maps the arena's float coordinates onto a rectangle of screen cells.
// The playfield sits inside a border box, below a one-row HUD and above a
// one-row help bar.
type layout struct {
	fieldX, fieldY int // Top-left cell of the playfield (inside the border)
	fieldW, fieldH int
	arenaW, arenaH float64
}

func newLayout(screenW, screenH int, settings game.Settings) layout {
	w := core.Max(screenW-2, 10)
	h := core.Max(screenH-4, 5)
	return layout{
		fieldX: 1,
		fieldY: 2,
		fieldW: w,
		fieldH: h,
		arenaW: settings.ArenaW,
		arenaH: settings.ArenaH,
	}
}

// cellToArena maps a screen cell to arena coordinates (the cell's center).
// Returns false if the cell lies outside the playfield.
func (l layout) cellToArena(cellX, cellY int) (float64, float64, bool) {
	if cellX < l.fieldX || cellX >= l.fieldX+l.fieldW ||
		cellY < l.fieldY || cellY >= l.fieldY+l.fieldH {
		return 0, 0, false
	}
	ax := (float64(cellX-l.fieldX) + 0.5) / float64(l.fieldW) * l.arenaW
	ay := (float64(cellY-l.fieldY) + 0.5) / float64(l.fieldH) * l.arenaH
	return ax, ay, true
}

// ballColor picks the display color for a ball's visual state.
func ballColor(v game.VisualState) core.Color {
	switch v {
	case game.VisualHighlighted:
		return core.ColorBrightYellow
	case game.VisualCorrect:
		return core.ColorBrightGreen
	case game.VisualIncorrect:
		return core.ColorBrightRed
	default:
		return core.ColorWhite
	}
}

// drawBalls rasterizes the balls onto the playfield. Each cell maps back to
// arena coordinates and takes the first ball covering that point, so taps and
// pixels resolve overlaps the same way.
func drawBalls(s *core.Screen, l layout, balls []game.Ball) {
	for cy := l.fieldY; cy < l.fieldY+l.fieldH; cy++ {
		for cx := l.fieldX; cx < l.fieldX+l.fieldW; cx++ {
			ax, ay, ok := l.cellToArena(cx, cy)
			if !ok {
				continue
			}
			for i := range balls {
				if balls[i].Contains(ax, ay) {
					s.SetCell(cx, cy, ballRune, ballColor(balls[i].Visual))
					break
				}
			}
		}
	}
}
