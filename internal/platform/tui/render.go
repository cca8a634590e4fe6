package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// Cell runes for game elements.
const (
	headRune  = 'O'
	bodyRune  = 'o'
	fruitRune = '*'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// DrawWorld draws the current game state into the screen buffer:
// HUD line, bordered field, snake, fruit, and the game-over overlay.
// Colors follow the original: green snake (bright head), red fruit,
// red border.
func DrawWorld(dst *core.Screen, w *game.World) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake  Score: %d", w.Score())
	dst.DrawText(0, 0, hud, core.ColorGray)

	// The field plus border must fit below the HUD line.
	boxW := w.FieldSize() + 2
	boxH := w.FieldSize() + 2
	if dst.Width() < boxW || dst.Height() < boxH+1 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightWhite)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorGray)
		return
	}

	ox := (dst.Width() - boxW) / 2
	oy := 1 + (dst.Height()-1-boxH)/2

	dst.DrawBox(ox, oy, boxW, boxH, core.ColorRed)

	// Field cells are offset by one for the border.
	fruit := w.Fruit()
	dst.SetCell(ox+1+fruit.X, oy+1+fruit.Y, fruitRune, core.ColorBrightRed)
	for _, seg := range w.Body() {
		dst.SetCell(ox+1+seg.X, oy+1+seg.Y, bodyRune, core.ColorGreen)
	}
	head := w.Head()
	dst.SetCell(ox+1+head.X, oy+1+head.Y, headRune, core.ColorBrightGreen)

	if w.Terminated() {
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  -  press R to restart", w.Score()))
	}
}

// drawOverlay draws a centered bordered message box over the field.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, line2, core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
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
