package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/ui/theme"
)

// ContentWidth is the width every card on a screen is drawn at so they
// line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded box cw columns wide, border included.
func Card(content string, cw int, border color.Color) string {
	if border == nil {
		border = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(content)
}

// CardInner is the text width inside a Card cw columns wide. Lines wider
// than this are wrapped by the card.
func CardInner(cw int) int {
	return max(cw-4, 1)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Speech draws a character saying line, e.g. "🐼 Percy: Great job!".
func Speech(emoji, name, line string, c color.Color, cw int) string {
	who := lipgloss.NewStyle().Foreground(c).Bold(true).Render(emoji + " " + name + ":")
	return Card(who+" "+theme.Body.Render(line), cw, c)
}
