package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/ui/theme"
)

// ProgressBar is a labelled horizontal bar.
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

func NewProgressBar(label string, done, total, width int) ProgressBar {
	return ProgressBar{Label: label, Done: done, Total: total, Width: width}
}

// Fraction is Done/Total clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

func (p ProgressBar) View() string {
	var out string
	if p.Label != "" {
		out = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	count := fmt.Sprintf("  %d/%d", p.Done, p.Total)

	barWidth := max(p.Width-lipgloss.Width(out)-len(count), 4)
	filled := int(float64(barWidth) * p.Fraction())

	out += lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled))
	out += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))
	return out + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}

// StarRow draws earned stars out of a maximum, e.g. ★★☆.
func StarRow(earned, maxStars int) string {
	earned = min(max(earned, 0), maxStars)
	return theme.Stars.Render(strings.Repeat("★", earned)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("☆", maxStars-earned))
}
