// Package layout composes the header, body and footer of every frame.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactHeightThreshold = 30
)

// KeyHint is one footer entry, e.g. {"enter", "Select"}.
type KeyHint struct {
	Key         string
	Description string
}

// Learner is what the header shows on the right. A zero value (no name)
// hides it, as on the welcome screens.
type Learner struct {
	Name   string
	Emoji  string
	Stars  int
	Streak int
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Oops, the window is too small!\n\nPlease make it at least %d x %d\n\nNow: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the top bar: app name, screen title, learner stats.
func RenderHeader(title string, who Learner, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("🕐 TotoTime")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if who.Name != "" {
		right = lipgloss.NewStyle().Foreground(theme.Text).Render(strings.TrimSpace(who.Emoji+" "+who.Name)) +
			"   " + theme.Stars.Render(fmt.Sprintf("⭐ %d", who.Stars))
		if who.Streak > 0 {
			right += "   " + lipgloss.NewStyle().Foreground(theme.Streak).Render(fmt.Sprintf("🔥 %d", who.Streak))
		}
	}

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter draws the key hint bar.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// ContentHeight is what is left for the body once header and footer are
// drawn.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame stacks header, body and footer into a full window.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
