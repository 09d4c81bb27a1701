// Package clockscreen shows the live time with everything a child might
// want to know about it.
package clockscreen

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/clock"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/ui/components"
	"github.com/abhisek/tototime/internal/ui/layout"
	"github.com/abhisek/tototime/internal/ui/theme"
)

// Screen is the "What Time Is It?" view.
type Screen struct {
	env    *screens.Env
	tickID int
	now    time.Time
}

var _ screen.Screen = (*Screen)(nil)

func New(env *screens.Env) *Screen {
	return &Screen{env: env, tickID: env.TickID(), now: env.Clock()}
}

func (s *Screen) Title() string { return "What Time Is It?" }

func (s *Screen) Init() tea.Cmd { return clock.Tick(s.tickID) }

// Now returns the time currently on display.
func (s *Screen) Now() time.Time { return s.now }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clock.TickMsg:
		if msg.ID != s.tickID {
			return s, nil
		}
		s.now = msg.Time
		return s, clock.Tick(s.tickID)
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q", "backspace":
			return s, router.Go(router.BackHomeMsg{})
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	h, m := s.now.Hour(), s.now.Minute()
	ctx := clock.ContextFor(h)
	accent := theme.Hex(ctx.Color)
	compact := layout.IsCompactHeight(height + 6)

	radius := 6
	if compact {
		radius = 4
	}
	face := lipgloss.NewStyle().Foreground(accent).Render(strings.Join(clock.Face(h, m, radius), "\n"))

	digital := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(clock.Format(s.now, true))
	spoken := theme.Subtitle.Render(clock.Speak(h, m))

	about := []string{
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(ctx.Emoji + " " + ctx.Greeting),
		theme.Body.Render(ctx.Activity),
	}
	if !compact {
		about = append(about, theme.Hint.Render(ctx.Nature))
	}
	if note := clock.RelativeMessage(h, m); note != "" {
		about = append(about, "", lipgloss.NewStyle().Foreground(theme.Accent).Render("⏰ "+note))
	}

	var ideas []string
	for _, a := range clock.ActivitySuggestions(h) {
		ideas = append(ideas, "• "+a)
	}

	c := s.env.Character()
	left := lipgloss.JoinVertical(lipgloss.Center, face, "", digital, spoken)
	right := lipgloss.JoinVertical(lipgloss.Left,
		components.Card(lipgloss.JoinVertical(lipgloss.Left, about...), cw/2+8, accent),
		"",
		theme.Body.Bold(true).Render("Things people do now:"),
		theme.Body.Render(strings.Join(ideas, "\n")),
	)

	var body string
	if width >= 100 {
		body = lipgloss.JoinHorizontal(lipgloss.Center, left, "    ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, left, "", right)
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Center,
		body,
		"",
		components.Speech(c.Emoji, c.FirstName(), clock.BuddyMessage(h), theme.Hex(c.Color), cw),
	), width, height)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
