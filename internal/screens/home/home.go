// Package home is the hub a returning learner lands on.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/clock"
	"github.com/abhisek/tototime/internal/lessons"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/ui/components"
	"github.com/abhisek/tototime/internal/ui/layout"
	"github.com/abhisek/tototime/internal/ui/theme"
)

// Screen is the home hub: a greeting, progress, and the main menu.
type Screen struct {
	env  *screens.Env
	menu components.Menu

	tickID int
	now    clockTime

	line    string
	lineKey string
	lineCmd tea.Cmd

	// confirm is non-nil while "Start Fresh" waits for an answer.
	confirm *components.ButtonRow
	err     string
}

type clockTime struct{ hour, minute int }

var _ screen.Screen = (*Screen)(nil)

// New builds the home screen for the active learner.
func New(env *screens.Env) *Screen {
	h := &Screen{env: env, tickID: env.TickID()}
	t := env.Clock()
	h.now = clockTime{t.Hour(), t.Minute()}

	period := clock.ContextFor(t.Hour())
	h.line, h.lineKey, h.lineCmd = env.BuddyLine(characters.MoodGreeting,
		fmt.Sprintf("The learner just opened the app. It is %s (%s).", clock.FormatHM(t.Hour(), t.Minute()), period.Period))

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "🕐 What Time Is It?", Detail: "See the clock right now", Action: func() tea.Cmd {
			return router.Go(router.NavigateMsg{To: router.Clock})
		}},
		{Label: "📚 Learn", Detail: "Lessons about telling time", Action: func() tea.Cmd {
			return router.Go(router.NavigateMsg{To: router.Learning})
		}},
		{Label: "⭐ Quiz", Detail: "Test what you know", Action: func() tea.Cmd {
			return router.Go(router.StartQuizMsg{})
		}},
		{Label: "🔄 Start Fresh", Detail: "Forget everything and start over", Action: h.askStartFresh},
		{Label: "👋 Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *Screen) Title() string { return "Home" }

func (h *Screen) Init() tea.Cmd {
	return tea.Batch(clock.Tick(h.tickID), h.lineCmd)
}

// Line returns the buddy's greeting as currently shown.
func (h *Screen) Line() string { return h.line }

// Confirming reports whether the Start Fresh question is open.
func (h *Screen) Confirming() bool { return h.confirm != nil }

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clock.TickMsg:
		if msg.ID != h.tickID {
			return h, nil
		}
		h.now = clockTime{msg.Time.Hour(), msg.Time.Minute()}
		return h, clock.Tick(h.tickID)

	case buddy.LineMsg:
		if msg.Key == h.lineKey {
			h.line = msg.Line.Text
		}
		return h, nil

	case tea.KeyPressMsg:
		if h.confirm != nil {
			if msg.String() == "esc" {
				h.confirm = nil
				return h, nil
			}
			row, cmd := h.confirm.Update(msg)
			if h.confirm != nil {
				*h.confirm = row
			}
			return h, cmd
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) askStartFresh() tea.Cmd {
	row := components.NewButtonRow(
		components.Button{Label: "Keep Playing", OnPress: func() tea.Cmd {
			h.confirm = nil
			return nil
		}},
		components.Button{Label: "Start Fresh", OnPress: h.startFresh},
	)
	h.confirm = &row
	h.err = ""
	return nil
}

func (h *Screen) startFresh() tea.Cmd {
	h.confirm = nil
	if err := h.env.Store.DeleteUser(h.env.Ctx()); err != nil {
		h.env.Log("home").Error("delete user", zap.Error(err))
		h.err = "Hmm, that didn't work. Please try again."
		return nil
	}
	h.env.Log("home").Info("user deleted")
	return router.Go(router.ResetMsg{})
}

func (h *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	who := h.env.Learner()
	c := h.env.Character()
	period := clock.ContextFor(h.now.hour)

	greeting := theme.Title.Render(fmt.Sprintf("%s %s, %s!", period.Emoji, strings.TrimSuffix(period.Greeting, "!"), who.Name))
	now := theme.Subtitle.Render("It's " + clock.FormatHM(h.now.hour, h.now.minute))

	done := len(h.env.Completed())
	stats := []string{
		components.NewProgressBar("Lessons", done, lessons.Count(), cw-4).View(),
		lipgloss.NewStyle().Foreground(theme.Star).Render(fmt.Sprintf("⭐ %d stars", who.Stars)),
	}
	if who.Streak > 0 {
		stats = append(stats, lipgloss.NewStyle().Foreground(theme.Streak).
			Render(fmt.Sprintf("🔥 %d day streak!", who.Streak)))
	}

	sections := []string{greeting, now}
	if !layout.IsCompactHeight(height + 6) {
		sections = append(sections, "", RenderMascot(MascotFor(who.Streak, h.now.hour)))
	}
	sections = append(sections,
		"",
		components.Speech(c.Emoji, c.FirstName(), h.line, theme.Hex(c.Color), cw),
		"",
		components.Card(lipgloss.JoinVertical(lipgloss.Center, stats...), cw, nil),
		"",
	)

	if h.confirm != nil {
		sections = append(sections,
			theme.Body.Bold(true).Render("Start over? Your stars and lessons will be gone."),
			"",
			h.confirm.View(),
		)
	} else {
		sections = append(sections, h.menu.View())
	}
	if h.err != "" {
		sections = append(sections, "", theme.Incorrect.Render(h.err))
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (h *Screen) KeyHints() []layout.KeyHint {
	if h.confirm != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
