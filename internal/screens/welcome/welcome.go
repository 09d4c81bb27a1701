// Package welcome is the first screen a new learner sees: a short
// animation and a box to type their name in.
package welcome

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/clock"
	"github.com/abhisek/tototime/internal/progress"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/ui/components"
	"github.com/abhisek/tototime/internal/ui/layout"
	"github.com/abhisek/tototime/internal/ui/theme"
)

const tickInterval = 150 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Screen asks for the learner's name.
type Screen struct {
	input components.TextInput
	frame int
	done  bool
}

var _ screen.Screen = (*Screen)(nil)

// New returns the welcome screen, pre-filled with name when the learner
// came back from character selection.
func New(name string) *Screen {
	in := components.NewTextInput("Type your name", progress.MaxNameLength)
	if name != "" {
		in.Model.SetValue(name)
		in.Model.CursorEnd()
	}
	return &Screen{input: in}
}

func (w *Screen) Title() string { return "Welcome" }

func (w *Screen) Init() tea.Cmd {
	return tea.Batch(w.input.Init(), tick())
}

func (w *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		w.frame++
		return w, tick()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *Screen) submit() tea.Cmd {
	name, problem := CheckName(w.input.Value())
	if problem != "" {
		w.input.SetError(problem)
		return nil
	}
	w.done = true
	return router.Go(router.ChooseCharacterMsg{Name: name})
}

// CheckName applies the sign-up rules: 2 to 20 characters after
// trimming. It returns the trimmed name, or a message for the child
// explaining what to fix.
func CheckName(raw string) (name, problem string) {
	name, err := progress.ValidateName(raw)
	switch {
	case errors.Is(err, progress.ErrEmptyName):
		return "", "Please type your name first!"
	case errors.Is(err, progress.ErrNameTooLong):
		return "", "That name is a bit long. Try 20 letters or fewer."
	case err != nil:
		return "", err.Error()
	case utf8.RuneCountInString(name) < progress.MinNameLength:
		return "", "Names need at least 2 letters."
	}
	return name, ""
}

func (w *Screen) View(width, height int) string {
	// The minute hand sweeps once every 12 frames.
	minute := (w.frame * 5) % 60
	face := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(strings.Join(clock.Face(w.frame/12%12, minute, 4), "\n"))

	sections := []string{face, "", RenderBanner(width)}
	if !layout.IsCompactHeight(height + 6) {
		sections = append(sections, "", theme.Subtitle.Render("Learn to tell time with a furry friend!"))
	}
	sections = append(sections,
		"",
		theme.Body.Bold(true).Render("What's your name?"),
		"",
		w.input.View(),
		"",
		theme.Hint.Render("press enter when you're ready"),
	)
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (w *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
