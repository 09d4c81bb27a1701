// Package results shows how a finished quiz went.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/lessons"
	"github.com/abhisek/tototime/internal/quiz"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/ui/components"
	"github.com/abhisek/tototime/internal/ui/layout"
	"github.com/abhisek/tototime/internal/ui/theme"
)

// Screen displays a quiz result and offers a retry.
type Screen struct {
	env     *screens.Env
	results router.QuizResults
	session *quiz.Session
	buttons components.ButtonRow

	line    string
	lineKey string
	lineCmd tea.Cmd
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New builds the screen. session is the finished run, kept so Try Again
// can replay the same questions; it may be nil.
func New(env *screens.Env, r router.QuizResults, session *quiz.Session) *Screen {
	s := &Screen{env: env, results: r, session: session}
	s.buttons = components.NewButtonRow(
		components.Button{Label: "Try Again", OnPress: func() tea.Cmd { return router.Go(router.RetryQuizMsg{}) }},
		components.Button{Label: "Back to Home", OnPress: func() tea.Cmd { return router.Go(router.BackHomeMsg{}) }},
	)

	mood := characters.MoodEncouragement
	if s.Percentage() >= 60 {
		mood = characters.MoodCelebration
	}
	s.line, s.lineKey, s.lineCmd = env.BuddyLine(mood,
		fmt.Sprintf("The learner finished a quiz with %d of %d right (%d%%).", r.Correct, r.Total, s.Percentage()))
	return s
}

// Session returns the finished run, or nil.
func (s *Screen) Session() *quiz.Session { return s.session }

// Percentage is the rounded score shown on screen.
func (s *Screen) Percentage() int { return quiz.Percentage(s.results.Correct, s.results.Total) }

func (s *Screen) Init() tea.Cmd { return s.lineCmd }

func (s *Screen) Title() string { return "Quiz Results" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case buddy.LineMsg:
		if msg.Key == s.lineKey {
			s.line = msg.Line.Text
		}
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return s, router.Go(router.BackHomeMsg{})
		}
		var cmd tea.Cmd
		s.buttons, cmd = s.buttons.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	r := s.results
	pct := s.Percentage()
	tier := quiz.TierFor(pct)
	stars := quiz.Stars(r.Correct, r.Total)
	cw := components.ContentWidth(width)
	center := func(str string) string { return lipgloss.PlaceHorizontal(cw, lipgloss.Center, str) }

	var b strings.Builder

	title := "Quiz complete!"
	if l, ok := lessons.Get(r.LessonID); ok {
		title = l.Title + " quiz complete!"
	}
	b.WriteString(center(theme.Title.Render(tier.Emoji + " " + title)))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d out of %d right  ·  %d%%", r.Correct, r.Total, pct))))
	b.WriteString("\n\n")

	b.WriteString(center(components.StarRow(stars, 3)))
	b.WriteString("\n")
	b.WriteString(center(theme.Subtitle.Render(tier.Message)))
	b.WriteString("\n\n")

	c := s.env.Character()
	b.WriteString(components.Speech(c.Emoji, c.FirstName(), s.line, theme.Hex(c.Color), cw))
	b.WriteString("\n\n")
	b.WriteString(center(s.buttons.View()))

	return components.Center(b.String(), width, height)
}
