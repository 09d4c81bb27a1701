// Package lesson walks the learner through one lesson a step at a time.
package lesson

import (
	"fmt"
	"image/color"
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

// Screen shows one lesson.
type Screen struct {
	env    *screens.Env
	lesson lessons.Lesson
	ok     bool
	step   int

	finished bool
	buttons  components.ButtonRow
	line     string
	lineKey  string
	err      string
}

var _ screen.Screen = (*Screen)(nil)

// New opens lesson id. A lesson that does not exist or is still locked
// shows a short message instead of its steps.
func New(env *screens.Env, id int) *Screen {
	l, ok := lessons.Get(id)
	if ok && !lessons.IsUnlocked(id, env.Completed()) {
		ok = false
	}
	return &Screen{env: env, lesson: l, ok: ok}
}

func (s *Screen) Title() string {
	if !s.ok {
		return "Lesson"
	}
	return s.lesson.Title
}

func (s *Screen) Init() tea.Cmd { return nil }

// Step returns the zero-based index of the step on screen.
func (s *Screen) Step() int { return s.step }

// Finished reports whether the celebration is showing.
func (s *Screen) Finished() bool { return s.finished }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case buddy.LineMsg:
		if msg.Key == s.lineKey {
			s.line = msg.Line.Text
		}
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return s, router.Go(router.LeaveLessonMsg{})
		}
		if !s.ok {
			return s, nil
		}
		if s.finished {
			var cmd tea.Cmd
			s.buttons, cmd = s.buttons.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "right", "l", "enter", "space":
			if s.step < len(s.lesson.Steps)-1 {
				s.step++
				return s, nil
			}
			return s, s.finish()
		case "left", "h", "backspace":
			if s.step > 0 {
				s.step--
			}
		}
	}
	return s, nil
}

// finish records the lesson and awards its stars. Stars are given again
// when a lesson is repeated.
func (s *Screen) finish() tea.Cmd {
	ctx := s.env.Ctx()
	log := s.env.Log("lesson").With(zap.Int("lesson", s.lesson.ID))
	if err := s.env.Store.CompleteLesson(ctx, s.lesson.ID); err != nil {
		log.Error("complete lesson", zap.Error(err))
		s.err = "Oops, we couldn't save your progress. Try again!"
		return nil
	}
	if err := s.env.Store.AddStars(ctx, lessons.StarsPerLesson); err != nil {
		log.Error("add stars", zap.Error(err))
	}
	log.Info("lesson completed")

	s.err = ""
	s.finished = true
	id := s.lesson.ID
	s.buttons = components.NewButtonRow(
		components.Button{Label: "Take the Quiz", OnPress: func() tea.Cmd {
			return router.Go(router.StartQuizMsg{LessonID: id})
		}},
		components.Button{Label: "Back to Lessons", OnPress: func() tea.Cmd {
			return router.Go(router.LeaveLessonMsg{})
		}},
	)

	var cmd tea.Cmd
	s.line, s.lineKey, cmd = s.env.BuddyLine(characters.MoodCelebration,
		fmt.Sprintf("The learner just finished the lesson %q and earned %d stars.", s.lesson.Title, lessons.StarsPerLesson))
	return cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if !s.ok {
		return components.Center(lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("🔒 This lesson isn't open yet"),
			"",
			theme.Hint.Render("press esc to go back"),
		), width, height)
	}
	if s.finished {
		return s.viewFinished(cw, width, height)
	}

	accent := theme.Hex(s.lesson.Color)
	st := s.lesson.Steps[s.step]

	head := lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(fmt.Sprintf("%s Step %d of %d: %s", s.lesson.Icon, s.step+1, len(s.lesson.Steps), st.Title))

	inner := components.CardInner(cw)
	line := func(style lipgloss.Style, text string) string {
		return style.Width(inner).Align(lipgloss.Center).Render(text)
	}

	body := []string{line(theme.Body, st.Content)}
	if face := timeFace(st.TimeExample, accent, inner); face != "" {
		body = append(body, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, face))
	}
	if st.FunFact != "" {
		body = append(body, "", line(lipgloss.NewStyle().Foreground(theme.Star), "💡 Fun fact: "+st.FunFact))
	}
	if st.Hint != "" {
		body = append(body, "", line(theme.Hint, "👉 "+st.Hint))
	}
	if st.Kind == lessons.StepPractice {
		body = append(body, "", line(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			"✏️  Practice time! Look closely and say the answer out loud."))
	}

	sections := []string{
		head,
		"",
		components.Card(lipgloss.JoinVertical(lipgloss.Left, body...), cw, accent),
	}
	if st.CharacterMessage != "" {
		c := s.env.Character()
		sections = append(sections, "", components.Speech(c.Emoji, c.FirstName(), st.CharacterMessage, theme.Hex(c.Color), cw))
	}
	sections = append(sections, "", s.stepDots(accent))
	if s.err != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.err))
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (s *Screen) viewFinished(cw, width, height int) string {
	c := s.env.Character()
	sections := []string{
		theme.Title.Render("🎉 You finished " + s.lesson.Title + "!"),
		"",
		components.StarRow(lessons.StarsPerLesson, lessons.StarsPerLesson),
		theme.Subtitle.Render(fmt.Sprintf("+%d stars", lessons.StarsPerLesson)),
		"",
		components.Speech(c.Emoji, c.FirstName(), s.line, theme.Hex(c.Color), cw),
		"",
		s.buttons.View(),
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (s *Screen) stepDots(accent color.Color) string {
	var b strings.Builder
	for i := range s.lesson.Steps {
		if i > 0 {
			b.WriteString(" ")
		}
		if i <= s.step {
			b.WriteString(lipgloss.NewStyle().Foreground(accent).Render("●"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return b.String()
}

// timeFace draws example, an "H:MM" time, as a face no wider than width
// with its reading underneath. It returns "" when there is none or it does
// not parse.
func timeFace(example string, c color.Color, width int) string {
	if example == "" {
		return ""
	}
	h, m, err := clock.Parse(example)
	if err != nil {
		return ""
	}
	radius := 5
	if width < 4*radius+1 {
		radius = 4
	}
	face := strings.Join(clock.Face(h, m, radius), "\n")
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(c).Render(face),
		theme.Subtitle.Render(example+" · "+clock.Words(h, m)))
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.finished {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Lessons"},
		}
	}
	return []layout.KeyHint{
		{Key: "←", Description: "Back"},
		{Key: "→/Enter", Description: "Next"},
		{Key: "Esc", Description: "Lessons"},
	}
}
