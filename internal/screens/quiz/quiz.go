// Package quiz is the question-and-answer screen. The attempt rules live
// in the quiz engine; this screen only draws them and forwards keys.
package quiz

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/clock"
	qz "github.com/abhisek/tototime/internal/quiz"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/ui/components"
	"github.com/abhisek/tototime/internal/ui/layout"
	"github.com/abhisek/tototime/internal/ui/theme"
)

// Screen runs one quiz session.
type Screen struct {
	env      *screens.Env
	lessonID int
	session  *qz.Session
	choice   components.MultiChoice
	feedback string
	outcome  qz.Outcome
}

var _ screen.Screen = (*Screen)(nil)

// New picks questions for lessonID (0 for a general quiz) and starts a
// session. When nothing is eligible the screen says so instead.
func New(env *screens.Env, lessonID int) *Screen {
	s := &Screen{env: env, lessonID: lessonID}
	questions := qz.Select(qz.Bank(), lessonID, env.Completed(), env.Rand)
	sess, err := qz.NewSession(questions, lessonID, env.Store, qz.WithClock(env.Clock))
	if err != nil {
		if !errors.Is(err, qz.ErrNoQuestions) {
			env.Log("quiz").Error("start session", zap.Error(err))
		}
		return s
	}
	env.Log("quiz").Debug("session started",
		zap.String("session", sess.ID()),
		zap.Int("lesson", lessonID),
		zap.Int("questions", sess.Total()))
	s.session = sess
	s.loadQuestion()
	return s
}

// Resume starts sess over on the same questions under a new id.
func Resume(env *screens.Env, sess *qz.Session) *Screen {
	sess.Retry()
	env.Log("quiz").Debug("session retried", zap.String("session", sess.ID()))
	s := &Screen{env: env, lessonID: sess.LessonID(), session: sess}
	s.loadQuestion()
	return s
}

// Session returns the running session, nil when there were no questions.
func (s *Screen) Session() *qz.Session { return s.session }

// Feedback returns the message shown under the options.
func (s *Screen) Feedback() string { return s.feedback }

func (s *Screen) Title() string {
	if s.lessonID > 0 {
		return "Lesson Quiz"
	}
	return "Quiz"
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) loadQuestion() {
	s.choice = components.NewMultiChoice(s.session.Current().Options)
	s.feedback = ""
	s.outcome = qz.OutcomeNone
	s.session.SelectAnswer(0)
	s.syncChoice()
}

// syncChoice copies the session's answer state into the option list so the
// cursor skips rejected options.
func (s *Screen) syncChoice() {
	s.choice.States = s.states()
	s.choice.Locked = s.session.Phase() != qz.PhaseAnswering
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if key.String() == "esc" {
		return s, router.Go(router.BackHomeMsg{})
	}

	if s.session == nil {
		if key.String() == "enter" || key.String() == "space" {
			return s, router.Go(router.NavigateMsg{To: router.Learning})
		}
		return s, nil
	}

	if s.session.Phase() != qz.PhaseAnswering {
		if key.String() == "enter" || key.String() == "space" {
			return s, s.advance()
		}
		return s, nil
	}

	switch key.String() {
	case "enter", "space":
		if _, ok := s.session.Pending(); !ok {
			s.session.SelectAnswer(s.choice.Cursor)
		}
		s.confirm()
	default:
		s.syncChoice()
		s.choice, _ = s.choice.Update(msg)
		s.session.SelectAnswer(s.choice.Cursor)
		s.syncChoice()
	}
	return s, nil
}

func (s *Screen) confirm() {
	s.outcome = s.session.ConfirmAnswer()
	q := s.session.Current()
	switch s.outcome {
	case qz.OutcomeCorrect:
		s.feedback = "🎉 That's right! " + q.Explanation
	case qz.OutcomeWrong:
		msg := qz.RetryMessages[s.env.Rand.IntN(len(qz.RetryMessages))]
		if s.session.LastChance() {
			s.feedback = msg + " Last chance!"
		} else {
			s.feedback = fmt.Sprintf("%s %d tries left.", msg, s.session.AttemptsRemaining())
		}
		s.moveOffRejected()
	case qz.OutcomeRevealed:
		s.feedback = fmt.Sprintf("The answer was %q. %s", q.Options[q.Correct], q.Explanation)
	}
	s.syncChoice()
}

// moveOffRejected puts the cursor on the next option still in play.
func (s *Screen) moveOffRejected() {
	n := len(s.choice.Options)
	for i := 1; i <= n; i++ {
		next := (s.choice.Cursor + i) % n
		if !s.session.Rejected(next) {
			s.choice.Cursor = next
			s.session.SelectAnswer(next)
			return
		}
	}
}

func (s *Screen) advance() tea.Cmd {
	res, err := s.session.Advance(s.env.Ctx())
	if err != nil {
		// The run is scored even when saving fails.
		s.env.Log("quiz").Error("advance", zap.String("session", s.session.ID()), zap.Error(err))
	}
	if res == nil {
		if err == nil {
			s.loadQuestion()
		}
		return nil
	}
	s.env.Log("quiz").Info("quiz finished",
		zap.String("session", res.SessionID),
		zap.Int("lesson", res.LessonID),
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
		zap.Int("stars", res.Stars))
	return router.Go(router.QuizFinishedMsg{Results: router.QuizResults{
		Correct:  res.Correct,
		Total:    res.Total,
		LessonID: res.LessonID,
	}})
}

func (s *Screen) states() []components.ChoiceState {
	q := s.session.Current()
	pending, hasPending := s.session.Pending()
	phase := s.session.Phase()

	states := make([]components.ChoiceState, len(q.Options))
	for i := range states {
		switch {
		case s.session.Rejected(i):
			states[i] = components.ChoiceRejected
		case phase != qz.PhaseAnswering && i == q.Correct:
			states[i] = components.ChoiceCorrect
		case phase != qz.PhaseAnswering:
			states[i] = components.ChoiceDimmed
		case hasPending && i == pending:
			states[i] = components.ChoicePending
		}
	}
	return states
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.session == nil {
		c := s.env.Character()
		return components.Center(lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("📚 Complete some lessons first!"),
			"",
			components.Speech(c.Emoji, c.FirstName(), "Let's learn something together, then come back for a quiz!", theme.Hex(c.Color), cw),
			"",
			theme.Hint.Render("press enter to see the lessons"),
		), width, height)
	}

	q := s.session.Current()
	sections := []string{
		components.NewProgressBar(fmt.Sprintf("Question %d of %d", s.session.Index()+1, s.session.Total()),
			s.session.Index(), s.session.Total(), cw).View(),
		"",
		theme.Body.Bold(true).Width(cw).Align(lipgloss.Center).Render(q.Prompt),
	}
	if q.TimeShown != "" {
		if h, m, err := clock.Parse(q.TimeShown); err == nil {
			face := strings.Join(clock.Face(h, m, 4), "\n")
			sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Secondary).Render(face))
		}
	}

	sections = append(sections, "", s.choice.View())

	if s.feedback != "" {
		style := lipgloss.NewStyle().Foreground(theme.Accent)
		switch s.outcome {
		case qz.OutcomeCorrect:
			style = theme.Correct
		case qz.OutcomeRevealed:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		sections = append(sections, style.Width(cw).Align(lipgloss.Center).Render(s.feedback))
	}
	if s.session.Phase() != qz.PhaseAnswering {
		next := "press enter for the next question"
		if s.session.IsLast() {
			next = "press enter to see how you did"
		}
		sections = append(sections, "", theme.Hint.Render(next))
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.session != nil && s.session.Phase() == qz.PhaseAnswering {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}
