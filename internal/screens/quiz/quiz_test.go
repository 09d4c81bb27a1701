package quiz

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tototime/internal/characters"
	qz "github.com/abhisek/tototime/internal/quiz"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screens/screenstest"
)

// pick presses the number key for option i.
func pick(s *Screen, i int) {
	s.Update(screenstest.Key(fmt.Sprint(i + 1)))
}

// wrongOptions returns every option index of the current question except
// the correct one.
func wrongOptions(s *Screen) []int {
	q := s.Session().Current()
	var out []int
	for i := range q.Options {
		if i != q.Correct {
			out = append(out, i)
		}
	}
	return out
}

func TestLessonQuizScenario(t *testing.T) {
	env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda))
	s := New(env, 1)
	require.NotNil(t, s.Session())
	require.Equal(t, 5, s.Session().Total())

	var finished []tea.Msg
	for i := range 5 {
		if i == 2 {
			for _, w := range wrongOptions(s)[:qz.MaxAttempts] {
				pick(s, w)
				s.Update(screenstest.Key("enter"))
			}
			require.Equal(t, qz.PhaseRevealed, s.Session().Phase())
			assert.Contains(t, s.Feedback(), "The answer was")
		} else {
			pick(s, s.Session().Current().Correct)
			s.Update(screenstest.Key("enter"))
			require.Equal(t, qz.PhaseCorrect, s.Session().Phase())
		}
		_, cmd := s.Update(screenstest.Key("enter"))
		finished = screenstest.Msgs(cmd)
	}

	msg, ok := screenstest.Find[router.QuizFinishedMsg](finished)
	require.True(t, ok)
	assert.Equal(t, router.QuizResults{Correct: 4, Total: 5, LessonID: 1}, msg.Results)

	u, _ := env.Store.User()
	assert.Equal(t, 3, u.Progress.TotalStars)
	require.Len(t, u.Progress.QuizScores, 1)
	assert.Equal(t, 4, u.Progress.QuizScores[0].Score)
	assert.Equal(t, 5, u.Progress.QuizScores[0].TotalQuestions)
	assert.Equal(t, s.Session().ID(), u.Progress.QuizScores[0].SessionID)
	assert.True(t, env.Clock().Equal(u.Progress.QuizScores[0].Date), "dated by the screen clock")
}

func TestWrongAnswerFeedback(t *testing.T) {
	s := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)), 1)
	wrong := wrongOptions(s)

	pick(s, wrong[0])
	s.Update(screenstest.Key("enter"))
	assert.Contains(t, s.Feedback(), "2 tries left.")
	assert.True(t, s.Session().Rejected(wrong[0]))
	pending, ok := s.Session().Pending()
	require.True(t, ok)
	assert.NotEqual(t, wrong[0], pending, "cursor moves off the rejected option")

	pick(s, wrong[1])
	s.Update(screenstest.Key("enter"))
	assert.Contains(t, s.Feedback(), "Last chance!")

	// A rejected option cannot be chosen again.
	pick(s, wrong[0])
	pending, _ = s.Session().Pending()
	assert.NotEqual(t, wrong[0], pending)
}

func TestCursorMovesSelection(t *testing.T) {
	s := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)), 1)
	s.Update(screenstest.Key("down"))
	assert.Equal(t, 0, s.Session().Index())
	pending, ok := s.Session().Pending()
	require.True(t, ok)
	assert.Equal(t, 1, pending)
}

func TestResumeKeepsQuestionsWithNewID(t *testing.T) {
	env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda))
	first := New(env, 2)
	firstID := first.Session().ID()
	prompt := first.Session().Current().Prompt

	again := Resume(env, first.Session())
	assert.NotEqual(t, firstID, again.Session().ID())
	assert.Equal(t, prompt, again.Session().Current().Prompt)
	assert.Equal(t, 0, again.Session().Index())
	assert.Equal(t, "Lesson Quiz", again.Title())
}

func TestGeneralQuizWithoutLessonsUsesStarter(t *testing.T) {
	s := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)), 0)
	require.NotNil(t, s.Session())
	assert.Equal(t, qz.StarterQuizSize, s.Session().Total())
	assert.Equal(t, qz.StarterLessonID, s.Session().Current().LessonID)
	assert.Contains(t, s.View(100, 40), "Question 1 of 5")
}

func TestNoEligibleQuestions(t *testing.T) {
	s := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)), 99)
	assert.Nil(t, s.Session())
	assert.Contains(t, s.View(100, 40), "Complete some lessons first!")

	_, cmd := s.Update(screenstest.Key("enter"))
	nav, ok := screenstest.Find[router.NavigateMsg](screenstest.Msgs(cmd))
	require.True(t, ok)
	assert.Equal(t, router.Learning, nav.To)
}

func TestEscAbandonsWithoutRecording(t *testing.T) {
	env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda))
	s := New(env, 1)
	pick(s, s.Session().Current().Correct)
	s.Update(screenstest.Key("enter"))

	_, cmd := s.Update(screenstest.Key("esc"))
	_, ok := screenstest.Find[router.BackHomeMsg](screenstest.Msgs(cmd))
	require.True(t, ok)
	u, _ := env.Store.User()
	assert.Empty(t, u.Progress.QuizScores)
}

func TestRejectedOptionKeyKeepsCursorOnPending(t *testing.T) {
	s := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)), 1)
	wrong := wrongOptions(s)[0]

	pick(s, wrong)
	s.Update(screenstest.Key("enter"))
	pending, ok := s.Session().Pending()
	require.True(t, ok)

	// No View in between: the option list must already know wrong is out.
	pick(s, wrong)
	assert.Equal(t, pending, s.choice.Cursor)
	got, _ := s.Session().Pending()
	assert.Equal(t, pending, got)

	s.Update(screenstest.Key("enter"))
	assert.Equal(t, 2, s.Session().Attempts())
	if s.Session().Phase() == qz.PhaseCorrect {
		assert.Equal(t, s.Session().Current().Correct, s.choice.Cursor)
	} else {
		assert.True(t, s.Session().Rejected(pending))
	}
}
