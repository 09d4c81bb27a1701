package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screens/screenstest"
)

func TestViewShowsScoreAndTier(t *testing.T) {
	tests := []struct {
		name    string
		results router.QuizResults
		want    []string
	}{
		{
			name:    "superstar",
			results: router.QuizResults{Correct: 4, Total: 5, LessonID: 1},
			want:    []string{"What is a Clock? quiz complete!", "4 out of 5 right", "80%", "★★★", "superstar"},
		},
		{
			name:    "general quiz",
			results: router.QuizResults{Correct: 2, Total: 3},
			want:    []string{"Quiz complete!", "67%", "★★", "getting really good"},
		},
		{
			name:    "keep trying",
			results: router.QuizResults{Correct: 1, Total: 5, LessonID: 2},
			want:    []string{"20%", "☆☆☆", "Every expert was once a beginner"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Bear))
			view := New(env, tt.results, nil).View(100, 40)
			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
			assert.Contains(t, view, "Bruno:")
		})
	}
}

func TestBuddyMoodFollowsScore(t *testing.T) {
	env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Bear))
	bruno := characters.MustGet(characters.Bear)

	good := New(env, router.QuizResults{Correct: 3, Total: 5}, nil)
	assert.Contains(t, bruno.Celebrations, good.line)

	low := New(env, router.QuizResults{Correct: 2, Total: 5}, nil)
	assert.Contains(t, bruno.Encouragements, low.line)

	low.Update(buddy.LineMsg{Key: low.lineKey, Line: buddy.Line{Text: "You'll get it next time!"}})
	assert.Equal(t, "You'll get it next time!", low.line)
}

func TestButtons(t *testing.T) {
	env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Bear))

	s := New(env, router.QuizResults{Correct: 1, Total: 5}, nil)
	_, cmd := s.Update(screenstest.Key("enter"))
	_, ok := screenstest.Find[router.RetryQuizMsg](screenstest.Msgs(cmd))
	require.True(t, ok)

	s = New(env, router.QuizResults{Correct: 1, Total: 5}, nil)
	s.Update(screenstest.Key("tab"))
	_, cmd = s.Update(screenstest.Key("enter"))
	_, ok = screenstest.Find[router.BackHomeMsg](screenstest.Msgs(cmd))
	require.True(t, ok)

	_, cmd = s.Update(screenstest.Key("esc"))
	_, ok = screenstest.Find[router.BackHomeMsg](screenstest.Msgs(cmd))
	assert.True(t, ok)
}
