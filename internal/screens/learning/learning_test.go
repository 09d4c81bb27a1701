package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screens/screenstest"
)

func TestCursorStartsOnNextLesson(t *testing.T) {
	fresh := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)))
	assert.Equal(t, 1, fresh.Selected().ID)

	along := New(screenstest.NewEnv(t,
		screenstest.WithUser("Mia", characters.Panda),
		screenstest.WithCompleted(1, 2)))
	assert.Equal(t, 3, along.Selected().ID)
}

func TestEnterUnlockedLesson(t *testing.T) {
	s := New(screenstest.NewEnv(t,
		screenstest.WithUser("Mia", characters.Panda),
		screenstest.WithCompleted(1)))
	require.Equal(t, 2, s.Selected().ID)

	_, cmd := s.Update(screenstest.Key("enter"))
	msg, ok := screenstest.Find[router.EnterLessonMsg](screenstest.Msgs(cmd))
	require.True(t, ok)
	assert.Equal(t, 2, msg.LessonID)

	// Completed lessons can be opened again.
	s.Update(screenstest.Key("up"))
	_, cmd = s.Update(screenstest.Key("enter"))
	msg, ok = screenstest.Find[router.EnterLessonMsg](screenstest.Msgs(cmd))
	require.True(t, ok)
	assert.Equal(t, 1, msg.LessonID)
}

func TestLockedLessonExplainsPrerequisites(t *testing.T) {
	s := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)))
	for range 7 {
		s.Update(screenstest.Key("down"))
	}
	require.Equal(t, 8, s.Selected().ID)

	_, cmd := s.Update(screenstest.Key("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, s.Notice(), `"Quarter Past and Quarter To"`)
	assert.Contains(t, s.Notice(), `"Counting by Fives"`)
	assert.Contains(t, s.View(100, 40), "Finish")

	s.Update(screenstest.Key("up"))
	assert.Empty(t, s.Notice())
}

func TestViewMarksProgress(t *testing.T) {
	s := New(screenstest.NewEnv(t,
		screenstest.WithUser("Mia", characters.Panda),
		screenstest.WithCompleted(1)))
	view := s.View(100, 40)
	assert.Contains(t, view, "1/8")
	assert.Contains(t, view, "✅")
	assert.Contains(t, view, "🔒")
	assert.Contains(t, view, "Hours")
}

func TestEscGoesHome(t *testing.T) {
	s := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)))
	_, cmd := s.Update(screenstest.Key("esc"))
	_, ok := screenstest.Find[router.BackHomeMsg](screenstest.Msgs(cmd))
	assert.True(t, ok)
}
