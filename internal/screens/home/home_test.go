package home

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/clock"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screens/screenstest"
)

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  tea.Msg
	}{
		{"clock", 0, router.NavigateMsg{To: router.Clock}},
		{"learn", 1, router.NavigateMsg{To: router.Learning}},
		{"quiz", 2, router.StartQuizMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)))
			for range tt.downs {
				h.Update(screenstest.Key("down"))
			}
			_, cmd := h.Update(screenstest.Key("enter"))
			assert.Equal(t, []tea.Msg{tt.want}, screenstest.Msgs(cmd))
		})
	}
}

func TestStartFreshCancel(t *testing.T) {
	env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda))
	h := New(env)
	for range 3 {
		h.Update(screenstest.Key("down"))
	}
	h.Update(screenstest.Key("enter"))
	require.True(t, h.Confirming())
	assert.Contains(t, h.View(100, 40), "Start over?")

	_, cmd := h.Update(screenstest.Key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, h.Confirming())
	assert.False(t, env.Store.IsNewUser())

	h.Update(screenstest.Key("enter"))
	require.True(t, h.Confirming())
	h.Update(screenstest.Key("esc"))
	assert.False(t, h.Confirming())
}

func TestStartFreshDeletesUser(t *testing.T) {
	env := screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda), screenstest.WithStars(6))
	h := New(env)
	for range 3 {
		h.Update(screenstest.Key("down"))
	}
	h.Update(screenstest.Key("enter"))
	h.Update(screenstest.Key("right"))

	_, cmd := h.Update(screenstest.Key("enter"))
	_, ok := screenstest.Find[router.ResetMsg](screenstest.Msgs(cmd))
	require.True(t, ok)
	assert.True(t, env.Store.IsNewUser())
	_, ok = env.Store.User()
	assert.False(t, ok)
}

func TestViewShowsProgress(t *testing.T) {
	env := screenstest.NewEnv(t,
		screenstest.WithUser("Mia", characters.Panda),
		screenstest.WithCompleted(1, 2),
		screenstest.WithStars(6))
	view := New(env).View(100, 40)

	assert.Contains(t, view, "Good Afternoon, Mia!")
	assert.Contains(t, view, "It's 3:04 PM")
	assert.Contains(t, view, "2/8")
	assert.Contains(t, view, "6 stars")
	assert.NotContains(t, view, "day streak")
	assert.Contains(t, view, "Percy:")
}

func TestTickUpdatesTimeAndIgnoresOtherLoops(t *testing.T) {
	h := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)))
	later := time.Date(2026, 3, 10, 18, 30, 0, 0, time.Local)

	_, cmd := h.Update(clock.TickMsg{ID: h.tickID + 1000, Time: later})
	assert.Nil(t, cmd)
	assert.Contains(t, h.View(100, 40), "3:04 PM")

	_, cmd = h.Update(clock.TickMsg{ID: h.tickID, Time: later})
	assert.NotNil(t, cmd)
	assert.Contains(t, h.View(100, 40), "6:30 PM")
}

func TestBuddyLineReplacedOnlyByMatchingKey(t *testing.T) {
	h := New(screenstest.NewEnv(t, screenstest.WithUser("Mia", characters.Panda)))
	static := h.Line()
	require.NotEmpty(t, static)

	h.Update(buddy.LineMsg{Key: "someone-else", Line: buddy.Line{Text: "Not for you"}})
	assert.Equal(t, static, h.Line())

	h.Update(buddy.LineMsg{Key: h.lineKey, Line: buddy.Line{Text: "Hi Mia!", FromModel: true}})
	assert.Equal(t, "Hi Mia!", h.Line())
}

func TestMascotFor(t *testing.T) {
	assert.Equal(t, MascotCelebrating, MascotFor(3, 21))
	assert.Equal(t, MascotSleepy, MascotFor(0, 22))
	assert.Equal(t, MascotSleepy, MascotFor(2, 4))
	assert.Equal(t, MascotIdle, MascotFor(0, 10))
}
