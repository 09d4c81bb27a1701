package characterselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screens/screenstest"
)

func TestGridNavigation(t *testing.T) {
	s := New(screenstest.NewEnv(t), "Mia")
	assert.Equal(t, characters.Bunny, s.Selected().ID)

	s.Update(screenstest.Key("right"))
	assert.Equal(t, characters.Panda, s.Selected().ID)
	s.Update(screenstest.Key("down"))
	assert.Equal(t, characters.Horse, s.Selected().ID)
	s.Update(screenstest.Key("down"))
	assert.Equal(t, characters.Horse, s.Selected().ID, "bottom row stays put")
	s.Update(screenstest.Key("left"))
	assert.Equal(t, characters.Monkey, s.Selected().ID)
	s.Update(screenstest.Key("up"))
	assert.Equal(t, characters.Bunny, s.Selected().ID)
	s.Update(screenstest.Key("left"))
	assert.Equal(t, characters.Octopus, s.Selected().ID, "wraps around")
}

func TestChooseCreatesUser(t *testing.T) {
	env := screenstest.NewEnv(t)
	s := New(env, "Mia")
	s.Update(screenstest.Key("right"))

	_, cmd := s.Update(screenstest.Key("enter"))
	_, ok := screenstest.Find[router.UserCreatedMsg](screenstest.Msgs(cmd))
	require.True(t, ok)

	u, ok := env.Store.User()
	require.True(t, ok)
	assert.Equal(t, "Mia", u.Name)
	assert.Equal(t, characters.Panda, u.Character)
	assert.Zero(t, u.Progress.TotalStars)
}

func TestEscGoesBackToWelcome(t *testing.T) {
	s := New(screenstest.NewEnv(t), "Mia")
	_, cmd := s.Update(screenstest.Key("esc"))
	nav, ok := screenstest.Find[router.NavigateMsg](screenstest.Msgs(cmd))
	require.True(t, ok)
	assert.Equal(t, router.Welcome, nav.To)
}

func TestViewShowsRosterAndGreeting(t *testing.T) {
	s := New(screenstest.NewEnv(t), "Mia")
	view := s.View(100, 30)
	for _, c := range characters.All() {
		assert.Contains(t, view, c.Name)
	}
	assert.Contains(t, view, "Hi Mia!")
}
