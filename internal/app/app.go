// Package app wires the screens into a Bubble Tea program.
package app

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/progress"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/screens/characterselect"
	"github.com/abhisek/tototime/internal/screens/clockscreen"
	"github.com/abhisek/tototime/internal/screens/home"
	"github.com/abhisek/tototime/internal/screens/learning"
	"github.com/abhisek/tototime/internal/screens/lesson"
	quizscreen "github.com/abhisek/tototime/internal/screens/quiz"
	"github.com/abhisek/tototime/internal/screens/results"
	"github.com/abhisek/tototime/internal/screens/welcome"
	"github.com/abhisek/tototime/internal/ui/layout"
)

// Options are the dependencies of a running app.
type Options struct {
	Store  *progress.Store
	Buddy  *buddy.Service
	Logger *zap.Logger

	// Now and Rand default to the wall clock and a time-seeded source.
	Now  func() time.Time
	Rand *rand.Rand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screens.Env
	router *router.Router
	width  int
	height int
}

// newAppModel opens on the welcome screen for a new learner and on home
// otherwise.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		seed := uint64(opts.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if opts.Buddy == nil {
		opts.Buddy = buddy.New(nil)
	}
	env := &screens.Env{
		Store:  opts.Store,
		Buddy:  opts.Buddy,
		Logger: opts.Logger,
		Now:    opts.Now,
		Rand:   opts.Rand,
	}
	initial := router.Initial(!opts.Store.IsNewUser())
	return AppModel{
		env:    env,
		router: router.New(initial, newFactory(env), opts.Logger),
	}
}

// newFactory builds screens for router states. The streak is checked the
// first time home is shown after launch or after a new learner signs up.
func newFactory(env *screens.Env) router.Factory {
	streakChecked := false
	return func(st router.State, prev screen.Screen) screen.Screen {
		switch st.Screen {
		case router.Welcome:
			streakChecked = false
			return welcome.New(st.PendingName)
		case router.CharacterSelect:
			return characterselect.New(env, st.PendingName)
		case router.Clock:
			return clockscreen.New(env)
		case router.Learning:
			return learning.New(env)
		case router.Lesson:
			return lesson.New(env, st.LessonID)
		case router.Quiz:
			if r, ok := prev.(*results.Screen); ok && r.Session() != nil {
				return quizscreen.Resume(env, r.Session())
			}
			return quizscreen.New(env, st.LessonID)
		case router.Results:
			var r router.QuizResults
			if st.Results != nil {
				r = *st.Results
			}
			if q, ok := prev.(*quizscreen.Screen); ok {
				return results.New(env, r, q.Session())
			}
			return results.New(env, r, nil)
		default:
			if !streakChecked {
				streakChecked = true
				if err := env.Store.UpdateStreak(env.Ctx()); err != nil {
					env.Log("app").Error("update streak", zap.Error(err))
				}
			}
			return home.New(env)
		}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.content())
	v.AltScreen = true
	return v
}

// content draws the whole window: nothing until the size is known, a
// notice when the terminal is too small, otherwise header, screen and
// footer.
func (m AppModel) content() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.env.Learner(), m.width)

	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	body := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
