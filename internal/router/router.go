package router

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/screen"
)

// Navigation messages. Screens emit them with Go; the Router applies
// the matching State transition and swaps the active screen.
type (
	NavigateMsg        struct{ To Name }
	ChooseCharacterMsg struct{ Name string }
	UserCreatedMsg     struct{}
	EnterLessonMsg     struct{ LessonID int }
	LeaveLessonMsg     struct{}
	StartQuizMsg       struct{ LessonID int }
	QuizFinishedMsg    struct{ Results QuizResults }
	RetryQuizMsg       struct{}
	BackHomeMsg        struct{}
	ResetMsg           struct{}
)

// Go wraps a navigation message in a command.
func Go(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Factory builds the screen for a state. prev is the screen being left,
// or nil for the first screen.
type Factory func(st State, prev screen.Screen) screen.Screen

// Router hosts the active screen.
type Router struct {
	state   State
	active  screen.Screen
	factory Factory
	logger  *zap.Logger
}

// New builds the screen for the initial state. Call Init on the returned
// Router to start it.
func New(initial State, factory Factory, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		state:   initial,
		active:  factory(initial, nil),
		factory: factory,
		logger:  logger.Named("router"),
	}
}

func (r *Router) Init() tea.Cmd { return r.active.Init() }

func (r *Router) State() State { return r.state }

func (r *Router) Active() screen.Screen { return r.active }

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if next, ok := r.transition(msg); ok {
		return r.enter(next)
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

func (r *Router) transition(msg tea.Msg) (State, bool) {
	s := r.state
	switch msg := msg.(type) {
	case NavigateMsg:
		return s.Navigate(msg.To), true
	case ChooseCharacterMsg:
		return s.ChooseCharacter(msg.Name), true
	case UserCreatedMsg:
		return s.UserCreated(), true
	case EnterLessonMsg:
		return s.EnterLesson(msg.LessonID), true
	case LeaveLessonMsg:
		return s.LeaveLesson(), true
	case StartQuizMsg:
		return s.StartQuiz(msg.LessonID), true
	case QuizFinishedMsg:
		return s.ShowResults(msg.Results), true
	case RetryQuizMsg:
		return s.RetryQuiz(), true
	case BackHomeMsg:
		return s.BackHome(), true
	case ResetMsg:
		return s.Reset(), true
	}
	return s, false
}

func (r *Router) enter(next State) tea.Cmd {
	r.logger.Debug("navigate",
		zap.String("from", string(r.state.Screen)),
		zap.String("to", string(next.Screen)),
		zap.Int("lesson", next.LessonID))

	prev := r.active
	r.state = next
	r.active = r.factory(next, prev)
	return r.active.Init()
}

func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}
