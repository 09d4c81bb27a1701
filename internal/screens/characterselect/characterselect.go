// Package characterselect lets a new learner pick their buddy.
package characterselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/ui/components"
	"github.com/abhisek/tototime/internal/ui/layout"
	"github.com/abhisek/tototime/internal/ui/theme"
)

const columns = 3

// Screen shows the roster as a grid.
type Screen struct {
	env    *screens.Env
	name   string
	roster []characters.Character
	cursor int
	err    string
}

var _ screen.Screen = (*Screen)(nil)

// New returns the picker for the learner called name.
func New(env *screens.Env, name string) *Screen {
	return &Screen{env: env, name: name, roster: characters.All()}
}

func (s *Screen) Title() string { return "Pick a Buddy" }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Selected() characters.Character { return s.roster[s.cursor] }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	n := len(s.roster)
	switch key.String() {
	case "left", "h":
		s.cursor = (s.cursor - 1 + n) % n
	case "right", "l", "tab":
		s.cursor = (s.cursor + 1) % n
	case "up", "k":
		if s.cursor-columns >= 0 {
			s.cursor -= columns
		}
	case "down", "j":
		if s.cursor+columns < n {
			s.cursor += columns
		}
	case "esc":
		return s, router.Go(router.NavigateMsg{To: router.Welcome})
	case "enter", "space":
		return s, s.choose()
	}
	return s, nil
}

func (s *Screen) choose() tea.Cmd {
	c := s.Selected()
	if _, err := s.env.Store.CreateUser(s.env.Ctx(), s.name, c.ID); err != nil {
		s.env.Log("characterselect").Error("create user", zap.Error(err))
		s.err = "Oh no, we couldn't save that. Please try again!"
		return nil
	}
	s.env.Log("characterselect").Info("user created", zap.String("character", string(c.ID)))
	return router.Go(router.UserCreatedMsg{})
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	cell := max((cw-columns*2)/columns, 14)

	var rows []string
	for start := 0; start < len(s.roster); start += columns {
		var cells []string
		for i := start; i < min(start+columns, len(s.roster)); i++ {
			cells = append(cells, s.renderCell(i, cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	c := s.Selected()
	sections := []string{
		theme.Title.Render(fmt.Sprintf("Hi %s! Who will learn with you?", s.name)),
		"",
		lipgloss.JoinVertical(lipgloss.Center, rows...),
		"",
		components.Speech(c.Emoji, c.FirstName(), c.Greetings[0], theme.Hex(c.Color), cw),
	}
	if s.err != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.err))
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (s *Screen) renderCell(i, width int) string {
	c := s.roster[i]
	border := theme.Border
	name := theme.Unselected.Render(c.Name)
	if i == s.cursor {
		border = theme.Hex(c.Color)
		name = lipgloss.NewStyle().Foreground(border).Bold(true).Render(c.Name)
	}
	body := strings.Join([]string{c.Emoji, name}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Align(lipgloss.Center).
		Margin(0, 1).
		Render(body)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Back"},
	}
}
