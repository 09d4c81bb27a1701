// Package learning lists the lessons on the path and which of them the
// learner can open.
package learning

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/lessons"
	"github.com/abhisek/tototime/internal/router"
	"github.com/abhisek/tototime/internal/screen"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/ui/components"
	"github.com/abhisek/tototime/internal/ui/layout"
	"github.com/abhisek/tototime/internal/ui/theme"
)

// Screen is the lesson path.
type Screen struct {
	env       *screens.Env
	lessons   []lessons.Lesson
	completed []int
	cursor    int
	notice    string
}

var _ screen.Screen = (*Screen)(nil)

// New builds the list and puts the cursor on the first lesson that is
// unlocked but not finished.
func New(env *screens.Env) *Screen {
	s := &Screen{env: env, lessons: lessons.All(), completed: env.Completed()}
	if next := lessons.Available(s.completed); len(next) > 0 {
		for i, l := range s.lessons {
			if l.ID == next[0].ID {
				s.cursor = i
				break
			}
		}
	}
	return s
}

func (s *Screen) Title() string { return "Learn" }

func (s *Screen) Init() tea.Cmd { return nil }

// Selected returns the lesson under the cursor.
func (s *Screen) Selected() lessons.Lesson { return s.lessons[s.cursor] }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.notice = ""
	case "down", "j":
		if s.cursor < len(s.lessons)-1 {
			s.cursor++
		}
		s.notice = ""
	case "enter", "space":
		l := s.Selected()
		if !lessons.IsUnlocked(l.ID, s.completed) {
			s.notice = lockedNotice(l)
			return s, nil
		}
		return s, router.Go(router.EnterLessonMsg{LessonID: l.ID})
	case "esc", "q":
		return s, router.Go(router.BackHomeMsg{})
	}
	return s, nil
}

func lockedNotice(l lessons.Lesson) string {
	var titles []string
	for _, p := range lessons.Prerequisites(l.ID) {
		titles = append(titles, fmt.Sprintf("%q", p.Title))
	}
	return "🔒 Finish " + strings.Join(titles, " and ") + " first!"
}

// Notice returns the message shown after trying to open a locked lesson.
func (s *Screen) Notice() string { return s.notice }

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	done := len(s.completed)

	rows := make([]string, 0, len(s.lessons))
	for i, l := range s.lessons {
		rows = append(rows, s.renderRow(i, l, cw))
	}

	sel := s.Selected()
	detail := []string{
		lipgloss.NewStyle().Foreground(theme.Hex(sel.Color)).Bold(true).Render(sel.Icon + " " + sel.Title),
		theme.Body.Render(sel.Description),
		theme.Hint.Render(fmt.Sprintf("%s · %d steps", sel.Difficulty.DisplayName(), len(sel.Steps))),
	}
	if u, ok := s.env.User(); ok {
		if best, ok := u.Progress.BestScore(sel.ID); ok {
			detail = append(detail, theme.Hint.Render(fmt.Sprintf("Best quiz: %d/%d", best.Score, best.TotalQuestions)))
		}
	}

	sections := []string{
		components.NewProgressBar("Your path", done, len(s.lessons), cw).View(),
		"",
		strings.Join(rows, "\n"),
		"",
		components.Card(lipgloss.JoinVertical(lipgloss.Center, detail...), cw, theme.Hex(sel.Color)),
	}
	if s.notice != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (s *Screen) renderRow(i int, l lessons.Lesson, cw int) string {
	locked := !lessons.IsUnlocked(l.ID, s.completed)
	mark := "  "
	switch {
	case slices.Contains(s.completed, l.ID):
		mark = "✅"
	case locked:
		mark = "🔒"
	}

	prefix := "  "
	style := theme.Unselected
	switch {
	case locked:
		style = theme.Locked
	case i == s.cursor:
		style = theme.Selected
	}
	if i == s.cursor {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%s %d. %s %s", prefix, mark, l.ID, l.Icon, l.Title)
	return style.Width(cw).Render(line)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Home"},
	}
}
