package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/ui/theme"
)

// ChoiceState tells MultiChoice how to draw one option.
type ChoiceState int

const (
	ChoiceOpen ChoiceState = iota
	ChoicePending
	ChoiceRejected
	ChoiceCorrect
	ChoiceDimmed
)

// MultiChoice is a cursor over answer options. It only moves the cursor;
// the caller owns answer state and passes it in through States.
type MultiChoice struct {
	Options []string
	Cursor  int
	// States has one entry per option. Missing entries are ChoiceOpen.
	States []ChoiceState
	// Locked stops the cursor, e.g. once the answer is shown.
	Locked bool
}

func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

func (m MultiChoice) state(i int) ChoiceState {
	if i < len(m.States) {
		return m.States[i]
	}
	return ChoiceOpen
}

// Update moves the cursor, skipping rejected options. Number keys and
// letters jump straight to an option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || m.Locked {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	default:
		if i := optionIndex(s); i >= 0 && i < len(m.Options) && m.state(i) != ChoiceRejected {
			m.Cursor = i
		}
	}
	return m, nil
}

func optionIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	switch c := key[0]; {
	case c >= '1' && c <= '9':
		return int(c - '1')
	case c >= 'a' && c <= 'f':
		return int(c - 'a')
	}
	return -1
}

func (m *MultiChoice) step(dir int) {
	for i := m.Cursor + dir; i >= 0 && i < len(m.Options); i += dir {
		if m.state(i) != ChoiceRejected {
			m.Cursor = i
			return
		}
	}
}

func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := fmt.Sprint(i + 1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		var style lipgloss.Style
		switch m.state(i) {
		case ChoiceCorrect:
			style = theme.Correct
			line += "  ✓"
		case ChoiceRejected:
			style = theme.Incorrect.Strikethrough(true)
			line += "  ✗"
		case ChoicePending:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case ChoiceDimmed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		default:
			if i == m.Cursor && !m.Locked {
				style = theme.Selected
			} else {
				style = theme.Unselected
			}
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
