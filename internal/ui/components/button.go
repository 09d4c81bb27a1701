package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/ui/theme"
)

// Button is one choice in a ButtonRow.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
}

// ButtonRow is a horizontal group of buttons, moved with left/right or
// tab and pressed with enter.
type ButtonRow struct {
	Buttons []Button
	Active  int
}

func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{Buttons: buttons}
}

func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}
	switch key.String() {
	case "left", "h", "shift+tab":
		r.Active = (r.Active - 1 + len(r.Buttons)) % len(r.Buttons)
	case "right", "l", "tab":
		r.Active = (r.Active + 1) % len(r.Buttons)
	case "enter", "space":
		if b := r.Buttons[r.Active]; b.OnPress != nil {
			return r, b.OnPress()
		}
	}
	return r, nil
}

func (r ButtonRow) View() string {
	parts := make([]string, 0, 2*len(r.Buttons))
	for i, b := range r.Buttons {
		if i > 0 {
			parts = append(parts, "  ")
		}
		if i == r.Active {
			parts = append(parts, theme.ButtonActive.Render("▸ "+b.Label))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(b.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
