package clock

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg carries a wall-clock sample for the ticker identified by ID.
type TickMsg struct {
	ID   int
	Time time.Time
}

// Tick schedules the next one-second sample, aligned to the wall clock.
// Receivers drop messages whose ID is not their own so a replaced screen
// stops its loop.
func Tick(id int) tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
