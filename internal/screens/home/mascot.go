package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // default
	MascotCelebrating                      // streak of 3 days or more
	MascotSleepy                           // night and late night
)

const mascotIdle = `╭──12──╮
│ ◉  ◉ │
9  ▽   3
│  ╰─  │
╰──6───╯`

const mascotCelebrating = `╭──12──╮
│ ★  ★ │
9  ▿   3
│  ╰─  │
╰╥─6─╥─╯
 ╚═══╝`

const mascotSleepy = `╭──12──╮ z
│ -  - │z
9  o   3
│  ╰─  │
╰──6───╯`

// MascotFor picks the variant for the learner's streak and the hour.
func MascotFor(streak, hour int) MascotVariant {
	switch {
	case streak >= 3:
		return MascotCelebrating
	case hour >= 20 || hour < 5:
		return MascotSleepy
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Secondary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Star
	case MascotSleepy:
		art, fg = mascotSleepy, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
