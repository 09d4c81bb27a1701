package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tototime/internal/ui/theme"
)

const bannerArt = `████████╗ ██████╗ ████████╗ ██████╗ ████████╗██╗███╗   ███╗███████╗
╚══██╔══╝██╔═══██╗╚══██╔══╝██╔═══██╗╚══██╔══╝██║████╗ ████║██╔════╝
   ██║   ██║   ██║   ██║   ██║   ██║   ██║   ██║██╔████╔██║█████╗
   ██║   ██║   ██║   ██║   ██║   ██║   ██║   ██║██║╚██╔╝██║██╔══╝
   ██║   ╚██████╔╝   ██║   ╚██████╔╝   ██║   ██║██║ ╚═╝ ██║███████╗
   ╚═╝    ╚═════╝    ╚═╝    ╚═════╝    ╚═╝   ╚═╝╚═╝     ╚═╝╚══════╝`

const bannerCompact = "T O T O T I M E"

// RenderBanner returns the title art, or a spaced-out word when the
// terminal is too narrow for it.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < lipgloss.Width(bannerArt)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
