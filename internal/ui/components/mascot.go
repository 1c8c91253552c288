package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/usagi/eigoz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default pink
	MascotCelebrating                      // Gold, star eyes — correct answers and earned stamps
	MascotAlert                            // Purple, exclamation — reviews piling up
	MascotSad                              // Dim, droopy — a missed answer
)

const mascotIdle = ` (\_/)
 (•ᴗ•)
 /つ旦`

const mascotCelebrating = ` (\_/)
 (★ᴗ★)
 \(^^)/`

const mascotAlert = ` (\_/)
 (•о•) !
 /つ旦`

const mascotSad = ` (\_/)
 (;ᴖ;)
 /つ…`

// RenderMascot returns the rabbit art with a speech bubble beside it.
func RenderMascot(variant MascotVariant, speech string) string {
	var art string
	var fg = theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotAlert:
		art = mascotAlert
		fg = theme.Secondary
	case MascotSad:
		art = mascotSad
		fg = theme.TextDim
	default:
		art = mascotIdle
	}

	rabbit := lipgloss.NewStyle().
		Foreground(fg).
		Render(art)

	if strings.TrimSpace(speech) == "" {
		return rabbit
	}

	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 1).
		Render(speech)

	return lipgloss.JoinHorizontal(lipgloss.Center, rabbit, "  ", bubble)
}
