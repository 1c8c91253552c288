package components

import (
	"charm.land/lipgloss/v2"

	"github.com/usagi/eigoz/internal/stats"
	"github.com/usagi/eigoz/internal/ui/theme"
)

// StampRow renders today's achievement stamps in a single line.
func StampRow(stamps []stats.Stamp) string {
	cells := make([]string, 0, len(stamps))
	for _, st := range stamps {
		mark := "○"
		style := theme.StampOff
		if st.Achieved {
			mark = "★"
			style = theme.StampOn
		}
		cells = append(cells, style.Render(mark+" "+st.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(cells)...)
}

func joinWithGap(cells []string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, "   ")
		}
		out = append(out, c)
	}
	return out
}
