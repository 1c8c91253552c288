package calendar

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/usagi/eigoz/internal/router"
	"github.com/usagi/eigoz/internal/screen"
	"github.com/usagi/eigoz/internal/stats"
	"github.com/usagi/eigoz/internal/ui/layout"
	"github.com/usagi/eigoz/internal/ui/theme"
)

// CalendarScreen shows a month grid of practice days.
type CalendarScreen struct {
	stats *stats.Store
	year  int
	month time.Month
}

var _ screen.Screen = (*CalendarScreen)(nil)
var _ screen.KeyHintProvider = (*CalendarScreen)(nil)

// New creates a CalendarScreen opened on the current month.
func New(statsStore *stats.Store) *CalendarScreen {
	now := time.Now()
	return &CalendarScreen{
		stats: statsStore,
		year:  now.Year(),
		month: now.Month(),
	}
}

func (c *CalendarScreen) Init() tea.Cmd {
	return nil
}

func (c *CalendarScreen) Title() string {
	return "カレンダー"
}

func (c *CalendarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "つき を かえる"},
		{Key: "Esc", Description: "もどる"},
	}
}

func (c *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.month--
		if c.month < time.January {
			c.month = time.December
			c.year--
		}
	case "right", "l":
		c.month++
		if c.month > time.December {
			c.month = time.January
			c.year++
		}
	case "esc", "enter":
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return c, nil
}

func (c *CalendarScreen) View(width, height int) string {
	cur := c.stats.Current()

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%d ねん %d がつ", c.year, int(c.month))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.renderGrid(cur)))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("ぜんぶで %d もん こたえて %d もん せいかい",
		cur.TotalAnswered, cur.TotalCorrect)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(totals))

	return b.String()
}

// renderGrid lays the month out Sunday-first, one row per week. Days
// with activity get a star.
func (c *CalendarScreen) renderGrid(cur stats.Stats) string {
	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := stats.DateKey(time.Now())

	var b strings.Builder

	for _, wd := range []string{"にち", "げつ", "か", "すい", "もく", "きん", "ど"} {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(5).
			Align(lipgloss.Center).
			Render(wd))
	}
	b.WriteString("\n")

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("     ", col))

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(c.year, c.month, day, 0, 0, 0, 0, time.Local)
		key := stats.DateKey(date)

		cell := fmt.Sprintf("%2d", day)
		style := lipgloss.NewStyle().Foreground(theme.Text)

		if entry, ok := cur.ActivityLog[key]; ok && entry.Answered > 0 {
			cell += "★"
			style = style.Foreground(theme.Accent).Bold(true)
		} else {
			cell += " "
		}
		if key == todayKey {
			style = style.Underline(true)
		}

		b.WriteString(lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Render(style.Render(cell)))

		col++
		if col == 7 {
			col = 0
			b.WriteString("\n")
		}
	}

	return b.String()
}
