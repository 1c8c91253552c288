package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/usagi/eigoz/internal/quizbank"
	sess "github.com/usagi/eigoz/internal/session"
	"github.com/usagi/eigoz/internal/ui/components"
	"github.com/usagi/eigoz/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question with its input area.
func (s *SessionScreen) renderQuestion(width int) string {
	q := s.state.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.Title())

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   %s %d",
			s.state.Index+1,
			len(s.state.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("★"),
			s.state.Score,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(s.state.Index)/float64(len(s.state.Questions)), false, min(width-4, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	switch q.Kind {
	case quizbank.KindChoice:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	case quizbank.KindReorder:
		prompt := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Prompt)
		b.WriteString(prompt)
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.wb.View()))

	case quizbank.KindSpelling:
		prompt := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Prompt)
		b.WriteString(prompt)
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(s.input.View()))
	}

	return b.String()
}

// renderFeedback renders the post-answer reveal. It stays up until the
// dwell timer fires.
func (s *SessionScreen) renderFeedback(width int) string {
	q := s.state.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if s.state.LastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("○ せいかい！"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("× ざんねん..."))
	}
	b.WriteString("\n\n")

	mood := components.MascotCelebrating
	if !s.state.LastCorrect {
		mood = components.MascotSad
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.RenderMascot(mood, "")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("こたえ: %s", q.CanonicalAnswer())))
	b.WriteString("\n")

	speak := q.SpeakText()
	if speak != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("♪ %s", speak)))
		b.WriteString("\n")
	}

	if q.Translation != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(q.Translation))
		b.WriteString("\n")
	}

	if q.Explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 60)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("つぎの もんだいに すすむよ..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("とちゅうで やめる？"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("いままでの きろくは のこるよ。"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] やめる"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] つづける"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
