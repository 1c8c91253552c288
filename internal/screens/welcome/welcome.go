package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/usagi/eigoz/internal/router"
	"github.com/usagi/eigoz/internal/screen"
	"github.com/usagi/eigoz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	sparkleStart = 400 * time.Millisecond
	bannerStart  = 1200 * time.Millisecond
	totalDur     = 3 * time.Second
)

const rabbitArt = `   (\__/)
   ( •ᴗ•)
  c(  ubb
    ABC!`

// sparkle frames cycle around the rabbit
var sparkleFrames = []string{"✿", "✧"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Only transition once the full animation has played.
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rabbit := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(rabbitArt)

	if w.elapsed >= sparkleStart {
		frame := w.tickCount % len(sparkleFrames)
		left := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkleFrames[frame])
		right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkleFrames[(frame+1)%len(sparkleFrames)])

		lines := strings.Split(rabbit, "\n")
		if len(lines) > 0 {
			lines[0] = left + "  " + lines[0] + "  " + right
		}
		if len(lines) > 2 {
			lines[2] = right + "  " + lines[2] + "  " + left
		}
		rabbit = strings.Join(lines, "\n")
	}

	sections = append(sections, rabbit)

	if w.elapsed >= bannerStart {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("えいごで あそぼう！")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("キーを おしてね")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
