package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/router"
	"github.com/usagi/eigoz/internal/screen"
	"github.com/usagi/eigoz/internal/screens/home"
	"github.com/usagi/eigoz/internal/screens/welcome"
	"github.com/usagi/eigoz/internal/stats"
	"github.com/usagi/eigoz/internal/store"
	"github.com/usagi/eigoz/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Bank   *quizbank.Bank
	Stats  *stats.Store
	Events *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	stats  *stats.Store
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen.
func newAppModel(opts Options) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(opts.Bank, opts.Stats, opts.Events)
	})
	return AppModel{
		router: router.New(splash),
		stats:  opts.Stats,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is screen-local: the session screen turns it into a quit
		// confirmation, others pop themselves.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var answeredToday, reviewCount int
	if m.stats != nil {
		cur := m.stats.Current()
		answeredToday = cur.Today(time.Now()).Answered
		reviewCount = len(cur.ReviewList)
	}

	header := layout.RenderHeader(title, answeredToday, reviewCount, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "えらぶ"},
		{Key: "Enter", Description: "けってい"},
		{Key: "Ctrl+C", Description: "おわる"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
