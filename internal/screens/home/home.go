package home

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/router"
	"github.com/usagi/eigoz/internal/screen"
	"github.com/usagi/eigoz/internal/screens/calendar"
	sessionscreen "github.com/usagi/eigoz/internal/screens/session"
	sess "github.com/usagi/eigoz/internal/session"
	"github.com/usagi/eigoz/internal/stats"
	"github.com/usagi/eigoz/internal/store"
	"github.com/usagi/eigoz/internal/ui/components"
	"github.com/usagi/eigoz/internal/ui/theme"
)

// noticeMsg carries a transient message shown under the menu, e.g. when
// a mode has nothing to play.
type noticeMsg struct {
	text string
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	bank   *quizbank.Bank
	stats  *stats.Store
	events *store.Store

	menu      components.Menu
	reviewIdx int
	notice    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(bank *quizbank.Bank, statsStore *stats.Store, events *store.Store) *HomeScreen {
	h := &HomeScreen{
		bank:   bank,
		stats:  statsStore,
		events: events,
	}

	var items []components.MenuItem
	for _, cat := range quizbank.CategoryOrder {
		items = append(items, components.MenuItem{
			Label:  quizbank.CategoryTitle[cat],
			Action: h.startAction(cat),
		})
	}

	h.reviewIdx = len(items)
	items = append(items, components.MenuItem{
		Label:  "ふくしゅう (Review)",
		Action: h.startAction(sess.ModeReview),
	})
	items = append(items, components.MenuItem{
		Label: "カレンダー (Calendar)",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: calendar.New(statsStore)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "おわる (Quit)",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

// startAction builds the menu action for one quiz mode. Selection runs
// at press time so it always sees the current ledger.
func (h *HomeScreen) startAction(mode string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			questions, err := sess.Select(mode, h.bank, h.stats.Current())
			if err != nil {
				if errors.Is(err, sess.ErrNothingToPlay) {
					if mode == sess.ModeReview {
						return noticeMsg{text: "ふくしゅうする もんだいは ないよ！ すごい！"}
					}
					return noticeMsg{text: "この カテゴリには もんだいが ないよ"}
				}
				return noticeMsg{text: err.Error()}
			}
			state := sess.NewState(mode, questions, uuid.New().String())
			return router.PushScreenMsg{
				Screen: sessionscreen.New(state, h.stats, h.events),
			}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if n, ok := msg.(noticeMsg); ok {
		h.notice = n.text
		return h, nil
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		h.notice = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cur := h.stats.Current()
	now := time.Now()

	// The review badge tracks the live queue size.
	badge := ""
	if n := len(cur.ReviewList); n > 0 {
		badge = fmt.Sprintf("(%d)", n)
	}
	h.menu.Items[h.reviewIdx].Badge = badge

	var sections []string

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("えいご トレーニング")
	sections = append(sections, title)

	mascot := components.RenderMascot(mascotVariant(cur, now), stats.Advice(cur))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, mascot))

	stamps := components.StampRow(stats.Stamps(cur, now))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, stamps))

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(h.notice))
	}

	return "\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "ホーム"
}

// mascotVariant picks the rabbit's mood from today's progress.
func mascotVariant(cur stats.Stats, now time.Time) components.MascotVariant {
	all := true
	for _, st := range stats.Stamps(cur, now) {
		if !st.Achieved {
			all = false
			break
		}
	}
	if all {
		return components.MascotCelebrating
	}
	if len(cur.ReviewList) >= 3 {
		return components.MascotAlert
	}
	return components.MascotIdle
}
