package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/usagi/eigoz/internal/router"
	"github.com/usagi/eigoz/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestBannerAppearsAfterDelay(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(80, 24), "キーを おしてね") {
		t.Error("hint should not be visible at start")
	}

	sendTicks(w, int(bannerStart/tickInterval))
	if !strings.Contains(w.View(80, 24), "キーを おしてね") {
		t.Error("hint should be visible after the banner phase")
	}
}

func TestKeypressDuringAnimationIgnored(t *testing.T) {
	w, callCount := newTestWelcome()

	sendTicks(w, 5)
	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})

	if cmd != nil {
		t.Error("keypress mid-animation must not transition")
	}
	if *callCount != 0 {
		t.Error("home factory must not run mid-animation")
	}
}

func TestKeypressAfterAnimationTransitions(t *testing.T) {
	w, callCount := newTestWelcome()

	sendTicks(w, int(totalDur/tickInterval))
	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})

	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the home screen")
	}
	if *callCount != 1 {
		t.Errorf("home factory ran %d times, want 1", *callCount)
	}
}

func TestTransitionOnlyOnce(t *testing.T) {
	w, callCount := newTestWelcome()

	sendTicks(w, int(totalDur/tickInterval))
	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})

	if cmd != nil {
		t.Error("second keypress must not transition again")
	}
	if *callCount != 1 {
		t.Errorf("home factory ran %d times, want 1", *callCount)
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(30), bannerCompact) {
		t.Error("narrow terminals should get the compact banner")
	}
}
