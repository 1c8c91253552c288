package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/usagi/eigoz/internal/router"
	"github.com/usagi/eigoz/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Mode:     "vocab",
		Total:    10,
		Score:    7,
		Accuracy: 0.7,
		Duration: 3 * time.Minute,
	}
}

func TestEnterReturnsHome(t *testing.T) {
	s := New(testSummary(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg on enter")
	}
}

func TestEscReturnsHome(t *testing.T) {
	s := New(testSummary(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg on esc")
	}
}

func TestViewShowsScore(t *testing.T) {
	s := New(testSummary(), nil)

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}
