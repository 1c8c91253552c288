package session

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/router"
	"github.com/usagi/eigoz/internal/screen"
	"github.com/usagi/eigoz/internal/screens/summary"
	sess "github.com/usagi/eigoz/internal/session"
	"github.com/usagi/eigoz/internal/stats"
	"github.com/usagi/eigoz/internal/store"
	"github.com/usagi/eigoz/internal/ui/components"
	"github.com/usagi/eigoz/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a running quiz.
type SessionScreen struct {
	state  *sess.State
	stats  *stats.Store
	events *store.Store

	input components.TextInput
	mc    components.MultiChoice
	wb    components.WordBank

	dwellSeq    int
	confirmQuit bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen over an already-selected working set.
func New(state *sess.State, statsStore *stats.Store, events *store.Store) *SessionScreen {
	s := &SessionScreen{
		state:  state,
		stats:  statsStore,
		events: events,
	}
	s.setupQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if q := s.state.Current(); q != nil && q.Kind == quizbank.KindSpelling {
		return s.input.Init()
	}
	return nil
}

func (s *SessionScreen) Title() string {
	if s.state.Mode == sess.ModeReview {
		return "ふくしゅう"
	}
	return quizbank.CategoryTitle[s.state.Mode]
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "やめる"},
			{Key: "N", Description: "つづける"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "", Description: "すこし まってね..."},
		}
	}
	q := s.state.Current()
	if q == nil {
		return nil
	}
	switch q.Kind {
	case quizbank.KindReorder:
		return []layout.KeyHint{
			{Key: "←→", Description: "えらぶ"},
			{Key: "Enter", Description: "おく / こたえる"},
			{Key: "Backspace", Description: "やりなおす"},
			{Key: "Esc", Description: "やめる"},
		}
	case quizbank.KindSpelling:
		return []layout.KeyHint{
			{Key: "Enter", Description: "こたえる"},
			{Key: "Esc", Description: "やめる"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "えらぶ"},
			{Key: "Enter", Description: "こたえる"},
			{Key: "Esc", Description: "やめる"},
		}
	}
}

// setupQuestion builds the input component for the current question.
func (s *SessionScreen) setupQuestion() {
	q := s.state.Current()
	if q == nil {
		return
	}
	switch q.Kind {
	case quizbank.KindChoice:
		s.mc = components.NewMultiChoice(q.Prompt, q.Choices, q.Correct)
	case quizbank.KindReorder:
		s.wb = components.NewWordBank(s.state.Reorder)
	case quizbank.KindSpelling:
		s.input = components.NewTextInput("こたえを かいてね", 24)
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dwellMsg:
		return s.handleDwell(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Non-key messages keep the text input cursor blinking.
	if q := s.state.Current(); q != nil && q.Kind == quizbank.KindSpelling && s.state.Phase == sess.PhaseActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleDwell(msg dwellMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != s.dwellSeq {
		return s, nil
	}

	s.state.Advance()

	if s.state.Phase == sess.PhaseCompleted {
		sum := sess.BuildSummary(s.state)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum, s.stats)}
		}
	}

	s.setupQuestion()
	if q := s.state.Current(); q != nil && q.Kind == quizbank.KindSpelling {
		return s, s.input.Init()
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	// Feedback is dismissed by the dwell timer, not by keys.
	if s.state.Phase != sess.PhaseActive {
		return s, nil
	}

	q := s.state.Current()
	if q == nil {
		return s, nil
	}

	switch q.Kind {
	case quizbank.KindChoice:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s, s.submit(sess.ChoiceResponse(s.mc.ChosenIndex))
		}
		return s, cmd

	case quizbank.KindReorder:
		if key == "enter" && s.state.Reorder != nil && s.state.Reorder.Complete() {
			return s, s.submit(sess.ReorderResponse(s.state.Reorder.Selected))
		}
		var cmd tea.Cmd
		s.wb, cmd = s.wb.Update(msg)
		return s, cmd

	case quizbank.KindSpelling:
		if key == "enter" {
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			return s, s.submit(sess.TextResponse(s.input.Value()))
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit scores the response, rolls it into the ledger and event log,
// and arms the dwell timer.
func (s *SessionScreen) submit(resp sess.Response) tea.Cmd {
	q := s.state.Current()
	if q == nil {
		return nil
	}

	correct, scored := s.state.Submit(resp)
	if !scored {
		return nil
	}

	if q.Kind == quizbank.KindSpelling {
		s.input.Submit(correct)
	}

	now := time.Now()
	if s.stats != nil {
		_, _ = s.stats.Mutate(sess.RecordAnswer(*q, s.state.Mode, correct, now))
	}
	if s.events != nil {
		_ = s.events.AppendAnswerEvent(context.Background(), store.AnswerEvent{
			SessionID:  s.state.SessionID,
			QuestionID: q.ID,
			Category:   s.state.Mode,
			Kind:       q.Kind.String(),
			Correct:    correct,
			AnsweredAt: now,
		})
	}

	s.dwellSeq++
	return dwellCmd(s.dwellSeq)
}

// dwellCmd schedules the automatic advance out of feedback.
func dwellCmd(seq int) tea.Cmd {
	return tea.Tick(sess.DwellInterval, func(time.Time) tea.Msg {
		return dwellMsg{seq: seq}
	})
}
