// Package session drives a quiz run: selecting the working set, scoring
// answers, and rolling outcomes into the stats ledger. The state here is
// pure; the TUI layer owns timers and input.
package session

import (
	"time"

	"github.com/usagi/eigoz/internal/quizbank"
)

// Phase is the session state machine position.
type Phase int

const (
	// PhaseIdle: no session running.
	PhaseIdle Phase = iota
	// PhaseActive: a question is on screen awaiting an answer.
	PhaseActive
	// PhaseFeedback: the answer is revealed; input is locked until the
	// dwell interval elapses.
	PhaseFeedback
	// PhaseCompleted: all questions answered; awaiting explicit exit.
	PhaseCompleted
)

// MaxQuestions caps a session's working set.
const MaxQuestions = 30

// DwellInterval is the fixed delay between feedback and auto-advance.
const DwellInterval = 4 * time.Second

// ModeReview is the session mode fed by the review queue instead of a
// concrete category.
const ModeReview = "review"

// State is one session's runtime state.
type State struct {
	// Mode is a category name or ModeReview.
	Mode string

	// Questions is the ordered working set (at most MaxQuestions).
	Questions []quizbank.Question

	// Index is the current question position.
	Index int

	// Score counts correct answers so far.
	Score int

	Phase Phase

	// LastCorrect records the most recent evaluation, for feedback.
	LastCorrect bool

	// Reorder is the token partition for the current question; nil unless
	// the current question is a reorder.
	Reorder *ReorderState

	// SessionID tags this run's answer events.
	SessionID string

	StartTime time.Time
}

// NewState starts a session over a non-empty working set.
func NewState(mode string, questions []quizbank.Question, sessionID string) *State {
	st := &State{
		Mode:      mode,
		Questions: questions,
		Phase:     PhaseActive,
		SessionID: sessionID,
		StartTime: time.Now(),
	}
	st.initQuestion()
	return st
}

// Current returns the active question, or nil past the end.
func (st *State) Current() *quizbank.Question {
	if st.Index < 0 || st.Index >= len(st.Questions) {
		return nil
	}
	return &st.Questions[st.Index]
}

// initQuestion prepares per-question state for the current index.
func (st *State) initQuestion() {
	st.Reorder = nil
	if q := st.Current(); q != nil && q.Kind == quizbank.KindReorder {
		st.Reorder = NewReorderState(q.Tokens)
	}
}

// Submit evaluates a response for the current question and moves to
// feedback. It returns (correct, true) when the answer was scored, and
// (false, false) when the session is not accepting answers — repeated
// submissions during feedback are rejected here, which is what keeps the
// ledger update at exactly once per item.
func (st *State) Submit(resp Response) (correct, scored bool) {
	if st.Phase != PhaseActive {
		return false, false
	}
	q := st.Current()
	if q == nil {
		return false, false
	}

	correct = Evaluate(*q, resp)
	st.LastCorrect = correct
	if correct {
		st.Score++
	}
	st.Phase = PhaseFeedback
	return correct, true
}

// Advance leaves feedback: on to the next question, or to completion.
// No-op outside PhaseFeedback, so a stale dwell timer can't advance twice.
func (st *State) Advance() {
	if st.Phase != PhaseFeedback {
		return
	}
	if st.Index+1 < len(st.Questions) {
		st.Index++
		st.Phase = PhaseActive
		st.initQuestion()
		return
	}
	st.Phase = PhaseCompleted
}
