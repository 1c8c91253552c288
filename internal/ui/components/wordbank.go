package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/session"
	"github.com/usagi/eigoz/internal/ui/theme"
)

// WordBank renders a reorder exercise: the sentence built so far on top
// and the remaining word cards below. Left/right move the cursor over
// the remaining cards, enter places the focused card, backspace resets.
type WordBank struct {
	State  *session.ReorderState
	Cursor int
}

// NewWordBank creates a word bank over the given reorder state.
func NewWordBank(state *session.ReorderState) WordBank {
	return WordBank{State: state}
}

// Init returns nil.
func (w WordBank) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input.
func (w WordBank) Update(msg tea.Msg) (WordBank, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || w.State == nil {
		return w, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if w.Cursor > 0 {
			w.Cursor--
		}
	case "right", "l":
		if w.Cursor < len(w.State.Available)-1 {
			w.Cursor++
		}
	case "enter", " ":
		if w.State.Pick(w.Cursor) && w.Cursor >= len(w.State.Available) {
			w.Cursor = len(w.State.Available) - 1
			if w.Cursor < 0 {
				w.Cursor = 0
			}
		}
	case "backspace":
		w.State.Reset()
		w.Cursor = 0
	}

	return w, nil
}

// View renders the built sentence and remaining word cards.
func (w WordBank) View() string {
	if w.State == nil {
		return ""
	}

	sentence := "＿＿＿"
	if len(w.State.Selected) > 0 {
		sentence = quizbank.JoinTokens(w.State.Selected)
	}
	s := theme.WordPlaced.Render(sentence) + "\n\n"

	if len(w.State.Available) == 0 {
		s += theme.Hint.Render("enter で こたえる")
		return s
	}

	cards := make([]string, 0, len(w.State.Available))
	for i, word := range w.State.Available {
		if i == w.Cursor {
			cards = append(cards, theme.WordFocused.Render(word))
		} else {
			cards = append(cards, theme.WordAvailable.Render(word))
		}
	}
	s += lipgloss.JoinHorizontal(lipgloss.Center, cards...)

	return s
}
