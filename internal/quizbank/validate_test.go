package quizbank

import (
	"errors"
	"testing"
)

func TestValidateRejectsDuplicateID(t *testing.T) {
	_, err := New(map[string][]Question{
		"a": {{ID: "x", Kind: KindSpelling, Prompt: "p", Answer: "cat"}},
		"b": {{ID: "x", Kind: KindSpelling, Prompt: "p", Answer: "dog"}},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestValidateRejectsBadChoiceIndex(t *testing.T) {
	_, err := New(map[string][]Question{
		"a": {{ID: "x", Kind: KindChoice, Prompt: "p", Choices: []string{"a", "b"}, Correct: 2}},
	})
	if !errors.Is(err, ErrBadChoice) {
		t.Errorf("err = %v, want ErrBadChoice", err)
	}
}

func TestValidateRejectsUnjoinableReorder(t *testing.T) {
	_, err := New(map[string][]Question{
		"a": {{
			ID: "x", Kind: KindReorder, Prompt: "p",
			Tokens: []string{"I", "swim", "."},
			Answer: "I can swim.",
		}},
	})
	if !errors.Is(err, ErrBadReorder) {
		t.Errorf("err = %v, want ErrBadReorder", err)
	}
}

func TestValidateRejectsMixedVariant(t *testing.T) {
	_, err := New(map[string][]Question{
		"a": {{
			ID: "x", Kind: KindChoice, Prompt: "p",
			Choices: []string{"a", "b"},
			Tokens:  []string{"a", "b"},
		}},
	})
	if !errors.Is(err, ErrMixedVariant) {
		t.Errorf("err = %v, want ErrMixedVariant", err)
	}
}

func TestValidateRejectsMissingAnswer(t *testing.T) {
	_, err := New(map[string][]Question{
		"a": {{ID: "x", Kind: KindSpelling, Prompt: "p"}},
	})
	if !errors.Is(err, ErrMissingAnswer) {
		t.Errorf("err = %v, want ErrMissingAnswer", err)
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	_, err := New(map[string][]Question{
		"a": {
			{ID: "c", Kind: KindChoice, Prompt: "p", Choices: []string{"a", "b"}, Correct: 1},
			{ID: "r", Kind: KindReorder, Prompt: "p", Tokens: []string{"I", "can", "swim", "."}, Answer: "I can swim."},
			{ID: "s", Kind: KindSpelling, Prompt: "p", Answer: "cat"},
		},
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
