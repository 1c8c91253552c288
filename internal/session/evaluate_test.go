package session

import (
	"testing"

	"github.com/usagi/eigoz/internal/quizbank"
)

func TestEvaluateChoice(t *testing.T) {
	q := quizbank.Question{
		Kind:    quizbank.KindChoice,
		Choices: []string{"am", "is", "are"},
		Correct: 1,
	}

	if !Evaluate(q, ChoiceResponse(1)) {
		t.Error("correct index should score true")
	}
	if Evaluate(q, ChoiceResponse(0)) {
		t.Error("wrong index should score false")
	}
	if Evaluate(q, ChoiceResponse(99)) {
		t.Error("out-of-range index should score false")
	}
	if Evaluate(q, ReorderResponse([]string{"is"})) {
		t.Error("wrong-shaped response should score false")
	}
}

func TestEvaluateReorderPunctuation(t *testing.T) {
	q := quizbank.Question{
		Kind:   quizbank.KindReorder,
		Tokens: []string{"I", "like", "cats", "."},
		Answer: "I like cats.",
	}

	tests := []struct {
		name   string
		tokens []string
		want   bool
	}{
		{"correct with trailing period", []string{"I", "like", "cats", "."}, true},
		{"period misplaced", []string{"I", "like", ".", "cats"}, false},
		{"wrong word order", []string{"like", "I", "cats", "."}, false},
		{"wrong case", []string{"i", "like", "cats", "."}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, ReorderResponse(tt.tokens)); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestEvaluateReorderQuestionMark(t *testing.T) {
	q := quizbank.Question{
		Kind:   quizbank.KindReorder,
		Tokens: []string{"What", "is", "this", "?"},
		Answer: "What is this?",
	}
	if !Evaluate(q, ReorderResponse([]string{"What", "is", "this", "?"})) {
		t.Error("space before ? must collapse before comparison")
	}
}

func TestEvaluateSpelling(t *testing.T) {
	q := quizbank.Question{Kind: quizbank.KindSpelling, Answer: "dog"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact", "dog", true},
		{"case-insensitive", "Dog", true},
		{"all caps", "DOG", true},
		{"surrounding space", "  dog ", true},
		{"wrong word", "cat", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, TextResponse(tt.text)); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
