package session

import (
	"strings"

	"github.com/usagi/eigoz/internal/quizbank"
)

// Response is one learner action against a question. Only the field
// matching the question's variant is read.
type Response struct {
	// Choice is the selected candidate index.
	Choice int
	// Tokens is the assembled token order for a reorder question.
	Tokens []string
	// Text is the typed answer for a spelling question.
	Text string
}

// ChoiceResponse builds a response for a choice question.
func ChoiceResponse(index int) Response {
	return Response{Choice: index}
}

// ReorderResponse builds a response for a reorder question.
func ReorderResponse(tokens []string) Response {
	return Response{Choice: -1, Tokens: tokens}
}

// TextResponse builds a response for a spelling question.
func TextResponse(text string) Response {
	return Response{Choice: -1, Text: text}
}

// Evaluate decides correctness per variant. Malformed responses evaluate
// to incorrect; this never panics. Empty/incomplete submissions are the
// input layer's job to block before calling here.
func Evaluate(q quizbank.Question, r Response) bool {
	switch q.Kind {
	case quizbank.KindChoice:
		return r.Choice == q.Correct

	case quizbank.KindReorder:
		if len(r.Tokens) == 0 {
			return false
		}
		// Case-sensitive: word order drills also drill capitalization.
		return quizbank.JoinTokens(r.Tokens) == q.Answer

	case quizbank.KindSpelling:
		typed := strings.ToLower(strings.TrimSpace(r.Text))
		if typed == "" {
			return false
		}
		return typed == strings.ToLower(q.Answer)
	}
	return false
}
