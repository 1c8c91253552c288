package quizbank

import "strings"

// Kind identifies which shape variant a question carries. The variant is
// fixed when the bank is built, never inferred per access.
type Kind int

const (
	// KindChoice presents candidate answers; the learner picks an index.
	KindChoice Kind = iota
	// KindReorder presents shuffled tokens to reassemble into a sentence.
	KindReorder
	// KindSpelling asks the learner to type the English word.
	KindSpelling
)

// String returns the kind name for display and event logging.
func (k Kind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindReorder:
		return "reorder"
	case KindSpelling:
		return "spelling"
	}
	return "unknown"
}

// Question is one immutable bank entry. Exactly one variant's fields are
// populated, matching Kind.
type Question struct {
	// ID is unique across the whole bank and stable across sessions; it is
	// the review-queue key.
	ID string

	Kind Kind

	// Tags are topic labels driving weak-tag scoring. May be empty.
	Tags []string

	// Prompt is the question text. For spelling questions it is the
	// Japanese word to spell in English.
	Prompt string

	// Choices and Correct belong to the choice variant.
	Choices []string
	Correct int

	// Tokens belongs to the reorder variant: the words (and terminal
	// punctuation, as its own token) of the target sentence.
	Tokens []string

	// Answer is the canonical English answer for reorder and spelling
	// questions. Choice questions may carry it as the full sentence used
	// for speech.
	Answer string

	// Translation is the Japanese gloss shown in feedback.
	Translation string

	// Explanation is the teaching note shown in feedback.
	Explanation string
}

// CanonicalAnswer returns the answer text revealed in feedback.
func (q *Question) CanonicalAnswer() string {
	if q.Answer != "" {
		return q.Answer
	}
	if q.Kind == KindChoice && q.Correct >= 0 && q.Correct < len(q.Choices) {
		return q.Choices[q.Correct]
	}
	return ""
}

// SpeakText returns the English text a speech engine should read aloud after
// the answer is revealed: the canonical sentence when the question has one,
// otherwise the prompt with its blank filled by the correct choice. Empty
// when there is nothing sensible to speak.
func (q *Question) SpeakText() string {
	if q.Answer != "" {
		return q.Answer
	}
	if q.Kind == KindChoice && strings.Contains(q.Prompt, "( )") &&
		q.Correct >= 0 && q.Correct < len(q.Choices) {
		return strings.Replace(q.Prompt, "( )", q.Choices[q.Correct], 1)
	}
	return ""
}

// JoinTokens joins reorder tokens with single spaces, then collapses any
// space immediately before a terminal "." or "?". Punctuation is dealt out
// as a separate token, so a naive space-join would never match the
// canonical answer.
func JoinTokens(tokens []string) string {
	joined := strings.Join(tokens, " ")
	joined = strings.ReplaceAll(joined, " .", ".")
	joined = strings.ReplaceAll(joined, " ?", "?")
	return joined
}
