package quizbank

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID   = errors.New("duplicate question id")
	ErrMixedVariant  = errors.New("question populates more than one variant")
	ErrEmptyVariant  = errors.New("question populates no variant")
	ErrBadChoice     = errors.New("correct index out of range")
	ErrBadReorder    = errors.New("reorder tokens do not join to the answer")
	ErrMissingAnswer = errors.New("missing canonical answer")
)

// validate checks bank data once, at build time. Runtime code can then
// trust every Question it pulls from the bank.
func validate(categories map[string][]Question) error {
	seen := make(map[string]string)
	for cat, qs := range categories {
		for i := range qs {
			q := &qs[i]
			if q.ID == "" {
				return fmt.Errorf("%s[%d]: empty question id", cat, i)
			}
			if prev, dup := seen[q.ID]; dup {
				return fmt.Errorf("%s: %w (also in %s)", q.ID, ErrDuplicateID, prev)
			}
			seen[q.ID] = cat

			if err := validateVariant(q); err != nil {
				return fmt.Errorf("%s: %w", q.ID, err)
			}
		}
	}
	return nil
}

func validateVariant(q *Question) error {
	hasChoices := len(q.Choices) > 0
	hasTokens := len(q.Tokens) > 0

	switch q.Kind {
	case KindChoice:
		if hasTokens {
			return ErrMixedVariant
		}
		if len(q.Choices) < 2 {
			return ErrEmptyVariant
		}
		if q.Correct < 0 || q.Correct >= len(q.Choices) {
			return ErrBadChoice
		}
	case KindReorder:
		if hasChoices {
			return ErrMixedVariant
		}
		if len(q.Tokens) < 2 {
			return ErrEmptyVariant
		}
		if q.Answer == "" {
			return ErrMissingAnswer
		}
		// The canonical answer must be reachable by reassembling the
		// tokens, or the question is unanswerable.
		if JoinTokens(q.Tokens) != q.Answer {
			return ErrBadReorder
		}
	case KindSpelling:
		if hasChoices || hasTokens {
			return ErrMixedVariant
		}
		if q.Answer == "" {
			return ErrMissingAnswer
		}
	default:
		return fmt.Errorf("unknown kind %d", q.Kind)
	}
	return nil
}
