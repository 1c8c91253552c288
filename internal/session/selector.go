package session

import (
	"errors"
	"math/rand/v2"
	"sort"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/stats"
)

// ErrNothingToPlay means the requested mode has no questions: an empty
// category, or a review queue that resolves to nothing. The caller must
// refuse to start rather than run a degenerate session.
var ErrNothingToPlay = errors.New("nothing to play")

// Select builds the ordered working set for a mode.
//
// Concrete category: a uniform shuffle of the category, capped at
// MaxQuestions. Review mode: the review queue resolved against the bank
// (stale ids dropped), shuffled, then stably reordered so the questions
// touching the learner's weakest tags come first, capped at MaxQuestions.
func Select(mode string, bank *quizbank.Bank, s stats.Stats) ([]quizbank.Question, error) {
	var qs []quizbank.Question
	if mode == ModeReview {
		qs = bank.Resolve(s.ReviewList)
	} else {
		qs = bank.Category(mode)
	}
	if len(qs) == 0 {
		return nil, ErrNothingToPlay
	}

	rand.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})

	if mode == ModeReview {
		// Stable, so equally-weak questions keep their shuffled order.
		sort.SliceStable(qs, func(i, j int) bool {
			return stats.TagWeakness(s.WeakTags, qs[i].Tags) > stats.TagWeakness(s.WeakTags, qs[j].Tags)
		})
	}

	if len(qs) > MaxQuestions {
		qs = qs[:MaxQuestions]
	}
	return qs, nil
}
