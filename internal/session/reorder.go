package session

import (
	"math/rand/v2"
	"slices"
)

// ReorderState partitions a reorder question's tokens into the shuffled
// available pool and the learner's selected sequence. The two lists are
// always complementary: every token is in exactly one of them.
type ReorderState struct {
	// original is the shuffled deal, kept for Reset.
	original []string

	Available []string
	Selected  []string
}

// NewReorderState shuffles the tokens into the available pool.
func NewReorderState(tokens []string) *ReorderState {
	dealt := slices.Clone(tokens)
	rand.Shuffle(len(dealt), func(i, j int) {
		dealt[i], dealt[j] = dealt[j], dealt[i]
	})
	return &ReorderState{
		original:  slices.Clone(dealt),
		Available: slices.Clone(dealt),
	}
}

// Pick moves the available token at index i to the end of the selected
// sequence. Returns false for an out-of-range index.
func (r *ReorderState) Pick(i int) bool {
	if i < 0 || i >= len(r.Available) {
		return false
	}
	r.Selected = append(r.Selected, r.Available[i])
	r.Available = slices.Delete(r.Available, i, i+1)
	return true
}

// Reset restores the original deal and clears the selection.
func (r *ReorderState) Reset() {
	r.Available = slices.Clone(r.original)
	r.Selected = nil
}

// Complete reports whether every token has been placed. Submission is
// gated on this, so a half-built sentence is never scored.
func (r *ReorderState) Complete() bool {
	return len(r.Available) == 0 && len(r.Selected) > 0
}
