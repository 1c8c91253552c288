package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/stats"
)

// testBank builds a bank with one big category and a few tagged questions
// for review ordering.
func testBank(t *testing.T, categorySize int) *quizbank.Bank {
	t.Helper()
	qs := make([]quizbank.Question, categorySize)
	for i := range qs {
		qs[i] = quizbank.Question{
			ID:      fmt.Sprintf("big%d", i),
			Kind:    quizbank.KindSpelling,
			Prompt:  "p",
			Answer:  "a",
			Tags:    nil,
		}
	}
	tagged := []quizbank.Question{
		{ID: "weak", Kind: quizbank.KindSpelling, Prompt: "p", Answer: "a", Tags: []string{"grammar"}},
		{ID: "weaker", Kind: quizbank.KindSpelling, Prompt: "p", Answer: "a", Tags: []string{"be-verb"}},
		{ID: "untagged", Kind: quizbank.KindSpelling, Prompt: "p", Answer: "a"},
	}
	b, err := quizbank.New(map[string][]quizbank.Question{
		"big":    qs,
		"tagged": tagged,
	})
	if err != nil {
		t.Fatalf("build test bank: %v", err)
	}
	return b
}

func TestSelectCategoryCapsAtThirty(t *testing.T) {
	b := testBank(t, 50)
	got, err := Select("big", b, stats.New())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != MaxQuestions {
		t.Errorf("selected %d questions, want %d", len(got), MaxQuestions)
	}
}

func TestSelectSmallCategoryKeepsAll(t *testing.T) {
	b := testBank(t, 5)
	got, err := Select("big", b, stats.New())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("selected %d questions, want all 5", len(got))
	}
}

func TestSelectEmptyCategoryRefuses(t *testing.T) {
	b := testBank(t, 3)
	_, err := Select("no-such-category", b, stats.New())
	if !errors.Is(err, ErrNothingToPlay) {
		t.Errorf("err = %v, want ErrNothingToPlay", err)
	}
}

func TestSelectReviewEmptyQueueRefuses(t *testing.T) {
	b := testBank(t, 3)
	_, err := Select(ModeReview, b, stats.New())
	if !errors.Is(err, ErrNothingToPlay) {
		t.Errorf("err = %v, want ErrNothingToPlay", err)
	}
}

func TestSelectReviewDropsStaleIDs(t *testing.T) {
	b := testBank(t, 3)
	s := stats.New()
	s.ReviewList = []string{"big0", "deleted-long-ago", "big2"}

	got, err := Select(ModeReview, b, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("selected %d questions, want 2 (stale id dropped)", len(got))
	}
}

func TestSelectReviewAllStaleRefuses(t *testing.T) {
	b := testBank(t, 3)
	s := stats.New()
	s.ReviewList = []string{"gone1", "gone2"}

	_, err := Select(ModeReview, b, s)
	if !errors.Is(err, ErrNothingToPlay) {
		t.Errorf("err = %v, want ErrNothingToPlay", err)
	}
}

func TestSelectReviewOrdersByWeakness(t *testing.T) {
	b := testBank(t, 3)
	s := stats.New()
	s.ReviewList = []string{"untagged", "weak", "weaker"}
	s.WeakTags["grammar"] = 2
	s.WeakTags["be-verb"] = 5

	// The shuffle is random, but the stable weakness sort must always
	// put the weakest tags first.
	for i := 0; i < 10; i++ {
		got, err := Select(ModeReview, b, s)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("selected %d, want 3", len(got))
		}
		if got[0].ID != "weaker" || got[1].ID != "weak" || got[2].ID != "untagged" {
			t.Fatalf("order = [%s %s %s], want weakness-descending [weaker weak untagged]",
				got[0].ID, got[1].ID, got[2].ID)
		}
	}
}

func TestSelectShufflesCategory(t *testing.T) {
	b := testBank(t, 30)

	// Thirty questions have 30! orderings; two identical draws in a row
	// would mean the shuffle is broken (or we are astronomically lucky).
	first, err := Select("big", b, stats.New())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		next, err := Select("big", b, stats.New())
		if err != nil {
			t.Fatal(err)
		}
		same := true
		for j := range next {
			if next[j].ID != first[j].ID {
				same = false
				break
			}
		}
		if !same {
			return
		}
	}
	t.Error("six identical shuffles in a row; shuffle looks biased")
}
