package stats

import (
	"testing"
	"time"
)

func TestTagWeakness(t *testing.T) {
	weak := map[string]int{"animal": 3, "food": 1}

	tests := []struct {
		name string
		tags []string
		want int
	}{
		{"sums known tags", []string{"animal", "food"}, 4},
		{"ignores unseen tags", []string{"animal", "color"}, 3},
		{"empty tag set", nil, 0},
		{"all unseen", []string{"who", "when"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagWeakness(weak, tt.tags); got != tt.want {
				t.Errorf("TagWeakness(%v) = %d, want %d", tt.tags, got, tt.want)
			}
		})
	}
}

func TestAdviceGenericBelowThreshold(t *testing.T) {
	s := New()
	s.WeakTags["animal"] = 2

	if got := Advice(s); got != genericAdvice {
		t.Errorf("Advice = %q, want generic message below threshold", got)
	}
}

func TestAdviceTopicSpecificAtThreshold(t *testing.T) {
	s := New()
	s.WeakTags["animal"] = 3
	s.WeakTags["food"] = 1

	if got, want := Advice(s), adviceMessages["animal"]; got != want {
		t.Errorf("Advice = %q, want %q", got, want)
	}
}

func TestAdvicePicksWorstTag(t *testing.T) {
	s := New()
	s.WeakTags["grammar"] = 4
	s.WeakTags["be-verb"] = 7

	if got, want := Advice(s), adviceMessages["be-verb"]; got != want {
		t.Errorf("Advice = %q, want worst tag's message %q", got, want)
	}
}

func TestAdviceFallbackForUnmappedTag(t *testing.T) {
	s := New()
	s.WeakTags["weather"] = 5

	if got, want := Advice(s), "「weather」に チャレンジ！"; got != want {
		t.Errorf("Advice = %q, want templated fallback %q", got, want)
	}
}

func TestAdviceEmptyLedger(t *testing.T) {
	if got := Advice(New()); got != genericAdvice {
		t.Errorf("Advice = %q, want generic message for empty ledger", got)
	}
}

func TestStamps(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		day  DailyStats
		want [3]bool
	}{
		{"untouched day", DailyStats{}, [3]bool{false, false, false}},
		{"one answer", DailyStats{Answered: 1}, [3]bool{true, false, false}},
		{"thirty answers", DailyStats{Answered: 30, Correct: 20}, [3]bool{true, true, false}},
		{
			"three categories",
			DailyStats{Answered: 5, Categories: []string{"vocab", "grammar", "spelling"}},
			[3]bool{true, false, true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.ActivityLog[DateKey(now)] = tt.day

			stamps := Stamps(s, now)
			if len(stamps) != 3 {
				t.Fatalf("got %d stamps, want 3", len(stamps))
			}
			for i, st := range stamps {
				if st.Achieved != tt.want[i] {
					t.Errorf("stamp %q achieved = %v, want %v", st.Label, st.Achieved, tt.want[i])
				}
			}
		})
	}
}
