package session

import (
	"time"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/stats"
)

// RecordAnswer returns the ledger mutation for one scored answer. All
// seven ledger fields move together in the one returned function, so a
// single stats.Store.Mutate call applies them atomically:
//
//   - lifetime totals
//   - today's DailyStats, including the categories-played set (review
//     sessions don't count toward category variety)
//   - weakTags, bumped for every tag on a missed question
//   - the review queue: a miss enqueues the question; a hit retires it
//     only when it happened in review mode
func RecordAnswer(q quizbank.Question, mode string, correct bool, now time.Time) func(stats.Stats) stats.Stats {
	return func(s stats.Stats) stats.Stats {
		s.TotalAnswered++
		if correct {
			s.TotalCorrect++
		}

		key := stats.DateKey(now)
		day := s.ActivityLog[key]
		day.Answered++
		if correct {
			day.Correct++
		}
		if mode != ModeReview && !day.HasCategory(mode) {
			day.Categories = append(day.Categories, mode)
		}
		s.ActivityLog[key] = day

		if !correct {
			for _, tag := range q.Tags {
				s.WeakTags[tag]++
			}
			if !s.InReview(q.ID) {
				s.ReviewList = append(s.ReviewList, q.ID)
			}
		} else if mode == ModeReview {
			s.ReviewList = removeID(s.ReviewList, q.ID)
		}

		return s
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
