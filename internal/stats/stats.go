// Package stats owns the durable performance ledger: lifetime counters,
// the daily activity log, the review queue, and the weak-tag table. The
// Store is the sole mutator; everything else reads copies.
package stats

import (
	"slices"
	"time"
)

// DailyStats is one calendar day's activity, keyed by DateKey.
type DailyStats struct {
	// Answered counts answers submitted that day.
	Answered int `json:"answered"`
	// Correct counts correct answers; always Correct <= Answered.
	Correct int `json:"correct"`
	// Categories lists the distinct categories played that day, in first-
	// played order. Only used for the daily variety stamp.
	Categories []string `json:"categories"`
}

// HasCategory reports whether the category was already played that day.
func (d DailyStats) HasCategory(cat string) bool {
	return slices.Contains(d.Categories, cat)
}

// Stats is the full ledger. JSON field names match the historical persisted
// payload, which load-time migration depends on.
type Stats struct {
	TotalAnswered int                   `json:"totalAnswered"`
	TotalCorrect  int                   `json:"totalCorrect"`
	ActivityLog   map[string]DailyStats `json:"activityLog"`
	// ReviewList holds question ids flagged for remediation; each id at
	// most once.
	ReviewList []string `json:"reviewList"`
	// WeakTags maps tag to cumulative miss count. Strictly additive, no
	// decay.
	WeakTags map[string]int `json:"weakTags"`
}

// New returns a zeroed ledger with allocated maps.
func New() Stats {
	return Stats{
		ActivityLog: make(map[string]DailyStats),
		WeakTags:    make(map[string]int),
	}
}

// Clone deep-copies the ledger so mutation functions can't alias the
// store's copy.
func (s Stats) Clone() Stats {
	out := s
	out.ActivityLog = make(map[string]DailyStats, len(s.ActivityLog))
	for k, v := range s.ActivityLog {
		v.Categories = slices.Clone(v.Categories)
		out.ActivityLog[k] = v
	}
	out.ReviewList = slices.Clone(s.ReviewList)
	out.WeakTags = make(map[string]int, len(s.WeakTags))
	for k, v := range s.WeakTags {
		out.WeakTags[k] = v
	}
	return out
}

// DateKey formats a time as the activity-log key (YYYY-MM-DD, local time).
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today returns the DailyStats for now's date, zero-valued if none.
func (s Stats) Today(now time.Time) DailyStats {
	return s.ActivityLog[DateKey(now)]
}

// InReview reports whether the question id is flagged for remediation.
func (s Stats) InReview(id string) bool {
	return slices.Contains(s.ReviewList, id)
}
