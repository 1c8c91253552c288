package stats

import "time"

// Stamp is a daily achievement derived from today's DailyStats. Stamps are
// computed on demand and never persisted.
type Stamp struct {
	Label    string
	Achieved bool
}

// Stamps evaluates today's three achievement thresholds.
func Stamps(s Stats, now time.Time) []Stamp {
	today := s.Today(now)
	return []Stamp{
		{Label: "やったよ", Achieved: today.Answered >= 1},
		{Label: "30もん", Achieved: today.Answered >= 30},
		{Label: "3しゅるい", Achieved: len(today.Categories) >= 3},
	}
}
