package session

import "time"

// Summary holds the data shown on the completion screen.
type Summary struct {
	Mode     string
	Total    int
	Score    int
	Accuracy float64
	Duration time.Duration
}

// BuildSummary snapshots a finished (or abandoned) session.
func BuildSummary(st *State) *Summary {
	var accuracy float64
	if len(st.Questions) > 0 {
		accuracy = float64(st.Score) / float64(len(st.Questions))
	}
	return &Summary{
		Mode:     st.Mode,
		Total:    len(st.Questions),
		Score:    st.Score,
		Accuracy: accuracy,
		Duration: time.Since(st.StartTime),
	}
}
