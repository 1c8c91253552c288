package store

import (
	"context"
	"fmt"
	"time"
)

// AnswerEvent is one row of the append-only answer history. The ledger
// holds the aggregates; events keep the raw sequence for the stats report.
type AnswerEvent struct {
	SessionID  string
	QuestionID string
	Category   string
	Kind       string
	Correct    bool
	AnsweredAt time.Time
}

// AppendAnswerEvent records one scored answer.
func (s *Store) AppendAnswerEvent(ctx context.Context, ev AnswerEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO answer_events (session_id, question_id, category, kind, correct, answered_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.QuestionID, ev.Category, ev.Kind, ev.Correct, ev.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

// RecentAnswerEvents returns the newest events, newest first.
func (s *Store) RecentAnswerEvents(ctx context.Context, limit int) ([]AnswerEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, question_id, category, kind, correct, answered_at
		FROM answer_events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var ev AnswerEvent
		if err := rows.Scan(&ev.SessionID, &ev.QuestionID, &ev.Category, &ev.Kind, &ev.Correct, &ev.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CategoryAccuracy returns lifetime answered/correct counts per category
// from the event history.
func (s *Store) CategoryAccuracy(ctx context.Context) (map[string][2]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*), SUM(correct)
		FROM answer_events
		GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("query category accuracy: %w", err)
	}
	defer rows.Close()

	out := make(map[string][2]int)
	for rows.Next() {
		var cat string
		var answered, correct int
		if err := rows.Scan(&cat, &answered, &correct); err != nil {
			return nil, fmt.Errorf("scan category accuracy: %w", err)
		}
		out[cat] = [2]int{answered, correct}
	}
	return out, rows.Err()
}
