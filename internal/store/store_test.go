package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	s := openTestStore(t)
	l := s.Ledger()

	// Empty ledger loads as nil, nil.
	data, err := l.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if data != nil {
		t.Fatalf("empty ledger = %q, want nil", data)
	}

	if err := l.Save([]byte(`{"totalAnswered":5}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"totalAnswered":5}` {
		t.Errorf("loaded %q", got)
	}

	// A second save replaces the record, it does not accumulate rows.
	if err := l.Save([]byte(`{"totalAnswered":6}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM ledger").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("ledger rows = %d, want 1 (single storage key)", count)
	}
}

func TestAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []AnswerEvent{
		{SessionID: "s1", QuestionID: "v1", Category: "vocab", Kind: "choice", Correct: true, AnsweredAt: time.Now()},
		{SessionID: "s1", QuestionID: "g1", Category: "grammar", Kind: "choice", Correct: false, AnsweredAt: time.Now()},
		{SessionID: "s1", QuestionID: "g2", Category: "grammar", Kind: "choice", Correct: true, AnsweredAt: time.Now()},
	}
	for _, ev := range events {
		if err := s.AppendAnswerEvent(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := s.RecentAnswerEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d events, want 2", len(recent))
	}
	if recent[0].QuestionID != "g2" {
		t.Errorf("newest event = %s, want g2", recent[0].QuestionID)
	}

	acc, err := s.CategoryAccuracy(ctx)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc["grammar"] != [2]int{2, 1} {
		t.Errorf("grammar accuracy = %v, want [2 1]", acc["grammar"])
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Ledger().Save([]byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendAnswerEvent(ctx, AnswerEvent{SessionID: "s1", QuestionID: "v1", Category: "vocab", Kind: "choice", AnsweredAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	data, err := s.Ledger().Load()
	if err != nil {
		t.Fatal(err)
	}
	if data != nil {
		t.Error("ledger should be empty after reset")
	}
	events, err := s.RecentAnswerEvents(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after reset, want 0", len(events))
	}
}
