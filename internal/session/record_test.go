package session

import (
	"testing"
	"time"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/stats"
)

var (
	taggedQ = quizbank.Question{ID: "g1", Kind: quizbank.KindChoice, Tags: []string{"grammar", "be-verb"}}
	plainQ  = quizbank.Question{ID: "v1", Kind: quizbank.KindChoice}
)

func TestRecordAnswerCorrect(t *testing.T) {
	now := time.Now()
	s := RecordAnswer(plainQ, "vocab", true, now)(stats.New())

	if s.TotalAnswered != 1 || s.TotalCorrect != 1 {
		t.Errorf("totals = %d/%d, want 1/1", s.TotalAnswered, s.TotalCorrect)
	}
	day := s.Today(now)
	if day.Answered != 1 || day.Correct != 1 {
		t.Errorf("daily = %d/%d, want 1/1", day.Answered, day.Correct)
	}
	if len(s.ReviewList) != 0 {
		t.Errorf("reviewList = %v, want empty after a correct answer", s.ReviewList)
	}
}

func TestRecordAnswerIncorrectAccumulatesWeakTags(t *testing.T) {
	now := time.Now()
	s := stats.New()
	s = RecordAnswer(taggedQ, "grammar", false, now)(s)
	s = RecordAnswer(taggedQ, "grammar", false, now)(s)

	if s.WeakTags["grammar"] != 2 || s.WeakTags["be-verb"] != 2 {
		t.Errorf("weakTags = %v, want grammar:2 be-verb:2", s.WeakTags)
	}
	if s.TotalCorrect != 0 || s.TotalAnswered != 2 {
		t.Errorf("totals = %d/%d, want 0/2", s.TotalCorrect, s.TotalAnswered)
	}
}

func TestRecordAnswerEnqueuesReviewOnce(t *testing.T) {
	now := time.Now()
	s := stats.New()
	s = RecordAnswer(plainQ, "vocab", false, now)(s)
	s = RecordAnswer(plainQ, "vocab", false, now)(s)

	if len(s.ReviewList) != 1 || s.ReviewList[0] != "v1" {
		t.Errorf("reviewList = %v, want [v1] (no duplicates)", s.ReviewList)
	}
}

func TestRecordAnswerReviewRetirement(t *testing.T) {
	now := time.Now()
	s := stats.New()
	s.ReviewList = []string{"v1", "g1"}

	// A correct answer in a normal category session keeps the id queued.
	s = RecordAnswer(plainQ, "vocab", true, now)(s)
	if !s.InReview("v1") {
		t.Error("correct answer outside review mode must not retire the id")
	}

	// The same correct answer in review mode retires it.
	s = RecordAnswer(plainQ, ModeReview, true, now)(s)
	if s.InReview("v1") {
		t.Error("correct answer in review mode must retire the id")
	}
	if !s.InReview("g1") {
		t.Error("other queued ids must survive")
	}
}

func TestRecordAnswerCategoryTracking(t *testing.T) {
	now := time.Now()
	s := stats.New()
	s = RecordAnswer(plainQ, "vocab", true, now)(s)
	s = RecordAnswer(plainQ, "vocab", false, now)(s)
	s = RecordAnswer(taggedQ, "grammar", true, now)(s)
	s = RecordAnswer(plainQ, ModeReview, true, now)(s)

	day := s.Today(now)
	want := []string{"vocab", "grammar"}
	if len(day.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v (distinct, review excluded)", day.Categories, want)
	}
	for i, cat := range want {
		if day.Categories[i] != cat {
			t.Errorf("categories[%d] = %s, want %s", i, day.Categories[i], cat)
		}
	}
}

func TestRecordAnswerNewDayNewEntry(t *testing.T) {
	s := stats.New()
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	s = RecordAnswer(plainQ, "vocab", true, day1)(s)
	s = RecordAnswer(plainQ, "vocab", true, day2)(s)

	if len(s.ActivityLog) != 2 {
		t.Errorf("activityLog has %d entries, want 2", len(s.ActivityLog))
	}
	if s.ActivityLog["2026-03-01"].Answered != 1 || s.ActivityLog["2026-03-02"].Answered != 1 {
		t.Errorf("activityLog = %+v", s.ActivityLog)
	}
}
