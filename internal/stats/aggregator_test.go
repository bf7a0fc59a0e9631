package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oriolmontal/lingodrill/internal/store"
)

func newTestAggregator(cfg Config) (*Aggregator, *time.Time) {
	a := NewAggregator(cfg, store.NewMemKV())
	now := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }
	return a, &now
}

func TestRecordAnswer_AccumulatesDay(t *testing.T) {
	a, _ := newTestAggregator(DefaultConfig())
	ctx := context.Background()

	a.RecordAnswer(ctx, true, 15)
	a.RecordAnswer(ctx, false, 0)
	a.RecordAnswer(ctx, true, 10)

	day, err := a.Today(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.TotalChallenges != 3 {
		t.Fatalf("expected 3 challenges, got %d", day.TotalChallenges)
	}
	if day.CorrectAnswers != 2 {
		t.Fatalf("expected 2 correct, got %d", day.CorrectAnswers)
	}
	if day.TotalXP != 25 {
		t.Fatalf("expected 25 XP, got %d", day.TotalXP)
	}
	if got := day.Accuracy(); got < 0.66 || got > 0.67 {
		t.Fatalf("expected accuracy ~0.667, got %f", got)
	}
}

func TestRecordAnswer_MidnightRollover(t *testing.T) {
	a, now := newTestAggregator(DefaultConfig())
	ctx := context.Background()

	a.RecordAnswer(ctx, true, 10)

	// The session keeps running past midnight; the next answer belongs to
	// the new day.
	*now = now.Add(3 * time.Hour)
	a.RecordAnswer(ctx, true, 10)

	day, err := a.Today(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Day != "2026-03-15" {
		t.Fatalf("expected day 2026-03-15, got %q", day.Day)
	}
	if day.TotalChallenges != 1 {
		t.Fatalf("expected 1 challenge on the new day, got %d", day.TotalChallenges)
	}

	history, err := a.History(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 days of history, got %d", len(history))
	}
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	a, now := newTestAggregator(DefaultConfig())
	ctx := context.Background()

	a.RecordAnswer(ctx, true, 10)
	a.RecordAnswer(ctx, true, 10) // same day, streak unchanged

	*now = now.Add(24 * time.Hour)
	a.RecordAnswer(ctx, true, 10)

	s, err := a.CurrentStreak(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Current != 2 {
		t.Fatalf("expected streak 2, got %d", s.Current)
	}
	if s.Longest != 2 {
		t.Fatalf("expected longest 2, got %d", s.Longest)
	}
}

func TestStreak_BreaksAfterGap(t *testing.T) {
	a, now := newTestAggregator(DefaultConfig())
	ctx := context.Background()

	a.RecordAnswer(ctx, true, 10)
	*now = now.Add(24 * time.Hour)
	a.RecordAnswer(ctx, true, 10)

	// Two silent days with zero grace: streak resets to 1, not 0.
	*now = now.Add(72 * time.Hour)
	a.RecordAnswer(ctx, true, 10)

	s, err := a.CurrentStreak(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Current != 1 {
		t.Fatalf("expected streak reset to 1, got %d", s.Current)
	}
	if s.Longest != 2 {
		t.Fatalf("expected longest 2 preserved, got %d", s.Longest)
	}
}

func TestStreak_GraceDaySurvivesOneMissedDay(t *testing.T) {
	a, now := newTestAggregator(Config{StreakGraceDays: 1})
	ctx := context.Background()

	a.RecordAnswer(ctx, true, 10)

	// One missed day, within grace.
	*now = now.Add(48 * time.Hour)
	a.RecordAnswer(ctx, true, 10)

	s, err := a.CurrentStreak(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Current != 2 {
		t.Fatalf("expected streak 2 with grace, got %d", s.Current)
	}
}

func TestRecordCategoryAnswer(t *testing.T) {
	a, _ := newTestAggregator(DefaultConfig())
	ctx := context.Background()

	a.RecordCategoryAnswer(ctx, "es", "A2", "past-tense", true, 40)
	a.RecordCategoryAnswer(ctx, "es", "A2", "past-tense", false, 40)
	a.RecordCategoryAnswer(ctx, "es", "B1", "subjunctive", true, 25)
	a.RecordCategoryAnswer(ctx, "fr", "A1", "articles", true, 10)

	cats, err := a.Categories(ctx, "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 Spanish categories, got %d", len(cats))
	}

	first := cats[0]
	if first.Category != "past-tense" || first.Attempts != 2 || first.Correct != 1 {
		t.Fatalf("unexpected category stats: %+v", first)
	}
	if first.TotalInCategory != 40 {
		t.Fatalf("expected category size 40, got %d", first.TotalInCategory)
	}
	if got := first.Accuracy(); got != 0.5 {
		t.Fatalf("expected accuracy 0.5, got %f", got)
	}
}

func TestRecordAnswer_SurvivesFailingKV(t *testing.T) {
	kv := store.NewMemKV()
	kv.FailWrites = true
	kv.Err = errors.New("disk full")
	a := NewAggregator(DefaultConfig(), kv)
	a.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

	// Must not panic or propagate the write failure.
	a.RecordAnswer(context.Background(), true, 10)
	a.RecordCategoryAnswer(context.Background(), "es", "A1", "greetings", true, 5)
}
