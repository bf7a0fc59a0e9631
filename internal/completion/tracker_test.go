package completion

import (
	"context"
	"testing"
	"time"

	"github.com/oriolmontal/lingodrill/internal/store"
)

func newTestTracker() (*Tracker, *store.MemKV, *time.Time) {
	kv := store.NewMemKV()
	tr := NewTracker(kv)
	now := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return now }
	return tr, kv, &now
}

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC))
	if got != "2026-03-14" {
		t.Fatalf("expected 2026-03-14, got %q", got)
	}
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	tr, kv, _ := newTestTracker()
	ctx := context.Background()

	if err := tr.MarkCompleted(ctx, "ch-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sizeAfterFirst := kv.Len()

	if err := tr.MarkCompleted(ctx, "ch-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kv.Len() != sizeAfterFirst {
		t.Fatalf("second mark changed set size: %d != %d", kv.Len(), sizeAfterFirst)
	}

	done, err := tr.IsCompletedToday(ctx, "ch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Fatal("expected ch-1 to be completed today")
	}
}

func TestIsCompletedToday_UnknownID(t *testing.T) {
	tr, _, _ := newTestTracker()

	done, err := tr.IsCompletedToday(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done {
		t.Fatal("unknown id must not be completed")
	}
}

func TestMidnightRollover(t *testing.T) {
	tr, _, now := newTestTracker()
	ctx := context.Background()

	if err := tr.MarkCompleted(ctx, "ch-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Past midnight the same challenge counts as fresh.
	*now = now.Add(3 * time.Hour)

	done, err := tr.IsCompletedToday(ctx, "ch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done {
		t.Fatal("yesterday's completion must not count today")
	}
}

func TestCleanupOldRecords(t *testing.T) {
	tr, kv, now := newTestTracker()
	ctx := context.Background()

	if err := tr.MarkCompleted(ctx, "ch-old"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	*now = now.Add(48 * time.Hour)
	if err := tr.MarkCompleted(ctx, "ch-new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tr.CleanupOldRecords(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if kv.Len() != 1 {
		t.Fatalf("expected only today's record to remain, got %d keys", kv.Len())
	}
	done, err := tr.IsCompletedToday(ctx, "ch-new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Fatal("today's record must survive cleanup")
	}
}

func TestCleanupOldRecords_NothingStale(t *testing.T) {
	tr, kv, _ := newTestTracker()
	ctx := context.Background()

	if err := tr.MarkCompleted(ctx, "ch-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.CleanupOldRecords(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kv.Len() != 1 {
		t.Fatalf("cleanup removed today's record: %d keys", kv.Len())
	}
}
