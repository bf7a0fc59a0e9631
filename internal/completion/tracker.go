// Package completion tracks which challenges were finished today, so a
// challenge awarded XP once is not re-awarded on a repeat within the same
// calendar day.
package completion

import (
	"context"
	"strings"
	"time"

	"github.com/oriolmontal/lingodrill/internal/store"
)

const keyPrefix = "completion:"

// DayKey returns the calendar-day identifier for t in t's location.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Tracker is a day-scoped idempotent set of completed challenge IDs backed
// by the KV store.
type Tracker struct {
	kv  store.KV
	now func() time.Time
}

// NewTracker creates a Tracker using the local wall clock.
func NewTracker(kv store.KV) *Tracker {
	return &Tracker{kv: kv, now: time.Now}
}

// MarkCompleted records challengeID as completed today. Marking the same
// ID twice on the same day is a no-op.
func (t *Tracker) MarkCompleted(ctx context.Context, challengeID string) error {
	return t.kv.Set(ctx, t.key(challengeID), "1")
}

// IsCompletedToday reports whether challengeID was already completed today.
func (t *Tracker) IsCompletedToday(ctx context.Context, challengeID string) (bool, error) {
	_, ok, err := t.kv.Get(ctx, t.key(challengeID))
	if err != nil {
		return false, err
	}
	return ok, nil
}

// CleanupOldRecords removes every day's records except today's. Called once
// at process start, never mid-session.
func (t *Tracker) CleanupOldRecords(ctx context.Context) error {
	keys, err := t.kv.ListKeys(ctx, keyPrefix)
	if err != nil {
		return err
	}

	todayPrefix := keyPrefix + DayKey(t.now()) + ":"
	var stale []string
	for _, k := range keys {
		if !strings.HasPrefix(k, todayPrefix) {
			stale = append(stale, k)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	return t.kv.MultiRemove(ctx, stale)
}

func (t *Tracker) key(challengeID string) string {
	return keyPrefix + DayKey(t.now()) + ":" + challengeID
}
