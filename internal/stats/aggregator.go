package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oriolmontal/lingodrill/internal/completion"
	"github.com/oriolmontal/lingodrill/internal/store"
)

const (
	dayKeyPrefix      = "stats:day:"
	categoryKeyPrefix = "stats:category:"
	streakKey         = "stats:streak"
)

// Aggregator owns the daily and category statistics. The day key is
// derived from the clock at the moment each answer is recorded, so a
// session spanning midnight attributes each answer to its actual day.
type Aggregator struct {
	cfg    Config
	kv     store.KV
	logger *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewAggregator creates an Aggregator using the local wall clock.
func NewAggregator(cfg Config, kv store.KV) *Aggregator {
	return &Aggregator{
		cfg:    cfg,
		kv:     kv,
		logger: slog.Default(),
		now:    time.Now,
	}
}

// RecordAnswer adds one answered challenge to today's counters and updates
// the streak on the day's first activity. Persistence failures are logged,
// never returned.
func (a *Aggregator) RecordAnswer(ctx context.Context, isCorrect bool, xp int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	day := completion.DayKey(a.now())

	stats := a.loadDay(ctx, day)
	stats.TotalChallenges++
	if isCorrect {
		stats.CorrectAnswers++
	}
	stats.TotalXP += xp
	a.save(ctx, dayKeyPrefix+day, stats)

	a.updateStreak(ctx, day)
}

// RecordCategoryAnswer adds one answered challenge to a category's
// counters. totalInCategory refreshes the category size reported by the
// content source.
func (a *Aggregator) RecordCategoryAnswer(ctx context.Context, language, level, category string, isCorrect bool, totalInCategory int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := categoryKey(language, level, category)

	cs := CategoryStats{Language: language, Level: level, Category: category}
	if value, ok, err := a.kv.Get(ctx, key); err != nil {
		a.logger.Warn("failed to read category stats", "key", key, "error", err)
	} else if ok {
		if err := json.Unmarshal([]byte(value), &cs); err != nil {
			a.logger.Warn("corrupt category stats record, resetting", "key", key, "error", err)
			cs = CategoryStats{Language: language, Level: level, Category: category}
		}
	}

	cs.Attempts++
	if isCorrect {
		cs.Correct++
	}
	if totalInCategory > 0 {
		cs.TotalInCategory = totalInCategory
	}
	a.save(ctx, key, cs)
}

// Today returns today's counters, zero-valued if there was no activity yet.
func (a *Aggregator) Today(ctx context.Context) (DailyStats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	day := completion.DayKey(a.now())
	return a.loadDay(ctx, day), nil
}

// History returns up to limit most recent days with activity, oldest first.
// limit <= 0 returns everything.
func (a *Aggregator) History(ctx context.Context, limit int) ([]DailyStats, error) {
	keys, err := a.kv.ListKeys(ctx, dayKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list day records: %w", err)
	}
	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}

	out := make([]DailyStats, 0, len(keys))
	for _, k := range keys {
		value, ok, err := a.kv.Get(ctx, k)
		if err != nil || !ok {
			continue
		}
		var d DailyStats
		if err := json.Unmarshal([]byte(value), &d); err != nil {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// CurrentStreak returns the stored streak state.
func (a *Aggregator) CurrentStreak(ctx context.Context) (Streak, error) {
	var s Streak
	value, ok, err := a.kv.Get(ctx, streakKey)
	if err != nil {
		return s, fmt.Errorf("read streak: %w", err)
	}
	if !ok {
		return s, nil
	}
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		return Streak{}, fmt.Errorf("decode streak: %w", err)
	}
	return s, nil
}

// Categories returns the category counters for a language, every level,
// sorted by level then category.
func (a *Aggregator) Categories(ctx context.Context, language string) ([]CategoryStats, error) {
	keys, err := a.kv.ListKeys(ctx, categoryKeyPrefix+language+":")
	if err != nil {
		return nil, fmt.Errorf("list category records: %w", err)
	}
	sort.Strings(keys)

	out := make([]CategoryStats, 0, len(keys))
	for _, k := range keys {
		value, ok, err := a.kv.Get(ctx, k)
		if err != nil || !ok {
			continue
		}
		var cs CategoryStats
		if err := json.Unmarshal([]byte(value), &cs); err != nil {
			continue
		}
		out = append(out, cs)
	}
	return out, nil
}

// updateStreak bumps the streak on the first qualifying activity of a day.
func (a *Aggregator) updateStreak(ctx context.Context, day string) {
	var s Streak
	if value, ok, err := a.kv.Get(ctx, streakKey); err != nil {
		a.logger.Warn("failed to read streak", "error", err)
		return
	} else if ok {
		if err := json.Unmarshal([]byte(value), &s); err != nil {
			a.logger.Warn("corrupt streak record, resetting", "error", err)
			s = Streak{}
		}
	}

	if s.LastActiveDay == day {
		return
	}

	switch {
	case s.LastActiveDay == "":
		s.Current = 1
	case dayDiff(s.LastActiveDay, day) <= 1+a.cfg.StreakGraceDays:
		s.Current++
	default:
		s.Current = 1
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastActiveDay = day
	a.save(ctx, streakKey, s)
}

func (a *Aggregator) loadDay(ctx context.Context, day string) DailyStats {
	stats := DailyStats{Day: day}
	value, ok, err := a.kv.Get(ctx, dayKeyPrefix+day)
	if err != nil {
		a.logger.Warn("failed to read daily stats", "day", day, "error", err)
		return stats
	}
	if !ok {
		return stats
	}
	if err := json.Unmarshal([]byte(value), &stats); err != nil {
		a.logger.Warn("corrupt daily stats record, resetting", "day", day, "error", err)
		return DailyStats{Day: day}
	}
	return stats
}

func (a *Aggregator) save(ctx context.Context, key string, v any) {
	value, err := json.Marshal(v)
	if err != nil {
		a.logger.Warn("failed to encode stats record", "key", key, "error", err)
		return
	}
	if err := a.kv.Set(ctx, key, string(value)); err != nil {
		a.logger.Warn("failed to persist stats record", "key", key, "error", err)
	}
}

func categoryKey(language, level, category string) string {
	return categoryKeyPrefix + strings.Join([]string{language, level, category}, ":")
}
