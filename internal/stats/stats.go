// Package stats aggregates day-scoped practice statistics over the KV
// store. Writes are best-effort: a transiently unavailable store is logged
// and never blocks the session engine.
package stats

import "time"

// DailyStats holds the counters for one calendar day. Accuracy is derived
// from the counters at read time, never stored.
type DailyStats struct {
	Day             string `json:"day"`
	TotalChallenges int    `json:"total_challenges"`
	CorrectAnswers  int    `json:"correct_answers"`
	TotalXP         int    `json:"total_xp"`
}

// Accuracy returns correct/attempts, or 0 for an empty day.
func (d DailyStats) Accuracy() float64 {
	if d.TotalChallenges == 0 {
		return 0
	}
	return float64(d.CorrectAnswers) / float64(d.TotalChallenges)
}

// CategoryStats tracks progress within one content category of a
// language/level pair.
type CategoryStats struct {
	Language        string `json:"language"`
	Level           string `json:"level"`
	Category        string `json:"category"`
	Attempts        int    `json:"attempts"`
	Correct         int    `json:"correct"`
	TotalInCategory int    `json:"total_in_category"`
}

// Accuracy returns correct/attempts, or 0 for an untouched category.
func (c CategoryStats) Accuracy() float64 {
	if c.Attempts == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Attempts)
}

// Streak counts consecutive active calendar days.
type Streak struct {
	Current       int    `json:"current"`
	Longest       int    `json:"longest"`
	LastActiveDay string `json:"last_active_day"`
}

// Config controls streak accounting.
type Config struct {
	// StreakGraceDays is how many fully inactive days may pass before the
	// streak breaks. Zero means strictly consecutive days.
	StreakGraceDays int
}

// DefaultConfig returns the standard statistics configuration.
func DefaultConfig() Config {
	return Config{StreakGraceDays: 0}
}

// dayDiff returns the number of calendar days between two day keys.
// Malformed keys count as an infinite gap.
func dayDiff(from, to string) int {
	a, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 1 << 30
	}
	b, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 1 << 30
	}
	return int(b.Sub(a).Hours() / 24)
}
