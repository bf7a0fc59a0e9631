// Package session implements the challenge session engine: the state
// machine that sequences challenges, meters hearts, scores answers, and
// reconciles outcomes with the day-scoped statistics.
package session

import (
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/hearts"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusCompleting     // last challenge answered, awaiting End
	StatusExhaustedEarly // hearts ran out mid-session
	StatusQuitRequested  // user asked to quit, finalization in progress
	StatusFinalized
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusCompleting:
		return "completing"
	case StatusExhaustedEarly:
		return "exhausted_early"
	case StatusQuitRequested:
		return "quit_requested"
	case StatusFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Session is one run of challenges. All mutation goes through the Engine's
// operations; callers never write fields directly.
type Session struct {
	ID            string
	Challenges    []challenge.Challenge
	ChallengeType challenge.Type
	Language      string
	Level         string
	Source        challenge.Source
	StudyMode     bool

	// CategoryTotal is how many challenges the content source holds for
	// this (language, level, type) category, reported to the statistics
	// aggregator so accuracy can be shown against category size.
	CategoryTotal int

	Status         Status
	CurrentIndex   int
	Completed      int
	CorrectAnswers int
	Combo          int
	XPTotal        int
	Incorrect      []challenge.Challenge
	EndedEarly     bool

	// LastHeartResponse is the most recent heart consumption result, nil
	// until the first non-study answer.
	LastHeartResponse *hearts.Response

	StartedAt time.Time

	// shownAt is when the current challenge was presented, the baseline
	// for the speed bonus.
	shownAt time.Time

	// answeredCurrent blocks a second answer for the same challenge.
	answeredCurrent bool

	// summary caches the finalization result so End stays idempotent.
	summary *Summary
}

// Current returns the challenge at the cursor, nil when past the end.
func (s *Session) Current() *challenge.Challenge {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Challenges) {
		return nil
	}
	return &s.Challenges[s.CurrentIndex]
}

// Finalized reports whether the session has been ended.
func (s *Session) Finalized() bool {
	return s.Status == StatusFinalized
}
