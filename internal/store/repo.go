package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerEventData captures a single answered challenge.
type AnswerEventData struct {
	SessionID     string
	ChallengeID   string
	ChallengeType string
	Language      string
	Level         string
	Correct       bool
	Combo         int
	XPAwarded     int
	SpeedBonus    int
	TimeMs        int
	StudyMode     bool
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID           string
	Action              string // "start" or "end"
	ChallengeType       string
	Language            string
	Level               string
	Source              string
	StudyMode           bool
	ChallengesTotal     int
	ChallengesCompleted int
	CorrectAnswers      int
	XPTotal             int
	DurationSecs        int
	EndedEarly          bool
	EndReason           string
}

// HeartEventData captures a heart pool mutation.
type HeartEventData struct {
	ChallengeType string
	Action        string // "consume", "grant", or "refill"
	Remaining     int
	OutOfHearts   bool
	Authoritative bool
	SessionID     string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionRecord is a finished session as read back for display.
type SessionRecord struct {
	SessionID           string
	Timestamp           time.Time
	ChallengeType       string
	Language            string
	Level               string
	StudyMode           bool
	ChallengesTotal     int
	ChallengesCompleted int
	CorrectAnswers      int
	XPTotal             int
	DurationSecs        int
	EndedEarly          bool
	EndReason           string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records an answered challenge.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendHeart records a heart pool mutation.
	AppendHeart(ctx context.Context, data HeartEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns finished sessions, newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)
}

// KV is the persistent string-keyed store behind daily statistics,
// category statistics, completion records, and cached heart pools.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes the value for key, creating or replacing it.
	Set(ctx context.Context, key, value string) error

	// MultiRemove deletes every listed key. Missing keys are not an error.
	MultiRemove(ctx context.Context, keys []string) error

	// ListKeys returns all keys starting with prefix.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
