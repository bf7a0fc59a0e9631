package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/completion"
	"github.com/oriolmontal/lingodrill/internal/hearts"
	"github.com/oriolmontal/lingodrill/internal/report"
	"github.com/oriolmontal/lingodrill/internal/scoring"
	"github.com/oriolmontal/lingodrill/internal/stats"
	"github.com/oriolmontal/lingodrill/internal/store"
)

// HeartConsumer meters the per-challenge-type heart pools.
type HeartConsumer interface {
	Consume(ctx context.Context, userID string, challengeType challenge.Type, sessionID string) (*hearts.Response, error)
}

// Deps are the engine's collaborators. Every field may be nil: a nil
// HeartConsumer means unlimited hearts, a nil Reporter means no backend
// reporting, and so on.
type Deps struct {
	Hearts     HeartConsumer
	Stats      *stats.Aggregator
	Completion *completion.Tracker
	Reporter   report.Reporter
	Events     store.EventRepo
}

// Engine runs challenge sessions. All session mutation funnels through its
// operations; an Answer call returns only after every dependent side effect
// (scoring, heart consumption, statistics, completion, reporting) has been
// applied, so a subsequent Advance or End always observes consistent state.
type Engine struct {
	scoring scoring.Config
	userID  string
	deps    Deps
	logger  *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewEngine creates an Engine for one user.
func NewEngine(scoringCfg scoring.Config, userID string, deps Deps) *Engine {
	if deps.Reporter == nil {
		deps.Reporter = report.NopReporter{}
	}
	return &Engine{
		scoring: scoringCfg,
		userID:  userID,
		deps:    deps,
		logger:  slog.Default(),
		now:     time.Now,
	}
}

// StartParams configures a new session.
type StartParams struct {
	// Challenges is the ordered queue. Review sessions supply the exact
	// list to replay; the engine never reshuffles it.
	Challenges    []challenge.Challenge
	ChallengeType challenge.Type
	Language      string
	Level         string
	Source        challenge.Source

	// CategoryTotal is the content source's challenge count for this
	// category. Zero means unknown and leaves the stored size untouched.
	CategoryTotal int

	// StudyMode disables hearts, XP, and statistics. Every answer counts
	// as progress.
	StudyMode bool
}

// Start begins a session. Fails with *InvalidSessionError on an empty
// challenge queue.
func (e *Engine) Start(ctx context.Context, params StartParams) (*Session, error) {
	if len(params.Challenges) == 0 {
		return nil, &InvalidSessionError{Op: "start", Reason: "empty challenge queue"}
	}

	now := e.now()
	sess := &Session{
		ID:            uuid.NewString(),
		Challenges:    params.Challenges,
		ChallengeType: params.ChallengeType,
		Language:      params.Language,
		Level:         params.Level,
		Source:        params.Source,
		CategoryTotal: params.CategoryTotal,
		StudyMode:     params.StudyMode,
		Status:        StatusActive,
		StartedAt:     now,
		shownAt:       now,
	}

	e.appendSessionEvent(ctx, sess, "start", "")
	return sess, nil
}

// AnswerResult is what a resolved Answer call reports back.
type AnswerResult struct {
	Correct bool

	// Score and XPAwarded are zero in study mode and for challenges
	// already completed today.
	Score     scoring.Score
	XPAwarded int
	Combo     int

	// AlreadyCompletedToday is true when the challenge earned XP earlier
	// today, suppressing a second award.
	AlreadyCompletedToday bool

	// HeartResponse is the consumption result, nil in study mode.
	HeartResponse *hearts.Response

	// OutOfHearts is true when this answer exhausted the pool and the
	// session moved to ExhaustedEarly.
	OutOfHearts bool

	// SessionComplete is true when this was the last challenge and the
	// session moved to Completing.
	SessionComplete bool

	// AutoAdvance tells the caller to invoke Advance immediately. False
	// for native_check challenges, whose undo window expires externally,
	// and whenever the session cannot proceed.
	AutoAdvance bool
}

// Answer resolves the current challenge. The challengeID must match the
// cursor; a mismatch is a stale call and is rejected with
// *StaleAnswerError. This is the only operation that changes combo state.
func (e *Engine) Answer(ctx context.Context, sess *Session, challengeID string, isCorrect bool) (*AnswerResult, error) {
	e.mu.Lock()
	if sess.Status != StatusActive {
		e.mu.Unlock()
		return nil, &InvalidSessionError{Op: "answer", Reason: "session is " + sess.Status.String()}
	}
	cur := sess.Current()
	if cur == nil {
		e.mu.Unlock()
		return nil, &InvalidSessionError{Op: "answer", Reason: "no current challenge"}
	}
	if cur.ID != challengeID {
		e.mu.Unlock()
		return nil, &StaleAnswerError{Expected: cur.ID, Got: challengeID}
	}
	if sess.answeredCurrent {
		e.mu.Unlock()
		return nil, &InvalidSessionError{Op: "answer", Reason: "current challenge already answered"}
	}
	sess.answeredCurrent = true
	ch := *cur
	elapsed := e.now().Sub(sess.shownAt)
	consume := !sess.StudyMode && e.deps.Hearts != nil
	e.mu.Unlock()

	// Heart consumption may block on the network. The lock is released so
	// Quit stays callable while the call is in flight; the status re-check
	// below discards a result that arrives after finalization.
	var hr *hearts.Response
	if consume {
		var err error
		hr, err = e.deps.Hearts.Consume(ctx, e.userID, sess.ChallengeType, sess.ID)
		if err != nil {
			e.logger.Warn("heart consumption failed, continuing without",
				"session_id", sess.ID, "error", err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if sess.Status != StatusActive {
		return nil, &InvalidSessionError{Op: "answer", Reason: "session finalized while answer was in flight"}
	}

	sess.Completed++
	result := &AnswerResult{Correct: isCorrect}

	if sess.StudyMode {
		// Review is reinforcement, not re-scoring: every answer counts as
		// progress and nothing is metered or recorded against the day.
		sess.CorrectAnswers++
	} else {
		if isCorrect {
			sess.Combo++
			sess.CorrectAnswers++
		} else {
			sess.Combo = 0
			sess.Incorrect = append(sess.Incorrect, ch)
		}
		result.Combo = sess.Combo

		score := scoring.Compute(e.scoring, isCorrect, elapsed, sess.Combo)
		awarded := score.Total()

		if isCorrect && e.deps.Completion != nil {
			already, err := e.deps.Completion.IsCompletedToday(ctx, ch.ID)
			if err != nil {
				e.logger.Warn("completion lookup failed, awarding XP",
					"challenge_id", ch.ID, "error", err)
			} else if already {
				result.AlreadyCompletedToday = true
				score = scoring.Score{}
				awarded = 0
			}
			if err := e.deps.Completion.MarkCompleted(ctx, ch.ID); err != nil {
				e.logger.Warn("failed to mark challenge completed",
					"challenge_id", ch.ID, "error", err)
			}
		}

		sess.XPTotal += awarded
		result.Score = score
		result.XPAwarded = awarded

		if hr != nil {
			sess.LastHeartResponse = hr
			result.HeartResponse = hr
		}

		if e.deps.Stats != nil {
			e.deps.Stats.RecordAnswer(ctx, isCorrect, awarded)
			e.deps.Stats.RecordCategoryAnswer(ctx, sess.Language, sess.Level, string(ch.Type), isCorrect, sess.CategoryTotal)
		}
		e.deps.Reporter.ReportAnswer(ctx, report.AnswerReport{
			ChallengeID: ch.ID,
			Correct:     isCorrect,
			TimeSpent:   elapsed,
		})
	}

	e.appendAnswerEvent(ctx, sess, ch, isCorrect, elapsed, result)

	switch {
	case sess.Completed == len(sess.Challenges):
		sess.Status = StatusCompleting
		result.SessionComplete = true
	case hr != nil && hr.OutOfHearts:
		sess.Status = StatusExhaustedEarly
		sess.EndedEarly = true
		result.OutOfHearts = true
	default:
		result.AutoAdvance = ch.Type != challenge.TypeNativeCheck
	}
	return result, nil
}

// Advance moves the cursor to the next challenge. Valid only while Active,
// after the current challenge was answered, and when a next challenge
// exists.
func (e *Engine) Advance(sess *Session) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sess.Status != StatusActive {
		return &InvalidSessionError{Op: "advance", Reason: "session is " + sess.Status.String()}
	}
	if !sess.answeredCurrent {
		return &InvalidSessionError{Op: "advance", Reason: "current challenge not answered"}
	}
	if sess.CurrentIndex+1 >= len(sess.Challenges) {
		return &InvalidSessionError{Op: "advance", Reason: "no next challenge"}
	}

	sess.CurrentIndex++
	sess.answeredCurrent = false
	sess.shownAt = e.now()
	return nil
}

// End finalizes the session and returns its summary. Idempotent: a second
// call returns the same summary without re-emitting events or re-counting
// statistics.
func (e *Engine) End(ctx context.Context, sess *Session) (*Summary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	reason := EndReasonQuit
	switch {
	case sess.Status == StatusCompleting:
		reason = EndReasonCompleted
	case sess.Status == StatusExhaustedEarly:
		reason = EndReasonExhausted
	case sess.Completed == len(sess.Challenges):
		reason = EndReasonCompleted
	}
	return e.finalize(ctx, sess, reason)
}

// Quit is user-initiated finalization. Hearts already spent are not
// refunded. Safe to call at any point after Start, including while a heart
// consumption is in flight.
func (e *Engine) Quit(ctx context.Context, sess *Session) (*Summary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !sess.Finalized() {
		sess.Status = StatusQuitRequested
	}
	return e.finalize(ctx, sess, EndReasonQuit)
}

// ReviewMistakes starts a fresh study-mode session over the summary's
// incorrect challenges, in their original order.
func (e *Engine) ReviewMistakes(ctx context.Context, summary *Summary) (*Session, error) {
	if summary == nil || len(summary.Incorrect) == 0 {
		return nil, &InvalidSessionError{Op: "review", Reason: "no mistakes to review"}
	}
	return e.Start(ctx, StartParams{
		Challenges:    summary.Incorrect,
		ChallengeType: summary.ChallengeType,
		Language:      summary.Language,
		Level:         summary.Level,
		Source:        summary.Source,
		StudyMode:     true,
	})
}

// finalize is called with the lock held.
func (e *Engine) finalize(ctx context.Context, sess *Session, reason string) (*Summary, error) {
	if sess.Status == StatusFinalized {
		return sess.summary, nil
	}
	if sess.Status == StatusIdle {
		return nil, &InvalidSessionError{Op: "end", Reason: "session never started"}
	}

	if sess.Completed < len(sess.Challenges) {
		sess.EndedEarly = true
	}

	duration := e.now().Sub(sess.StartedAt)
	sess.Status = StatusFinalized
	sess.summary = buildSummary(sess, duration, reason)

	e.appendSessionEvent(ctx, sess, "end", reason)
	return sess.summary, nil
}

func (e *Engine) appendAnswerEvent(ctx context.Context, sess *Session, ch challenge.Challenge, isCorrect bool, elapsed time.Duration, result *AnswerResult) {
	if e.deps.Events == nil {
		return
	}
	_ = e.deps.Events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:     sess.ID,
		ChallengeID:   ch.ID,
		ChallengeType: string(ch.Type),
		Language:      sess.Language,
		Level:         sess.Level,
		Correct:       isCorrect,
		Combo:         result.Combo,
		XPAwarded:     result.XPAwarded,
		SpeedBonus:    result.Score.SpeedBonus,
		TimeMs:        int(elapsed.Milliseconds()),
		StudyMode:     sess.StudyMode,
	})
}

func (e *Engine) appendSessionEvent(ctx context.Context, sess *Session, action, reason string) {
	if e.deps.Events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:       sess.ID,
		Action:          action,
		ChallengeType:   string(sess.ChallengeType),
		Language:        sess.Language,
		Level:           sess.Level,
		Source:          string(sess.Source),
		StudyMode:       sess.StudyMode,
		ChallengesTotal: len(sess.Challenges),
	}
	if action == "end" {
		data.ChallengesCompleted = sess.Completed
		data.CorrectAnswers = sess.CorrectAnswers
		data.XPTotal = sess.XPTotal
		data.DurationSecs = int(e.now().Sub(sess.StartedAt).Seconds())
		data.EndedEarly = sess.EndedEarly
		data.EndReason = reason
	}
	_ = e.deps.Events.AppendSession(ctx, data)
}
