package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/completion"
	"github.com/oriolmontal/lingodrill/internal/hearts"
	"github.com/oriolmontal/lingodrill/internal/scoring"
	"github.com/oriolmontal/lingodrill/internal/stats"
	"github.com/oriolmontal/lingodrill/internal/store"
)

func testScoring() scoring.Config {
	// No speed tiers: keeps per-answer XP independent of the test clock.
	return scoring.Config{
		BaseXP: 10,
		ComboTiers: []scoring.ComboTier{
			{MinCombo: 10, MultiplierPct: 200},
			{MinCombo: 5, MultiplierPct: 150},
		},
		MaxMultiplierPct: 200,
	}
}

func newAggregatorForTest(kv store.KV) *stats.Aggregator {
	return stats.NewAggregator(stats.DefaultConfig(), kv)
}

func testAccountant(capacity int) *hearts.Accountant {
	cfg := hearts.DefaultConfig()
	cfg.Capacity = capacity
	return hearts.NewAccountant(cfg, nil, store.NewMemKV(), nil)
}

func makeChallenges(n int, typ challenge.Type) []challenge.Challenge {
	out := make([]challenge.Challenge, n)
	for i := range out {
		out[i] = challenge.Challenge{
			ID:       fmt.Sprintf("ch-%d", i+1),
			Type:     typ,
			Language: "es",
			Level:    "A2",
		}
	}
	return out
}

func newTestEngine(deps Deps) *Engine {
	e := NewEngine(testScoring(), "user-1", deps)
	e.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return e
}

func startSession(t *testing.T, e *Engine, challenges []challenge.Challenge) *Session {
	t.Helper()
	sess, err := e.Start(context.Background(), StartParams{
		Challenges:    challenges,
		ChallengeType: challenges[0].Type,
		Language:      "es",
		Level:         "A2",
		Source:        challenge.SourceReference,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return sess
}

func TestStart_EmptyQueueRejected(t *testing.T) {
	e := newTestEngine(Deps{})

	_, err := e.Start(context.Background(), StartParams{})
	var invalid *InvalidSessionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSessionError, got %v", err)
	}
}

func TestFullRun_AllCorrect(t *testing.T) {
	acct := testAccountant(3)
	e := newTestEngine(Deps{Hearts: acct})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(3, challenge.TypeMicroQuiz))

	for i := 0; i < 3; i++ {
		cur := sess.Current()
		result, err := e.Answer(ctx, sess, cur.ID, true)
		if err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		if i < 2 {
			if !result.AutoAdvance {
				t.Fatalf("answer %d should auto-advance", i+1)
			}
			if err := e.Advance(sess); err != nil {
				t.Fatalf("advance %d: %v", i+1, err)
			}
		} else if !result.SessionComplete {
			t.Fatal("last answer must complete the session")
		}
	}

	if sess.Status != StatusCompleting {
		t.Fatalf("expected Completing, got %s", sess.Status)
	}

	summary, err := e.End(ctx, sess)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if sess.Status != StatusFinalized {
		t.Fatalf("expected Finalized, got %s", sess.Status)
	}
	if summary.Completed != 3 {
		t.Fatalf("expected 3 completed, got %d", summary.Completed)
	}
	if len(summary.Incorrect) != 0 {
		t.Fatalf("expected no mistakes, got %d", len(summary.Incorrect))
	}
	// Below the first combo tier every answer is plain base XP.
	if summary.XPTotal != 30 {
		t.Fatalf("expected 30 XP, got %d", summary.XPTotal)
	}
	if summary.Accuracy() != 1.0 {
		t.Fatalf("expected accuracy 1.0, got %f", summary.Accuracy())
	}
	if summary.EndedEarly {
		t.Fatal("full run must not be marked ended early")
	}
	if summary.EndReason != EndReasonCompleted {
		t.Fatalf("expected reason %q, got %q", EndReasonCompleted, summary.EndReason)
	}

	pool, err := acct.Peek(ctx, challenge.TypeMicroQuiz)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if pool.Remaining != 0 {
		t.Fatalf("expected drained pool, got %d", pool.Remaining)
	}
}

func TestExhaustion_EndsSessionEarly(t *testing.T) {
	e := newTestEngine(Deps{Hearts: testAccountant(1)})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(2, challenge.TypeMicroQuiz))

	result, err := e.Answer(ctx, sess, "ch-1", false)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !result.OutOfHearts {
		t.Fatal("expected out of hearts")
	}
	if result.AutoAdvance {
		t.Fatal("exhaustion must not auto-advance")
	}
	if result.HeartResponse == nil || result.HeartResponse.RefillInfo == nil {
		t.Fatal("exhaustion must carry refill info")
	}
	if sess.Status != StatusExhaustedEarly {
		t.Fatalf("expected ExhaustedEarly, got %s", sess.Status)
	}

	// The second challenge is never presented.
	if err := e.Advance(sess); err == nil {
		t.Fatal("advance after exhaustion must fail")
	}

	summary, err := e.End(ctx, sess)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if !summary.EndedEarly {
		t.Fatal("expected ended early")
	}
	if summary.EndReason != EndReasonExhausted {
		t.Fatalf("expected reason %q, got %q", EndReasonExhausted, summary.EndReason)
	}
	if summary.Completed != 1 {
		t.Fatalf("expected 1 completed, got %d", summary.Completed)
	}
}

func TestExhaustionOnLastChallenge_StillCompletes(t *testing.T) {
	e := newTestEngine(Deps{Hearts: testAccountant(1)})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(1, challenge.TypeMicroQuiz))

	result, err := e.Answer(ctx, sess, "ch-1", true)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	// Draining the pool on the final answer is a completed session, not an
	// early exhaustion.
	if !result.SessionComplete {
		t.Fatal("expected session complete")
	}
	if result.OutOfHearts {
		t.Fatal("completion takes precedence over exhaustion")
	}

	summary, err := e.End(ctx, sess)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if summary.EndedEarly {
		t.Fatal("completed session must not be ended early")
	}
}

func TestAnswer_StaleIDRejected(t *testing.T) {
	e := newTestEngine(Deps{})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(2, challenge.TypeMicroQuiz))

	_, err := e.Answer(ctx, sess, "ch-2", true)
	var stale *StaleAnswerError
	if !errors.As(err, &stale) {
		t.Fatalf("expected StaleAnswerError, got %v", err)
	}
	if stale.Expected != "ch-1" || stale.Got != "ch-2" {
		t.Fatalf("unexpected error detail: %+v", stale)
	}
	if sess.Completed != 0 {
		t.Fatal("stale answer must not be applied")
	}
}

func TestAnswer_DoubleAnswerRejected(t *testing.T) {
	e := newTestEngine(Deps{})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(2, challenge.TypeMicroQuiz))

	if _, err := e.Answer(ctx, sess, "ch-1", true); err != nil {
		t.Fatalf("answer: %v", err)
	}

	_, err := e.Answer(ctx, sess, "ch-1", true)
	var invalid *InvalidSessionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSessionError, got %v", err)
	}
	if sess.Completed != 1 {
		t.Fatalf("double answer must not double-count, got %d", sess.Completed)
	}
}

func TestQuit_ThenAnswerRejected(t *testing.T) {
	e := newTestEngine(Deps{Hearts: testAccountant(3)})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(3, challenge.TypeMicroQuiz))

	summary, err := e.Quit(ctx, sess)
	if err != nil {
		t.Fatalf("quit: %v", err)
	}
	if summary.EndReason != EndReasonQuit {
		t.Fatalf("expected reason %q, got %q", EndReasonQuit, summary.EndReason)
	}
	if !summary.EndedEarly {
		t.Fatal("incomplete quit must be marked ended early")
	}

	_, err = e.Answer(ctx, sess, "ch-1", true)
	var invalid *InvalidSessionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSessionError after quit, got %v", err)
	}
}

func TestEnd_Idempotent(t *testing.T) {
	kv := store.NewMemKV()
	agg := newAggregatorForTest(kv)
	e := newTestEngine(Deps{Stats: agg})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(1, challenge.TypeMicroQuiz))
	if _, err := e.Answer(ctx, sess, "ch-1", true); err != nil {
		t.Fatalf("answer: %v", err)
	}

	first, err := e.End(ctx, sess)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	second, err := e.End(ctx, sess)
	if err != nil {
		t.Fatalf("second end: %v", err)
	}
	if first != second {
		t.Fatal("end must return the same summary object")
	}

	day, err := agg.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if day.TotalChallenges != 1 {
		t.Fatalf("double end must not double-count stats, got %d", day.TotalChallenges)
	}
}

func TestReviewMistakes_StudyModeSession(t *testing.T) {
	acct := testAccountant(5)
	e := newTestEngine(Deps{Hearts: acct})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(3, challenge.TypeMicroQuiz))

	answers := []bool{false, true, false}
	for i, correct := range answers {
		if _, err := e.Answer(ctx, sess, sess.Current().ID, correct); err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		if i < len(answers)-1 {
			if err := e.Advance(sess); err != nil {
				t.Fatalf("advance %d: %v", i+1, err)
			}
		}
	}

	summary, err := e.End(ctx, sess)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if len(summary.Incorrect) != 2 {
		t.Fatalf("expected 2 mistakes, got %d", len(summary.Incorrect))
	}

	poolBefore, err := acct.Peek(ctx, challenge.TypeMicroQuiz)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}

	review, err := e.ReviewMistakes(ctx, summary)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if !review.StudyMode {
		t.Fatal("review session must be study mode")
	}
	if len(review.Challenges) != 2 {
		t.Fatalf("expected 2 review challenges, got %d", len(review.Challenges))
	}
	if review.Challenges[0].ID != "ch-1" || review.Challenges[1].ID != "ch-3" {
		t.Fatal("review must preserve mistake order")
	}

	// Wrong answers in review still count as progress and touch nothing.
	if _, err := e.Answer(ctx, review, "ch-1", false); err != nil {
		t.Fatalf("review answer: %v", err)
	}
	if err := e.Advance(review); err != nil {
		t.Fatalf("review advance: %v", err)
	}
	result, err := e.Answer(ctx, review, "ch-3", true)
	if err != nil {
		t.Fatalf("review answer: %v", err)
	}
	if !result.SessionComplete {
		t.Fatal("review session must complete")
	}

	reviewSummary, err := e.End(ctx, review)
	if err != nil {
		t.Fatalf("review end: %v", err)
	}
	if reviewSummary.XPTotal != 0 {
		t.Fatalf("review must not award XP, got %d", reviewSummary.XPTotal)
	}
	if reviewSummary.Completed != 2 {
		t.Fatalf("expected 2 completed in review, got %d", reviewSummary.Completed)
	}

	poolAfter, err := acct.Peek(ctx, challenge.TypeMicroQuiz)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if poolAfter.Remaining != poolBefore.Remaining {
		t.Fatalf("review must not touch hearts: %d != %d", poolAfter.Remaining, poolBefore.Remaining)
	}
}

func TestReviewMistakes_NothingToReview(t *testing.T) {
	e := newTestEngine(Deps{})

	_, err := e.ReviewMistakes(context.Background(), &Summary{})
	var invalid *InvalidSessionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSessionError, got %v", err)
	}
}

func TestSingleChallenge_CompletesOnFirstAnswer(t *testing.T) {
	e := newTestEngine(Deps{})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(1, challenge.TypeMicroQuiz))

	result, err := e.Answer(ctx, sess, "ch-1", true)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !result.SessionComplete {
		t.Fatal("single-challenge session must complete on the first answer")
	}
	if sess.Status != StatusCompleting {
		t.Fatalf("expected Completing, got %s", sess.Status)
	}
}

func TestNativeCheck_NoAutoAdvance(t *testing.T) {
	e := newTestEngine(Deps{})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(2, challenge.TypeNativeCheck))

	result, err := e.Answer(ctx, sess, "ch-1", true)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	// The undo window collaborator calls Advance after it expires.
	if result.AutoAdvance {
		t.Fatal("native_check must not auto-advance")
	}
	if err := e.Advance(sess); err != nil {
		t.Fatalf("explicit advance: %v", err)
	}
	if sess.Current().ID != "ch-2" {
		t.Fatalf("expected cursor on ch-2, got %s", sess.Current().ID)
	}
}

func TestComboScaling(t *testing.T) {
	e := newTestEngine(Deps{})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(6, challenge.TypeMicroQuiz))

	for i := 0; i < 6; i++ {
		result, err := e.Answer(ctx, sess, sess.Current().ID, true)
		if err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		want := 10
		if result.Combo >= 5 {
			want = 15
		}
		if result.XPAwarded != want {
			t.Fatalf("answer %d (combo %d): expected %d XP, got %d",
				i+1, result.Combo, want, result.XPAwarded)
		}
		if i < 5 {
			if err := e.Advance(sess); err != nil {
				t.Fatalf("advance %d: %v", i+1, err)
			}
		}
	}

	// 4 answers at 10 XP, 2 at the 150% tier.
	if sess.XPTotal != 70 {
		t.Fatalf("expected 70 XP, got %d", sess.XPTotal)
	}
}

func TestComboResetsOnWrongAnswer(t *testing.T) {
	e := newTestEngine(Deps{})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(3, challenge.TypeMicroQuiz))

	if _, err := e.Answer(ctx, sess, "ch-1", true); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := e.Advance(sess); err != nil {
		t.Fatalf("advance: %v", err)
	}

	result, err := e.Answer(ctx, sess, "ch-2", false)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if result.Combo != 0 {
		t.Fatalf("wrong answer must reset combo, got %d", result.Combo)
	}
	if result.XPAwarded != 0 {
		t.Fatalf("wrong answer must award nothing, got %d", result.XPAwarded)
	}
}

func TestAlreadyCompletedToday_SuppressesXP(t *testing.T) {
	kv := store.NewMemKV()
	tracker := completion.NewTracker(kv)
	e := newTestEngine(Deps{Completion: tracker})
	ctx := context.Background()

	first := startSession(t, e, makeChallenges(1, challenge.TypeMicroQuiz))
	result, err := e.Answer(ctx, first, "ch-1", true)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if result.XPAwarded == 0 {
		t.Fatal("first completion must award XP")
	}
	if _, err := e.End(ctx, first); err != nil {
		t.Fatalf("end: %v", err)
	}

	second := startSession(t, e, makeChallenges(1, challenge.TypeMicroQuiz))
	result, err = e.Answer(ctx, second, "ch-1", true)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !result.AlreadyCompletedToday {
		t.Fatal("expected already-completed flag")
	}
	if result.XPAwarded != 0 {
		t.Fatalf("repeat completion must not re-award XP, got %d", result.XPAwarded)
	}
}

func TestAnswer_RecordsCategoryStats(t *testing.T) {
	kv := store.NewMemKV()
	agg := newAggregatorForTest(kv)
	e := newTestEngine(Deps{Stats: agg})
	ctx := context.Background()

	sess, err := e.Start(ctx, StartParams{
		Challenges:    makeChallenges(3, challenge.TypeMicroQuiz),
		ChallengeType: challenge.TypeMicroQuiz,
		Language:      "es",
		Level:         "A2",
		Source:        challenge.SourceReference,
		CategoryTotal: 12,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := e.Answer(ctx, sess, "ch-1", true); err != nil {
		t.Fatalf("answer: %v", err)
	}

	cats, err := agg.Categories(ctx, "es")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 1 {
		t.Fatalf("expected 1 category record, got %d", len(cats))
	}
	got := cats[0]
	if got.Level != "A2" || got.Category != string(challenge.TypeMicroQuiz) {
		t.Fatalf("unexpected category key: %+v", got)
	}
	if got.Attempts != 1 || got.Correct != 1 {
		t.Fatalf("expected 1/1 attempts, got %d/%d", got.Correct, got.Attempts)
	}
	if got.TotalInCategory != 12 {
		t.Fatalf("expected category size 12, got %d", got.TotalInCategory)
	}
}

// blockingHearts parks Consume until released, simulating a slow backend.
type blockingHearts struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingHearts) Consume(ctx context.Context, userID string, challengeType challenge.Type, sessionID string) (*hearts.Response, error) {
	close(b.started)
	<-b.release
	return &hearts.Response{HeartsRemaining: 1}, nil
}

func TestQuit_DiscardsInFlightAnswer(t *testing.T) {
	blocker := &blockingHearts{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	e := newTestEngine(Deps{Hearts: blocker})
	ctx := context.Background()

	sess := startSession(t, e, makeChallenges(2, challenge.TypeMicroQuiz))

	answerErr := make(chan error, 1)
	go func() {
		_, err := e.Answer(ctx, sess, "ch-1", true)
		answerErr <- err
	}()

	// Quit while the heart consumption is still in flight.
	<-blocker.started
	summary, err := e.Quit(ctx, sess)
	if err != nil {
		t.Fatalf("quit: %v", err)
	}
	close(blocker.release)

	err = <-answerErr
	var invalid *InvalidSessionError
	if !errors.As(err, &invalid) {
		t.Fatalf("in-flight answer must be discarded, got %v", err)
	}
	if summary.Completed != 0 {
		t.Fatalf("discarded answer must not count, got %d", summary.Completed)
	}
	if sess.LastHeartResponse != nil {
		t.Fatal("late heart response must not be applied to a finalized session")
	}
}

func TestStudyMode_NeverTouchesHearts(t *testing.T) {
	counter := &countingHearts{}
	e := newTestEngine(Deps{Hearts: counter})
	ctx := context.Background()

	sess, err := e.Start(ctx, StartParams{
		Challenges:    makeChallenges(2, challenge.TypeMicroQuiz),
		ChallengeType: challenge.TypeMicroQuiz,
		StudyMode:     true,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := e.Answer(ctx, sess, "ch-1", false); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := e.Advance(sess); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := e.Answer(ctx, sess, "ch-2", true); err != nil {
		t.Fatalf("answer: %v", err)
	}

	if counter.calls != 0 {
		t.Fatalf("study mode consumed hearts %d times", counter.calls)
	}
	// Progression counts every review answer.
	if sess.CorrectAnswers != 2 {
		t.Fatalf("expected every review answer to count, got %d", sess.CorrectAnswers)
	}
}

type countingHearts struct {
	calls int
}

func (c *countingHearts) Consume(ctx context.Context, userID string, challengeType challenge.Type, sessionID string) (*hearts.Response, error) {
	c.calls++
	return &hearts.Response{HeartsRemaining: 1}, nil
}
