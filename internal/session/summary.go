package session

import (
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
)

// End reasons recorded on the session-end event.
const (
	EndReasonCompleted = "completed"
	EndReasonExhausted = "out_of_hearts"
	EndReasonQuit      = "quit"
)

// Summary is the finalization result: what the summary screen shows and
// what ReviewMistakes consumes.
type Summary struct {
	SessionID       string
	ChallengeType   challenge.Type
	Language        string
	Level           string
	Source          challenge.Source
	StudyMode       bool
	ChallengesTotal int
	Completed       int
	CorrectAnswers  int
	XPTotal         int
	Duration        time.Duration
	EndedEarly      bool
	EndReason       string

	// Incorrect preserves answer order for mistake review.
	Incorrect []challenge.Challenge
}

// Accuracy returns correct/completed, or 0 for an empty session.
func (s *Summary) Accuracy() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.Completed)
}

func buildSummary(sess *Session, duration time.Duration, reason string) *Summary {
	incorrect := make([]challenge.Challenge, len(sess.Incorrect))
	copy(incorrect, sess.Incorrect)

	return &Summary{
		SessionID:       sess.ID,
		ChallengeType:   sess.ChallengeType,
		Language:        sess.Language,
		Level:           sess.Level,
		Source:          sess.Source,
		StudyMode:       sess.StudyMode,
		ChallengesTotal: len(sess.Challenges),
		Completed:       sess.Completed,
		CorrectAnswers:  sess.CorrectAnswers,
		XPTotal:         sess.XPTotal,
		Duration:        duration,
		EndedEarly:      sess.EndedEarly,
		EndReason:       reason,
		Incorrect:       incorrect,
	}
}
