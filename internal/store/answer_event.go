package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetChallengeID(data.ChallengeID).
		SetChallengeType(data.ChallengeType).
		SetLanguage(data.Language).
		SetLevel(data.Level).
		SetCorrect(data.Correct).
		SetCombo(data.Combo).
		SetXpAwarded(data.XPAwarded).
		SetSpeedBonus(data.SpeedBonus).
		SetTimeMs(data.TimeMs).
		SetStudyMode(data.StudyMode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
