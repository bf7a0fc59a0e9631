package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHeart(ctx context.Context, data HeartEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HeartEvent.Create().
		SetSequence(seqNum).
		SetChallengeType(data.ChallengeType).
		SetAction(data.Action).
		SetRemaining(data.Remaining).
		SetOutOfHearts(data.OutOfHearts).
		SetAuthoritative(data.Authoritative).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save heart event: %w", err)
	}
	return nil
}
