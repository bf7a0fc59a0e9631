package store

import (
	"context"
	"fmt"

	"github.com/oriolmontal/lingodrill/ent"
	"github.com/oriolmontal/lingodrill/ent/sessionevent"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetChallengeType(data.ChallengeType).
		SetLanguage(data.Language).
		SetLevel(data.Level).
		SetSource(data.Source).
		SetStudyMode(data.StudyMode).
		SetChallengesTotal(data.ChallengesTotal).
		SetChallengesCompleted(data.ChallengesCompleted).
		SetCorrectAnswers(data.CorrectAnswers).
		SetXpTotal(data.XPTotal).
		SetDurationSecs(data.DurationSecs).
		SetEndedEarly(data.EndedEarly).
		SetEndReason(data.EndReason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, len(events))
	for i, e := range events {
		records[i] = SessionRecord{
			SessionID:           e.SessionID,
			Timestamp:           e.Timestamp,
			ChallengeType:       e.ChallengeType,
			Language:            e.Language,
			Level:               e.Level,
			StudyMode:           e.StudyMode,
			ChallengesTotal:     e.ChallengesTotal,
			ChallengesCompleted: e.ChallengesCompleted,
			CorrectAnswers:      e.CorrectAnswers,
			XPTotal:             e.XpTotal,
			DurationSecs:        e.DurationSecs,
			EndedEarly:          e.EndedEarly,
			EndReason:           e.EndReason,
		}
	}
	return records, nil
}
