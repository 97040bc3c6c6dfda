package store

import (
	"context"
	"fmt"

	"github.com/topocapital/suitability/ent"
	"github.com/topocapital/suitability/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetAnswered(data.Answered).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, sessionID string) ([]SessionEventRecord, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionEventRecord, len(events))
	for i, e := range events {
		out[i] = SessionEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:    e.SessionID,
				Action:       e.Action,
				Answered:     e.Answered,
				DurationSecs: e.DurationSecs,
			},
		}
	}
	return out, nil
}
