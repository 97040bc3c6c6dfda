// Package session tracks one run through the questionnaire and writes its
// lifecycle to the event store. Individual answers are never stored.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/topocapital/suitability/internal/scoring"
	"github.com/topocapital/suitability/internal/store"
)

// Recorder is the part of store.EventRepo a Tracker writes to.
type Recorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendResult(ctx context.Context, data store.ResultData) error
}

// Tracker follows the current assessment. A nil Recorder turns every
// method into bookkeeping only.
type Tracker struct {
	rec     Recorder
	now     func() time.Time
	id      string
	started time.Time
	active  bool
}

// NewTracker creates a Tracker with no assessment in progress.
func NewTracker(rec Recorder) *Tracker {
	return &Tracker{rec: rec, now: time.Now}
}

// ID returns the id of the current assessment, or "" before Begin.
func (t *Tracker) ID() string { return t.id }

// Active reports whether an assessment was begun and not yet completed or
// abandoned.
func (t *Tracker) Active() bool { return t.active }

// Elapsed returns the time since the current assessment began.
func (t *Tracker) Elapsed() time.Duration {
	if t.id == "" {
		return 0
	}
	return t.now().Sub(t.started)
}

// Begin starts a new assessment with a fresh id. action is
// store.ActionStart for a first run and store.ActionRestart after results.
func (t *Tracker) Begin(ctx context.Context, action string) error {
	t.id = uuid.NewString()
	t.started = t.now()
	t.active = true
	return t.event(ctx, action, 0)
}

// Complete records the result of the current assessment.
func (t *Tracker) Complete(ctx context.Context, r scoring.Result) error {
	if !t.active {
		return nil
	}
	t.active = false
	if err := t.event(ctx, store.ActionComplete, r.Answered); err != nil {
		return err
	}
	if t.rec == nil {
		return nil
	}
	err := t.rec.AppendResult(ctx, store.ResultData{
		SessionID:    t.id,
		Profile:      string(r.Profile),
		Score:        r.Score,
		MaxScore:     r.MaxScore,
		Normalized:   r.Normalized,
		Answered:     r.Answered,
		Total:        r.Total,
		DurationSecs: t.durationSecs(),
	})
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Abandon records that the user left mid-questionnaire. It is a no-op when
// nothing is in progress.
func (t *Tracker) Abandon(ctx context.Context, answered int) error {
	if !t.active {
		return nil
	}
	t.active = false
	return t.event(ctx, store.ActionAbandon, answered)
}

func (t *Tracker) event(ctx context.Context, action string, answered int) error {
	if t.rec == nil {
		return nil
	}
	err := t.rec.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    t.id,
		Action:       action,
		Answered:     answered,
		DurationSecs: t.durationSecs(),
	})
	if err != nil {
		return fmt.Errorf("record %s event: %w", action, err)
	}
	return nil
}

func (t *Tracker) durationSecs() int {
	return int(t.Elapsed().Seconds())
}
