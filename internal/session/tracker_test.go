package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/scoring"
	"github.com/topocapital/suitability/internal/store"
)

type fakeRecorder struct {
	events  []store.SessionEventData
	results []store.ResultData
	err     error
}

func (f *fakeRecorder) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.events = append(f.events, d)
	return f.err
}

func (f *fakeRecorder) AppendResult(_ context.Context, d store.ResultData) error {
	f.results = append(f.results, d)
	return f.err
}

func newTestTracker(rec Recorder) (*Tracker, *time.Time) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t := NewTracker(rec)
	t.now = func() time.Time { return clock }
	return t, &clock
}

func TestTracker_Lifecycle(t *testing.T) {
	rec := &fakeRecorder{}
	tr, clock := newTestTracker(rec)
	ctx := context.Background()

	require.NoError(t, tr.Begin(ctx, store.ActionStart))
	id := tr.ID()
	assert.NotEmpty(t, id)
	assert.True(t, tr.Active())

	*clock = clock.Add(95 * time.Second)
	res := scoring.Evaluate(catalog.MustBuiltin(), scoring.Answers{0: 2, 1: 2})
	require.NoError(t, tr.Complete(ctx, res))
	assert.False(t, tr.Active())

	require.Len(t, rec.events, 2)
	assert.Equal(t, store.ActionStart, rec.events[0].Action)
	assert.Equal(t, store.ActionComplete, rec.events[1].Action)
	assert.Equal(t, 2, rec.events[1].Answered)
	assert.Equal(t, 95, rec.events[1].DurationSecs)

	require.Len(t, rec.results, 1)
	r := rec.results[0]
	assert.Equal(t, id, r.SessionID)
	assert.Equal(t, string(res.Profile), r.Profile)
	assert.Equal(t, res.Normalized, r.Normalized)
	assert.Equal(t, 10, r.Total)
	assert.Equal(t, 95, r.DurationSecs)
}

func TestTracker_RestartGetsNewID(t *testing.T) {
	rec := &fakeRecorder{}
	tr, _ := newTestTracker(rec)
	ctx := context.Background()

	require.NoError(t, tr.Begin(ctx, store.ActionStart))
	first := tr.ID()
	require.NoError(t, tr.Begin(ctx, store.ActionRestart))
	assert.NotEqual(t, first, tr.ID())
	assert.Equal(t, store.ActionRestart, rec.events[1].Action)
}

func TestTracker_CompleteOnlyOnce(t *testing.T) {
	rec := &fakeRecorder{}
	tr, _ := newTestTracker(rec)
	ctx := context.Background()

	require.NoError(t, tr.Begin(ctx, store.ActionStart))
	res := scoring.Evaluate(catalog.MustBuiltin(), nil)
	require.NoError(t, tr.Complete(ctx, res))
	require.NoError(t, tr.Complete(ctx, res))
	require.NoError(t, tr.Abandon(ctx, 3))
	assert.Len(t, rec.results, 1)
	assert.Len(t, rec.events, 2)
}

func TestTracker_Abandon(t *testing.T) {
	rec := &fakeRecorder{}
	tr, _ := newTestTracker(rec)
	ctx := context.Background()

	require.NoError(t, tr.Abandon(ctx, 0))
	assert.Empty(t, rec.events)

	require.NoError(t, tr.Begin(ctx, store.ActionStart))
	require.NoError(t, tr.Abandon(ctx, 4))
	require.Len(t, rec.events, 2)
	assert.Equal(t, store.ActionAbandon, rec.events[1].Action)
	assert.Equal(t, 4, rec.events[1].Answered)
}

func TestTracker_NilRecorder(t *testing.T) {
	tr, _ := newTestTracker(nil)
	ctx := context.Background()
	require.NoError(t, tr.Begin(ctx, store.ActionStart))
	require.NoError(t, tr.Complete(ctx, scoring.Evaluate(catalog.MustBuiltin(), nil)))
	assert.Zero(t, tr.Elapsed())
}

func TestTracker_RecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("locked")}
	tr, _ := newTestTracker(rec)
	err := tr.Begin(context.Background(), store.ActionStart)
	assert.ErrorContains(t, err, "record start event")
}
