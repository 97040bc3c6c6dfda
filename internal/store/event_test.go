package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEvents_AppendAndQuery(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionStart}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: ActionStart}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionComplete, Answered: 10, DurationSecs: 42}))

	events, err := repo.QuerySessionEvents(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ActionStart, events[0].Action)
	assert.Equal(t, ActionComplete, events[1].Action)
	assert.Equal(t, 10, events[1].Answered)
	assert.Equal(t, 42, events[1].DurationSecs)
	assert.Less(t, events[0].Sequence, events[1].Sequence)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestSessionEvents_RequiresIDAndAction(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	assert.Error(t, repo.AppendSessionEvent(context.Background(), SessionEventData{Action: ActionStart}))
	assert.Error(t, repo.AppendSessionEvent(context.Background(), SessionEventData{SessionID: "x"}))
}

func TestResults_NewestFirstWithLimit(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	profiles := []string{"conservador", "moderado", "arrojado", "moderado"}
	for i, p := range profiles {
		require.NoError(t, repo.AppendResult(ctx, ResultData{
			SessionID:  "s",
			Profile:    p,
			Score:      float64(i),
			MaxScore:   32,
			Normalized: float64(i) * 100 / 32,
			Answered:   10,
			Total:      10,
		}))
	}

	results, err := repo.QueryResults(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "moderado", results[0].Profile)
	assert.Equal(t, 3.0, results[0].Score)
	assert.Equal(t, "arrojado", results[1].Profile)
	assert.Equal(t, 32.0, results[1].MaxScore)

	after, err := repo.QueryResults(ctx, QueryOpts{After: results[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, results[0].Sequence, after[0].Sequence)
}

func TestResults_RequireProfile(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	assert.Error(t, repo.AppendResult(context.Background(), ResultData{SessionID: "s"}))
}

func TestCountByProfile(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	for _, p := range []string{"moderado", "arrojado", "moderado"} {
		require.NoError(t, repo.AppendResult(ctx, ResultData{SessionID: "s", Profile: p}))
	}

	counts, err := repo.CountByProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ProfileCount{
		{Profile: "arrojado", Count: 1},
		{Profile: "moderado", Count: 2},
	}, counts)
}

func TestPurgeHistory_KeepsLLMEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Action: ActionStart}))
	require.NoError(t, repo.AppendResult(ctx, ResultData{SessionID: "s", Profile: "moderado"}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Success: true}))

	n, err := repo.PurgeHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	results, err := repo.QueryResults(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, results)

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, llmEvents, 1)
}

func TestLLMEvents_AppendGetAndUsage(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "glossary", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true, RequestBody: "{}", ResponseBody: `{"a":1}`},
		{Provider: "anthropic", Model: "m1", Purpose: "glossary", InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: false, ErrorMessage: "boom"},
		{Provider: "openai", Model: "m2", Purpose: "other", InputTokens: 7, OutputTokens: 3, LatencyMs: 50, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "m2", list[0].Model)

	got, err := repo.GetLLMEvent(ctx, list[2].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"a":1}`, got.ResponseBody)
	assert.True(t, got.Success)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "glossary", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 150, byPurpose[0].InputTokens)
	assert.Equal(t, 30, byPurpose[0].OutputTokens)
	assert.Equal(t, int64(200), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "m2", byModel[1].Model)
	assert.Equal(t, 1, byModel[1].Calls)
}
