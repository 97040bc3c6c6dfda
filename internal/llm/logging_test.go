package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/store"
)

type memorySink struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (s *memorySink) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, data)
	return s.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	sink := &memorySink{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"term":"CDI","explanation":"x"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 8},
	})
	p := WithLogging(mock, ProviderMock, sink)

	ctx := WithPurpose(context.Background(), "glossary")
	_, err := p.Generate(ctx, Request{System: "sys", Messages: UserMessage("CDI"), Schema: glossaryTestSchema()})
	require.NoError(t, err)

	require.Len(t, sink.events, 1)
	ev := sink.events[0]
	assert.Equal(t, ProviderMock, ev.Provider)
	assert.Equal(t, ProviderMock, ev.Model)
	assert.Equal(t, "glossary", ev.Purpose)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 8, ev.OutputTokens)
	assert.True(t, ev.Success)
	assert.Contains(t, ev.RequestBody, "[system]\nsys")
	assert.Contains(t, ev.RequestBody, "[user]\nCDI")
	assert.Contains(t, ev.RequestBody, "[schema: test-glossary-entry]")
	assert.JSONEq(t, `{"term":"CDI","explanation":"x"}`, ev.ResponseBody)
}

func TestLogging_RecordsFailure(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Err: errors.New("boom")}), ProviderMock, sink)

	_, err := p.Generate(context.Background(), Request{})
	assert.EqualError(t, err, "boom")

	require.Len(t, sink.events, 1)
	assert.False(t, sink.events[0].Success)
	assert.Equal(t, "boom", sink.events[0].ErrorMessage)
	assert.Equal(t, "unknown", sink.events[0].Purpose)
}

func TestLogging_NilSink(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), ProviderMock, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}
