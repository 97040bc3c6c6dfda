package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2,
	}
}

// newTestRetry returns a RetryProvider that records waits instead of sleeping.
func newTestRetry(inner Provider) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	r := WithRetry(inner, retryConfig()).(*RetryProvider)
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

func okResp(body string) MockResponse { return MockResponse{Content: json.RawMessage(body)} }

func TestRetry_FirstAttempt(t *testing.T) {
	mock := NewMockProvider(okResp(`{"ok":true}`))
	r, waits := newTestRetry(mock)

	resp, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
	assert.Equal(t, 1, mock.CallCount())
	assert.Empty(t, *waits)
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		okResp(`{}`),
	)
	r, waits := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 3, mock.CallCount())
	require.Len(t, *waits, 2)
	// ±20% jitter around 1ms then 2ms
	assert.InDelta(t, float64(time.Millisecond), float64((*waits)[0]), float64(time.Millisecond)*0.21)
	assert.InDelta(t, float64(2*time.Millisecond), float64((*waits)[1]), float64(2*time.Millisecond)*0.21)
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		okResp(`{}`),
	)
	r, _ := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
	assert.Equal(t, 3, mock.CallCount())
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}}, okResp(`{}`))
	r, _ := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}}
	mock := NewMockProvider(bad, bad, okResp(`{}`))
	r, _ := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_CancelledContextStops(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, okResp(`{}`))
	r, _ := newTestRetry(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_RateLimitUsesRetryAfter(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 7 * time.Second}}, okResp(`{}`))
	r, waits := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{7 * time.Second}, *waits)
}

func TestRetry_BackoffCapped(t *testing.T) {
	r := WithRetry(NewMockProvider(), RetryConfig{MaxAttempts: 10, InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}).(*RetryProvider)
	d := r.backoff(5, &ErrProviderUnavailable{})
	assert.LessOrEqual(t, d, time.Duration(float64(2*time.Second)*1.2))
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	assert.Equal(t, ProviderMock, WithRetry(NewMockProvider(), retryConfig()).ModelID())
}
