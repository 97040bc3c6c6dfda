package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`), Usage: Usage{InputTokens: 3}},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	first, err := m.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(first.Content))
	assert.Equal(t, 3, first.Usage.InputTokens)

	second, err := m.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(second.Content))

	_, err = m.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
	assert.Equal(t, 3, m.CallCount())
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	_, _ = m.Generate(context.Background(), Request{System: "sys", Messages: UserMessage("oi")})

	calls := m.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sys", calls[0].System)
	assert.Equal(t, "oi", calls[0].Messages[0].Content)
}

func TestMockProvider_ScriptedErrorAndSchema(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider(MockResponse{Err: boom})
	m.AddResponse(MockResponse{Content: json.RawMessage(`{"term":"CDI"}`)})

	_, err := m.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, boom)

	_, err = m.Generate(context.Background(), Request{Schema: glossaryTestSchema()})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, ProviderMock, m.ModelID())
}

func TestPurposeContext(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
	assert.Equal(t, "glossary", PurposeFrom(WithPurpose(context.Background(), "glossary")))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		ok      bool
	}{
		{name: "unset", cfg: Config{}, wantErr: ErrNotConfigured},
		{name: "anthropic without key", cfg: Config{Provider: ProviderAnthropic}},
		{name: "anthropic with key", cfg: Config{Provider: ProviderAnthropic, Anthropic: ProviderConfig{APIKey: "sk"}}, ok: true},
		{name: "openrouter with key", cfg: Config{Provider: ProviderOpenRouter, OpenRouter: ProviderConfig{APIKey: "sk"}}, ok: true},
		{name: "gemini key on wrong provider", cfg: Config{Provider: ProviderOpenAI, Gemini: ProviderConfig{APIKey: "sk"}}},
		{name: "mock", cfg: Config{Provider: ProviderMock}, ok: true},
		{name: "unknown", cfg: Config{Provider: "acme"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			switch {
			case tt.ok:
				assert.NoError(t, err)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func clearKeyEnv(t *testing.T) {
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestConfig_Discover(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		clearKeyEnv(t)
		cfg := DefaultConfig()
		assert.False(t, cfg.Discover())
		assert.Empty(t, cfg.Provider)
	})

	t.Run("environment in vendor order", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("GEMINI_API_KEY", "g")
		t.Setenv("OPENROUTER_API_KEY", "o")
		cfg := DefaultConfig()
		require.True(t, cfg.Discover())
		assert.Equal(t, ProviderGemini, cfg.Provider)
		assert.Equal(t, "g", cfg.Selected().APIKey)
	})

	t.Run("configured key beats environment", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "a")
		cfg := DefaultConfig()
		cfg.OpenRouter.APIKey = "file"
		require.True(t, cfg.Discover())
		assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	})

	t.Run("explicit provider untouched", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "a")
		cfg := Config{Provider: ProviderMock}
		assert.True(t, cfg.Discover())
		assert.Equal(t, ProviderMock, cfg.Provider)
	})
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: ProviderMock, Retry: retryConfig()}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, p.ModelID())

	cfg := DefaultConfig()
	cfg.Provider = ProviderAnthropic
	cfg.Anthropic.APIKey = "sk"
	p, err = NewProvider(ctx, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

	_, err = NewProvider(ctx, Config{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewProvider(ctx, Config{Provider: "acme"}, nil)
	assert.Error(t, err)
}

func TestNewProviderFromConfig(t *testing.T) {
	clearKeyEnv(t)
	_, err := NewProviderFromConfig(context.Background(), DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	t.Setenv("OPENAI_API_KEY", "sk")
	p, err := NewProviderFromConfig(context.Background(), DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())
}
