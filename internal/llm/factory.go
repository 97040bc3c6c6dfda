package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured provider. Calls go through retry, then
// logging, then the vendor client, so every attempt is recorded in sink.
func NewProvider(ctx context.Context, cfg Config, sink EventSink) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	case "":
		return nil, ErrNotConfigured
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, sink), cfg.Retry), nil
}

// NewProviderFromConfig discovers credentials from the environment when no
// provider is set, validates the result and builds the provider.
func NewProviderFromConfig(ctx context.Context, cfg Config, sink EventSink) (Provider, error) {
	cfg.Discover()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, sink)
}
