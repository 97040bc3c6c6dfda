package glossary

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/topocapital/suitability/internal/llm"
)

// Purpose labels glossary calls in the LLM event log.
const Purpose = "glossary"

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation settings used by the app.
func DefaultConfig() Config {
	return Config{MaxTokens: 400, Temperature: 0.3}
}

// Explanation is an LLM-written explanation of a term.
type Explanation struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	Risk        string `json:"risk"`
}

// Service generates explanations and caches them per term. A nil provider
// is allowed; Explain then returns llm.ErrNotConfigured.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu    sync.Mutex
	cache map[string]*Explanation
}

// NewService creates a glossary service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg, cache: make(map[string]*Explanation)}
}

// Enabled reports whether explanations can be generated.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Cached returns a previously generated explanation.
func (s *Service) Cached(key string) (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cache[key]
	return e, ok
}

// Explain returns the explanation for t, generating it on first use.
// Failures are not cached.
func (s *Service) Explain(ctx context.Context, t Term) (*Explanation, error) {
	if !s.Enabled() {
		return nil, llm.ErrNotConfigured
	}
	if e, ok := s.Cached(t.Key); ok {
		return e, nil
	}

	e, err := s.generate(ctx, t)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[t.Key] = e
	s.mu.Unlock()
	return e, nil
}

func (s *Service) generate(ctx context.Context, t Term) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(t)),
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explain %s: %w", t.Key, err)
	}

	var out Explanation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation: %w", err)
	}
	if out.Term == "" {
		out.Term = t.Name
	}
	return &out, nil
}
