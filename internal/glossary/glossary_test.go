package glossary

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/llm"
)

func keys(ts []Term) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Key
	}
	return out
}

func TestTermsIn(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "Qual é sua prioridade ao investir?", []string{}},
		{"case insensitive", "Seu PORTFÓLIO pode cair", []string{"portfolio", "volatilidade"}},
		{"ordered by appearance", "Sharpe acima do CDI", []string{"sharpe", "cdi"}},
		{"word boundary", "cdizinho e portfolios", []string{}},
		{"asset names", catalog.AssetInflation + " e " + catalog.AssetReserve, []string{"renda-fixa", "ipca", "reserva-emergencia"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys(TermsIn(tt.text)))
		})
	}
}

func TestTermsIn_SeedQuestions(t *testing.T) {
	q, ok := catalog.MustBuiltin().Question(1)
	require.True(t, ok)
	got := keys(TermsIn(q.Text))
	assert.Equal(t, []string{"portfolio", "volatilidade"}, got)
}

func TestLookup(t *testing.T) {
	term, ok := Lookup("sharpe")
	require.True(t, ok)
	assert.Equal(t, "Índice de Sharpe", term.Name)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestAll_UniqueKeysAndDefinitions(t *testing.T) {
	seen := map[string]bool{}
	for _, term := range All() {
		assert.False(t, seen[term.Key], "duplicate key %s", term.Key)
		seen[term.Key] = true
		assert.NotEmpty(t, term.Definition, term.Key)
		assert.NotEmpty(t, term.Aliases, term.Key)
	}
}

func validExplanation() json.RawMessage {
	return json.RawMessage(`{"term":"CDI","explanation":"Taxa de referência entre bancos.","example":"R$ 1.000 a 100% do CDI.","risk":"baixo"}`)
}

func TestService_ExplainCaches(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanation()})
	svc := NewService(mock, DefaultConfig())
	term, _ := Lookup("cdi")

	e, err := svc.Explain(context.Background(), term)
	require.NoError(t, err)
	assert.Equal(t, "baixo", e.Risk)

	again, err := svc.Explain(context.Background(), term)
	require.NoError(t, err)
	assert.Same(t, e, again)
	assert.Equal(t, 1, mock.CallCount())

	call := mock.Calls()[0]
	assert.Equal(t, ExplanationSchema, call.Schema)
	assert.Contains(t, call.Messages[0].Content, "Termo: CDI")
}

func TestService_FailureNotCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Content: validExplanation()},
	)
	svc := NewService(mock, DefaultConfig())
	term, _ := Lookup("cdi")

	_, err := svc.Explain(context.Background(), term)
	require.Error(t, err)
	_, cached := svc.Cached("cdi")
	assert.False(t, cached)

	_, err = svc.Explain(context.Background(), term)
	assert.NoError(t, err)
}

func TestService_RejectsOffSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"term":"CDI","explanation":"x","example":"y","risk":"extremo"}`)})
	svc := NewService(mock, DefaultConfig())
	term, _ := Lookup("cdi")

	_, err := svc.Explain(context.Background(), term)
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestService_Disabled(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	assert.False(t, svc.Enabled())
	_, err := svc.Explain(context.Background(), Term{Key: "cdi"})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	var nilSvc *Service
	assert.False(t, nilSvc.Enabled())
}
