package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// glossaryTestSchema mirrors the shape of the glossary explanation.
func glossaryTestSchema() *Schema {
	return &Schema{
		Name:        "test-glossary-entry",
		Description: "A glossary entry",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"term":        map[string]any{"type": "string"},
				"explanation": map[string]any{"type": "string", "minLength": 1},
				"risk":        map[string]any{"type": "string", "enum": []any{"baixo", "médio", "alto"}},
			},
			"required":             []any{"term", "explanation"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"term":"CDI","explanation":"x","risk":"baixo"}`, false},
		{"optional omitted", `{"term":"CDI","explanation":"x"}`, false},
		{"missing required", `{"term":"CDI"}`, true},
		{"wrong type", `{"term":1,"explanation":"x"}`, true},
		{"enum violation", `{"term":"CDI","explanation":"x","risk":"extremo"}`, true},
		{"extra property", `{"term":"CDI","explanation":"x","foo":1}`, true},
		{"empty explanation", `{"term":"CDI","explanation":""}`, true},
		{"malformed", `{"term":`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(glossaryTestSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var invalid *ErrInvalidResponse
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not json`)))
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := glossaryTestSchema()
	s.Name = "test-cache"
	assert.NoError(t, validateResponse(s, json.RawMessage(`{"term":"a","explanation":"b"}`)))
	_, ok := schemaCache.Load("test-cache")
	assert.True(t, ok)
}

func TestCheckOutput_MaxTokensOnlyMattersWithSchema(t *testing.T) {
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, checkOutput(Request{Schema: glossaryTestSchema()}, json.RawMessage(`{`), "max_tokens"), &maxTok)
	assert.NoError(t, checkOutput(Request{}, json.RawMessage(`texto livre`), "max_tokens"))
}
