package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term":  map[string]any{"type": "string", "description": "the term"},
			"level": map[string]any{"type": "string", "enum": []any{"baixo", "médio", "alto"}},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"weight": map[string]any{"type": "number"},
		},
		"required": []any{"term"},
	}

	s := geminiSchema(def)
	require.NotNil(t, s)
	assert.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 4)
	assert.Equal(t, genai.TypeString, s.Properties["term"].Type)
	assert.Equal(t, "the term", s.Properties["term"].Description)
	assert.Equal(t, []string{"baixo", "médio", "alto"}, s.Properties["level"].Enum)
	assert.Equal(t, genai.TypeArray, s.Properties["tags"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["tags"].Items.Type)
	assert.Equal(t, genai.TypeNumber, s.Properties["weight"].Type)
	assert.Equal(t, []string{"term"}, s.Required)
}

func TestGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	assert.Equal(t, genai.TypeString, geminiSchema(map[string]any{"type": "null"}).Type)
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringList([]any{"a", 1, "b"}))
	assert.Equal(t, []string{"x"}, stringList([]string{"x"}))
	assert.Nil(t, stringList(nil))
}
