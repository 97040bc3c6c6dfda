package glossary

import "github.com/topocapital/suitability/internal/llm"

// ExplanationSchema is the JSON schema the explanation must satisfy.
var ExplanationSchema = &llm.Schema{
	Name:        "glossary-explanation",
	Description: "Plain-language explanation of a financial term for a retail investor",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term": map[string]any{
				"type":        "string",
				"description": "The term being explained",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "2-4 sentences in Brazilian Portuguese, no jargon",
				"minLength":   1,
			},
			"example": map[string]any{
				"type":        "string",
				"description": "One concrete example in reais",
			},
			"risk": map[string]any{
				"type":        "string",
				"description": "Risk level usually associated with the term",
				"enum":        []any{"baixo", "médio", "alto", "n/a"},
			},
		},
		"required":             []any{"term", "explanation", "example", "risk"},
		"additionalProperties": false,
	},
}
