package content

import "github.com/oriolmontal/lingodrill/internal/llm"

// BatchSchema defines the JSON schema for LLM challenge generation
// responses.
var BatchSchema = &llm.Schema{
	Name:        "challenge-batch",
	Description: "A batch of language practice challenges",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"challenges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The challenge text shown to the learner, in the target language where the exercise requires it",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for choice-based types, exactly one correct. Empty array for free-input types.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct option text, or the expected input for free-input types",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining the answer, in English",
						},
					},
					"required":             []any{"prompt", "options", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"challenges"},
		"additionalProperties": false,
	},
}
