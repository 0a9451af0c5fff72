package api

import "github.com/mkurien/skillpath/internal/llm"

// analysisSchema constrains custom-prompt analysis responses. Providers
// with native structured output enforce it at generation time; the rest
// validate the returned JSON against it before the handler ever sees it.
var analysisSchema = &llm.Schema{
	Name:        "dependency-analysis",
	Description: "Prerequisite analysis for a single skill",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dependencies": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"description": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 10,
			},
			"estimatedHours": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"enables": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"category": map[string]any{"type": "string"},
		},
		"required":             []string{"dependencies", "description", "difficulty", "estimatedHours"},
		"additionalProperties": true,
	},
}
