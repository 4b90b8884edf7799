package assistant

import "github.com/abhisek/sahayak/internal/llm"

// VisualPromptSchema is the structured output of the prompt refinement step.
var VisualPromptSchema = &llm.Schema{
	Name:        "visual-prompt",
	Description: "An image generation prompt distilled from classroom advice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "One or two sentence illustration prompt following the template",
			},
			"concrete": map[string]any{
				"type":        "boolean",
				"description": "True when the advice names a physical object or action to draw",
			},
		},
		"required":             []any{"prompt", "concrete"},
		"additionalProperties": false,
	},
}

type visualPromptOutput struct {
	Prompt   string `json:"prompt"`
	Concrete bool   `json:"concrete"`
}
