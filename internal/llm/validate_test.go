package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sceneSchema = &Schema{
	Name:        "scene",
	Description: "A classroom illustration request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt":   map[string]any{"type": "string", "minLength": 1},
			"concrete": map[string]any{"type": "boolean"},
			"style":    map[string]any{"type": "string", "enum": []any{"chalk", "marker"}},
		},
		"required":             []any{"prompt", "concrete"},
		"additionalProperties": false,
	},
}

var planSchema = &Schema{
	Name: "plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
		},
		"required": []any{"title", "steps"},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		raw     string
		wantErr bool
	}{
		{"scene with all fields", sceneSchema, `{"prompt":"Chalk drawing of a seed","concrete":true,"style":"chalk"}`, false},
		{"scene without optional style", sceneSchema, `{"prompt":"Blank board","concrete":false}`, false},
		{"scene missing concrete", sceneSchema, `{"prompt":"Blank board"}`, true},
		{"scene concrete as string", sceneSchema, `{"prompt":"x","concrete":"yes"}`, true},
		{"scene empty prompt", sceneSchema, `{"prompt":"","concrete":true}`, true},
		{"scene unknown style", sceneSchema, `{"prompt":"x","concrete":true,"style":"crayon"}`, true},
		{"scene extra property", sceneSchema, `{"prompt":"x","concrete":true,"caption":"y"}`, true},
		{"plan with steps", planSchema, `{"title":"Leaf Hunt","steps":["Go outside","Collect leaves"]}`, false},
		{"plan with no steps", planSchema, `{"title":"Leaf Hunt","steps":[]}`, true},
		{"plan with numeric step", planSchema, `{"title":"Leaf Hunt","steps":[1]}`, true},
		{"malformed JSON", sceneSchema, `{prompt:}`, true},
		{"empty body", sceneSchema, ``, true},
		{"nil schema accepts anything", nil, `{"anything":"goes"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponse(tt.schema, json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var invErr *ErrInvalidResponse
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, tt.raw, string(invErr.Content))
		})
	}
}

func TestValidateResponseCompilesOnce(t *testing.T) {
	s := &Schema{Name: "once", Definition: map[string]any{"type": "object"}}
	require.NoError(t, ValidateResponse(s, json.RawMessage(`{}`)))

	first, ok := compiledSchemas.Load(s)
	require.True(t, ok)

	require.NoError(t, ValidateResponse(s, json.RawMessage(`{"a":1}`)))
	second, _ := compiledSchemas.Load(s)
	assert.Same(t, first, second)
}
