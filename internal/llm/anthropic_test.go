package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{
		APIKey:  "test-key",
		Model:   "claude-haiku",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return p
}

func anthropicMessage(stop string, texts ...string) map[string]any {
	blocks := make([]map[string]any, len(texts))
	for i, s := range texts {
		blocks[i] = map[string]any{"type": "text", "text": s}
	}
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     blocks,
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func respondJSON(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
}

func TestAnthropicProviderJoinsTextBlocks(t *testing.T) {
	var sent map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		respondJSON(http.StatusOK, anthropicMessage("end_turn", "Try a counting game ", "with pebbles."))(w, r)
	})

	resp, err := p.Generate(context.Background(), Request{
		System: "You are a teaching coach.",
		Messages: []Message{
			{Role: RoleUser, Content: "Suggest an activity."},
			{Role: RoleAssistant, Content: "For which grade?"},
			{Role: RoleUser, Content: "Grade 3"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Try a counting game with pebbles.", string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}, resp.Usage)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

	assert.Equal(t, "claude-haiku-4-5-20251001", sent["model"])
	assert.EqualValues(t, defaultAnthropicMaxTokens, sent["max_tokens"])
	msgs, _ := sent["messages"].([]any)
	require.Len(t, msgs, 3)
	assert.Equal(t, "assistant", msgs[1].(map[string]any)["role"])
}

func TestAnthropicProviderTruncatedStructuredOutput(t *testing.T) {
	p := newTestAnthropicProvider(t, respondJSON(http.StatusOK, anthropicMessage("max_tokens", `{"prompt":"A chalk dra`)))

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Draw a seed"}},
		Schema:   &Schema{Name: "scene", Definition: map[string]any{"type": "object"}},
	})
	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.Equal(t, CategoryEmptyResponse, Classify(err))
}

func TestAnthropicProviderErrors(t *testing.T) {
	apiError := func(kind, msg string) map[string]any {
		return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": msg}}
	}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    Category
	}{
		{"unauthorized", respondJSON(http.StatusUnauthorized, apiError("authentication_error", "invalid x-api-key")), CategoryAuthentication},
		{"rate limited", respondJSON(http.StatusTooManyRequests, apiError("rate_limit_error", "slow down")), CategoryConnectivity},
		{"overloaded", respondJSON(529, apiError("overloaded_error", "overloaded")), CategoryConnectivity},
		{"blank text", respondJSON(http.StatusOK, anthropicMessage("end_turn", "  ")), CategoryEmptyResponse},
		{"no content", respondJSON(http.StatusOK, anthropicMessage("end_turn")), CategoryEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, tt.handler)
			_, err := p.Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "test"}},
			})
			require.Error(t, err)
			assert.Equal(t, tt.want, Classify(err))
		})
	}
}

func TestAnthropicRateLimitIsTyped(t *testing.T) {
	p := newTestAnthropicProvider(t, respondJSON(http.StatusTooManyRequests, map[string]any{
		"type": "error", "error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
	}))
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestNewAnthropicProviderRequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "claude-3-5-haiku-latest", resolveModel("claude-3-5-haiku-latest", anthropicModels))
}
