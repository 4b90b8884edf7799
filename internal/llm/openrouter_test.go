package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantModel string
		wantErr   bool
	}{
		{"route passed through", OpenRouterConfig{APIKey: "sk-or", Model: "anthropic/claude-haiku-4.5"}, "anthropic/claude-haiku-4.5", false},
		{"openai friendly name not mapped", OpenRouterConfig{APIKey: "sk-or", Model: "gpt-4o"}, "gpt-4o", false},
		{"default route", OpenRouterConfig{APIKey: "sk-or"}, defaultOpenRouterModel, false},
		{"missing key", OpenRouterConfig{Model: "google/gemini-2.5-flash"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingCredential)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, p.ModelID())
			assert.Empty(t, p.ImageModelID())
		})
	}
}

func TestOpenRouterImageAndSpeechUnsupported(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or"})
	require.NoError(t, err)

	_, err = p.GenerateImage(context.Background(), ImageRequest{Prompt: "a seed"})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, CategoryConfiguration, Classify(err))

	_, err = p.Transcribe(context.Background(), nil, "audio/wav")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestAttributionTransportSetsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	client := &http.Client{Transport: attributionTransport{base: http.DefaultTransport}}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, openRouterReferer, got.Get("HTTP-Referer"))
	assert.Equal(t, openRouterTitle, got.Get("X-Title"))
	assert.Empty(t, req.Header.Get("X-Title"), "the caller's request is not mutated")
}
