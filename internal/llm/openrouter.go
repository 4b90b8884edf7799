package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "google/gemini-2.5-flash"

	openRouterReferer = "https://github.com/abhisek/sahayak"
	openRouterTitle   = "Sahayak"
)

// OpenRouterProvider routes text generation through OpenRouter's
// OpenAI-compatible API. Model IDs are passed through unchanged. Image
// generation and transcription are not offered.
type OpenRouterProvider struct {
	*OpenAIProvider
}

var (
	_ Provider      = (*OpenRouterProvider)(nil)
	_ ImageProvider = (*OpenRouterProvider)(nil)
	_ Transcriber   = (*OpenRouterProvider)(nil)
)

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("openrouter: %w", ErrMissingCredential)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultOpenRouterModel
	}

	client := &http.Client{Transport: attributionTransport{base: http.DefaultTransport}}
	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: baseURL,
	}, client)
	if err != nil {
		return nil, err
	}
	// Friendly names are an OpenAI concept; keep the route verbatim.
	inner.model = model
	inner.imageModel = ""

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// GenerateImage is not available through OpenRouter's chat API.
func (p *OpenRouterProvider) GenerateImage(context.Context, ImageRequest) (*Image, error) {
	return nil, fmt.Errorf("openrouter image generation: %w", ErrUnsupported)
}

// Transcribe is not available through OpenRouter.
func (p *OpenRouterProvider) Transcribe(context.Context, io.Reader, string) (string, error) {
	return "", fmt.Errorf("openrouter transcription: %w", ErrUnsupported)
}

// attributionTransport adds the headers OpenRouter uses to attribute
// requests to an app.
type attributionTransport struct {
	base http.RoundTripper
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(req)
}
