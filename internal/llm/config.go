package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string `mapstructure:"provider"`

	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`

	// Timeout is the maximum duration for a single LLM request. Default: 60s.
	Timeout time.Duration `mapstructure:"timeout"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`       // Default: "gemini-flash"
	ImageModel string `mapstructure:"image_model"` // Default: "gemini-flash-image"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`       // Default: "gpt-4o-mini"
	ImageModel string `mapstructure:"image_model"` // Default: "dall-e-3"
	BaseURL    string `mapstructure:"base_url"`    // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "claude-haiku"
	BaseURL string `mapstructure:"base_url"` // Optional. Override for proxies.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "google/gemini-2.5-flash"
	BaseURL string `mapstructure:"base_url"` // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model:      "gemini-flash",
			ImageModel: "gemini-flash-image",
		},
		OpenAI: OpenAIConfig{
			Model:      "gpt-4o-mini",
			ImageModel: "dall-e-3",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Timeout: 60 * time.Second,
	}
}

// wellKnownKeys lists the conventional env vars per provider, in priority
// order.
var wellKnownKeys = []struct {
	provider string
	vars     []string
}{
	{"gemini", []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"}},
	{"openai", []string{"OPENAI_API_KEY"}},
	{"anthropic", []string{"ANTHROPIC_API_KEY"}},
	{"openrouter", []string{"OPENROUTER_API_KEY"}},
}

// DiscoverKey returns the first non-empty conventional env var for provider.
func DiscoverKey(provider string) string {
	for _, wk := range wellKnownKeys {
		if wk.provider != provider {
			continue
		}
		for _, name := range wk.vars {
			if k := os.Getenv(name); k != "" {
				return k
			}
		}
	}
	return ""
}

// DiscoverConfig checks standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	for _, wk := range wellKnownKeys {
		if k := DiscoverKey(wk.provider); k != "" {
			cfg := DefaultConfig()
			cfg.SetAPIKey(wk.provider, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// SetAPIKey selects provider and stores its key.
func (c *Config) SetAPIKey(provider, key string) {
	c.Provider = provider
	switch provider {
	case "gemini":
		c.Gemini.APIKey = key
	case "openai":
		c.OpenAI.APIKey = key
	case "anthropic":
		c.Anthropic.APIKey = key
	case "openrouter":
		c.OpenRouter.APIKey = key
	}
}

// APIKey returns the key configured for the selected provider.
func (c Config) APIKey() string {
	switch c.Provider {
	case "gemini":
		return c.Gemini.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "anthropic":
		return c.Anthropic.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}

// Validate checks that the selected provider has its required API key set.
// A missing key wraps ErrMissingCredential.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini", "openai", "anthropic", "openrouter":
		if strings.TrimSpace(c.APIKey()) == "" {
			return fmt.Errorf("%w: SAHAYAK_LLM_%s_API_KEY is required for the %s provider",
				ErrMissingCredential, strings.ToUpper(c.Provider), c.Provider)
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider %q: %w", c.Provider, ErrUnsupported)
	}
	return nil
}
