// Package config loads Sahayak settings from defaults, an optional YAML
// file and SAHAYAK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/sahayak/internal/llm"
)

// EnvPrefix is prepended to every environment override, e.g.
// SAHAYAK_LLM_GEMINI_API_KEY.
const EnvPrefix = "SAHAYAK"

// DefaultEventRetention keeps thirty days of recorded assistant calls.
const DefaultEventRetention = 30 * 24 * time.Hour

// Config is the whole application configuration, mirroring config.yaml.
type Config struct {
	LLM llm.Config `mapstructure:"llm"`
	Log LogConfig  `mapstructure:"log"`

	// DBPath overrides the default SQLite location.
	DBPath string `mapstructure:"db_path"`

	// EventRetention is how long recorded assistant calls are kept. Zero
	// keeps them forever.
	EventRetention time.Duration `mapstructure:"event_retention"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
	// Path is the log file. Empty means the XDG state directory.
	Path string `mapstructure:"path"`
}

// Load reads configuration. path may be empty, in which case the default
// file is used when it exists. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case errors.As(err, &notFound), !explicit && errors.Is(err, os.ErrNotExist):
			default:
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	// Fall back to well-known provider env vars when no key was configured.
	// An explicitly chosen provider is never switched.
	if strings.TrimSpace(cfg.LLM.APIKey()) == "" {
		pinned := v.InConfig("llm.provider") || os.Getenv(EnvPrefix+"_LLM_PROVIDER") != ""
		if k := llm.DiscoverKey(cfg.LLM.Provider); k != "" {
			cfg.LLM.SetAPIKey(cfg.LLM.Provider, k)
		} else if found, ok := llm.DiscoverConfig(); ok && !pinned {
			cfg.LLM.SetAPIKey(found.Provider, found.APIKey())
		}
	}

	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/sahayak/config.yaml, or
// ~/.config/sahayak/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sahayak", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sahayak", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", d.Provider)
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.gemini.image_model", d.Gemini.ImageModel)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.image_model", d.OpenAI.ImageModel)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.anthropic.base_url", "")
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.path", "")

	v.SetDefault("db_path", "")
	v.SetDefault("event_retention", DefaultEventRetention)
}
