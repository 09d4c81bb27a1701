package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration. It is embedded in the
// application config file under the "llm" key.
type Config struct {
	// Provider selects which backend to use: "anthropic", "openai",
	// "gemini", "openrouter" or "mock". Empty means pick the first
	// provider with a key, see Resolve.
	Provider string `yaml:"provider" env:"TOTOTIME_LLM_PROVIDER"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration `yaml:"timeout" env:"TOTOTIME_LLM_TIMEOUT"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key" env:"TOTOTIME_ANTHROPIC_API_KEY"`
	Model  string `yaml:"model" env:"TOTOTIME_ANTHROPIC_MODEL"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" env:"TOTOTIME_OPENAI_API_KEY"`
	Model   string `yaml:"model" env:"TOTOTIME_OPENAI_MODEL"`
	BaseURL string `yaml:"base_url,omitempty" env:"TOTOTIME_OPENAI_BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"TOTOTIME_GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"TOTOTIME_GEMINI_MODEL"`
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key" env:"TOTOTIME_OPENROUTER_API_KEY"`
	Model   string `yaml:"model" env:"TOTOTIME_OPENROUTER_MODEL"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns defaults tuned for short buddy lines: small
// models, two quick retries.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// discoveryOrder lists the well-known key variables probed when no
// provider is configured explicitly.
var discoveryOrder = []struct {
	provider string
	envVar   string
}{
	{"gemini", "GEMINI_API_KEY"},
	{"openai", "OPENAI_API_KEY"},
	{"anthropic", "ANTHROPIC_API_KEY"},
	{"openrouter", "OPENROUTER_API_KEY"},
}

// Resolve fills in a provider when none was chosen. Keys already present
// in the config win, then the vendors' own environment variables are
// probed. It reports false when no provider could be found.
func (c Config) Resolve() (Config, bool) {
	if c.Provider != "" {
		return c, true
	}
	for _, d := range discoveryOrder {
		if c.key(d.provider) != "" {
			c.Provider = d.provider
			return c, true
		}
	}
	for _, d := range discoveryOrder {
		if k := os.Getenv(d.envVar); k != "" {
			c.Provider = d.provider
			c.setKey(d.provider, k)
			return c, true
		}
	}
	return c, false
}

func (c Config) key(provider string) string {
	switch provider {
	case "anthropic":
		return c.Anthropic.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "gemini":
		return c.Gemini.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}

func (c *Config) setKey(provider, key string) {
	switch provider {
	case "anthropic":
		c.Anthropic.APIKey = key
	case "openai":
		c.OpenAI.APIKey = key
	case "gemini":
		c.Gemini.APIKey = key
	case "openrouter":
		c.OpenRouter.APIKey = key
	}
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini", "openrouter":
		if c.key(c.Provider) == "" {
			return fmt.Errorf("TOTOTIME_%s_API_KEY is required for the %s provider",
				strings.ToUpper(c.Provider), c.Provider)
		}
	case "mock":
	case "":
		return fmt.Errorf("no LLM provider configured")
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// Redacted returns a copy with every API key masked.
func (c Config) Redacted() Config {
	c.Anthropic.APIKey = mask(c.Anthropic.APIKey)
	c.OpenAI.APIKey = mask(c.OpenAI.APIKey)
	c.Gemini.APIKey = mask(c.Gemini.APIKey)
	c.OpenRouter.APIKey = mask(c.OpenRouter.APIKey)
	return c
}

func mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:3] + "****" + key[len(key)-2:]
}
