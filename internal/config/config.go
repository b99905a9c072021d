package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents runtime configuration for the service. Everything is
// sourced from the environment; a missing provider credential is a valid
// state that keeps the service on its canned fallback responses.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8000"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./web"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// Provider selects which upstream completion API to call.
	Provider string `envconfig:"PROVIDER" default:"openai"`
	Model    string `envconfig:"MODEL" default:"gpt-4o-mini"`

	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `envconfig:"OPENAI_BASE_URL"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`
}

// Load reads configuration from the environment. A local .env file is
// applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}

// APIKey returns the credential for the selected provider. Empty means the
// provider client stays unconfigured.
func (c *Config) APIKey() string {
	switch c.Provider {
	case "claude":
		return c.AnthropicAPIKey
	case "gemini":
		return c.GeminiAPIKey
	default:
		return c.OpenAIAPIKey
	}
}
