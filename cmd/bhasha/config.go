package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider names accepted by BHASHA_PROVIDER and -provider.
const (
	providerGoogle  = "google"
	providerOpenAI  = "openai"
	providerOffline = "offline"
)

// Config is the CLI configuration, read from the environment.
type Config struct {
	Provider string `env:"BHASHA_PROVIDER" envDefault:"google"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL"    envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// Zero RPM disables rate limiting.
	RateLimitRPM   int `env:"RATE_LIMIT_RPM"   envDefault:"0"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"0"`

	DetectMinConfidence float64 `env:"DETECT_MIN_CONFIDENCE" envDefault:"0"`
	GlossaryFile        string  `env:"GLOSSARY_FILE"`
	BatchConcurrency    int     `env:"BATCH_CONCURRENCY"     envDefault:"4"`

	LogLevel   string `env:"LOG_LEVEL"   envDefault:"warn"`
	LogColored bool   `env:"LOG_COLORED" envDefault:"false"`
}

// loadConfig reads an optional .env file, parses the environment, applies a
// non-empty provider override and validates the result.
func loadConfig(providerOverride string) (*Config, error) {
	// .env is optional when variables come from the environment
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if providerOverride != "" {
		cfg.Provider = providerOverride
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate normalizes and checks the loaded configuration.
func (c *Config) validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	switch c.Provider {
	case providerGoogle, providerOffline:
	case providerOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return fmt.Errorf("config: OPENAI_API_KEY is required for the openai provider")
		}
	default:
		return fmt.Errorf("config: unknown provider %q (want google, openai or offline)", c.Provider)
	}

	if c.RateLimitRPM < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("config: RATE_LIMIT_RPM and RATE_LIMIT_BURST must not be negative")
	}

	if c.DetectMinConfidence < 0 || c.DetectMinConfidence > 1 {
		return fmt.Errorf("config: DETECT_MIN_CONFIDENCE must be between 0 and 1, got %v", c.DetectMinConfidence)
	}

	if c.BatchConcurrency < 1 {
		return fmt.Errorf("config: BATCH_CONCURRENCY must be at least 1, got %d", c.BatchConcurrency)
	}

	if _, err := c.level(); err != nil {
		return fmt.Errorf("config: LOG_LEVEL invalid (%q): %w", c.LogLevel, err)
	}

	return nil
}

// level parses LogLevel.
func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
