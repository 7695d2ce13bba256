// Package assistant provides completion-service implementations of the
// assistant provider boundary. It includes adapters for Claude (Anthropic)
// and OpenAI with reliability patterns: per-call timeout, retry with
// backoff, a circuit breaker and a token-bucket rate limit.
package assistant

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultSystemPrompt is the fixed persona instruction forwarded with every
// message: a knowledge-base support assistant that answers in the language
// of the question and declines off-topic requests.
const defaultSystemPrompt = `You are the support assistant for this product's knowledge base.
Answer questions about the product, its documentation, configuration and troubleshooting.
Always reply in the same language the user writes in.
If a question is unrelated to the product or its documentation, politely decline and steer the user back to product topics.`

// Config holds the persona and model parameters shared by all providers.
type Config struct {
	// SystemPrompt is the persona instruction sent with every request.
	SystemPrompt string `yaml:"system_prompt"`

	// Model is the provider-specific model identifier. Empty selects the
	// provider's default.
	Model string `yaml:"model"`

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int `yaml:"max_tokens"`

	// Timeout is the maximum duration for a single completion call.
	Timeout time.Duration `yaml:"timeout"`

	// RequestsPerSecond and Burst bound the call rate to the upstream.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// DefaultConfig returns the built-in assistant configuration.
func DefaultConfig() Config {
	return Config{
		SystemPrompt:      defaultSystemPrompt,
		MaxTokens:         1024,
		Timeout:           60 * time.Second,
		RequestsPerSecond: 2.0,
		Burst:             5,
	}
}

// LoadConfig returns the assistant configuration. When ASSISTANT_CONFIG
// points at a YAML file, values present in the file override the defaults;
// otherwise the defaults are used as-is.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("ASSISTANT_CONFIG")
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- path comes from the operator's environment, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read assistant config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse assistant config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("assistant config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration fields for validity.
func (c Config) Validate() error {
	if c.SystemPrompt == "" {
		return fmt.Errorf("system_prompt cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive, got %v", c.RequestsPerSecond)
	}
	if c.Burst <= 0 {
		return fmt.Errorf("burst must be positive, got %d", c.Burst)
	}
	return nil
}
