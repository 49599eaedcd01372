package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers
type Client interface {
	// Generate sends the system and user prompts and returns the model's
	// text response. It blocks until a response, timeout, or error.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Model returns the configured model identifier
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration.
// The API key comes from the process environment, out of band of this
// package's contract.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	config = config.withDefaults()

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderGroq:
		return NewGroqClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
}
