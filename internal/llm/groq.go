package llm

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// GroqClient implements Client against an OpenAI-compatible chat completions
// endpoint. Groq is the default target but any compatible base URL works.
type GroqClient struct {
	client *openai.Client
	config *Config
}

// NewGroqClient creates a new client for an OpenAI-compatible endpoint
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &GroqClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Generate sends the prompts as a system + user message pair
func (c *GroqClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	// go-openai omits a zero temperature from the request body; the smallest
	// nonzero float keeps an explicit 0 on the wire.
	temperature := *c.config.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   c.config.MaxTokens,
	})
	if err != nil {
		return "", &ServiceError{Provider: ProviderGroq, Message: "chat completion failed", Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Provider: ProviderGroq, Message: "no choices in response"}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &ServiceError{Provider: ProviderGroq, Message: "empty response content"}
	}

	return content, nil
}

// Model returns the configured model identifier
func (c *GroqClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client
func (c *GroqClient) Close() error {
	return nil
}
