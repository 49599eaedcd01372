package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func temp(v float32) *float32 {
	return &v
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGroq, cfg.Provider)
	assert.Equal(t, DefaultGroqModel, cfg.Model)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.25, float64(*cfg.Temperature), 0.001)
	assert.Equal(t, 1800, cfg.MaxTokens)
}

func TestWithDefaults_FillsZeroValues(t *testing.T) {
	cfg := (&Config{Provider: ProviderGemini}).withDefaults()

	assert.Equal(t, DefaultGeminiModel, cfg.Model)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, DefaultTemperature, float64(*cfg.Temperature), 0.001)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Empty(t, cfg.BaseURL)
}

func TestWithDefaults_ClampsTemperature(t *testing.T) {
	cfg := (&Config{Temperature: temp(3.5)}).withDefaults()
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 1.0, float64(*cfg.Temperature), 0.001)
}

func TestWithDefaults_HonorsExplicitZeroTemperature(t *testing.T) {
	cfg := (&Config{Temperature: temp(0)}).withDefaults()

	require.NotNil(t, cfg.Temperature)
	assert.Zero(t, *cfg.Temperature)
}

func TestWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := (&Config{
		Provider:    ProviderGroq,
		Model:       "llama-3.3-70b-versatile",
		Temperature: temp(0.5),
		MaxTokens:   400,
		BaseURL:     "http://localhost:9999/v1",
	}).withDefaults()

	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Model)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.5, float64(*cfg.Temperature), 0.001)
	assert.Equal(t, 400, cfg.MaxTokens)
	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "watson"}, "key")
	assert.Error(t, err)
}

func TestNewClient_Groq(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultConfig(), "test-key")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, DefaultGroqModel, client.Model())
}
