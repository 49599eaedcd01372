// Package llm provides the client abstraction for the external career
// intelligence model. One blocking call is made per analysis run; any
// failure or empty response surfaces as a ServiceError with no partial
// result.
package llm

// Provider represents an LLM provider
type Provider string

// Supported providers
const (
	// ProviderGroq calls an OpenAI-compatible chat completions endpoint
	ProviderGroq Provider = "groq"
	// ProviderGemini calls the Google Gemini API
	ProviderGemini Provider = "gemini"
)

// Default generation settings. Temperature is kept low so reports stay
// consistent and HR-safe across runs.
const (
	DefaultGroqModel   = "llama-3.1-8b-instant"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTemperature = 0.25
	DefaultMaxTokens   = 1800
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
)

// Config holds the model configuration for analysis calls.
// Temperature is a pointer so an explicit 0 is distinguishable from unset.
type Config struct {
	Provider    Provider `json:"provider"`
	Model       string   `json:"model"`
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"max_tokens"`
	BaseURL     string   `json:"base_url,omitempty"`
}

// DefaultConfig returns the default configuration (currently Groq)
func DefaultConfig() *Config {
	t := float32(DefaultTemperature)
	return &Config{
		Provider:    ProviderGroq,
		Model:       DefaultGroqModel,
		Temperature: &t,
		MaxTokens:   DefaultMaxTokens,
		BaseURL:     DefaultGroqBaseURL,
	}
}

// withDefaults fills zero-valued fields from the provider defaults.
// Temperature is clamped to [0,1].
func (c *Config) withDefaults() *Config {
	out := *c
	if out.Provider == "" {
		out.Provider = ProviderGroq
	}
	if out.Model == "" {
		switch out.Provider {
		case ProviderGemini:
			out.Model = DefaultGeminiModel
		default:
			out.Model = DefaultGroqModel
		}
	}
	if out.Temperature == nil {
		t := float32(DefaultTemperature)
		out.Temperature = &t
	} else {
		t := *out.Temperature
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		out.Temperature = &t
	}
	if out.MaxTokens <= 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	if out.BaseURL == "" && out.Provider == ProviderGroq {
		out.BaseURL = DefaultGroqBaseURL
	}
	return &out
}
