// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/scoring"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Inputs
	Roster     string `json:"roster,omitempty"`      // Path to roster CSV/XLSX file
	EmployeeID string `json:"employee_id,omitempty"` // Employee to select from the roster

	// Manual-entry fallback
	Name           string `json:"name,omitempty"`
	Role           string `json:"role,omitempty"`
	TargetRole     string `json:"target_role,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Skills         string `json:"skills,omitempty"` // Comma separated
	Certifications string `json:"certifications,omitempty"`

	// LLM
	Provider    string   `json:"provider,omitempty"`    // "groq" or "gemini"
	Model       string   `json:"model,omitempty"`       // Model identifier
	Temperature *float64 `json:"temperature,omitempty"` // [0,1], lower favors consistency; nil means provider default
	MaxTokens   int      `json:"max_tokens,omitempty"`  // Maximum output length
	BaseURL     string   `json:"base_url,omitempty"`    // OpenAI-compatible endpoint override
	APIKey      string   `json:"api_key,omitempty"`     // Defaults to the provider env var

	// Scoring weight overrides; zero values fall back to the canonical set
	Weights scoring.Weights `json:"weights,omitempty"`

	// Behavior
	OutputDir string `json:"output_dir,omitempty"` // Where exported reports are written
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required-field enforcement happens after flag merging, not here.
func (c *Config) Validate() error {
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 1) {
		return fmt.Errorf("config error: 'temperature' must be within [0,1]")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}

	switch c.Provider {
	case "", string(llm.ProviderGroq), string(llm.ProviderGemini):
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	if w := c.Weights; w != (scoring.Weights{}) {
		if w.Cap <= 0 {
			return fmt.Errorf("config error: 'weights.cap' must be positive")
		}
		if w.PeerMin > w.PeerMax {
			return fmt.Errorf("config error: 'weights.peer_min' must not exceed 'weights.peer_max'")
		}
	}

	if c.Roster != "" {
		if _, err := os.Stat(c.Roster); os.IsNotExist(err) {
			return fmt.Errorf("config error: roster file not found: %s", c.Roster)
		}
	}

	return nil
}

// LLMConfig builds the llm.Config for this configuration, falling back to
// provider defaults for unset fields.
func (c *Config) LLMConfig() *llm.Config {
	cfg := &llm.Config{
		Provider:  llm.Provider(c.Provider),
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		BaseURL:   c.BaseURL,
	}
	if c.Temperature != nil {
		t := float32(*c.Temperature)
		cfg.Temperature = &t
	}
	return cfg
}

// ScoringWeights returns the configured weights, or the canonical defaults
// when no override is set.
func (c *Config) ScoringWeights() scoring.Weights {
	if c.Weights == (scoring.Weights{}) {
		return scoring.DefaultWeights()
	}
	return c.Weights
}

// ResolveAPIKey returns the configured API key, or the provider's
// conventional environment variable when unset.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if c.Provider == string(llm.ProviderGemini) {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("GROQ_API_KEY")
}
