// Package config provides environment-driven configuration for the
// research orchestrator.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Model tiers. Supported model names are enumerated in SupportedModels;
// unknown names fall back to the opus-tier default with a warning.
const (
	ModelOpus   = "claude-opus-4-1"
	ModelSonnet = "claude-sonnet-4-5"
	ModelHaiku  = "claude-haiku-4-5"
)

// SupportedModels maps tier aliases and full model names to concrete models.
var SupportedModels = map[string]string{
	"opus":      ModelOpus,
	"sonnet":    ModelSonnet,
	"haiku":     ModelHaiku,
	ModelOpus:   ModelOpus,
	ModelSonnet: ModelSonnet,
	ModelHaiku:  ModelHaiku,
}

// ResolveModel maps a configured model name to a supported model.
// Invalid names fall back to the opus-tier default with a warning.
func ResolveModel(name string) string {
	if name == "" {
		return ModelOpus
	}
	if model, ok := SupportedModels[name]; ok {
		return model
	}
	slog.Warn("Unsupported model name, falling back to default",
		"requested", name, "default", ModelOpus)
	return ModelOpus
}

// AgentConfig controls the trigger reconciler and the LLM invocation loop.
type AgentConfig struct {
	// Enabled gates the whole research loop. When false the reconciler
	// ticks but performs no transitions.
	Enabled bool

	// TriggerInterval is the reconciler tick interval.
	TriggerInterval time.Duration

	// Model is the resolved LLM model used for design and assessment runs.
	Model string

	// MaxTokens caps output tokens per LLM call.
	MaxTokens int

	// RequestTimeout bounds a single LLM API call.
	RequestTimeout time.Duration

	// MaxIterations bounds the agentic loop.
	MaxIterations int

	// MaxInputTokens is the cumulative input-token budget across all calls
	// of one agentic run.
	MaxInputTokens int

	// StrategiesDir is where strategy YAML files and assessments are written.
	StrategiesDir string
}

// DefaultAgentConfig returns the built-in agent defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		Enabled:         true,
		TriggerInterval: 300 * time.Second,
		Model:           ModelOpus,
		MaxTokens:       4096,
		RequestTimeout:  300 * time.Second,
		MaxIterations:   10,
		MaxInputTokens:  50000,
		StrategiesDir:   "./strategies",
	}
}

// LoadAgentConfigFromEnv loads agent configuration from environment
// variables, starting from the built-in defaults.
func LoadAgentConfigFromEnv() (*AgentConfig, error) {
	cfg := DefaultAgentConfig()

	if v := os.Getenv("AGENT_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AGENT_ENABLED: %w", err)
		}
		cfg.Enabled = enabled
	}
	if v := os.Getenv("AGENT_TRIGGER_INTERVAL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid AGENT_TRIGGER_INTERVAL_SECONDS: %q", v)
		}
		cfg.TriggerInterval = time.Duration(secs) * time.Second
	}
	cfg.Model = ResolveModel(os.Getenv("AGENT_MODEL"))
	if v := os.Getenv("AGENT_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid AGENT_MAX_TOKENS: %q", v)
		}
		cfg.MaxTokens = n
	}
	if v := os.Getenv("AGENT_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid AGENT_TIMEOUT_SECONDS: %q", v)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("AGENT_MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid AGENT_MAX_ITERATIONS: %q", v)
		}
		cfg.MaxIterations = n
	}
	if v := os.Getenv("AGENT_MAX_INPUT_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid AGENT_MAX_INPUT_TOKENS: %q", v)
		}
		cfg.MaxInputTokens = n
	}
	if v := os.Getenv("STRATEGIES_DIR"); v != "" {
		cfg.StrategiesDir = v
	}

	return cfg, nil
}
