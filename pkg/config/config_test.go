package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty defaults to opus", "", ModelOpus},
		{"tier alias opus", "opus", ModelOpus},
		{"tier alias sonnet", "sonnet", ModelSonnet},
		{"tier alias haiku", "haiku", ModelHaiku},
		{"full model name", ModelSonnet, ModelSonnet},
		{"unknown falls back to opus", "gpt-4", ModelOpus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveModel(tt.input))
		})
	}
}

func TestLoadAgentConfigDefaults(t *testing.T) {
	cfg, err := LoadAgentConfigFromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 300*time.Second, cfg.TriggerInterval)
	assert.Equal(t, ModelOpus, cfg.Model)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, 10, cfg.MaxIterations)
	assert.Equal(t, 50000, cfg.MaxInputTokens)
}

func TestLoadAgentConfigOverrides(t *testing.T) {
	t.Setenv("AGENT_ENABLED", "false")
	t.Setenv("AGENT_TRIGGER_INTERVAL_SECONDS", "60")
	t.Setenv("AGENT_MODEL", "haiku")
	t.Setenv("AGENT_MAX_TOKENS", "2048")
	t.Setenv("AGENT_TIMEOUT_SECONDS", "120")
	t.Setenv("AGENT_MAX_ITERATIONS", "5")
	t.Setenv("AGENT_MAX_INPUT_TOKENS", "20000")
	t.Setenv("STRATEGIES_DIR", "/tmp/strategies")

	cfg, err := LoadAgentConfigFromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 60*time.Second, cfg.TriggerInterval)
	assert.Equal(t, ModelHaiku, cfg.Model)
	assert.Equal(t, 2048, cfg.MaxTokens)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.MaxIterations)
	assert.Equal(t, 20000, cfg.MaxInputTokens)
	assert.Equal(t, "/tmp/strategies", cfg.StrategiesDir)
}

func TestLoadAgentConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad enabled", "AGENT_ENABLED", "maybe"},
		{"zero interval", "AGENT_TRIGGER_INTERVAL_SECONDS", "0"},
		{"negative max tokens", "AGENT_MAX_TOKENS", "-1"},
		{"non-numeric iterations", "AGENT_MAX_ITERATIONS", "many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadAgentConfigFromEnv()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadGateConfigDefaults(t *testing.T) {
	training, err := LoadTrainingGateConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.45, training.MinAccuracy)
	assert.Equal(t, 0.8, training.MaxFinalLoss)
	assert.Equal(t, 0.2, training.MinLossReductionRatio)

	backtest, err := LoadBacktestGateConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.45, backtest.MinWinRate)
	assert.Equal(t, 0.4, backtest.MaxDrawdown)
	assert.Equal(t, -0.5, backtest.MinSharpeRatio)
}

func TestLoadGateConfigOverrides(t *testing.T) {
	t.Setenv("TRAINING_GATE_MIN_ACCURACY", "0.6")
	t.Setenv("BACKTEST_GATE_MIN_SHARPE", "1.0")

	training, err := LoadTrainingGateConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.6, training.MinAccuracy)

	backtest, err := LoadBacktestGateConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 1.0, backtest.MinSharpeRatio)
}

func TestLoadGateConfigInvalidFloat(t *testing.T) {
	t.Setenv("TRAINING_GATE_MAX_FINAL_LOSS", "loose")
	_, err := LoadTrainingGateConfigFromEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TRAINING_GATE_MAX_FINAL_LOSS")
}

func TestLoadServiceEndpointsDefaults(t *testing.T) {
	t.Setenv("JOBS_SERVICE_URL", "")
	t.Setenv("CATALOG_SERVICE_URL", "")
	t.Setenv("VALIDATOR_SERVICE_URL", "")
	t.Setenv("ANTHROPIC_BASE_URL", "")

	endpoints := LoadServiceEndpointsFromEnv()
	assert.Equal(t, "http://localhost:8090", endpoints.JobsURL)
	assert.Equal(t, "http://localhost:8091", endpoints.CatalogURL)
	assert.Equal(t, "http://localhost:8092", endpoints.ValidatorURL)
	assert.Equal(t, "https://api.anthropic.com", endpoints.AnthropicBaseURL)
}
