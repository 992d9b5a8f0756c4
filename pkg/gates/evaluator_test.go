package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/strategist/pkg/config"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(config.DefaultTrainingGateConfig(), config.DefaultBacktestGateConfig())
}

func TestEvaluateTraining(t *testing.T) {
	tests := []struct {
		name       string
		summary    map[string]interface{}
		wantPassed bool
		wantReason string
	}{
		{
			name: "all metrics pass",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.30, "initial_loss": 1.00,
			},
			wantPassed: true,
		},
		{
			name: "accuracy exactly at threshold passes",
			summary: map[string]interface{}{
				"accuracy": 0.45, "final_loss": 0.30, "initial_loss": 1.00,
			},
			wantPassed: true,
		},
		{
			name: "final loss exactly at threshold passes",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.80, "initial_loss": 1.00,
			},
			wantPassed: true,
		},
		{
			name: "loss reduction exactly at threshold passes",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.80, "initial_loss": 1.0,
			},
			wantPassed: true,
		},
		{
			name: "low accuracy fails with observed and threshold",
			summary: map[string]interface{}{
				"accuracy": 0.30, "final_loss": 0.30, "initial_loss": 1.00,
			},
			wantPassed: false,
			wantReason: "accuracy 0.3000 below minimum 0.4500",
		},
		{
			name: "high final loss fails",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.95, "initial_loss": 1.00,
			},
			wantPassed: false,
			wantReason: "final_loss 0.9500 above maximum 0.8000",
		},
		{
			name: "insufficient loss reduction fails",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.95, "initial_loss": 1.05,
			},
			wantPassed: false,
			wantReason: "final_loss 0.9500 above maximum 0.8000",
		},
		{
			name: "loss reduction ratio below threshold fails",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.70, "initial_loss": 0.80,
			},
			wantPassed: false,
			wantReason: "loss reduction ratio 0.1250 below minimum 0.2000",
		},
		{
			name: "missing accuracy fails naming the field",
			summary: map[string]interface{}{
				"final_loss": 0.30, "initial_loss": 1.00,
			},
			wantPassed: false,
			wantReason: `missing metric "accuracy" in result summary`,
		},
		{
			name: "missing initial loss fails naming the field",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.30,
			},
			wantPassed: false,
			wantReason: `missing metric "initial_loss" in result summary`,
		},
		{
			name:       "nil summary fails",
			summary:    nil,
			wantPassed: false,
			wantReason: `missing metric "accuracy" in result summary`,
		},
		{
			name: "zero initial loss fails without dividing",
			summary: map[string]interface{}{
				"accuracy": 0.65, "final_loss": 0.0, "initial_loss": 0.0,
			},
			wantPassed: false,
			wantReason: "initial_loss is zero; loss reduction ratio undefined",
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := e.EvaluateTraining(tt.summary)
			assert.Equal(t, tt.wantPassed, v.Passed)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, v.Reason)
			}
		})
	}
}

func TestEvaluateBacktest(t *testing.T) {
	tests := []struct {
		name       string
		summary    map[string]interface{}
		wantPassed bool
		wantReason string
	}{
		{
			name: "all metrics pass",
			summary: map[string]interface{}{
				"win_rate": 0.55, "max_drawdown": 0.15, "sharpe_ratio": 0.80,
			},
			wantPassed: true,
		},
		{
			name: "thresholds are inclusive",
			summary: map[string]interface{}{
				"win_rate": 0.45, "max_drawdown": 0.40, "sharpe_ratio": -0.50,
			},
			wantPassed: true,
		},
		{
			name: "excess drawdown fails mentioning drawdown",
			summary: map[string]interface{}{
				"win_rate": 0.55, "max_drawdown": 0.55, "sharpe_ratio": 0.50,
			},
			wantPassed: false,
			wantReason: "max_drawdown 0.5500 above maximum 0.4000",
		},
		{
			name: "low win rate fails",
			summary: map[string]interface{}{
				"win_rate": 0.20, "max_drawdown": 0.15, "sharpe_ratio": 0.80,
			},
			wantPassed: false,
			wantReason: "win_rate 0.2000 below minimum 0.4500",
		},
		{
			name: "low sharpe fails",
			summary: map[string]interface{}{
				"win_rate": 0.55, "max_drawdown": 0.15, "sharpe_ratio": -0.90,
			},
			wantPassed: false,
			wantReason: "sharpe_ratio -0.9000 below minimum -0.5000",
		},
		{
			name: "missing sharpe fails naming the field",
			summary: map[string]interface{}{
				"win_rate": 0.55, "max_drawdown": 0.15,
			},
			wantPassed: false,
			wantReason: `missing metric "sharpe_ratio" in result summary`,
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := e.EvaluateBacktest(tt.summary)
			assert.Equal(t, tt.wantPassed, v.Passed)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, v.Reason)
			}
		})
	}
}

func TestEvaluatorAcceptsIntegerMetrics(t *testing.T) {
	e := newTestEvaluator()
	v := e.EvaluateTraining(map[string]interface{}{
		"accuracy": 1, "final_loss": 0, "initial_loss": 1,
	})
	require.True(t, v.Passed, "integer-typed metrics should be accepted: %s", v.Reason)
}

func TestEvaluatorUsesConfiguredThresholds(t *testing.T) {
	e := NewEvaluator(
		config.TrainingGateConfig{MinAccuracy: 0.9, MaxFinalLoss: 0.1, MinLossReductionRatio: 0.5},
		config.DefaultBacktestGateConfig(),
	)

	v := e.EvaluateTraining(map[string]interface{}{
		"accuracy": 0.65, "final_loss": 0.05, "initial_loss": 1.00,
	})
	require.False(t, v.Passed)
	assert.Equal(t, "accuracy 0.6500 below minimum 0.9000", v.Reason)
}
