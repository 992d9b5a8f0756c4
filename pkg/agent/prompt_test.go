package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantforge/strategist/pkg/external"
)

func TestBuildDesignUserPromptEmbedsContext(t *testing.T) {
	prompt := BuildDesignUserPrompt(DesignContext{
		TriggerReason: "scheduled",
		OperationID:   "op_agent_design_1",
		Phase:         "designing",
		Brief:         "explore mean reversion",
		Indicators:    []external.Indicator{{Name: "rsi", Type: "momentum", Parameters: []string{"period"}}},
		Symbols: []external.Symbol{{
			Symbol:     "BTCUSDT",
			Timeframes: []string{"1h", "4h"},
			DateRange:  external.DateRange{Start: "2020-01-01", End: "2026-01-01"},
		}},
		Recent: []external.StrategySummary{{Name: "old_one", Description: "tried before"}},
	})

	assert.Contains(t, prompt, "scheduled")
	assert.Contains(t, prompt, "op_agent_design_1")
	assert.Contains(t, prompt, "explore mean reversion")
	assert.Contains(t, prompt, "rsi (momentum): parameters period")
	assert.Contains(t, prompt, "BTCUSDT: timeframes 1h, 4h, data 2020-01-01 to 2026-01-01")
	assert.Contains(t, prompt, "old_one: tried before")
}

func TestBuildDesignUserPromptHandlesEmptyCatalogs(t *testing.T) {
	prompt := BuildDesignUserPrompt(DesignContext{TriggerReason: "scheduled"})

	assert.Contains(t, prompt, "No indicator catalog available.")
	assert.Contains(t, prompt, "No symbol catalog available.")
	assert.Contains(t, prompt, "No strategies have been tried yet.")
}

func TestBuildAssessmentUserPromptDerivesLossImprovement(t *testing.T) {
	prompt := BuildAssessmentUserPrompt(AssessmentContext{
		StrategyName: "rsi_momentum_v1",
		TrainingMetrics: map[string]interface{}{
			"accuracy":     0.62,
			"initial_loss": 1.0,
			"final_loss":   0.4,
		},
		BacktestMetrics: map[string]interface{}{
			"win_rate":     0.55,
			"sharpe_ratio": 1.2,
		},
	})

	assert.Contains(t, prompt, "rsi_momentum_v1")
	assert.Contains(t, prompt, "accuracy: 0.62")
	assert.Contains(t, prompt, "loss_improvement_ratio: 0.6000")
	assert.Contains(t, prompt, "win_rate: 0.55")
}

func TestBuildAssessmentUserPromptSkipsRatioWithoutLossEndpoints(t *testing.T) {
	prompt := BuildAssessmentUserPrompt(AssessmentContext{
		StrategyName:    "s_1",
		TrainingMetrics: map[string]interface{}{"accuracy": 0.5},
	})

	assert.NotContains(t, prompt, "loss_improvement_ratio")
	assert.Contains(t, prompt, "No metrics reported.")
}
