package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quantforge/strategist/pkg/external"
)

const designSystemPrompt = `You are a quantitative trading strategy researcher. You design novel machine-learning trading strategies as structured configurations.

Work method:
1. Study the available indicators, symbols, and recently tried strategies in the context below. Do not repeat a recent strategy.
2. Design one strategy configuration: pick symbols, timeframes, indicators with parameters, and a model architecture.
3. Validate the configuration with validate_strategy_config. Fix any reported errors.
4. Save it with save_strategy_config under a unique snake_case name.

You must save exactly one strategy before finishing. Respond with a short rationale once saved.`

const assessmentSystemPrompt = `You are a quantitative trading strategy reviewer. You judge a completed research cycle on its training and backtest metrics.

Work method:
1. Study the metrics below. Weigh predictive accuracy, loss convergence, win rate, drawdown, and risk-adjusted return together.
2. Decide a verdict: promising, mediocre, or poor.
3. Record it with save_assessment, with concrete strengths, weaknesses, and suggestions for the next cycle.

Call save_assessment exactly once, then respond with a one-paragraph summary.`

// DesignContext is the up-front context embedded in the design prompt so
// the model never needs the discovery tools.
type DesignContext struct {
	TriggerReason string
	OperationID   string
	Phase         string
	Brief         string
	Indicators    []external.Indicator
	Symbols       []external.Symbol
	Recent        []external.StrategySummary
}

// DesignSystemPrompt returns the fixed system prompt for the design run.
func DesignSystemPrompt() string {
	return designSystemPrompt
}

// BuildDesignUserPrompt renders the design context as the user prompt.
func BuildDesignUserPrompt(dc DesignContext) string {
	var sb strings.Builder

	sb.WriteString("## Research Cycle\n")
	fmt.Fprintf(&sb, "**Trigger:** %s\n", dc.TriggerReason)
	fmt.Fprintf(&sb, "**Operation:** %s\n", dc.OperationID)
	fmt.Fprintf(&sb, "**Phase:** %s\n\n", dc.Phase)

	if dc.Brief != "" {
		sb.WriteString("## Research Brief\n")
		sb.WriteString(dc.Brief)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Available Indicators\n")
	if len(dc.Indicators) == 0 {
		sb.WriteString("No indicator catalog available.\n")
	}
	for _, ind := range dc.Indicators {
		fmt.Fprintf(&sb, "- %s (%s): parameters %s\n", ind.Name, ind.Type, strings.Join(ind.Parameters, ", "))
	}
	sb.WriteString("\n")

	sb.WriteString("## Available Symbols\n")
	if len(dc.Symbols) == 0 {
		sb.WriteString("No symbol catalog available.\n")
	}
	for _, sym := range dc.Symbols {
		fmt.Fprintf(&sb, "- %s: timeframes %s, data %s to %s\n",
			sym.Symbol, strings.Join(sym.Timeframes, ", "), sym.DateRange.Start, sym.DateRange.End)
	}
	sb.WriteString("\n")

	sb.WriteString("## Recent Strategies (avoid repeating these)\n")
	if len(dc.Recent) == 0 {
		sb.WriteString("No strategies have been tried yet.\n")
	}
	for _, s := range dc.Recent {
		if s.Description != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", s.Name, s.Description)
		} else {
			fmt.Fprintf(&sb, "- %s\n", s.Name)
		}
	}

	return sb.String()
}

// AssessmentContext carries the per-cycle results embedded in the
// assessment prompt.
type AssessmentContext struct {
	StrategyName    string
	TrainingMetrics map[string]interface{}
	BacktestMetrics map[string]interface{}
}

// AssessmentSystemPrompt returns the fixed system prompt for the assessment run.
func AssessmentSystemPrompt() string {
	return assessmentSystemPrompt
}

// BuildAssessmentUserPrompt renders the training and backtest results,
// including the derived loss improvement ratio when both loss endpoints are
// present.
func BuildAssessmentUserPrompt(ac AssessmentContext) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## Strategy Under Review\n%s\n\n", ac.StrategyName)

	sb.WriteString("## Training Results\n")
	writeMetrics(&sb, ac.TrainingMetrics)
	if ratio, ok := lossImprovementRatio(ac.TrainingMetrics); ok {
		fmt.Fprintf(&sb, "- loss_improvement_ratio: %.4f\n", ratio)
	}
	sb.WriteString("\n")

	sb.WriteString("## Backtest Results\n")
	writeMetrics(&sb, ac.BacktestMetrics)

	return sb.String()
}

func writeMetrics(sb *strings.Builder, metrics map[string]interface{}) {
	if len(metrics) == 0 {
		sb.WriteString("No metrics reported.\n")
		return
	}
	for _, key := range sortedKeys(metrics) {
		fmt.Fprintf(sb, "- %s: %v\n", key, metrics[key])
	}
}

// lossImprovementRatio is (initial_loss - final_loss) / initial_loss.
func lossImprovementRatio(metrics map[string]interface{}) (float64, bool) {
	initial, okInitial := floatMetric(metrics, "initial_loss")
	final, okFinal := floatMetric(metrics, "final_loss")
	if !okInitial || !okFinal || initial == 0 {
		return 0, false
	}
	return (initial - final) / initial, true
}

func floatMetric(metrics map[string]interface{}, key string) (float64, bool) {
	raw, ok := metrics[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
