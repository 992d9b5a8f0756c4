// Package gates implements the quality gates that decide whether a research
// cycle advances past training and backtesting. Evaluation is pure: result
// summaries in, verdict out.
package gates

import (
	"fmt"

	"github.com/quantforge/strategist/pkg/config"
)

// reductionEpsilon absorbs float64 rounding in the derived loss reduction
// ratio; thresholds are inclusive.
const reductionEpsilon = 1e-9

// Verdict is the outcome of a gate evaluation.
type Verdict struct {
	Passed bool
	Reason string
}

// Evaluator applies configured thresholds to operation result summaries.
// Thresholds are read once at construction.
type Evaluator struct {
	training config.TrainingGateConfig
	backtest config.BacktestGateConfig
}

// NewEvaluator creates an evaluator with the given thresholds.
func NewEvaluator(training config.TrainingGateConfig, backtest config.BacktestGateConfig) *Evaluator {
	return &Evaluator{training: training, backtest: backtest}
}

// EvaluateTraining checks a training result summary against the training gate.
// Expects accuracy, final_loss, and initial_loss fields; a missing field
// fails the gate with a reason naming it.
func (e *Evaluator) EvaluateTraining(summary map[string]interface{}) Verdict {
	accuracy, ok := metric(summary, "accuracy")
	if !ok {
		return missingMetric("accuracy")
	}
	finalLoss, ok := metric(summary, "final_loss")
	if !ok {
		return missingMetric("final_loss")
	}
	initialLoss, ok := metric(summary, "initial_loss")
	if !ok {
		return missingMetric("initial_loss")
	}

	if accuracy < e.training.MinAccuracy {
		return failed("accuracy %.4f below minimum %.4f", accuracy, e.training.MinAccuracy)
	}
	if finalLoss > e.training.MaxFinalLoss {
		return failed("final_loss %.4f above maximum %.4f", finalLoss, e.training.MaxFinalLoss)
	}

	if initialLoss == 0 {
		return failed("initial_loss is zero; loss reduction ratio undefined")
	}
	// The ratio is derived, so an exactly-at-threshold input can land a few
	// ulps below the configured minimum. Tolerate that.
	reduction := (initialLoss - finalLoss) / initialLoss
	if reduction < e.training.MinLossReductionRatio-reductionEpsilon {
		return failed("loss reduction ratio %.4f below minimum %.4f",
			reduction, e.training.MinLossReductionRatio)
	}

	return Verdict{Passed: true}
}

// EvaluateBacktest checks a backtest result summary against the backtest gate.
// Expects win_rate, max_drawdown, and sharpe_ratio fields.
func (e *Evaluator) EvaluateBacktest(summary map[string]interface{}) Verdict {
	winRate, ok := metric(summary, "win_rate")
	if !ok {
		return missingMetric("win_rate")
	}
	drawdown, ok := metric(summary, "max_drawdown")
	if !ok {
		return missingMetric("max_drawdown")
	}
	sharpe, ok := metric(summary, "sharpe_ratio")
	if !ok {
		return missingMetric("sharpe_ratio")
	}

	if winRate < e.backtest.MinWinRate {
		return failed("win_rate %.4f below minimum %.4f", winRate, e.backtest.MinWinRate)
	}
	if drawdown > e.backtest.MaxDrawdown {
		return failed("max_drawdown %.4f above maximum %.4f", drawdown, e.backtest.MaxDrawdown)
	}
	if sharpe < e.backtest.MinSharpeRatio {
		return failed("sharpe_ratio %.4f below minimum %.4f", sharpe, e.backtest.MinSharpeRatio)
	}

	return Verdict{Passed: true}
}

// metric extracts a numeric field from a result summary. JSON decoding and
// in-process callers produce different numeric types, so both float64 and
// int are accepted.
func metric(summary map[string]interface{}, key string) (float64, bool) {
	if summary == nil {
		return 0, false
	}
	switch v := summary[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func missingMetric(name string) Verdict {
	return Verdict{Passed: false, Reason: fmt.Sprintf("missing metric %q in result summary", name)}
}

func failed(format string, args ...interface{}) Verdict {
	return Verdict{Passed: false, Reason: fmt.Sprintf(format, args...)}
}
