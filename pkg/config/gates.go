package config

import (
	"fmt"
	"os"
	"strconv"
)

// TrainingGateConfig holds thresholds for the training quality gate.
// All comparisons are inclusive.
type TrainingGateConfig struct {
	MinAccuracy           float64
	MaxFinalLoss          float64
	MinLossReductionRatio float64
}

// BacktestGateConfig holds thresholds for the backtest quality gate.
type BacktestGateConfig struct {
	MinWinRate     float64
	MaxDrawdown    float64
	MinSharpeRatio float64
}

// DefaultTrainingGateConfig returns the built-in training gate thresholds.
func DefaultTrainingGateConfig() TrainingGateConfig {
	return TrainingGateConfig{
		MinAccuracy:           0.45,
		MaxFinalLoss:          0.8,
		MinLossReductionRatio: 0.2,
	}
}

// DefaultBacktestGateConfig returns the built-in backtest gate thresholds.
func DefaultBacktestGateConfig() BacktestGateConfig {
	return BacktestGateConfig{
		MinWinRate:     0.45,
		MaxDrawdown:    0.4,
		MinSharpeRatio: -0.5,
	}
}

// LoadTrainingGateConfigFromEnv loads training gate thresholds, starting
// from the defaults.
func LoadTrainingGateConfigFromEnv() (TrainingGateConfig, error) {
	cfg := DefaultTrainingGateConfig()

	var err error
	if cfg.MinAccuracy, err = envFloat("TRAINING_GATE_MIN_ACCURACY", cfg.MinAccuracy); err != nil {
		return cfg, err
	}
	if cfg.MaxFinalLoss, err = envFloat("TRAINING_GATE_MAX_FINAL_LOSS", cfg.MaxFinalLoss); err != nil {
		return cfg, err
	}
	if cfg.MinLossReductionRatio, err = envFloat("TRAINING_GATE_MIN_LOSS_REDUCTION", cfg.MinLossReductionRatio); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadBacktestGateConfigFromEnv loads backtest gate thresholds, starting
// from the defaults.
func LoadBacktestGateConfigFromEnv() (BacktestGateConfig, error) {
	cfg := DefaultBacktestGateConfig()

	var err error
	if cfg.MinWinRate, err = envFloat("BACKTEST_GATE_MIN_WIN_RATE", cfg.MinWinRate); err != nil {
		return cfg, err
	}
	if cfg.MaxDrawdown, err = envFloat("BACKTEST_GATE_MAX_DRAWDOWN", cfg.MaxDrawdown); err != nil {
		return cfg, err
	}
	if cfg.MinSharpeRatio, err = envFloat("BACKTEST_GATE_MIN_SHARPE", cfg.MinSharpeRatio); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envFloat(key string, defaultVal float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}
