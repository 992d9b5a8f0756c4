package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quantforge/strategist/pkg/external"
)

// fakeValidator approves or rejects configs and names by flag.
type fakeValidator struct {
	configValid bool
	nameUnique  bool
	validateErr error
}

func (v *fakeValidator) Validate(context.Context, map[string]interface{}) (*external.ValidationResult, error) {
	if v.validateErr != nil {
		return nil, v.validateErr
	}
	if !v.configValid {
		return &external.ValidationResult{
			IsValid:     false,
			Errors:      []string{"indicators list is empty"},
			Suggestions: []string{"add at least one indicator"},
		}, nil
	}
	return &external.ValidationResult{IsValid: true}, nil
}

func (v *fakeValidator) CheckNameUnique(context.Context, string, string) (*external.ValidationResult, error) {
	if !v.nameUnique {
		return &external.ValidationResult{IsValid: false, Errors: []string{"name already taken"}}, nil
	}
	return &external.ValidationResult{IsValid: true}, nil
}

// fakeCatalog returns fixed listings and records the requested limit.
type fakeCatalog struct {
	lastLimit int
}

func (c *fakeCatalog) Indicators(context.Context) ([]external.Indicator, error) {
	return []external.Indicator{{Name: "rsi", Type: "momentum", Parameters: []string{"period"}}}, nil
}

func (c *fakeCatalog) Symbols(context.Context) ([]external.Symbol, error) {
	return []external.Symbol{{Symbol: "BTCUSDT", Timeframes: []string{"1h"}}}, nil
}

func (c *fakeCatalog) RecentStrategies(_ context.Context, limit int) ([]external.StrategySummary, error) {
	c.lastLimit = limit
	return []external.StrategySummary{{Name: "older_strategy"}}, nil
}

func TestExecuteUnknownTool(t *testing.T) {
	e := NewExecutor()
	result := e.Execute(context.Background(), "bogus", nil)
	assert.Equal(t, "Unknown tool: bogus", result["error"])
}

func TestExecuteWrapsHandlerError(t *testing.T) {
	e := NewExecutor()
	e.Register("boom", func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
		return nil, fmt.Errorf("disk full")
	})
	result := e.Execute(context.Background(), "boom", nil)
	assert.Equal(t, "Tool execution failed: disk full", result["error"])
}

func TestSaveStrategyConfigWritesYAMLAndRecordsState(t *testing.T) {
	dir := t.TempDir()
	e := NewDesignExecutor(&fakeValidator{configValid: true, nameUnique: true}, &fakeCatalog{}, dir)

	result := e.Execute(context.Background(), ToolSaveStrategyConfig, map[string]interface{}{
		"name":        "rsi_momentum_v1",
		"description": "RSI momentum on BTC",
		"config": map[string]interface{}{
			"symbols":    []interface{}{"BTCUSDT"},
			"timeframes": []interface{}{"1h"},
		},
	})

	assert.Equal(t, true, result["success"])
	path := result["path"].(string)
	assert.Equal(t, filepath.Join(dir, "rsi_momentum_v1.yaml"), path)
	assert.Equal(t, "rsi_momentum_v1", e.LastSavedStrategyName)
	assert.Equal(t, path, e.LastSavedStrategyPath)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var saved map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "rsi_momentum_v1", saved["name"])
	assert.Equal(t, "RSI momentum on BTC", saved["description"])
	assert.Contains(t, saved, "symbols")
}

func TestSaveStrategyConfigRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	e := NewDesignExecutor(&fakeValidator{configValid: false, nameUnique: true}, &fakeCatalog{}, dir)

	result := e.Execute(context.Background(), ToolSaveStrategyConfig, map[string]interface{}{
		"name":   "bad_one",
		"config": map[string]interface{}{},
	})

	assert.Equal(t, false, result["success"])
	assert.Contains(t, result["errors"], "indicators list is empty")
	assert.Empty(t, e.LastSavedStrategyName)
	_, err := os.Stat(filepath.Join(dir, "bad_one.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveStrategyConfigRejectsDuplicateName(t *testing.T) {
	dir := t.TempDir()
	e := NewDesignExecutor(&fakeValidator{configValid: true, nameUnique: false}, &fakeCatalog{}, dir)

	result := e.Execute(context.Background(), ToolSaveStrategyConfig, map[string]interface{}{
		"name":   "taken",
		"config": map[string]interface{}{},
	})

	assert.Equal(t, false, result["success"])
	assert.Contains(t, result["errors"], "name already taken")
}

func TestSaveStrategyConfigRejectsExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.yaml"), []byte("name: existing\n"), 0o644))
	e := NewDesignExecutor(&fakeValidator{configValid: true, nameUnique: true}, &fakeCatalog{}, dir)

	result := e.Execute(context.Background(), ToolSaveStrategyConfig, map[string]interface{}{
		"name":   "existing",
		"config": map[string]interface{}{},
	})

	assert.Equal(t, false, result["success"])
}

func TestValidateStrategyConfigPassesThroughVerdict(t *testing.T) {
	e := NewDesignExecutor(&fakeValidator{configValid: false}, &fakeCatalog{}, t.TempDir())

	result := e.Execute(context.Background(), ToolValidateStrategyConfig, map[string]interface{}{
		"config": map[string]interface{}{},
	})

	assert.Equal(t, false, result["valid"])
	assert.Contains(t, result["errors"], "indicators list is empty")
	assert.Contains(t, result["suggestions"], "add at least one indicator")
}

func TestValidateStrategyConfigSurfacesValidatorOutage(t *testing.T) {
	e := NewDesignExecutor(&fakeValidator{validateErr: fmt.Errorf("connection refused")}, &fakeCatalog{}, t.TempDir())

	result := e.Execute(context.Background(), ToolValidateStrategyConfig, map[string]interface{}{
		"config": map[string]interface{}{},
	})

	errMsg, _ := result["error"].(string)
	assert.Contains(t, errMsg, "Tool execution failed")
	assert.Contains(t, errMsg, "connection refused")
}

func TestSaveAssessmentWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	e := NewAssessmentExecutor(dir, "rsi_momentum_v1")

	result := e.Execute(context.Background(), ToolSaveAssessment, map[string]interface{}{
		"verdict":     VerdictPromising,
		"strengths":   []interface{}{"good accuracy"},
		"weaknesses":  []interface{}{"high drawdown"},
		"suggestions": []interface{}{"tighten stops"},
	})

	assert.Equal(t, true, result["success"])

	require.NotNil(t, e.LastAssessment)
	assert.Equal(t, VerdictPromising, e.LastAssessment.Verdict)
	assert.Equal(t, []string{"good accuracy"}, e.LastAssessment.Strengths)
	assert.False(t, e.LastAssessment.AssessedAt.IsZero())

	data, err := os.ReadFile(filepath.Join(dir, "rsi_momentum_v1", "assessment.json"))
	require.NoError(t, err)
	var saved map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, VerdictPromising, saved["verdict"])
	assert.NotEmpty(t, saved["assessed_at"])
}

func TestSaveAssessmentRejectsBadVerdict(t *testing.T) {
	e := NewAssessmentExecutor(t.TempDir(), "s_1")

	result := e.Execute(context.Background(), ToolSaveAssessment, map[string]interface{}{
		"verdict": "amazing",
	})

	errMsg, _ := result["error"].(string)
	assert.Contains(t, errMsg, "verdict must be one of")
	assert.Nil(t, e.LastAssessment)
}

func TestSaveAssessmentRequiresCurrentStrategy(t *testing.T) {
	e := NewAssessmentExecutor(t.TempDir(), "")

	result := e.Execute(context.Background(), ToolSaveAssessment, map[string]interface{}{
		"verdict": VerdictPoor,
	})

	errMsg, _ := result["error"].(string)
	assert.Contains(t, errMsg, "no current strategy")
}

func TestGetRecentStrategiesClampsLimit(t *testing.T) {
	catalog := &fakeCatalog{}
	e := NewDesignExecutor(&fakeValidator{configValid: true, nameUnique: true}, catalog, t.TempDir())

	e.Execute(context.Background(), ToolGetRecentStrategies, map[string]interface{}{"n": float64(100)})
	assert.Equal(t, 20, catalog.lastLimit)

	e.Execute(context.Background(), ToolGetRecentStrategies, map[string]interface{}{"n": float64(0)})
	assert.Equal(t, 1, catalog.lastLimit)

	e.Execute(context.Background(), ToolGetRecentStrategies, map[string]interface{}{"n": float64(7)})
	assert.Equal(t, 7, catalog.lastLimit)
}

func TestDiscoveryHandlers(t *testing.T) {
	e := NewDesignExecutor(&fakeValidator{configValid: true, nameUnique: true}, &fakeCatalog{}, t.TempDir())

	indicators := e.Execute(context.Background(), ToolGetIndicators, nil)
	assert.Contains(t, indicators, "indicators")

	symbols := e.Execute(context.Background(), ToolGetSymbols, nil)
	assert.Contains(t, symbols, "symbols")
}
