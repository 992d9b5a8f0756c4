package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quantforge/strategist/pkg/external"
)

const (
	minRecentStrategies = 1
	maxRecentStrategies = 20
)

// strategyFile is the on-disk YAML layout of a saved strategy.
type strategyFile struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Config      map[string]interface{} `yaml:",inline"`
}

func validateStrategyConfigHandler(validator external.Validator) Handler {
	return func(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
		config, ok := input["config"].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("config must be an object")
		}
		result, err := validator.Validate(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("validator unavailable: %w", err)
		}
		return map[string]interface{}{
			"valid":       result.IsValid,
			"errors":      result.Errors,
			"warnings":    result.Warnings,
			"suggestions": result.Suggestions,
		}, nil
	}
}

func saveStrategyConfigHandler(e *Executor, validator external.Validator, strategiesDir string) Handler {
	return func(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
		name, ok := input["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("name is required")
		}
		config, ok := input["config"].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("config must be an object")
		}
		description, _ := input["description"].(string)

		result, err := validator.Validate(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("validator unavailable: %w", err)
		}
		if !result.IsValid {
			return map[string]interface{}{
				"success":     false,
				"errors":      result.Errors,
				"suggestions": result.Suggestions,
			}, nil
		}

		unique, err := validator.CheckNameUnique(ctx, name, strategiesDir)
		if err != nil {
			return nil, fmt.Errorf("name check unavailable: %w", err)
		}
		if !unique.IsValid {
			return map[string]interface{}{
				"success":     false,
				"errors":      unique.Errors,
				"suggestions": unique.Suggestions,
			}, nil
		}

		path := filepath.Join(strategiesDir, name+".yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			return map[string]interface{}{
				"success": false,
				"errors":  []string{fmt.Sprintf("strategy %q already exists at %s", name, path)},
			}, nil
		}

		data, err := yaml.Marshal(strategyFile{Name: name, Description: description, Config: config})
		if err != nil {
			return nil, fmt.Errorf("failed to encode strategy: %w", err)
		}
		if err := os.MkdirAll(strategiesDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create strategies directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write strategy file: %w", err)
		}

		e.LastSavedStrategyName = name
		e.LastSavedStrategyPath = path
		return map[string]interface{}{"success": true, "path": path}, nil
	}
}

func saveAssessmentHandler(e *Executor, strategiesDir string) Handler {
	return func(_ context.Context, input map[string]interface{}) (map[string]interface{}, error) {
		if e.CurrentStrategyName == "" {
			return nil, fmt.Errorf("no current strategy to assess")
		}

		verdict, _ := input["verdict"].(string)
		switch verdict {
		case VerdictPromising, VerdictMediocre, VerdictPoor:
		default:
			return nil, fmt.Errorf("verdict must be one of promising, mediocre, poor; got %q", verdict)
		}

		assessment := &Assessment{
			Verdict:     verdict,
			Strengths:   stringList(input["strengths"]),
			Weaknesses:  stringList(input["weaknesses"]),
			Suggestions: stringList(input["suggestions"]),
			AssessedAt:  time.Now().UTC(),
		}

		dir := filepath.Join(strategiesDir, e.CurrentStrategyName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create assessment directory: %w", err)
		}
		data, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode assessment: %w", err)
		}
		path := filepath.Join(dir, "assessment.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write assessment file: %w", err)
		}

		e.LastAssessment = assessment
		return map[string]interface{}{"success": true, "path": path}, nil
	}
}

func getIndicatorsHandler(catalog external.CatalogClient) Handler {
	return func(ctx context.Context, _ map[string]interface{}) (map[string]interface{}, error) {
		indicators, err := catalog.Indicators(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog unavailable: %w", err)
		}
		return map[string]interface{}{"indicators": indicators}, nil
	}
}

func getSymbolsHandler(catalog external.CatalogClient) Handler {
	return func(ctx context.Context, _ map[string]interface{}) (map[string]interface{}, error) {
		symbols, err := catalog.Symbols(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog unavailable: %w", err)
		}
		return map[string]interface{}{"symbols": symbols}, nil
	}
}

func getRecentStrategiesHandler(catalog external.CatalogClient) Handler {
	return func(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
		n := maxRecentStrategies / 2
		if raw, ok := input["n"]; ok {
			switch v := raw.(type) {
			case float64:
				n = int(v)
			case int:
				n = v
			}
		}
		if n < minRecentStrategies {
			n = minRecentStrategies
		}
		if n > maxRecentStrategies {
			n = maxRecentStrategies
		}
		strategies, err := catalog.RecentStrategies(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("catalog unavailable: %w", err)
		}
		return map[string]interface{}{"strategies": strategies}, nil
	}
}

func stringList(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
