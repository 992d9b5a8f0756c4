package agent

import (
	"github.com/quantforge/strategist/pkg/external"
	"github.com/quantforge/strategist/pkg/llm"
)

// Tool names understood by the executor.
const (
	ToolValidateStrategyConfig = "validate_strategy_config"
	ToolSaveStrategyConfig     = "save_strategy_config"
	ToolSaveAssessment         = "save_assessment"
	ToolGetIndicators          = "get_available_indicators"
	ToolGetSymbols             = "get_available_symbols"
	ToolGetRecentStrategies    = "get_recent_strategies"
)

// Assessment verdicts accepted by save_assessment.
const (
	VerdictPromising = "promising"
	VerdictMediocre  = "mediocre"
	VerdictPoor      = "poor"
)

// DesignTools is the reduced catalog shipped to the design run. Discovery
// tools are omitted because their information is embedded in the prompt.
func DesignTools() []llm.Tool {
	return []llm.Tool{
		{
			Name:        ToolValidateStrategyConfig,
			Description: "Validate a strategy configuration without saving it. Returns validity, errors, warnings, and suggestions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"config": map[string]interface{}{
						"type":        "object",
						"description": "The strategy configuration to validate",
					},
				},
				"required": []string{"config"},
			},
		},
		{
			Name:        ToolSaveStrategyConfig,
			Description: "Validate and save a strategy configuration as a YAML file. The name must be unique. Returns the saved path on success.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Unique snake_case strategy name",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "One-paragraph summary of the strategy idea",
					},
					"config": map[string]interface{}{
						"type":        "object",
						"description": "The full strategy configuration",
					},
				},
				"required": []string{"name", "config"},
			},
		},
	}
}

// AssessmentTools is the reduced catalog shipped to the assessment run.
func AssessmentTools() []llm.Tool {
	return []llm.Tool{
		{
			Name:        ToolSaveAssessment,
			Description: "Save the final assessment of the strategy's training and backtest results.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"verdict": map[string]interface{}{
						"type":        "string",
						"enum":        []string{VerdictPromising, VerdictMediocre, VerdictPoor},
						"description": "Overall verdict on the strategy",
					},
					"strengths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "What worked well",
					},
					"weaknesses": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "What worked poorly",
					},
					"suggestions": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Concrete ideas for the next research cycle",
					},
				},
				"required": []string{"verdict", "strengths", "weaknesses", "suggestions"},
			},
		},
	}
}

// DiscoveryTools lists the read-only catalog tools. Not shipped to either
// worker run; exposed for ad-hoc invocations through the executor.
func DiscoveryTools() []llm.Tool {
	return []llm.Tool{
		{
			Name:        ToolGetIndicators,
			Description: "List available technical indicators.",
			InputSchema: map[string]interface{}{"type": "object", "properties": map[string]interface{}{}},
		},
		{
			Name:        ToolGetSymbols,
			Description: "List available market symbols with their timeframes and data windows.",
			InputSchema: map[string]interface{}{"type": "object", "properties": map[string]interface{}{}},
		},
		{
			Name:        ToolGetRecentStrategies,
			Description: "List recently created strategies. n is clamped to [1, 20].",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"n": map[string]interface{}{"type": "integer", "description": "How many strategies to return"},
				},
			},
		},
	}
}

// NewDesignExecutor builds the executor for a design run. It carries the
// save/validate handlers plus the discovery handlers.
func NewDesignExecutor(validator external.Validator, catalog external.CatalogClient, strategiesDir string) *Executor {
	e := NewExecutor()
	e.Register(ToolValidateStrategyConfig, validateStrategyConfigHandler(validator))
	e.Register(ToolSaveStrategyConfig, saveStrategyConfigHandler(e, validator, strategiesDir))
	registerDiscoveryHandlers(e, catalog)
	return e
}

// NewAssessmentExecutor builds the executor for an assessment run on the
// named strategy.
func NewAssessmentExecutor(strategiesDir, strategyName string) *Executor {
	e := NewExecutor()
	e.CurrentStrategyName = strategyName
	e.Register(ToolSaveAssessment, saveAssessmentHandler(e, strategiesDir))
	return e
}

func registerDiscoveryHandlers(e *Executor, catalog external.CatalogClient) {
	e.Register(ToolGetIndicators, getIndicatorsHandler(catalog))
	e.Register(ToolGetSymbols, getSymbolsHandler(catalog))
	e.Register(ToolGetRecentStrategies, getRecentStrategiesHandler(catalog))
}
