// Package agent implements the LLM-driven research agent: the bounded
// tool-calling invocation loop, the local tool handler registry, and the
// prompt builders for the design and assessment phases.
package agent

import (
	"context"
	"fmt"
	"time"
)

// Handler executes a single tool call. Errors are surfaced to the model as
// error payloads, not propagated to the loop.
type Handler func(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error)

// Assessment is the structured verdict captured by the save_assessment tool.
type Assessment struct {
	Verdict     string    `json:"verdict"`
	Strengths   []string  `json:"strengths"`
	Weaknesses  []string  `json:"weaknesses"`
	Suggestions []string  `json:"suggestions"`
	AssessedAt  time.Time `json:"assessed_at"`
}

// Executor is a name-keyed registry of tool handlers plus the cross-call
// state workers read after a run. Construct a fresh executor per worker
// invocation; it is not safe for concurrent use.
type Executor struct {
	handlers map[string]Handler

	// Set by save_strategy_config on success.
	LastSavedStrategyName string
	LastSavedStrategyPath string

	// The strategy an assessment run is about. Required by save_assessment.
	CurrentStrategyName string

	// Set by save_assessment on success.
	LastAssessment *Assessment
}

// NewExecutor creates an empty executor.
func NewExecutor() *Executor {
	return &Executor{handlers: make(map[string]Handler)}
}

// Register adds a handler under the given tool name, replacing any existing one.
func (e *Executor) Register(name string, h Handler) {
	e.handlers[name] = h
}

// Execute dispatches a tool call by name. Unknown names and handler errors
// are returned as error payloads so the model can observe and react.
func (e *Executor) Execute(ctx context.Context, name string, input map[string]interface{}) map[string]interface{} {
	h, ok := e.handlers[name]
	if !ok {
		return map[string]interface{}{"error": fmt.Sprintf("Unknown tool: %s", name)}
	}
	out, err := h(ctx, input)
	if err != nil {
		return map[string]interface{}{"error": fmt.Sprintf("Tool execution failed: %v", err)}
	}
	return out
}
