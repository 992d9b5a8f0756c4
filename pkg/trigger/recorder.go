package trigger

import (
	"context"
	"log/slog"

	"github.com/quantforge/strategist/pkg/llm"
	"github.com/quantforge/strategist/pkg/services"
)

// actionRecorder adapts the action audit log to the invoker's per-tool-call
// hook. Recording failures are logged, never propagated; the audit log must
// not break a run.
type actionRecorder struct {
	actions   ActionLog
	sessionID int
	logger    *slog.Logger
}

func newActionRecorder(actions ActionLog, sessionID int) *actionRecorder {
	return &actionRecorder{
		actions:   actions,
		sessionID: sessionID,
		logger:    slog.Default().With("component", "trigger.recorder", "session_id", sessionID),
	}
}

func (r *actionRecorder) RecordAction(ctx context.Context, toolName string, args, result map[string]interface{}, usage llm.Usage) {
	inputTokens := usage.InputTokens
	outputTokens := usage.OutputTokens
	if _, err := r.actions.Record(ctx, services.RecordActionInput{
		SessionID:    r.sessionID,
		ToolName:     toolName,
		ToolArgs:     args,
		Result:       result,
		InputTokens:  &inputTokens,
		OutputTokens: &outputTokens,
	}); err != nil {
		r.logger.Warn("Failed to record agent action", "tool", toolName, "error", err)
	}
}
