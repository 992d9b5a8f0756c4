package trigger

import (
	"context"
	"errors"

	"github.com/quantforge/strategist/ent/researchsession"
	"github.com/quantforge/strategist/pkg/agent"
	"github.com/quantforge/strategist/pkg/services"
)

// runDesignWorker executes one design run: gather catalog context, drive
// the LLM with the reduced design tool catalog, and either mark the session
// designed or terminate it. Runs in its own goroutine; uses a background
// context so an HTTP request ending does not kill the run.
func (r *Reconciler) runDesignWorker(sessionID int, opID string) {
	ctx := context.Background()
	log := r.logger.With("worker", "design", "session_id", sessionID, "operation_id", opID)

	if err := r.deps.Registry.Start(opID); err != nil {
		log.Error("Failed to start design operation", "error", err)
		return
	}
	token, err := r.deps.Registry.Token(opID)
	if err != nil {
		log.Error("Failed to get cancellation token", "error", err)
		return
	}

	dc := agent.DesignContext{
		TriggerReason: "scheduled research cycle",
		OperationID:   opID,
		Phase:         string(researchsession.PhaseDesigning),
		Brief:         r.deps.ResearchBrief,
	}
	if dc.Indicators, err = r.deps.Catalog.Indicators(ctx); err != nil {
		log.Warn("Indicator catalog unavailable, designing without it", "error", err)
	}
	if dc.Symbols, err = r.deps.Catalog.Symbols(ctx); err != nil {
		log.Warn("Symbol catalog unavailable, designing without it", "error", err)
	}
	if dc.Recent, err = r.deps.Catalog.RecentStrategies(ctx, 10); err != nil {
		log.Warn("Recent strategies unavailable, designing without them", "error", err)
	}

	executor := agent.NewDesignExecutor(r.deps.Validator, r.deps.Catalog, r.deps.Config.StrategiesDir)
	result := r.deps.Invoker.Run(ctx, agent.RunInput{
		SystemPrompt: agent.DesignSystemPrompt(),
		UserPrompt:   agent.BuildDesignUserPrompt(dc),
		Tools:        agent.DesignTools(),
		Executor:     executor,
		Token:        token,
		Recorder:     newActionRecorder(r.deps.Actions, sessionID),
	})

	summary := tokenSummary(result)
	if !result.Success {
		r.failAgentRun(ctx, log, sessionID, opID, result.Err, summary, researchsession.OutcomeFailedDesign)
		return
	}

	if executor.LastSavedStrategyName == "" {
		errMsg := "agent did not save a strategy"
		if failErr := r.deps.Registry.Fail(opID, errMsg, summary); failErr != nil {
			log.Warn("Failed to fail design operation", "error", failErr)
		}
		r.terminateSession(ctx, log, sessionID, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedDesign,
			ErrorMessage: errMsg,
		})
		return
	}

	summary["strategy_name"] = executor.LastSavedStrategyName
	summary["strategy_path"] = executor.LastSavedStrategyPath
	if err := r.deps.Registry.Complete(opID, summary); err != nil {
		log.Warn("Failed to complete design operation", "error", err)
	}

	if _, err := r.deps.Sessions.MarkDesigned(ctx, sessionID, executor.LastSavedStrategyName); err != nil {
		log.Error("Failed to mark session designed", "error", err)
		return
	}
	log.Info("Design run completed",
		"strategy", executor.LastSavedStrategyName,
		"input_tokens", result.InputTokens,
		"output_tokens", result.OutputTokens)
}

// failAgentRun maps an invoker failure to an operation failure and a
// terminal session outcome. Cancellation keeps the already-cancelled
// operation and only attaches the partial token counts.
func (r *Reconciler) failAgentRun(ctx context.Context, log logWriter, sessionID int, opID string,
	runErr error, summary map[string]interface{}, failureOutcome researchsession.Outcome) {

	switch {
	case errors.Is(runErr, agent.ErrCancelled):
		if err := r.deps.Registry.SetResult(opID, summary); err != nil {
			log.Warn("Failed to attach partial result", "error", err)
		}
		r.terminateSession(ctx, log, sessionID, services.CompletionInput{
			Outcome:      researchsession.OutcomeCancelled,
			ErrorMessage: runErr.Error(),
		})

	case errors.Is(runErr, agent.ErrRequestTimeout):
		if err := r.deps.Registry.Fail(opID, runErr.Error(), summary); err != nil {
			log.Warn("Failed to fail operation", "error", err)
		}
		r.terminateSession(ctx, log, sessionID, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedTimeout,
			ErrorMessage: runErr.Error(),
		})

	default:
		if err := r.deps.Registry.Fail(opID, runErr.Error(), summary); err != nil {
			log.Warn("Failed to fail operation", "error", err)
		}
		r.terminateSession(ctx, log, sessionID, services.CompletionInput{
			Outcome:      failureOutcome,
			ErrorMessage: runErr.Error(),
		})
	}
}

// terminateSession completes the session, tolerating a concurrent terminal
// write (e.g. a cancel request that already finished the session).
func (r *Reconciler) terminateSession(ctx context.Context, log logWriter, sessionID int, in services.CompletionInput) {
	if _, err := r.deps.Sessions.Complete(ctx, sessionID, in); err != nil {
		if errors.Is(err, services.ErrIllegalTransition) {
			log.Debug("Session already terminal", "outcome", in.Outcome)
			return
		}
		log.Error("Failed to complete session", "outcome", in.Outcome, "error", err)
	}
}

// logWriter is the subset of slog.Logger the workers use.
type logWriter interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

func tokenSummary(result *agent.Result) map[string]interface{} {
	return map[string]interface{}{
		"input_tokens":  result.InputTokens,
		"output_tokens": result.OutputTokens,
	}
}
