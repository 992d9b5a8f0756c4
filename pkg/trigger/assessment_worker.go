package trigger

import (
	"context"
	"strings"

	"github.com/quantforge/strategist/ent/researchsession"
	"github.com/quantforge/strategist/pkg/agent"
	"github.com/quantforge/strategist/pkg/services"
)

// runAssessmentWorker executes one assessment run: drive the LLM over the
// cycle's training and backtest metrics and require exactly one saved
// assessment, then terminate the session with its final outcome.
func (r *Reconciler) runAssessmentWorker(sessionID int, opID, strategyName string,
	trainingMetrics, backtestMetrics map[string]interface{}) {

	ctx := context.Background()
	log := r.logger.With("worker", "assessment", "session_id", sessionID, "operation_id", opID)

	if err := r.deps.Registry.Start(opID); err != nil {
		log.Error("Failed to start assessment operation", "error", err)
		return
	}
	token, err := r.deps.Registry.Token(opID)
	if err != nil {
		log.Error("Failed to get cancellation token", "error", err)
		return
	}

	executor := agent.NewAssessmentExecutor(r.deps.Config.StrategiesDir, strategyName)
	result := r.deps.Invoker.Run(ctx, agent.RunInput{
		SystemPrompt: agent.AssessmentSystemPrompt(),
		UserPrompt: agent.BuildAssessmentUserPrompt(agent.AssessmentContext{
			StrategyName:    strategyName,
			TrainingMetrics: trainingMetrics,
			BacktestMetrics: backtestMetrics,
		}),
		Tools:    agent.AssessmentTools(),
		Executor: executor,
		Token:    token,
		Recorder: newActionRecorder(r.deps.Actions, sessionID),
	})

	summary := tokenSummary(result)
	if !result.Success {
		r.failAgentRun(ctx, log, sessionID, opID, result.Err, summary, researchsession.OutcomeFailedAssessment)
		return
	}

	assessment := executor.LastAssessment
	if assessment == nil {
		errMsg := "agent did not save an assessment"
		if failErr := r.deps.Registry.Fail(opID, errMsg, summary); failErr != nil {
			log.Warn("Failed to fail assessment operation", "error", failErr)
		}
		r.terminateSession(ctx, log, sessionID, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedAssessment,
			ErrorMessage: errMsg,
		})
		return
	}

	summary["verdict"] = assessment.Verdict
	if err := r.deps.Registry.Complete(opID, summary); err != nil {
		log.Warn("Failed to complete assessment operation", "error", err)
	}

	text := strings.TrimSpace(result.OutputText)
	if text == "" {
		text = assessment.Verdict
	}
	r.terminateSession(ctx, log, sessionID, services.CompletionInput{
		Outcome:        researchsession.OutcomeSuccess,
		AssessmentText: text,
		AssessmentMetrics: map[string]interface{}{
			"verdict":       assessment.Verdict,
			"strengths":     assessment.Strengths,
			"weaknesses":    assessment.Weaknesses,
			"suggestions":   assessment.Suggestions,
			"input_tokens":  result.InputTokens,
			"output_tokens": result.OutputTokens,
		},
	})
	log.Info("Assessment run completed", "verdict", assessment.Verdict)
}
