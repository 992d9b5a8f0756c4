// Package trigger implements the central control loop of the research
// orchestrator: a periodic reconciler that observes the active session and
// performs exactly one transition per tick, plus the background design and
// assessment workers it spawns.
package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/quantforge/strategist/ent"
	"github.com/quantforge/strategist/ent/researchsession"
	"github.com/quantforge/strategist/pkg/agent"
	"github.com/quantforge/strategist/pkg/config"
	"github.com/quantforge/strategist/pkg/external"
	"github.com/quantforge/strategist/pkg/gates"
	"github.com/quantforge/strategist/pkg/ops"
	"github.com/quantforge/strategist/pkg/services"
)

// Tick reasons reported by CheckAndTrigger.
const (
	ReasonDisabled             = "disabled"
	ReasonCycleStarted         = "cycle_started"
	ReasonDesignInProgress     = "design_in_progress"
	ReasonOperationInProgress  = "operation_in_progress"
	ReasonAssessmentInProgress = "assessment_in_progress"
	ReasonTrainingStarted      = "training_started"
	ReasonTrainingStartFailed  = "training_start_failed"
	ReasonTrainingFailed       = "training_failed"
	ReasonTrainingGateFailed   = "training_gate_failed"
	ReasonBacktestStarted      = "backtest_started"
	ReasonBacktestStartFailed  = "backtest_start_failed"
	ReasonBacktestFailed       = "backtest_failed"
	ReasonBacktestGateFailed   = "backtest_gate_failed"
	ReasonJobCancelled         = "job_cancelled"
	ReasonAssessmentStarted    = "assessment_started"
)

// TickResult describes what one reconciliation step did.
type TickResult struct {
	Triggered bool   `json:"triggered"`
	Reason    string `json:"reason"`
	SessionID int    `json:"session_id,omitempty"`
}

// SessionStore is the session persistence surface the reconciler needs.
// Implemented by services.SessionService.
type SessionStore interface {
	CreateSession(ctx context.Context) (*ent.ResearchSession, error)
	GetActiveSession(ctx context.Context) (*ent.ResearchSession, error)
	GetSession(ctx context.Context, id int) (*ent.ResearchSession, error)
	MarkDesigned(ctx context.Context, id int, strategyName string) (*ent.ResearchSession, error)
	TransitionPhase(ctx context.Context, id int, from, to researchsession.Phase) (*ent.ResearchSession, error)
	StartExternalJob(ctx context.Context, id int, from, to researchsession.Phase, operationID string) (*ent.ResearchSession, error)
	Complete(ctx context.Context, id int, in services.CompletionInput) (*ent.ResearchSession, error)
	RecoverOrphanedSessions(ctx context.Context) (int, error)
}

// ActionLog is the audit log surface workers write through. Implemented by
// services.ActionService.
type ActionLog interface {
	Record(ctx context.Context, in services.RecordActionInput) (*ent.AgentAction, error)
}

// AgentInvoker runs one agentic conversation. Implemented by agent.Invoker.
type AgentInvoker interface {
	Run(ctx context.Context, in agent.RunInput) *agent.Result
}

// Deps bundles the reconciler's collaborators.
type Deps struct {
	Config    *config.AgentConfig
	Sessions  SessionStore
	Actions   ActionLog
	Registry  *ops.Registry
	Invoker   AgentInvoker
	Jobs      external.JobClient
	Catalog   external.CatalogClient
	Validator external.Validator
	Gates     *gates.Evaluator

	// ResearchBrief optionally steers the design prompt.
	ResearchBrief string
}

// Reconciler runs the periodic research loop. A single reconciliation task
// may run at a time; ticks are serialized by an internal mutex.
type Reconciler struct {
	deps   Deps
	logger *slog.Logger

	tickMu   sync.Mutex
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	workerWg sync.WaitGroup
}

// NewReconciler creates a reconciler. Start must be called to begin ticking.
func NewReconciler(deps Deps) *Reconciler {
	return &Reconciler{
		deps:   deps,
		logger: slog.Default().With("component", "trigger.reconciler"),
		stopCh: make(chan struct{}),
	}
}

// Start recovers orphaned sessions and begins the periodic loop.
func (r *Reconciler) Start(ctx context.Context) error {
	recovered, err := r.deps.Sessions.RecoverOrphanedSessions(ctx)
	if err != nil {
		return fmt.Errorf("startup recovery failed: %w", err)
	}
	if recovered > 0 {
		r.logger.Warn("Startup recovery completed", "sessions_recovered", recovered)
	}

	r.wg.Add(1)
	go r.run(ctx)
	return nil
}

// Stop signals the loop to stop and waits for it and all spawned workers.
// Safe to call multiple times.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
	r.workerWg.Wait()
}

func (r *Reconciler) run(ctx context.Context) {
	defer r.wg.Done()

	r.logger.Info("Reconciler started", "interval", r.deps.Config.TriggerInterval)
	ticker := time.NewTicker(r.deps.Config.TriggerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			r.logger.Info("Reconciler shutting down")
			return
		case <-ctx.Done():
			r.logger.Info("Context cancelled, reconciler shutting down")
			return
		case <-ticker.C:
			result, err := r.CheckAndTrigger(ctx)
			if err != nil {
				r.logger.Error("Reconciliation tick failed", "error", err)
				continue
			}
			if result.Triggered {
				r.logger.Info("Reconciliation tick",
					"reason", result.Reason, "session_id", result.SessionID)
			} else {
				r.logger.Debug("Reconciliation tick",
					"reason", result.Reason, "session_id", result.SessionID)
			}
		}
	}
}

// CheckAndTrigger performs exactly one observation/action step: it reads the
// active session, decides one transition, and applies it.
func (r *Reconciler) CheckAndTrigger(ctx context.Context) (TickResult, error) {
	r.tickMu.Lock()
	defer r.tickMu.Unlock()

	if !r.deps.Config.Enabled {
		return TickResult{Reason: ReasonDisabled}, nil
	}

	session, err := r.deps.Sessions.GetActiveSession(ctx)
	if err != nil {
		return TickResult{}, err
	}
	if session == nil {
		return r.startCycle(ctx)
	}

	switch session.Phase {
	case researchsession.PhaseDesigning:
		return TickResult{Reason: ReasonDesignInProgress, SessionID: session.ID}, nil
	case researchsession.PhaseDesigned:
		return r.startTraining(ctx, session)
	case researchsession.PhaseTraining:
		return r.pollTraining(ctx, session)
	case researchsession.PhaseBacktesting:
		return r.pollBacktest(ctx, session)
	case researchsession.PhaseAssessing:
		return TickResult{Reason: ReasonAssessmentInProgress, SessionID: session.ID}, nil
	default:
		return TickResult{}, fmt.Errorf("active session %d in unexpected phase %s", session.ID, session.Phase)
	}
}

// startCycle opens a fresh session and spawns the design worker.
func (r *Reconciler) startCycle(ctx context.Context) (TickResult, error) {
	session, err := r.deps.Sessions.CreateSession(ctx)
	if err != nil {
		return TickResult{}, err
	}

	op := r.deps.Registry.Create(ops.TypeAgentDesign, "", sessionMetadata(session.ID))
	r.spawnWorker(func() { r.runDesignWorker(session.ID, op.ID) })

	return TickResult{Triggered: true, Reason: ReasonCycleStarted, SessionID: session.ID}, nil
}

// startTraining handles the designed phase: submit the training job and
// advance, or terminate the session if the job cannot start.
func (r *Reconciler) startTraining(ctx context.Context, session *ent.ResearchSession) (TickResult, error) {
	if session.StrategyName == nil || *session.StrategyName == "" {
		return r.completeSession(ctx, session.ID, ReasonTrainingStartFailed, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedTraining,
			ErrorMessage: "designed session has no strategy name",
		})
	}

	externalID, err := r.deps.Jobs.StartTraining(ctx, external.TrainingRequest{
		StrategyName: *session.StrategyName,
	})
	if err != nil {
		return r.completeSession(ctx, session.ID, ReasonTrainingStartFailed, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedTraining,
			ErrorMessage: fmt.Sprintf("failed to start training: %v", err),
		})
	}

	r.trackJobOperation(ops.TypeTraining, session.ID, externalID)
	if _, err := r.deps.Sessions.StartExternalJob(ctx, session.ID,
		researchsession.PhaseDesigned, researchsession.PhaseTraining, externalID); err != nil {
		return TickResult{}, err
	}
	return TickResult{Triggered: true, Reason: ReasonTrainingStarted, SessionID: session.ID}, nil
}

// pollTraining handles the training phase: observe the external job and
// either wait, fail-terminate, or evaluate the training gate and advance.
func (r *Reconciler) pollTraining(ctx context.Context, session *ent.ResearchSession) (TickResult, error) {
	jobOp, result, err := r.observeJob(ctx, session, ops.TypeTraining, researchsession.OutcomeFailedTraining,
		ReasonTrainingFailed)
	if jobOp == nil {
		return result, err
	}

	verdict := r.deps.Gates.EvaluateTraining(jobOp.ResultSummary)
	if !verdict.Passed {
		return r.completeSession(ctx, session.ID, ReasonTrainingGateFailed, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedTrainingGate,
			ErrorMessage: verdict.Reason,
		})
	}

	modelPath, _ := jobOp.ResultSummary["model_path"].(string)
	externalID, err := r.deps.Jobs.StartBacktest(ctx, external.BacktestRequest{
		StrategyName: stringValue(session.StrategyName),
		ModelPath:    modelPath,
	})
	if err != nil {
		return r.completeSession(ctx, session.ID, ReasonBacktestStartFailed, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedBacktest,
			ErrorMessage: fmt.Sprintf("failed to start backtest: %v", err),
		})
	}

	r.trackJobOperation(ops.TypeBacktest, session.ID, externalID)
	if _, err := r.deps.Sessions.StartExternalJob(ctx, session.ID,
		researchsession.PhaseTraining, researchsession.PhaseBacktesting, externalID); err != nil {
		return TickResult{}, err
	}
	return TickResult{Triggered: true, Reason: ReasonBacktestStarted, SessionID: session.ID}, nil
}

// pollBacktest handles the backtesting phase; on gate pass it advances to
// assessing and spawns the assessment worker.
func (r *Reconciler) pollBacktest(ctx context.Context, session *ent.ResearchSession) (TickResult, error) {
	jobOp, result, err := r.observeJob(ctx, session, ops.TypeBacktest, researchsession.OutcomeFailedBacktest,
		ReasonBacktestFailed)
	if jobOp == nil {
		return result, err
	}

	verdict := r.deps.Gates.EvaluateBacktest(jobOp.ResultSummary)
	if !verdict.Passed {
		return r.completeSession(ctx, session.ID, ReasonBacktestGateFailed, services.CompletionInput{
			Outcome:      researchsession.OutcomeFailedBacktestGate,
			ErrorMessage: verdict.Reason,
		})
	}

	if _, err := r.deps.Sessions.TransitionPhase(ctx, session.ID,
		researchsession.PhaseBacktesting, researchsession.PhaseAssessing); err != nil {
		return TickResult{}, err
	}

	op := r.deps.Registry.Create(ops.TypeAgentAssessment, r.cycleRootOperation(session.ID), sessionMetadata(session.ID))
	strategyName := stringValue(session.StrategyName)
	trainingMetrics := r.completedJobResult(session.ID, ops.TypeTraining)
	backtestMetrics := jobOp.ResultSummary
	r.spawnWorker(func() {
		r.runAssessmentWorker(session.ID, op.ID, strategyName, trainingMetrics, backtestMetrics)
	})

	return TickResult{Triggered: true, Reason: ReasonAssessmentStarted, SessionID: session.ID}, nil
}

// observeJob polls the external operation referenced by the session. It
// returns a non-nil job operation only when the job completed and the gate
// should be evaluated; every other case is resolved into a TickResult.
func (r *Reconciler) observeJob(ctx context.Context, session *ent.ResearchSession, typ ops.Type,
	failureOutcome researchsession.Outcome, failureReason string) (*external.JobOperation, TickResult, error) {

	if session.OperationID == nil || *session.OperationID == "" {
		result, err := r.completeSession(ctx, session.ID, failureReason, services.CompletionInput{
			Outcome:      failureOutcome,
			ErrorMessage: fmt.Sprintf("session in phase %s has no operation id", session.Phase),
		})
		return nil, result, err
	}

	jobOp, err := r.deps.Jobs.GetOperation(ctx, *session.OperationID)
	if err != nil {
		// Transient poll failure; retry on the next tick.
		return nil, TickResult{}, fmt.Errorf("failed to poll operation %s: %w", *session.OperationID, err)
	}

	switch jobOp.Status {
	case external.JobStatusPending, external.JobStatusRunning:
		return nil, TickResult{Reason: ReasonOperationInProgress, SessionID: session.ID}, nil

	case external.JobStatusFailed:
		r.finishJobOperation(session.ID, typ, jobOp, false)
		result, err := r.completeSession(ctx, session.ID, failureReason, services.CompletionInput{
			Outcome:      failureOutcome,
			ErrorMessage: jobOp.ErrorMessage,
		})
		return nil, result, err

	case external.JobStatusCancelled:
		r.finishJobOperation(session.ID, typ, jobOp, false)
		result, err := r.completeSession(ctx, session.ID, ReasonJobCancelled, services.CompletionInput{
			Outcome:      researchsession.OutcomeCancelled,
			ErrorMessage: fmt.Sprintf("%s job cancelled by job service", typ),
		})
		return nil, result, err

	case external.JobStatusCompleted:
		r.finishJobOperation(session.ID, typ, jobOp, true)
		return jobOp, TickResult{}, nil

	default:
		return nil, TickResult{}, fmt.Errorf("operation %s reported unexpected status %q", jobOp.ID, jobOp.Status)
	}
}

// completeSession terminates the session and reports the tick as triggered.
func (r *Reconciler) completeSession(ctx context.Context, sessionID int, reason string, in services.CompletionInput) (TickResult, error) {
	if _, err := r.deps.Sessions.Complete(ctx, sessionID, in); err != nil {
		return TickResult{}, err
	}
	return TickResult{Triggered: true, Reason: reason, SessionID: sessionID}, nil
}

// trackJobOperation mirrors an external job in the registry so its result
// summary survives phase transitions.
func (r *Reconciler) trackJobOperation(typ ops.Type, sessionID int, externalID string) {
	metadata := sessionMetadata(sessionID)
	metadata["external_id"] = externalID
	op := r.deps.Registry.Create(typ, r.cycleRootOperation(sessionID), metadata)
	if err := r.deps.Registry.Start(op.ID); err != nil {
		r.logger.Warn("Failed to start tracked job operation", "operation_id", op.ID, "error", err)
	}
}

// cycleRootOperation returns the id of the session's design operation, which
// anchors the cycle's operation ancestry. Empty after a restart, when the
// registry no longer holds the design run.
func (r *Reconciler) cycleRootOperation(sessionID int) string {
	for _, op := range r.deps.Registry.Snapshot() {
		if op.Type == ops.TypeAgentDesign && op.Metadata["session_id"] == strconv.Itoa(sessionID) {
			return op.ID
		}
	}
	return ""
}

// finishJobOperation finalizes the registry mirror of an external job.
func (r *Reconciler) finishJobOperation(sessionID int, typ ops.Type, jobOp *external.JobOperation, completed bool) {
	for _, op := range r.deps.Registry.ActiveForSession(strconv.Itoa(sessionID)) {
		if op.Type != typ || op.Metadata["external_id"] != jobOp.ID {
			continue
		}
		var err error
		if completed {
			err = r.deps.Registry.Complete(op.ID, jobOp.ResultSummary)
		} else {
			err = r.deps.Registry.Fail(op.ID, jobOp.ErrorMessage, jobOp.ResultSummary)
		}
		if err != nil {
			r.logger.Warn("Failed to finalize tracked job operation", "operation_id", op.ID, "error", err)
		}
	}
}

// completedJobResult returns the result summary of the session's most
// recently completed operation of the given type.
func (r *Reconciler) completedJobResult(sessionID int, typ ops.Type) map[string]interface{} {
	var latest *ops.Operation
	for _, op := range r.deps.Registry.Snapshot() {
		op := op
		if op.Type != typ || op.Status != ops.StatusCompleted {
			continue
		}
		if op.Metadata["session_id"] != strconv.Itoa(sessionID) {
			continue
		}
		if latest == nil || op.UpdatedAt.After(latest.UpdatedAt) {
			latest = &op
		}
	}
	if latest == nil {
		return nil
	}
	return latest.Result
}

// CancelSessionResult summarizes a cancellation request.
type CancelSessionResult struct {
	CancelledOperations []string `json:"cancelled_operations"`
	SessionCompleted    bool     `json:"session_completed"`
}

// CancelSession cancels the active operations of a session. Worker-driven
// phases (designing, assessing) leave the terminal write to the worker,
// which observes its cancellation token; job-driven phases are completed
// here with outcome cancelled.
func (r *Reconciler) CancelSession(ctx context.Context, sessionID int, reason string) (CancelSessionResult, error) {
	session, err := r.deps.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return CancelSessionResult{}, err
	}

	var out CancelSessionResult
	for _, op := range r.deps.Registry.ActiveForSession(strconv.Itoa(sessionID)) {
		if res, err := r.deps.Registry.Cancel(op.ID, reason); err == nil && res.Success {
			out.CancelledOperations = append(out.CancelledOperations, op.ID)
		}
	}

	switch session.Phase {
	case researchsession.PhaseDesigning, researchsession.PhaseAssessing:
		// The worker observes its token and writes the outcome.
	case researchsession.PhaseDesigned, researchsession.PhaseTraining, researchsession.PhaseBacktesting:
		if _, err := r.deps.Sessions.Complete(ctx, sessionID, services.CompletionInput{
			Outcome:      researchsession.OutcomeCancelled,
			ErrorMessage: reason,
		}); err != nil {
			return out, err
		}
		out.SessionCompleted = true
	default:
		return out, fmt.Errorf("session %d is not active", sessionID)
	}

	return out, nil
}

func (r *Reconciler) spawnWorker(fn func()) {
	r.workerWg.Add(1)
	go func() {
		defer r.workerWg.Done()
		fn()
	}()
}

func sessionMetadata(sessionID int) map[string]string {
	return map[string]string{"session_id": strconv.Itoa(sessionID)}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
