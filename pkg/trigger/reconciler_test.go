package trigger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/strategist/ent"
	"github.com/quantforge/strategist/ent/researchsession"
	"github.com/quantforge/strategist/pkg/agent"
	"github.com/quantforge/strategist/pkg/config"
	"github.com/quantforge/strategist/pkg/external"
	"github.com/quantforge/strategist/pkg/gates"
	"github.com/quantforge/strategist/pkg/llm"
	"github.com/quantforge/strategist/pkg/ops"
	"github.com/quantforge/strategist/pkg/services"
)

// fakeSessionStore mirrors the conditional-write semantics of the real
// session service in memory.
type fakeSessionStore struct {
	mu        sync.Mutex
	nextID    int
	sessions  map[int]*ent.ResearchSession
	recovered int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[int]*ent.ResearchSession)}
}

func (f *fakeSessionStore) CreateSession(context.Context) (*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s := &ent.ResearchSession{
		ID:        f.nextID,
		Phase:     researchsession.PhaseDesigning,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.sessions[s.ID] = s
	return copySession(s), nil
}

func (f *fakeSessionStore) GetActiveSession(context.Context) (*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active *ent.ResearchSession
	for _, s := range f.sessions {
		if s.Phase == researchsession.PhaseIdle || s.Phase == researchsession.PhaseComplete {
			continue
		}
		if active == nil || s.ID < active.ID {
			active = s
		}
	}
	if active == nil {
		return nil, nil
	}
	return copySession(active), nil
}

func (f *fakeSessionStore) GetSession(_ context.Context, id int) (*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return copySession(s), nil
}

func (f *fakeSessionStore) MarkDesigned(_ context.Context, id int, strategyName string) (*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if s.Phase != researchsession.PhaseDesigning {
		return nil, fmt.Errorf("%w: session %d is %s", services.ErrIllegalTransition, id, s.Phase)
	}
	s.Phase = researchsession.PhaseDesigned
	s.StrategyName = &strategyName
	s.UpdatedAt = time.Now()
	return copySession(s), nil
}

func (f *fakeSessionStore) TransitionPhase(_ context.Context, id int, from, to researchsession.Phase) (*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if s.Phase != from {
		return nil, fmt.Errorf("%w: session %d is %s, expected %s", services.ErrIllegalTransition, id, s.Phase, from)
	}
	s.Phase = to
	if from == researchsession.PhaseBacktesting {
		s.OperationID = nil
	}
	s.UpdatedAt = time.Now()
	return copySession(s), nil
}

func (f *fakeSessionStore) StartExternalJob(_ context.Context, id int, from, to researchsession.Phase, operationID string) (*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if s.Phase != from {
		return nil, fmt.Errorf("%w: session %d is %s, expected %s", services.ErrIllegalTransition, id, s.Phase, from)
	}
	s.Phase = to
	s.OperationID = &operationID
	s.UpdatedAt = time.Now()
	return copySession(s), nil
}

func (f *fakeSessionStore) Complete(_ context.Context, id int, in services.CompletionInput) (*ent.ResearchSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if s.Phase == researchsession.PhaseIdle || s.Phase == researchsession.PhaseComplete {
		return nil, fmt.Errorf("%w: session %d is %s", services.ErrIllegalTransition, id, s.Phase)
	}
	s.Phase = researchsession.PhaseComplete
	outcome := in.Outcome
	s.Outcome = &outcome
	s.OperationID = nil
	if in.ErrorMessage != "" {
		msg := in.ErrorMessage
		s.ErrorMessage = &msg
	}
	if in.AssessmentText != "" {
		text := in.AssessmentText
		s.AssessmentText = &text
	}
	if in.AssessmentMetrics != nil {
		s.AssessmentMetrics = in.AssessmentMetrics
	}
	s.UpdatedAt = time.Now()
	return copySession(s), nil
}

func (f *fakeSessionStore) RecoverOrphanedSessions(ctx context.Context) (int, error) {
	f.mu.Lock()
	ids := make([]int, 0)
	for id, s := range f.sessions {
		if s.Phase != researchsession.PhaseIdle && s.Phase != researchsession.PhaseComplete {
			ids = append(ids, id)
		}
	}
	f.mu.Unlock()
	for _, id := range ids {
		_, err := f.Complete(ctx, id, services.CompletionInput{
			Outcome: researchsession.OutcomeFailedInterrupted,
		})
		if err != nil {
			return 0, err
		}
	}
	f.mu.Lock()
	f.recovered += len(ids)
	f.mu.Unlock()
	return len(ids), nil
}

func copySession(s *ent.ResearchSession) *ent.ResearchSession {
	out := *s
	return &out
}

type fakeActionLog struct {
	mu      sync.Mutex
	records []services.RecordActionInput
}

func (f *fakeActionLog) Record(_ context.Context, in services.RecordActionInput) (*ent.AgentAction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, in)
	return &ent.AgentAction{ID: len(f.records), SessionID: in.SessionID, ToolName: in.ToolName}, nil
}

type fakeJobClient struct {
	mu           sync.Mutex
	trainingID   string
	trainingErr  error
	trainingReqs []external.TrainingRequest
	backtestID   string
	backtestErr  error
	backtestReqs []external.BacktestRequest
	operations   map[string]*external.JobOperation
	getErr       error
}

func newFakeJobClient() *fakeJobClient {
	return &fakeJobClient{
		trainingID: "ext_train_1",
		backtestID: "ext_backtest_1",
		operations: make(map[string]*external.JobOperation),
	}
}

func (f *fakeJobClient) StartTraining(_ context.Context, req external.TrainingRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trainingReqs = append(f.trainingReqs, req)
	if f.trainingErr != nil {
		return "", f.trainingErr
	}
	return f.trainingID, nil
}

func (f *fakeJobClient) StartBacktest(_ context.Context, req external.BacktestRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.backtestReqs = append(f.backtestReqs, req)
	if f.backtestErr != nil {
		return "", f.backtestErr
	}
	return f.backtestID, nil
}

func (f *fakeJobClient) GetOperation(_ context.Context, id string) (*external.JobOperation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	op, ok := f.operations[id]
	if !ok {
		return nil, fmt.Errorf("operation %s not found", id)
	}
	return op, nil
}

func (f *fakeJobClient) setOperation(id, status string, summary map[string]interface{}, errMsg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.operations[id] = &external.JobOperation{
		ID: id, Status: status, ResultSummary: summary, ErrorMessage: errMsg,
	}
}

type fakeInvoker struct {
	mu      sync.Mutex
	runs    []agent.RunInput
	handler func(in agent.RunInput) *agent.Result
}

func (f *fakeInvoker) Run(_ context.Context, in agent.RunInput) *agent.Result {
	f.mu.Lock()
	f.runs = append(f.runs, in)
	f.mu.Unlock()
	if f.handler == nil {
		return &agent.Result{Success: true, OutputText: "ok"}
	}
	return f.handler(in)
}

type noopValidator struct{}

func (noopValidator) Validate(context.Context, map[string]interface{}) (*external.ValidationResult, error) {
	return &external.ValidationResult{IsValid: true}, nil
}

func (noopValidator) CheckNameUnique(context.Context, string, string) (*external.ValidationResult, error) {
	return &external.ValidationResult{IsValid: true}, nil
}

type emptyCatalog struct{}

func (emptyCatalog) Indicators(context.Context) ([]external.Indicator, error) { return nil, nil }
func (emptyCatalog) Symbols(context.Context) ([]external.Symbol, error)       { return nil, nil }
func (emptyCatalog) RecentStrategies(context.Context, int) ([]external.StrategySummary, error) {
	return nil, nil
}

type testEnv struct {
	reconciler *Reconciler
	store      *fakeSessionStore
	actions    *fakeActionLog
	jobs       *fakeJobClient
	invoker    *fakeInvoker
	registry   *ops.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	cfg := config.DefaultAgentConfig()
	cfg.TriggerInterval = 10 * time.Millisecond
	cfg.StrategiesDir = t.TempDir()

	env := &testEnv{
		store:    newFakeSessionStore(),
		actions:  &fakeActionLog{},
		jobs:     newFakeJobClient(),
		invoker:  &fakeInvoker{},
		registry: ops.NewRegistry(),
	}
	env.reconciler = NewReconciler(Deps{
		Config:    cfg,
		Sessions:  env.store,
		Actions:   env.actions,
		Registry:  env.registry,
		Invoker:   env.invoker,
		Jobs:      env.jobs,
		Catalog:   emptyCatalog{},
		Validator: noopValidator{},
		Gates:     gates.NewEvaluator(config.DefaultTrainingGateConfig(), config.DefaultBacktestGateConfig()),
	})
	return env
}

// waitWorkers joins all spawned worker goroutines.
func (e *testEnv) waitWorkers() {
	e.reconciler.workerWg.Wait()
}

// advanceToDesigned runs one cycle-start tick with an invoker that saves a
// strategy, then waits for the design worker.
func (e *testEnv) advanceToDesigned(t *testing.T) int {
	e.invoker.handler = func(in agent.RunInput) *agent.Result {
		in.Executor.LastSavedStrategyName = "rsi_momentum_v1"
		in.Executor.LastSavedStrategyPath = "/strategies/rsi_momentum_v1.yaml"
		return &agent.Result{Success: true, OutputText: "designed", InputTokens: 100, OutputTokens: 40}
	}
	result, err := e.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	require.True(t, result.Triggered)
	require.Equal(t, ReasonCycleStarted, result.Reason)
	e.waitWorkers()
	return result.SessionID
}

// advanceToTraining additionally runs the designed->training tick.
func (e *testEnv) advanceToTraining(t *testing.T) int {
	id := e.advanceToDesigned(t)
	result, err := e.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	require.Equal(t, ReasonTrainingStarted, result.Reason)
	return id
}

func passingTrainingSummary() map[string]interface{} {
	return map[string]interface{}{
		"accuracy":     0.62,
		"final_loss":   0.4,
		"initial_loss": 1.0,
		"model_path":   "/models/rsi_momentum_v1.pt",
	}
}

func passingBacktestSummary() map[string]interface{} {
	return map[string]interface{}{
		"win_rate":     0.55,
		"max_drawdown": 0.2,
		"sharpe_ratio": 1.1,
	}
}

func TestTickDisabled(t *testing.T) {
	env := newTestEnv(t)
	env.reconciler.deps.Config.Enabled = false

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Triggered)
	assert.Equal(t, ReasonDisabled, result.Reason)
	assert.Empty(t, env.store.sessions)
}

func TestTickStartsCycleWhenIdle(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Triggered)
	assert.Equal(t, ReasonCycleStarted, result.Reason)
	assert.NotZero(t, result.SessionID)
	env.waitWorkers()

	session, err := env.store.GetSession(context.Background(), result.SessionID)
	require.NoError(t, err)
	// Default fake invoker saves nothing, so the worker fails the design.
	assert.Equal(t, researchsession.PhaseComplete, session.Phase)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedDesign, *session.Outcome)
	require.NotNil(t, session.ErrorMessage)
	assert.Contains(t, *session.ErrorMessage, "did not save a strategy")
}

func TestDesignWorkerSuccessMarksDesigned(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToDesigned(t)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseDesigned, session.Phase)
	require.NotNil(t, session.StrategyName)
	assert.Equal(t, "rsi_momentum_v1", *session.StrategyName)

	// The design run used the reduced tool catalog.
	require.Len(t, env.invoker.runs, 1)
	run := env.invoker.runs[0]
	require.Len(t, run.Tools, 2)
	assert.Equal(t, agent.ToolValidateStrategyConfig, run.Tools[0].Name)
	assert.Equal(t, agent.ToolSaveStrategyConfig, run.Tools[1].Name)

	// Registry op completed with token counts and the strategy name.
	snaps := env.registry.Snapshot()
	require.Len(t, snaps, 1)
	assert.Equal(t, ops.TypeAgentDesign, snaps[0].Type)
	assert.Equal(t, ops.StatusCompleted, snaps[0].Status)
	assert.Equal(t, "rsi_momentum_v1", snaps[0].Result["strategy_name"])
	assert.Equal(t, 100, snaps[0].Result["input_tokens"])
}

func TestDesignWorkerLLMFailure(t *testing.T) {
	env := newTestEnv(t)
	env.invoker.handler = func(agent.RunInput) *agent.Result {
		return &agent.Result{Err: fmt.Errorf("llm request failed: boom"), InputTokens: 30}
	}

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	env.waitWorkers()

	session, err := env.store.GetSession(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedDesign, *session.Outcome)

	snaps := env.registry.Snapshot()
	require.Len(t, snaps, 1)
	assert.Equal(t, ops.StatusFailed, snaps[0].Status)
	assert.Equal(t, 30, snaps[0].Result["input_tokens"])
}

func TestDesignWorkerTimeout(t *testing.T) {
	env := newTestEnv(t)
	env.invoker.handler = func(agent.RunInput) *agent.Result {
		return &agent.Result{Err: fmt.Errorf("%w after 300s", agent.ErrRequestTimeout), InputTokens: 10}
	}

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	env.waitWorkers()

	session, err := env.store.GetSession(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedTimeout, *session.Outcome)
}

func TestTickDesignInProgress(t *testing.T) {
	env := newTestEnv(t)
	block := make(chan struct{})
	env.invoker.handler = func(agent.RunInput) *agent.Result {
		<-block
		return &agent.Result{Success: true}
	}

	first, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)

	second, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.False(t, second.Triggered)
	assert.Equal(t, ReasonDesignInProgress, second.Reason)
	assert.Equal(t, first.SessionID, second.SessionID)

	close(block)
	env.waitWorkers()
}

func TestTickStartsTrainingFromDesigned(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseTraining, session.Phase)
	require.NotNil(t, session.OperationID)
	assert.Equal(t, "ext_train_1", *session.OperationID)

	require.Len(t, env.jobs.trainingReqs, 1)
	assert.Equal(t, "rsi_momentum_v1", env.jobs.trainingReqs[0].StrategyName)
}

func TestTickTrainingStartFailure(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.trainingErr = fmt.Errorf("no workers available")
	id := env.advanceToDesigned(t)

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonTrainingStartFailed, result.Reason)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedTraining, *session.Outcome)
	assert.Nil(t, session.OperationID)
}

func TestTickTrainingInProgress(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusRunning, nil, "")

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Triggered)
	assert.Equal(t, ReasonOperationInProgress, result.Reason)
	assert.Equal(t, id, result.SessionID)
}

func TestTickTrainingJobFailure(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusFailed, nil, "loss diverged")

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonTrainingFailed, result.Reason)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedTraining, *session.Outcome)
	require.NotNil(t, session.ErrorMessage)
	assert.Equal(t, "loss diverged", *session.ErrorMessage)
}

func TestTickTrainingGateFailure(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusCompleted, map[string]interface{}{
		"accuracy":     0.2,
		"final_loss":   0.4,
		"initial_loss": 1.0,
	}, "")

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonTrainingGateFailed, result.Reason)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedTrainingGate, *session.Outcome)
	require.NotNil(t, session.ErrorMessage)
	assert.Contains(t, *session.ErrorMessage, "accuracy")
	assert.Empty(t, env.jobs.backtestReqs)
}

func TestTickTrainingGatePassStartsBacktest(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusCompleted, passingTrainingSummary(), "")

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonBacktestStarted, result.Reason)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseBacktesting, session.Phase)
	require.NotNil(t, session.OperationID)
	assert.Equal(t, "ext_backtest_1", *session.OperationID)

	require.Len(t, env.jobs.backtestReqs, 1)
	assert.Equal(t, "rsi_momentum_v1", env.jobs.backtestReqs[0].StrategyName)
	assert.Equal(t, "/models/rsi_momentum_v1.pt", env.jobs.backtestReqs[0].ModelPath)
}

func TestTickBacktestGateFailure(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusCompleted, passingTrainingSummary(), "")
	_, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)

	env.jobs.setOperation("ext_backtest_1", external.JobStatusCompleted, map[string]interface{}{
		"win_rate":     0.1,
		"max_drawdown": 0.2,
		"sharpe_ratio": 1.0,
	}, "")

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonBacktestGateFailed, result.Reason)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedBacktestGate, *session.Outcome)
}

func TestFullCycleEndsInSuccess(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusCompleted, passingTrainingSummary(), "")
	_, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)

	env.jobs.setOperation("ext_backtest_1", external.JobStatusCompleted, passingBacktestSummary(), "")
	env.invoker.handler = func(in agent.RunInput) *agent.Result {
		in.Executor.LastAssessment = &agent.Assessment{
			Verdict:     agent.VerdictPromising,
			Strengths:   []string{"strong accuracy"},
			Weaknesses:  []string{"short test window"},
			Suggestions: []string{"try 4h timeframe"},
			AssessedAt:  time.Now(),
		}
		return &agent.Result{Success: true, OutputText: "promising strategy overall", InputTokens: 200, OutputTokens: 80}
	}

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonAssessmentStarted, result.Reason)
	env.waitWorkers()

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseComplete, session.Phase)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeSuccess, *session.Outcome)
	require.NotNil(t, session.AssessmentText)
	assert.Equal(t, "promising strategy overall", *session.AssessmentText)
	assert.Equal(t, agent.VerdictPromising, session.AssessmentMetrics["verdict"])

	// The assessment prompt carried the training metrics preserved in the
	// registry and the backtest metrics from the final poll.
	assessmentRun := env.invoker.runs[len(env.invoker.runs)-1]
	assert.Contains(t, assessmentRun.UserPrompt, "accuracy: 0.62")
	assert.Contains(t, assessmentRun.UserPrompt, "win_rate: 0.55")
	assert.Contains(t, assessmentRun.UserPrompt, "loss_improvement_ratio: 0.6000")
	require.Len(t, assessmentRun.Tools, 1)
	assert.Equal(t, agent.ToolSaveAssessment, assessmentRun.Tools[0].Name)

	// Next tick starts a brand new cycle.
	next, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonCycleStarted, next.Reason)
	assert.NotEqual(t, id, next.SessionID)
	env.waitWorkers()
}

func TestBacktestGatePassClearsOperationID(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusCompleted, passingTrainingSummary(), "")
	_, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)

	env.jobs.setOperation("ext_backtest_1", external.JobStatusCompleted, passingBacktestSummary(), "")
	block := make(chan struct{})
	env.invoker.handler = func(agent.RunInput) *agent.Result {
		<-block
		return &agent.Result{Success: true}
	}

	result, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReasonAssessmentStarted, result.Reason)

	// The backtest job is finished; while the assessment runs the session
	// must no longer reference it.
	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseAssessing, session.Phase)
	assert.Nil(t, session.OperationID)

	close(block)
	env.waitWorkers()
}

func TestOperationsShareCycleAncestry(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)

	var designOp, trainingOp *ops.Operation
	for _, op := range env.registry.Snapshot() {
		op := op
		switch op.Type {
		case ops.TypeAgentDesign:
			designOp = &op
		case ops.TypeTraining:
			trainingOp = &op
		}
	}
	require.NotNil(t, designOp)
	require.NotNil(t, trainingOp)
	assert.Equal(t, designOp.ID, trainingOp.ParentID)
	assert.Equal(t, fmt.Sprint(id), trainingOp.Metadata["session_id"])
}

func TestAssessmentWorkerMissingAssessment(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.setOperation("ext_train_1", external.JobStatusCompleted, passingTrainingSummary(), "")
	_, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)

	env.jobs.setOperation("ext_backtest_1", external.JobStatusCompleted, passingBacktestSummary(), "")
	env.invoker.handler = func(agent.RunInput) *agent.Result {
		return &agent.Result{Success: true, OutputText: "forgot to call the tool"}
	}

	_, err = env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	env.waitWorkers()

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedAssessment, *session.Outcome)
	require.NotNil(t, session.ErrorMessage)
	assert.Contains(t, *session.ErrorMessage, "did not save an assessment")
}

func TestPollFailureIsTransient(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)
	env.jobs.getErr = fmt.Errorf("connection refused")

	_, err := env.reconciler.CheckAndTrigger(context.Background())
	require.Error(t, err)

	// Session untouched; the next tick retries.
	session, getErr := env.store.GetSession(context.Background(), id)
	require.NoError(t, getErr)
	assert.Equal(t, researchsession.PhaseTraining, session.Phase)
}

func TestCancelSessionDuringTraining(t *testing.T) {
	env := newTestEnv(t)
	id := env.advanceToTraining(t)

	result, err := env.reconciler.CancelSession(context.Background(), id, "operator requested cancel")
	require.NoError(t, err)
	assert.True(t, result.SessionCompleted)
	assert.Len(t, result.CancelledOperations, 1)

	session, err := env.store.GetSession(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeCancelled, *session.Outcome)
}

func TestCancelSessionDuringDesign(t *testing.T) {
	env := newTestEnv(t)
	started := make(chan struct{})
	env.invoker.handler = func(in agent.RunInput) *agent.Result {
		close(started)
		<-in.Token.Done()
		return &agent.Result{Err: agent.ErrCancelled, InputTokens: 25}
	}

	tick, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	<-started

	result, err := env.reconciler.CancelSession(context.Background(), tick.SessionID, "operator requested cancel")
	require.NoError(t, err)
	assert.False(t, result.SessionCompleted)
	assert.Len(t, result.CancelledOperations, 1)
	env.waitWorkers()

	session, err := env.store.GetSession(context.Background(), tick.SessionID)
	require.NoError(t, err)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeCancelled, *session.Outcome)

	// Partial token counts survive on the cancelled operation.
	snaps := env.registry.Snapshot()
	require.Len(t, snaps, 1)
	assert.Equal(t, ops.StatusCancelled, snaps[0].Status)
	assert.Equal(t, 25, snaps[0].Result["input_tokens"])
}

func TestStartRecoversOrphans(t *testing.T) {
	env := newTestEnv(t)
	orphan, err := env.store.CreateSession(context.Background())
	require.NoError(t, err)

	env.reconciler.deps.Config.Enabled = false
	require.NoError(t, env.reconciler.Start(context.Background()))
	env.reconciler.Stop()

	session, err := env.store.GetSession(context.Background(), orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseComplete, session.Phase)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedInterrupted, *session.Outcome)
}

func TestWorkersRecordActions(t *testing.T) {
	env := newTestEnv(t)
	env.invoker.handler = func(in agent.RunInput) *agent.Result {
		if in.Recorder != nil {
			in.Recorder.RecordAction(context.Background(), agent.ToolSaveStrategyConfig,
				map[string]interface{}{"name": "s_1"},
				map[string]interface{}{"success": true},
				llm.Usage{InputTokens: 75, OutputTokens: 12})
		}
		in.Executor.LastSavedStrategyName = "s_1"
		return &agent.Result{Success: true, InputTokens: 75, OutputTokens: 12}
	}

	tick, err := env.reconciler.CheckAndTrigger(context.Background())
	require.NoError(t, err)
	env.waitWorkers()

	require.Len(t, env.actions.records, 1)
	record := env.actions.records[0]
	assert.Equal(t, tick.SessionID, record.SessionID)
	assert.Equal(t, agent.ToolSaveStrategyConfig, record.ToolName)
	require.NotNil(t, record.InputTokens)
	assert.Equal(t, 75, *record.InputTokens)
}
