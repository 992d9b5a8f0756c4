package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/strategist/ent/researchsession"
	"github.com/quantforge/strategist/test/util"
)

func TestCreateAndGetActiveSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	active, err := svc.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseDesigning, created.Phase)
	assert.Nil(t, created.Outcome)

	active, err = svc.GetActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, created.ID, active.ID)
}

func TestTransitionPhaseHappyPath(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	designed, err := svc.MarkDesigned(ctx, session.ID, "rsi_momentum_v1")
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseDesigned, designed.Phase)
	require.NotNil(t, designed.StrategyName)
	assert.Equal(t, "rsi_momentum_v1", *designed.StrategyName)

	training, err := svc.StartExternalJob(ctx, session.ID,
		researchsession.PhaseDesigned, researchsession.PhaseTraining, "op_train_1")
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseTraining, training.Phase)
	require.NotNil(t, training.OperationID)
	assert.Equal(t, "op_train_1", *training.OperationID)

	backtesting, err := svc.StartExternalJob(ctx, session.ID,
		researchsession.PhaseTraining, researchsession.PhaseBacktesting, "op_backtest_1")
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseBacktesting, backtesting.Phase)

	assessing, err := svc.TransitionPhase(ctx, session.ID,
		researchsession.PhaseBacktesting, researchsession.PhaseAssessing)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseAssessing, assessing.Phase)
	// Leaving backtesting ends the last external job, so the reference goes
	// with it.
	assert.Nil(t, assessing.OperationID)
	assert.True(t, assessing.UpdatedAt.After(session.UpdatedAt) || assessing.UpdatedAt.Equal(session.UpdatedAt))
}

func TestTransitionPhaseRejectsSkips(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	// designing -> training skips designed.
	_, err = svc.TransitionPhase(ctx, session.ID,
		researchsession.PhaseDesigning, researchsession.PhaseTraining)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransitionPhaseRejectsStalePhase(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.MarkDesigned(ctx, session.ID, "s_1")
	require.NoError(t, err)

	// Session is designed now; a second designing->designed write must fail.
	_, err = svc.MarkDesigned(ctx, session.ID, "s_2")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCompleteClearsOperationID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.MarkDesigned(ctx, session.ID, "s_1")
	require.NoError(t, err)
	_, err = svc.StartExternalJob(ctx, session.ID,
		researchsession.PhaseDesigned, researchsession.PhaseTraining, "op_train_1")
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, session.ID, CompletionInput{
		Outcome:      researchsession.OutcomeFailedTraining,
		ErrorMessage: "training job failed",
	})
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseComplete, completed.Phase)
	require.NotNil(t, completed.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedTraining, *completed.Outcome)
	assert.Nil(t, completed.OperationID)
	require.NotNil(t, completed.ErrorMessage)
	assert.Equal(t, "training job failed", *completed.ErrorMessage)

	// Terminal sessions are no longer active.
	active, err := svc.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestCompleteWithAssessment(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, session.ID, CompletionInput{
		Outcome:        researchsession.OutcomeSuccess,
		AssessmentText: "promising: strong accuracy, acceptable drawdown",
		AssessmentMetrics: map[string]interface{}{
			"verdict":  "promising",
			"accuracy": 0.65,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, completed.AssessmentText)
	assert.Contains(t, *completed.AssessmentText, "promising")
	assert.Equal(t, "promising", completed.AssessmentMetrics["verdict"])
}

func TestCompleteTwiceFails(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, session.ID, CompletionInput{Outcome: researchsession.OutcomeCancelled})
	require.NoError(t, err)

	_, err = svc.Complete(ctx, session.ID, CompletionInput{Outcome: researchsession.OutcomeSuccess})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCompleteMissingSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)

	_, err := svc.Complete(context.Background(), 99999, CompletionInput{
		Outcome: researchsession.OutcomeCancelled,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecoverOrphanedSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	orphan, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.MarkDesigned(ctx, orphan.ID, "s_1")
	require.NoError(t, err)
	_, err = svc.StartExternalJob(ctx, orphan.ID,
		researchsession.PhaseDesigned, researchsession.PhaseTraining, "op_train_1")
	require.NoError(t, err)

	finished, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, finished.ID, CompletionInput{Outcome: researchsession.OutcomeCancelled})
	require.NoError(t, err)

	n, err := svc.RecoverOrphanedSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	recovered, err := svc.GetSession(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.PhaseComplete, recovered.Phase)
	require.NotNil(t, recovered.Outcome)
	assert.Equal(t, researchsession.OutcomeFailedInterrupted, *recovered.Outcome)
	assert.Nil(t, recovered.OperationID)

	// Already-terminal sessions are untouched.
	untouched, err := svc.GetSession(ctx, finished.ID)
	require.NoError(t, err)
	require.NotNil(t, untouched.Outcome)
	assert.Equal(t, researchsession.OutcomeCancelled, *untouched.Outcome)
}

func TestListSessionsNewestFirst(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	first, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, first.ID, CompletionInput{Outcome: researchsession.OutcomeCancelled})
	require.NoError(t, err)

	second, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}
