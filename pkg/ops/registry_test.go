package ops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAllocatesUniqueIDs(t *testing.T) {
	r := NewRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		op := r.Create(TypeTraining, "", nil)
		require.False(t, seen[op.ID], "duplicate id %s", op.ID)
		seen[op.ID] = true

		assert.True(t, strings.HasPrefix(op.ID, "op_training_"), "id %s", op.ID)
		assert.Equal(t, StatusPending, op.Status)
	}
}

func TestLifecycleHappyPath(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeAgentDesign, "", map[string]string{"session_id": "7"})

	require.NoError(t, r.Start(op.ID))
	got, ok := r.Get(op.ID)
	require.True(t, ok)
	assert.Equal(t, StatusRunning, got.Status)

	require.NoError(t, r.UpdateProgress(op.ID, 50, "halfway"))
	got, _ = r.Get(op.ID)
	assert.Equal(t, 50.0, got.ProgressPercent)
	assert.Equal(t, "halfway", got.ProgressMessage)

	require.NoError(t, r.Complete(op.ID, map[string]interface{}{"input_tokens": 120}))
	got, _ = r.Get(op.ID)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, 120, got.Result["input_tokens"])
}

func TestStartRequiresPending(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeBacktest, "", nil)

	require.NoError(t, r.Start(op.ID))
	err := r.Start(op.ID)
	require.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCompleteIsIdempotent(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeTraining, "", nil)
	require.NoError(t, r.Start(op.ID))

	require.NoError(t, r.Complete(op.ID, map[string]interface{}{"accuracy": 0.6}))
	// Second call is silently ignored and must not overwrite the result.
	require.NoError(t, r.Complete(op.ID, map[string]interface{}{"accuracy": 0.1}))

	got, _ := r.Get(op.ID)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, 0.6, got.Result["accuracy"])
}

func TestFailIsIdempotentAndKeepsPartialResult(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeAgentDesign, "", nil)
	require.NoError(t, r.Start(op.ID))

	require.NoError(t, r.Fail(op.ID, "llm transport error", map[string]interface{}{"input_tokens": 900}))
	require.NoError(t, r.Fail(op.ID, "second failure", nil))

	got, _ := r.Get(op.ID)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "llm transport error", got.Error)
	assert.Equal(t, 900, got.Result["input_tokens"])
}

func TestCompleteFromPendingIsIllegal(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeTraining, "", nil)

	err := r.Complete(op.ID, nil)
	require.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCancelSignalsToken(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeAgentDesign, "", nil)
	require.NoError(t, r.Start(op.ID))

	token, err := r.Token(op.ID)
	require.NoError(t, err)
	assert.False(t, token.IsCancelled())

	res, err := r.Cancel(op.ID, "user requested")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, StatusCancelled, res.Status)
	assert.True(t, token.IsCancelled())

	select {
	case <-token.Done():
	default:
		t.Fatal("token Done channel should be closed after cancel")
	}

	got, _ := r.Get(op.ID)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Equal(t, "user requested", got.Error)
}

func TestCancelOnTerminalOperationReportsStatus(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeTraining, "", nil)
	require.NoError(t, r.Start(op.ID))
	require.NoError(t, r.Complete(op.ID, nil))

	res, err := r.Cancel(op.ID, "too late")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, StatusCompleted, res.Status)

	// A cancelled token never reverts; a completed op was never cancelled.
	token, err := r.Token(op.ID)
	require.NoError(t, err)
	assert.False(t, token.IsCancelled())
}

func TestCancelFromPendingIsIllegal(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeBacktest, "", nil)

	_, err := r.Cancel(op.ID, "not started")
	require.ErrorIs(t, err, ErrIllegalTransition)
}

func TestMissingIDReturnsStructuredError(t *testing.T) {
	r := NewRegistry()

	require.ErrorIs(t, r.Start("op_missing"), ErrNotFound)
	require.ErrorIs(t, r.Complete("op_missing", nil), ErrNotFound)
	require.ErrorIs(t, r.Fail("op_missing", "x", nil), ErrNotFound)
	require.ErrorIs(t, r.UpdateProgress("op_missing", 1, ""), ErrNotFound)
	_, err := r.Cancel("op_missing", "x")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.Token("op_missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, ok := r.Get("op_missing")
	assert.False(t, ok)
}

func TestUpdateProgressIgnoredUnlessRunning(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeTraining, "", nil)

	require.NoError(t, r.UpdateProgress(op.ID, 10, "early"))
	got, _ := r.Get(op.ID)
	assert.Zero(t, got.ProgressPercent)
	assert.Empty(t, got.ProgressMessage)
}

func TestCancelChildren(t *testing.T) {
	r := NewRegistry()
	parent := r.Create(TypeTraining, "", nil)
	child1 := r.Create(TypeAgentDesign, parent.ID, nil)
	child2 := r.Create(TypeAgentAssessment, parent.ID, nil)
	unrelated := r.Create(TypeAgentDesign, "", nil)

	require.NoError(t, r.Start(child1.ID))
	require.NoError(t, r.Start(child2.ID))
	require.NoError(t, r.Start(unrelated.ID))

	cancelled := r.CancelChildren(parent.ID, "parent cancelled")
	assert.ElementsMatch(t, []string{child1.ID, child2.ID}, cancelled)

	got, _ := r.Get(unrelated.ID)
	assert.Equal(t, StatusRunning, got.Status)
}

func TestActiveForSession(t *testing.T) {
	r := NewRegistry()
	active := r.Create(TypeAgentDesign, "", map[string]string{"session_id": "42"})
	done := r.Create(TypeAgentDesign, "", map[string]string{"session_id": "42"})
	other := r.Create(TypeAgentDesign, "", map[string]string{"session_id": "7"})

	require.NoError(t, r.Start(active.ID))
	require.NoError(t, r.Start(done.ID))
	require.NoError(t, r.Complete(done.ID, nil))
	require.NoError(t, r.Start(other.ID))

	got := r.ActiveForSession("42")
	require.Len(t, got, 1)
	assert.Equal(t, active.ID, got[0].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	op := r.Create(TypeTraining, "", map[string]string{"session_id": "1"})
	require.NoError(t, r.Start(op.ID))
	require.NoError(t, r.Complete(op.ID, map[string]interface{}{"accuracy": 0.5}))

	snap, _ := r.Get(op.ID)
	snap.Metadata["session_id"] = "tampered"
	snap.Result["accuracy"] = 0.0

	got, _ := r.Get(op.ID)
	assert.Equal(t, "1", got.Metadata["session_id"])
	assert.Equal(t, 0.5, got.Result["accuracy"])
}
