// Package ops provides the in-memory registry of long-running child
// operations: agent design runs, training jobs, backtests, and assessments.
// The registry is process-local; operations from a previous run are not
// re-hydrated (startup recovery finalizes the sessions that referenced them).
package ops

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of operation.
type Type string

// Operation types.
const (
	TypeAgentDesign     Type = "agent_design"
	TypeTraining        Type = "training"
	TypeBacktest        Type = "backtest"
	TypeAgentAssessment Type = "agent_assessment"
)

// Status is the lifecycle state of an operation.
type Status string

// Operation statuses.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Sentinel errors for registry operations.
var (
	// ErrNotFound indicates the operation id is unknown to the registry.
	ErrNotFound = errors.New("operation not found")

	// ErrIllegalTransition indicates a lifecycle call that is not legal
	// from the operation's current status.
	ErrIllegalTransition = errors.New("illegal operation transition")
)

// Operation is a snapshot of a registered operation. Mutations go through
// the registry; callers never share the internal record.
type Operation struct {
	ID       string            `json:"id"`
	Type     Type              `json:"type"`
	Status   Status            `json:"status"`
	ParentID string            `json:"parent_id,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`

	ProgressPercent float64 `json:"progress_percent"`
	ProgressMessage string  `json:"progress_message,omitempty"`

	// Result is set on completion; it may also be stored on failure or
	// cancellation so observers can attribute partial work (token counts).
	Result map[string]interface{} `json:"result,omitempty"`
	Error  string                 `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// record is the internal mutable state behind an Operation snapshot.
type record struct {
	op    Operation
	token *CancellationToken
}

// Registry is a thread-safe map of operation id to operation state.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*record)}
}

// Create registers a fresh pending operation and its cancellation token.
// parentID may be empty. Metadata is copied.
func (r *Registry) Create(typ Type, parentID string, metadata map[string]string) Operation {
	now := time.Now()
	op := Operation{
		ID:        newOperationID(typ, now),
		Type:      typ,
		Status:    StatusPending,
		ParentID:  parentID,
		Metadata:  copyMetadata(metadata),
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[op.ID] = &record{op: op, token: NewCancellationToken()}

	slog.Debug("Operation created", "operation_id", op.ID, "type", typ, "parent_id", parentID)
	return op
}

// newOperationID allocates a unique human-debuggable id.
// Scheme: op_<type>_<unix-timestamp>_<random>.
func newOperationID(typ Type, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("op_%s_%d_%s", typ, now.Unix(), random)
}

// Start transitions a pending operation to running. The caller owns the
// goroutine implementing the operation; the registry only tracks state.
func (r *Registry) Start(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.op.Status != StatusPending {
		return fmt.Errorf("%w: start from %s", ErrIllegalTransition, rec.op.Status)
	}

	rec.op.Status = StatusRunning
	rec.op.UpdatedAt = time.Now()
	return nil
}

// UpdateProgress records progress for a running operation. Calls on
// non-running operations are ignored.
func (r *Registry) UpdateProgress(id string, percent float64, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.op.Status != StatusRunning {
		return nil
	}

	rec.op.ProgressPercent = percent
	rec.op.ProgressMessage = message
	rec.op.UpdatedAt = time.Now()
	return nil
}

// Complete transitions a running operation to completed and stores the
// result summary. Idempotent: a repeated call warns and leaves the stored
// result unchanged.
func (r *Registry) Complete(id string, result map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.op.Status.Terminal() {
		slog.Warn("Complete called on terminal operation, ignoring",
			"operation_id", id, "status", rec.op.Status)
		return nil
	}
	if rec.op.Status != StatusRunning {
		return fmt.Errorf("%w: complete from %s", ErrIllegalTransition, rec.op.Status)
	}

	rec.op.Status = StatusCompleted
	rec.op.Result = result
	rec.op.UpdatedAt = time.Now()
	return nil
}

// Fail transitions a running operation to failed. A partial result summary
// (accumulated token counts and the like) may be stored alongside the
// error. Idempotent like Complete.
func (r *Registry) Fail(id string, errMsg string, partialResult map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.op.Status.Terminal() {
		slog.Warn("Fail called on terminal operation, ignoring",
			"operation_id", id, "status", rec.op.Status)
		return nil
	}
	if rec.op.Status != StatusRunning {
		return fmt.Errorf("%w: fail from %s", ErrIllegalTransition, rec.op.Status)
	}

	rec.op.Status = StatusFailed
	rec.op.Error = errMsg
	if partialResult != nil {
		rec.op.Result = partialResult
	}
	rec.op.UpdatedAt = time.Now()
	return nil
}

// CancelResult reports the outcome of a cancellation request.
type CancelResult struct {
	Success bool   `json:"success"`
	Status  Status `json:"status"`
}

// Cancel signals the operation's cancellation token and transitions it to
// cancelled. Only legal from running; on a terminal operation it reports
// the current status without error. The task implementing the operation is
// responsible for observing the token.
func (r *Registry) Cancel(id, reason string) (CancelResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return CancelResult{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.op.Status.Terminal() {
		return CancelResult{Success: false, Status: rec.op.Status}, nil
	}
	if rec.op.Status != StatusRunning {
		return CancelResult{Success: false, Status: rec.op.Status},
			fmt.Errorf("%w: cancel from %s", ErrIllegalTransition, rec.op.Status)
	}

	rec.token.Cancel()
	rec.op.Status = StatusCancelled
	if reason != "" {
		rec.op.Error = reason
	}
	rec.op.UpdatedAt = time.Now()

	slog.Info("Operation cancelled", "operation_id", id, "reason", reason)
	return CancelResult{Success: true, Status: StatusCancelled}, nil
}

// CancelChildren cancels every running child of the given parent operation.
// Returns the ids that were cancelled.
func (r *Registry) CancelChildren(parentID, reason string) []string {
	var cancelled []string
	for _, op := range r.Snapshot() {
		if op.ParentID != parentID || op.Status != StatusRunning {
			continue
		}
		if res, err := r.Cancel(op.ID, reason); err == nil && res.Success {
			cancelled = append(cancelled, op.ID)
		}
	}
	return cancelled
}

// SetResult stores a result summary on a terminal operation without
// changing its status. Used to attach partial token counts after a cancel.
func (r *Registry) SetResult(id string, result map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	rec.op.Result = result
	rec.op.UpdatedAt = time.Now()
	return nil
}

// Get returns a snapshot of the operation.
func (r *Registry) Get(id string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return Operation{}, false
	}
	return snapshot(rec), true
}

// Token returns the operation's cancellation token. One token per
// operation, created at Create and never replaced.
func (r *Registry) Token(id string) (*CancellationToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec.token, nil
}

// Snapshot returns a copy of every registered operation.
func (r *Registry) Snapshot() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Operation, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, snapshot(rec))
	}
	return out
}

// ActiveForSession returns non-terminal operations whose metadata carries
// the given session id.
func (r *Registry) ActiveForSession(sessionID string) []Operation {
	var out []Operation
	for _, op := range r.Snapshot() {
		if op.Status.Terminal() {
			continue
		}
		if op.Metadata["session_id"] == sessionID {
			out = append(out, op)
		}
	}
	return out
}

func snapshot(rec *record) Operation {
	op := rec.op
	op.Metadata = copyMetadata(rec.op.Metadata)
	if rec.op.Result != nil {
		result := make(map[string]interface{}, len(rec.op.Result))
		for k, v := range rec.op.Result {
			result[k] = v
		}
		op.Result = result
	}
	return op
}

func copyMetadata(metadata map[string]string) map[string]string {
	if metadata == nil {
		return nil
	}
	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	return out
}
