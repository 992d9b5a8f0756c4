package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/strategist/ent"
	"github.com/quantforge/strategist/ent/researchsession"
	"github.com/quantforge/strategist/pkg/ops"
	"github.com/quantforge/strategist/pkg/services"
	"github.com/quantforge/strategist/pkg/trigger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessionReader struct {
	sessions map[int]*ent.ResearchSession
	active   *ent.ResearchSession
}

func (f *fakeSessionReader) GetSession(_ context.Context, id int) (*ent.ResearchSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionReader) GetActiveSession(context.Context) (*ent.ResearchSession, error) {
	return f.active, nil
}

func (f *fakeSessionReader) ListSessions(context.Context, int, int) ([]*ent.ResearchSession, error) {
	out := make([]*ent.ResearchSession, 0, len(f.sessions))
	for _, s := range f.sessions {
		out = append(out, s)
	}
	return out, nil
}

type fakeActionReader struct {
	actions map[int][]*ent.AgentAction
}

func (f *fakeActionReader) ListActions(_ context.Context, sessionID int) ([]*ent.AgentAction, error) {
	return f.actions[sessionID], nil
}

type fakeCoordinator struct {
	tick       trigger.TickResult
	tickErr    error
	cancel     trigger.CancelSessionResult
	cancelErr  error
	lastReason string
}

func (f *fakeCoordinator) CheckAndTrigger(context.Context) (trigger.TickResult, error) {
	return f.tick, f.tickErr
}

func (f *fakeCoordinator) CancelSession(_ context.Context, _ int, reason string) (trigger.CancelSessionResult, error) {
	f.lastReason = reason
	return f.cancel, f.cancelErr
}

func testSession(id int, phase researchsession.Phase) *ent.ResearchSession {
	return &ent.ResearchSession{
		ID:        id,
		Phase:     phase,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newTestServer() (*Server, *fakeSessionReader, *fakeActionReader, *fakeCoordinator, *ops.Registry) {
	sessions := &fakeSessionReader{sessions: map[int]*ent.ResearchSession{}}
	actions := &fakeActionReader{actions: map[int][]*ent.AgentAction{}}
	coordinator := &fakeCoordinator{}
	registry := ops.NewRegistry()
	server := NewServer(nil, sessions, actions, registry, coordinator)
	return server, sessions, actions, coordinator, registry
}

func doRequest(server *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHealthWithoutDatabase(t *testing.T) {
	server, _, _, _, _ := newTestServer()
	w := doRequest(server, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestGetSession(t *testing.T) {
	server, sessions, _, _, _ := newTestServer()
	sessions.sessions[7] = testSession(7, researchsession.PhaseTraining)

	w := doRequest(server, http.MethodGet, "/api/v1/sessions/7", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got ent.ResearchSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, researchsession.PhaseTraining, got.Phase)
}

func TestGetSessionNotFound(t *testing.T) {
	server, _, _, _, _ := newTestServer()
	w := doRequest(server, http.MethodGet, "/api/v1/sessions/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSessionBadID(t *testing.T) {
	server, _, _, _, _ := newTestServer()
	w := doRequest(server, http.MethodGet, "/api/v1/sessions/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetActiveSession(t *testing.T) {
	server, sessions, _, _, _ := newTestServer()

	w := doRequest(server, http.MethodGet, "/api/v1/sessions/active", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":false`)

	sessions.active = testSession(3, researchsession.PhaseDesigning)
	w = doRequest(server, http.MethodGet, "/api/v1/sessions/active", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)
}

func TestListSessionActions(t *testing.T) {
	server, sessions, actions, _, _ := newTestServer()
	sessions.sessions[4] = testSession(4, researchsession.PhaseComplete)
	actions.actions[4] = []*ent.AgentAction{
		{ID: 1, SessionID: 4, ToolName: "save_strategy_config"},
	}

	w := doRequest(server, http.MethodGet, "/api/v1/sessions/4/actions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "save_strategy_config")
}

func TestListSessionActionsUnknownSession(t *testing.T) {
	server, _, _, _, _ := newTestServer()
	w := doRequest(server, http.MethodGet, "/api/v1/sessions/4/actions", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelSession(t *testing.T) {
	server, sessions, _, coordinator, _ := newTestServer()
	sessions.sessions[5] = testSession(5, researchsession.PhaseTraining)
	coordinator.cancel = trigger.CancelSessionResult{
		CancelledOperations: []string{"op_training_1"},
		SessionCompleted:    true,
	}

	w := doRequest(server, http.MethodPost, "/api/v1/sessions/5/cancel", `{"reason":"operator stop"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "operator stop", coordinator.lastReason)
	assert.Contains(t, w.Body.String(), "op_training_1")
}

func TestCancelSessionDefaultsReason(t *testing.T) {
	server, _, _, coordinator, _ := newTestServer()

	w := doRequest(server, http.MethodPost, "/api/v1/sessions/5/cancel", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled via API", coordinator.lastReason)
}

func TestCancelSessionConflict(t *testing.T) {
	server, _, _, coordinator, _ := newTestServer()
	coordinator.cancelErr = fmt.Errorf("%w: session 5 is complete", services.ErrIllegalTransition)

	w := doRequest(server, http.MethodPost, "/api/v1/sessions/5/cancel", `{"reason":"x"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestManualTrigger(t *testing.T) {
	server, _, _, coordinator, _ := newTestServer()
	coordinator.tick = trigger.TickResult{Triggered: true, Reason: trigger.ReasonCycleStarted, SessionID: 11}

	w := doRequest(server, http.MethodPost, "/api/v1/trigger", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), trigger.ReasonCycleStarted)
}

func TestOperationsEndpoints(t *testing.T) {
	server, _, _, _, registry := newTestServer()
	op := registry.Create(ops.TypeAgentDesign, "", map[string]string{"session_id": "1"})

	w := doRequest(server, http.MethodGet, "/api/v1/operations", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), op.ID)

	w = doRequest(server, http.MethodGet, "/api/v1/operations/"+op.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(ops.TypeAgentDesign))

	w = doRequest(server, http.MethodGet, "/api/v1/operations/op_missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
