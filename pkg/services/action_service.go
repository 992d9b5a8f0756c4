package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quantforge/strategist/ent"
	"github.com/quantforge/strategist/ent/agentaction"
)

// ActionService writes and reads the append-only tool-call audit log.
type ActionService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewActionService creates a new ActionService.
func NewActionService(client *ent.Client) *ActionService {
	return &ActionService{
		client: client,
		logger: slog.Default().With("component", "services.action"),
	}
}

// RecordActionInput is one audit log entry. Token counts are optional; they
// carry the usage of the LLM response that requested the call.
type RecordActionInput struct {
	SessionID    int
	ToolName     string
	ToolArgs     map[string]interface{}
	Result       map[string]interface{}
	InputTokens  *int
	OutputTokens *int
}

// Record appends one entry to the audit log.
func (s *ActionService) Record(ctx context.Context, in RecordActionInput) (*ent.AgentAction, error) {
	if in.ToolName == "" {
		return nil, fmt.Errorf("tool name is required")
	}

	builder := s.client.AgentAction.Create().
		SetSessionID(in.SessionID).
		SetToolName(in.ToolName)

	if in.ToolArgs != nil {
		builder.SetToolArgs(in.ToolArgs)
	}
	if in.Result != nil {
		builder.SetResult(in.Result)
	}
	if in.InputTokens != nil {
		builder.SetInputTokens(*in.InputTokens)
	}
	if in.OutputTokens != nil {
		builder.SetOutputTokens(*in.OutputTokens)
	}

	action, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record action: %w", err)
	}
	return action, nil
}

// ListActions returns a session's audit log in write order.
func (s *ActionService) ListActions(ctx context.Context, sessionID int) ([]*ent.AgentAction, error) {
	actions, err := s.client.AgentAction.Query().
		Where(agentaction.SessionID(sessionID)).
		Order(ent.Asc(agentaction.FieldCreatedAt), ent.Asc(agentaction.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions for session %d: %w", sessionID, err)
	}
	return actions, nil
}
