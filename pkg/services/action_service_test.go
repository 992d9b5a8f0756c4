package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/strategist/test/util"
)

func intPtr(n int) *int { return &n }

func TestRecordAndListActions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := NewSessionService(client)
	actions := NewActionService(client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx)
	require.NoError(t, err)

	first, err := actions.Record(ctx, RecordActionInput{
		SessionID: session.ID,
		ToolName:  "validate_strategy_config",
		ToolArgs:  map[string]interface{}{"config": map[string]interface{}{"symbols": []interface{}{"BTCUSDT"}}},
		Result:    map[string]interface{}{"valid": true},
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Nil(t, first.InputTokens)

	_, err = actions.Record(ctx, RecordActionInput{
		SessionID:    session.ID,
		ToolName:     "save_strategy_config",
		Result:       map[string]interface{}{"success": true, "path": "/strategies/s_1.yaml"},
		InputTokens:  intPtr(1200),
		OutputTokens: intPtr(340),
	})
	require.NoError(t, err)

	log, err := actions.ListActions(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "validate_strategy_config", log[0].ToolName)
	assert.Equal(t, "save_strategy_config", log[1].ToolName)
	require.NotNil(t, log[1].InputTokens)
	assert.Equal(t, 1200, *log[1].InputTokens)
	assert.Equal(t, true, log[1].Result["success"])
}

func TestRecordRequiresToolName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := NewSessionService(client)
	actions := NewActionService(client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx)
	require.NoError(t, err)

	_, err = actions.Record(ctx, RecordActionInput{SessionID: session.ID})
	assert.Error(t, err)
}

func TestRecordRejectsUnknownSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	actions := NewActionService(client)

	_, err := actions.Record(context.Background(), RecordActionInput{
		SessionID: 424242,
		ToolName:  "save_assessment",
	})
	assert.Error(t, err)
}

func TestListActionsEmptyForFreshSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := NewSessionService(client)
	actions := NewActionService(client)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx)
	require.NoError(t, err)

	log, err := actions.ListActions(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, log)
}
