package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/strategist/pkg/config"
	"github.com/quantforge/strategist/pkg/llm"
	"github.com/quantforge/strategist/pkg/ops"
)

// scriptedClient returns canned responses in order and records requests.
type scriptedClient struct {
	responses []*llm.Response
	errs      []error
	requests  []*llm.Request
	onCall    func(call int)
}

func (c *scriptedClient) CreateMessage(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	call := len(c.requests)
	c.requests = append(c.requests, req)
	if c.onCall != nil {
		c.onCall(call)
	}
	if call < len(c.errs) && c.errs[call] != nil {
		return nil, c.errs[call]
	}
	if call >= len(c.responses) {
		return nil, context.DeadlineExceeded
	}
	return c.responses[call], nil
}

type recordedAction struct {
	toolName string
	args     map[string]interface{}
	result   map[string]interface{}
	usage    llm.Usage
}

type captureRecorder struct {
	actions []recordedAction
}

func (r *captureRecorder) RecordAction(_ context.Context, toolName string, args, result map[string]interface{}, usage llm.Usage) {
	r.actions = append(r.actions, recordedAction{toolName, args, result, usage})
}

func testAgentConfig() config.AgentConfig {
	cfg := *config.DefaultAgentConfig()
	cfg.RequestTimeout = 5 * time.Second
	return cfg
}

func textResponse(text string, usage llm.Usage) *llm.Response {
	return &llm.Response{
		Role:       llm.RoleAssistant,
		Content:    []llm.ContentBlock{llm.TextBlock(text)},
		StopReason: "end_turn",
		Usage:      usage,
	}
}

func toolUseResponse(id, name string, input map[string]interface{}, usage llm.Usage) *llm.Response {
	return &llm.Response{
		Role: llm.RoleAssistant,
		Content: []llm.ContentBlock{
			{Type: llm.BlockTypeToolUse, ID: id, Name: name, Input: input},
		},
		StopReason: "tool_use",
		Usage:      usage,
	}
}

func TestRunReturnsTextOnTerminalResponse(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{
		textResponse("all done", llm.Usage{InputTokens: 100, OutputTokens: 20}),
	}}
	inv := NewInvoker(client, testAgentConfig())

	result := inv.Run(context.Background(), RunInput{
		SystemPrompt: "system",
		UserPrompt:   "design something",
		Executor:     NewExecutor(),
	})

	assert.True(t, result.Success)
	assert.Equal(t, "all done", result.OutputText)
	assert.Equal(t, 100, result.InputTokens)
	assert.Equal(t, 20, result.OutputTokens)
	assert.NoError(t, result.Err)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, "system", req.System)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
}

func TestRunExecutesToolsAndFeedsResultsBack(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("toolu_1", "echo", map[string]interface{}{"x": "y"}, llm.Usage{InputTokens: 50, OutputTokens: 10}),
		textResponse("finished", llm.Usage{InputTokens: 80, OutputTokens: 15}),
	}}

	executor := NewExecutor()
	executor.Register("echo", func(_ context.Context, input map[string]interface{}) (map[string]interface{}, error) {
		return map[string]interface{}{"echoed": input["x"]}, nil
	})

	recorder := &captureRecorder{}
	inv := NewInvoker(client, testAgentConfig())
	result := inv.Run(context.Background(), RunInput{
		UserPrompt: "go",
		Executor:   executor,
		Recorder:   recorder,
	})

	assert.True(t, result.Success)
	assert.Equal(t, 130, result.InputTokens)
	assert.Equal(t, 25, result.OutputTokens)

	// Second request carries the assistant turn and the tool results.
	require.Len(t, client.requests, 2)
	msgs := client.requests[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	require.Len(t, msgs[2].Content, 1)
	block := msgs[2].Content[0]
	assert.Equal(t, llm.BlockTypeToolResult, block.Type)
	assert.Equal(t, "toolu_1", block.ToolUseID)
	assert.False(t, block.IsError)

	require.Len(t, recorder.actions, 1)
	assert.Equal(t, "echo", recorder.actions[0].toolName)
	assert.Equal(t, 50, recorder.actions[0].usage.InputTokens)
}

func TestRunTurnsUnknownToolIntoErrorResult(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("toolu_1", "no_such_tool", nil, llm.Usage{InputTokens: 10, OutputTokens: 5}),
		textResponse("recovered", llm.Usage{InputTokens: 10, OutputTokens: 5}),
	}}

	inv := NewInvoker(client, testAgentConfig())
	result := inv.Run(context.Background(), RunInput{UserPrompt: "go", Executor: NewExecutor()})

	assert.True(t, result.Success)
	block := client.requests[1].Messages[2].Content[0]
	assert.True(t, block.IsError)
	assert.Contains(t, block.Content.(string), "Unknown tool: no_such_tool")
}

func TestRunFailsAtIterationLimit(t *testing.T) {
	cfg := testAgentConfig()
	cfg.MaxIterations = 2

	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("toolu_1", "echo", nil, llm.Usage{InputTokens: 10, OutputTokens: 5}),
		toolUseResponse("toolu_2", "echo", nil, llm.Usage{InputTokens: 10, OutputTokens: 5}),
	}}
	executor := NewExecutor()
	executor.Register("echo", func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
		return map[string]interface{}{"ok": true}, nil
	})

	inv := NewInvoker(client, cfg)
	result := inv.Run(context.Background(), RunInput{UserPrompt: "go", Executor: executor})

	assert.False(t, result.Success)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "iteration limit")
	assert.Equal(t, 20, result.InputTokens)
	assert.Equal(t, 10, result.OutputTokens)
}

func TestRunFailsWhenInputTokenBudgetExceeded(t *testing.T) {
	cfg := testAgentConfig()
	cfg.MaxInputTokens = 100

	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("toolu_1", "echo", nil, llm.Usage{InputTokens: 150, OutputTokens: 5}),
	}}

	inv := NewInvoker(client, cfg)
	result := inv.Run(context.Background(), RunInput{UserPrompt: "go", Executor: NewExecutor()})

	assert.False(t, result.Success)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "input token budget")
	assert.Equal(t, 150, result.InputTokens)
}

func TestRunAbortsOnTokenCancellation(t *testing.T) {
	token := ops.NewCancellationToken()

	client := &scriptedClient{responses: []*llm.Response{
		toolUseResponse("toolu_1", "cancel_me", nil, llm.Usage{InputTokens: 40, OutputTokens: 8}),
		textResponse("never reached", llm.Usage{}),
	}}
	executor := NewExecutor()
	executor.Register("cancel_me", func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
		token.Cancel()
		return map[string]interface{}{"ok": true}, nil
	})

	inv := NewInvoker(client, testAgentConfig())
	result := inv.Run(context.Background(), RunInput{UserPrompt: "go", Executor: executor, Token: token})

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrCancelled)
	// Tokens accumulated before cancellation survive.
	assert.Equal(t, 40, result.InputTokens)
	assert.Equal(t, 8, result.OutputTokens)
	// The second LLM call never happened.
	assert.Len(t, client.requests, 1)
}

func TestRunMapsDeadlineToTimeoutError(t *testing.T) {
	client := &scriptedClient{errs: []error{context.DeadlineExceeded}}

	inv := NewInvoker(client, testAgentConfig())
	result := inv.Run(context.Background(), RunInput{UserPrompt: "go", Executor: NewExecutor()})

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrRequestTimeout)
}

func TestRunCancelledBeforeFirstCall(t *testing.T) {
	token := ops.NewCancellationToken()
	token.Cancel()

	client := &scriptedClient{}
	inv := NewInvoker(client, testAgentConfig())
	result := inv.Run(context.Background(), RunInput{UserPrompt: "go", Executor: NewExecutor(), Token: token})

	assert.ErrorIs(t, result.Err, ErrCancelled)
	assert.Empty(t, client.requests)
	assert.Zero(t, result.InputTokens)
}
