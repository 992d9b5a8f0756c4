package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageSendsWellFormedRequest(t *testing.T) {
	var gotReq Request
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(Response{
			ID:   "msg_1",
			Role: RoleAssistant,
			Content: []ContentBlock{
				{Type: BlockTypeText, Text: "hello"},
			},
			StopReason: "end_turn",
			Usage:      Usage{InputTokens: 12, OutputTokens: 5},
		})
	}))
	defer server.Close()

	client, err := NewAnthropicClient("test-key", server.URL, 5*time.Second)
	require.NoError(t, err)

	resp, err := client.CreateMessage(context.Background(), &Request{
		Model:     "claude-opus-4-1",
		System:    "you design strategies",
		MaxTokens: 4096,
		Messages: []Message{
			UserMessage(TextBlock("design one")),
		},
		Tools: []Tool{{
			Name:        "save_strategy_config",
			Description: "Save a strategy",
			InputSchema: map[string]interface{}{"type": "object"},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", gotHeaders.Get("anthropic-version"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))

	assert.Equal(t, "claude-opus-4-1", gotReq.Model)
	assert.Equal(t, "you design strategies", gotReq.System)
	assert.Equal(t, 4096, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	require.Len(t, gotReq.Tools, 1)

	assert.Equal(t, "hello", resp.Text())
	assert.Equal(t, 12, resp.Usage.InputTokens)
	assert.Equal(t, 5, resp.Usage.OutputTokens)
}

func TestCreateMessageDecodesToolUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "msg_2",
			"role": "assistant",
			"content": [
				{"type": "text", "text": "saving now"},
				{"type": "tool_use", "id": "toolu_1", "name": "save_strategy_config",
				 "input": {"name": "s_1"}}
			],
			"stop_reason": "tool_use",
			"usage": {"input_tokens": 40, "output_tokens": 22}
		}`))
	}))
	defer server.Close()

	client, err := NewAnthropicClient("test-key", server.URL, 5*time.Second)
	require.NoError(t, err)

	resp, err := client.CreateMessage(context.Background(), &Request{Model: "claude-opus-4-1", MaxTokens: 100})
	require.NoError(t, err)

	uses := resp.ToolUses()
	require.Len(t, uses, 1)
	assert.Equal(t, "toolu_1", uses[0].ID)
	assert.Equal(t, "save_strategy_config", uses[0].Name)
	assert.Equal(t, "s_1", uses[0].Input["name"])
	assert.Equal(t, "tool_use", resp.StopReason)
	assert.Equal(t, "saving now", resp.Text())
}

func TestCreateMessageSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	client, err := NewAnthropicClient("test-key", server.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = client.CreateMessage(context.Background(), &Request{Model: "claude-opus-4-1", MaxTokens: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
	assert.Contains(t, err.Error(), "slow down")
}

func TestCreateMessageHonorsContextCancellation(t *testing.T) {
	started := make(chan struct{})
	unblock := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		// Hold the response until the test ends so the client-side cancel
		// is what terminates CreateMessage. The handler itself must not
		// rely on r.Context(), which the server may only cancel on the
		// next read or write.
		select {
		case <-r.Context().Done():
		case <-unblock:
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(unblock) })

	client, err := NewAnthropicClient("test-key", server.URL, time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err = client.CreateMessage(ctx, &Request{Model: "claude-opus-4-1", MaxTokens: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewAnthropicClientRequiresAPIKey(t *testing.T) {
	_, err := NewAnthropicClient("", "", time.Second)
	require.Error(t, err)
}
