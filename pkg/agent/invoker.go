package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quantforge/strategist/pkg/config"
	"github.com/quantforge/strategist/pkg/llm"
	"github.com/quantforge/strategist/pkg/ops"
)

// Sentinel errors the workers dispatch on when turning a failed run into a
// session outcome.
var (
	ErrCancelled      = errors.New("agent run cancelled")
	ErrRequestTimeout = errors.New("llm request timed out")
)

// Result is the outcome of one agentic run. Token totals are populated even
// when the run fails.
type Result struct {
	Success      bool
	OutputText   string
	InputTokens  int
	OutputTokens int
	Err          error
}

// ActionRecorder receives one record per executed tool call, tagged with the
// usage of the LLM response that requested it. Implementations must not
// block the loop on failure; recording is audit-only.
type ActionRecorder interface {
	RecordAction(ctx context.Context, toolName string, args, result map[string]interface{}, usage llm.Usage)
}

// RunInput is everything one agentic run needs.
type RunInput struct {
	SystemPrompt string
	UserPrompt   string
	Tools        []llm.Tool
	Executor     *Executor
	Token        *ops.CancellationToken
	Recorder     ActionRecorder
}

// Invoker drives the bounded tool-calling conversation loop.
type Invoker struct {
	client llm.Client
	cfg    config.AgentConfig
	logger *slog.Logger
}

// NewInvoker creates an invoker with the given client and limits.
func NewInvoker(client llm.Client, cfg config.AgentConfig) *Invoker {
	return &Invoker{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "agent.invoker"),
	}
}

// Run executes the loop: send messages, execute requested tools, feed
// results back, until the model stops calling tools or a budget trips.
// Cancellation via in.Token or ctx aborts promptly at any suspension point;
// accumulated token totals are preserved in the returned Result.
func (inv *Invoker) Run(ctx context.Context, in RunInput) *Result {
	runCtx := ctx
	if in.Token != nil {
		var cancel context.CancelFunc
		runCtx, cancel = in.Token.Context(ctx)
		defer cancel()
	}

	result := &Result{}
	messages := []llm.Message{llm.UserMessage(llm.TextBlock(in.UserPrompt))}

	for iteration := 0; ; iteration++ {
		if iteration >= inv.cfg.MaxIterations {
			result.Err = fmt.Errorf("agent exceeded iteration limit (%d iterations)", inv.cfg.MaxIterations)
			return result
		}
		if err := inv.checkCancelled(runCtx, in.Token); err != nil {
			result.Err = err
			return result
		}

		resp, err := inv.createMessage(runCtx, in, messages)
		if err != nil {
			result.Err = inv.classifyError(runCtx, in.Token, err)
			return result
		}

		result.InputTokens += resp.Usage.InputTokens
		result.OutputTokens += resp.Usage.OutputTokens
		inv.logger.Debug("LLM response received",
			"iteration", iteration+1,
			"stop_reason", resp.StopReason,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens)

		if result.InputTokens > inv.cfg.MaxInputTokens {
			result.Err = fmt.Errorf("agent exceeded input token budget (%d > %d)",
				result.InputTokens, inv.cfg.MaxInputTokens)
			return result
		}

		toolUses := resp.ToolUses()
		if len(toolUses) == 0 {
			result.Success = true
			result.OutputText = resp.Text()
			return result
		}

		resultBlocks := make([]llm.ContentBlock, 0, len(toolUses))
		for _, use := range toolUses {
			if err := inv.checkCancelled(runCtx, in.Token); err != nil {
				result.Err = err
				return result
			}

			toolResult := in.Executor.Execute(runCtx, use.Name, use.Input)
			if in.Recorder != nil {
				in.Recorder.RecordAction(ctx, use.Name, use.Input, toolResult, resp.Usage)
			}

			_, isError := toolResult["error"]
			resultBlocks = append(resultBlocks, llm.ToolResultBlock(use.ID, encodeToolResult(toolResult), isError))
		}

		messages = append(messages,
			llm.Message{Role: llm.RoleAssistant, Content: resp.Content},
			llm.UserMessage(resultBlocks...),
		)
	}
}

func (inv *Invoker) createMessage(ctx context.Context, in RunInput, messages []llm.Message) (*llm.Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, inv.cfg.RequestTimeout)
	defer cancel()

	return inv.client.CreateMessage(reqCtx, &llm.Request{
		Model:     inv.cfg.Model,
		System:    in.SystemPrompt,
		Messages:  messages,
		Tools:     in.Tools,
		MaxTokens: inv.cfg.MaxTokens,
	})
}

func (inv *Invoker) checkCancelled(ctx context.Context, token *ops.CancellationToken) error {
	if token != nil && token.IsCancelled() {
		return ErrCancelled
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	return nil
}

// classifyError maps a CreateMessage failure to a cancellation, timeout, or
// transport error.
func (inv *Invoker) classifyError(ctx context.Context, token *ops.CancellationToken, err error) error {
	if token != nil && token.IsCancelled() {
		return ErrCancelled
	}
	if errors.Is(err, context.Canceled) || ctx.Err() == context.Canceled {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %v", ErrRequestTimeout, inv.cfg.RequestTimeout, err)
	}
	return fmt.Errorf("llm request failed: %w", err)
}

func encodeToolResult(result map[string]interface{}) string {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to encode tool result: %v"}`, err)
	}
	return string(data)
}
