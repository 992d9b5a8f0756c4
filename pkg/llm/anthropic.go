package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	anthropicVersion  = "2023-06-01"
	defaultBaseURL    = "https://api.anthropic.com"
	messagesPath      = "/v1/messages"
	maxErrorBodyBytes = 4096
)

// AnthropicClient is the HTTP implementation of Client against the
// Anthropic messages API.
type AnthropicClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// apiError is the error envelope returned by the API.
type apiError struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropicClient creates a messages-API client. baseURL may be empty
// to use the public endpoint. requestTimeout bounds each call; callers may
// additionally pass shorter per-request context deadlines.
func NewAnthropicClient(apiKey, baseURL string, requestTimeout time.Duration) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &AnthropicClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

// CreateMessage sends one messages-API request. Transport failures,
// non-2xx statuses, and malformed bodies are returned as errors; context
// cancellation aborts the in-flight request.
func (c *AnthropicClient) CreateMessage(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("messages API request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, c.decodeError(httpResp)
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// decodeError turns a non-2xx response into a descriptive error.
func (c *AnthropicClient) decodeError(httpResp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBodyBytes))

	var envelope apiError
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("messages API error (%s, status %d): %s",
			envelope.Error.Type, httpResp.StatusCode, envelope.Error.Message)
	}
	return fmt.Errorf("messages API error: status %d: %s", httpResp.StatusCode, string(raw))
}
