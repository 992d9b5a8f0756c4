package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// httpClient is the shared JSON-over-HTTP plumbing for all external
// collaborators.
type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient(baseURL string, timeout time.Duration) httpClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// getJSON performs a GET and decodes the response into out.
func (c httpClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func (c httpClient) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c httpClient) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// HTTPJobClient implements JobClient against the job service.
type HTTPJobClient struct {
	httpClient
}

// NewHTTPJobClient creates a job service client.
func NewHTTPJobClient(baseURL string, timeout time.Duration) *HTTPJobClient {
	return &HTTPJobClient{newHTTPClient(baseURL, timeout)}
}

// StartTraining submits a training job and returns the operation id.
func (c *HTTPJobClient) StartTraining(ctx context.Context, req TrainingRequest) (string, error) {
	var resp startResponse
	if err := c.postJSON(ctx, "/api/v1/training", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("training start refused: %s", resp.Error)
	}
	return resp.OperationID, nil
}

// StartBacktest submits a backtest job and returns the operation id.
func (c *HTTPJobClient) StartBacktest(ctx context.Context, req BacktestRequest) (string, error) {
	var resp startResponse
	if err := c.postJSON(ctx, "/api/v1/backtests", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("backtest start refused: %s", resp.Error)
	}
	return resp.OperationID, nil
}

// GetOperation fetches the current status of a job-service operation.
func (c *HTTPJobClient) GetOperation(ctx context.Context, id string) (*JobOperation, error) {
	var op JobOperation
	if err := c.getJSON(ctx, "/api/v1/operations/"+url.PathEscape(id), &op); err != nil {
		return nil, err
	}
	if op.ID == "" {
		op.ID = id
	}
	return &op, nil
}

// HTTPCatalogClient implements CatalogClient against the market data catalog.
type HTTPCatalogClient struct {
	httpClient
}

// NewHTTPCatalogClient creates a catalog client.
func NewHTTPCatalogClient(baseURL string, timeout time.Duration) *HTTPCatalogClient {
	return &HTTPCatalogClient{newHTTPClient(baseURL, timeout)}
}

// Indicators lists available indicators.
func (c *HTTPCatalogClient) Indicators(ctx context.Context) ([]Indicator, error) {
	var out []Indicator
	if err := c.getJSON(ctx, "/api/v1/indicators", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Symbols lists available symbols with their data windows.
func (c *HTTPCatalogClient) Symbols(ctx context.Context) ([]Symbol, error) {
	var out []Symbol
	if err := c.getJSON(ctx, "/api/v1/symbols", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentStrategies lists the most recently saved strategies.
func (c *HTTPCatalogClient) RecentStrategies(ctx context.Context, limit int) ([]StrategySummary, error) {
	var out []StrategySummary
	path := fmt.Sprintf("/api/v1/strategies/recent?limit=%d", limit)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HTTPValidator implements Validator against the strategy validator service.
type HTTPValidator struct {
	httpClient
}

// NewHTTPValidator creates a validator client.
func NewHTTPValidator(baseURL string, timeout time.Duration) *HTTPValidator {
	return &HTTPValidator{newHTTPClient(baseURL, timeout)}
}

// Validate checks a strategy configuration. No side effects.
func (c *HTTPValidator) Validate(ctx context.Context, config map[string]interface{}) (*ValidationResult, error) {
	var out ValidationResult
	if err := c.postJSON(ctx, "/api/v1/validate", map[string]interface{}{"config": config}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckNameUnique checks that no strategy with the given name exists in dir.
func (c *HTTPValidator) CheckNameUnique(ctx context.Context, name, dir string) (*ValidationResult, error) {
	var out ValidationResult
	body := map[string]string{"name": name, "dir": dir}
	if err := c.postJSON(ctx, "/api/v1/validate/name", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
