// Package external provides clients for the orchestrator's remote
// collaborators: the training/backtest job service, the market data
// catalog, and the strategy validator. All are plain JSON-over-HTTP.
package external

import "context"

// Job operation statuses reported by the job service.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
	JobStatusCancelled = "cancelled"
)

// TrainingRequest asks the job service to start a training run.
type TrainingRequest struct {
	StrategyName string   `json:"strategy_name"`
	Symbols      []string `json:"symbols,omitempty"`
	Timeframes   []string `json:"timeframes,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// BacktestRequest asks the job service to start a backtest.
type BacktestRequest struct {
	StrategyName string   `json:"strategy_name"`
	ModelPath    string   `json:"model_path"`
	Symbols      []string `json:"symbols,omitempty"`
	Timeframes   []string `json:"timeframes,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// startResponse is the job service's reply to a start request.
type startResponse struct {
	Success     bool   `json:"success"`
	OperationID string `json:"operation_id"`
	Error       string `json:"error,omitempty"`
}

// JobOperation is the observable state of a job-service operation.
type JobOperation struct {
	ID            string                 `json:"id"`
	Status        string                 `json:"status"`
	ResultSummary map[string]interface{} `json:"result_summary,omitempty"`
	ErrorMessage  string                 `json:"error_message,omitempty"`
}

// Indicator describes one entry of the indicator catalog.
type Indicator struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Parameters []string `json:"parameters"`
}

// DateRange is the available data window for a symbol.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Symbol describes one entry of the symbol catalog.
type Symbol struct {
	Symbol     string    `json:"symbol"`
	Timeframes []string  `json:"timeframes"`
	DateRange  DateRange `json:"date_range"`
}

// StrategySummary is a catalog listing of a previously saved strategy.
type StrategySummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ValidationResult is the validator's verdict on a strategy config or name.
type ValidationResult struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// JobClient starts training/backtest jobs and observes their operations.
type JobClient interface {
	StartTraining(ctx context.Context, req TrainingRequest) (string, error)
	StartBacktest(ctx context.Context, req BacktestRequest) (string, error)
	GetOperation(ctx context.Context, id string) (*JobOperation, error)
}

// CatalogClient reads the indicator, symbol, and strategy catalogs.
type CatalogClient interface {
	Indicators(ctx context.Context) ([]Indicator, error)
	Symbols(ctx context.Context) ([]Symbol, error)
	RecentStrategies(ctx context.Context, limit int) ([]StrategySummary, error)
}

// Validator validates strategy configurations and name uniqueness.
type Validator interface {
	Validate(ctx context.Context, config map[string]interface{}) (*ValidationResult, error)
	CheckNameUnique(ctx context.Context, name, dir string) (*ValidationResult, error)
}
