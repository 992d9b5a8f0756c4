package external

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

func TestStartTraining(t *testing.T) {
	var gotReq TrainingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/training", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(startResponse{Success: true, OperationID: "op_train_1"})
	}))
	defer server.Close()

	client := NewHTTPJobClient(server.URL, 5*time.Second)
	opID, err := client.StartTraining(context.Background(), TrainingRequest{StrategyName: "s_1"})
	require.NoError(t, err)
	assert.Equal(t, "op_train_1", opID)
	assert.Equal(t, "s_1", gotReq.StrategyName)
}

func TestStartTrainingRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(startResponse{Success: false, Error: "no workers available"})
	}))
	defer server.Close()

	client := NewHTTPJobClient(server.URL, 5*time.Second)
	_, err := client.StartTraining(context.Background(), TrainingRequest{StrategyName: "s_1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no workers available")
}

func TestGetOperation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/operations/op_train_1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(JobOperation{
			ID:     "op_train_1",
			Status: JobStatusCompleted,
			ResultSummary: map[string]interface{}{
				"accuracy": 0.65,
			},
		})
	}))
	defer server.Close()

	client := NewHTTPJobClient(server.URL, 5*time.Second)
	op, err := client.GetOperation(context.Background(), "op_train_1")
	require.NoError(t, err)
	assert.Equal(t, JobStatusCompleted, op.Status)
	assert.Equal(t, 0.65, op.ResultSummary["accuracy"])
}

func TestGetOperationServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPJobClient(server.URL, 5*time.Second)
	_, err := client.GetOperation(context.Background(), "op_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestCatalogEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/indicators":
			_ = json.NewEncoder(w).Encode([]Indicator{{Name: "rsi", Type: "momentum", Parameters: []string{"period"}}})
		case "/api/v1/symbols":
			_ = json.NewEncoder(w).Encode([]Symbol{{
				Symbol:     "BTCUSDT",
				Timeframes: []string{"1h", "4h"},
				DateRange:  DateRange{Start: "2020-01-01", End: "2026-01-01"},
			}})
		case "/api/v1/strategies/recent":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_ = json.NewEncoder(w).Encode([]StrategySummary{{Name: "s_1"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewHTTPCatalogClient(server.URL, 5*time.Second)
	ctx := context.Background()

	indicators, err := client.Indicators(ctx)
	require.NoError(t, err)
	require.Len(t, indicators, 1)
	assert.Equal(t, "rsi", indicators[0].Name)

	symbols, err := client.Symbols(ctx)
	require.NoError(t, err)
	require.Len(t, symbols, 1)
	assert.Equal(t, "BTCUSDT", symbols[0].Symbol)

	recent, err := client.RecentStrategies(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
}

func TestValidatorEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/validate":
			_ = json.NewEncoder(w).Encode(ValidationResult{IsValid: false, Errors: []string{"missing indicators"}})
		case "/api/v1/validate/name":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "s_1", body["name"])
			_ = json.NewEncoder(w).Encode(ValidationResult{IsValid: true})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewHTTPValidator(server.URL, 5*time.Second)
	ctx := context.Background()

	result, err := client.Validate(ctx, map[string]interface{}{"symbols": []string{"BTCUSDT"}})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"missing indicators"}, result.Errors)

	unique, err := client.CheckNameUnique(ctx, "s_1", "/tmp/strategies")
	require.NoError(t, err)
	assert.True(t, unique.IsValid)
}
