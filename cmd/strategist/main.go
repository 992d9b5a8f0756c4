// Strategist orchestrator server. Runs the continuous research loop,
// drives the design/training/backtest/assessment pipeline, and exposes
// the HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quantforge/strategist/pkg/agent"
	"github.com/quantforge/strategist/pkg/api"
	"github.com/quantforge/strategist/pkg/config"
	"github.com/quantforge/strategist/pkg/database"
	"github.com/quantforge/strategist/pkg/external"
	"github.com/quantforge/strategist/pkg/gates"
	"github.com/quantforge/strategist/pkg/llm"
	"github.com/quantforge/strategist/pkg/ops"
	"github.com/quantforge/strategist/pkg/services"
	"github.com/quantforge/strategist/pkg/trigger"
	"github.com/quantforge/strategist/pkg/version"
)

const externalClientTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting strategist", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	agentCfg, err := config.LoadAgentConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load agent config", "error", err)
		os.Exit(1)
	}
	trainingGateCfg, err := config.LoadTrainingGateConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load training gate config", "error", err)
		os.Exit(1)
	}
	backtestGateCfg, err := config.LoadBacktestGateConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load backtest gate config", "error", err)
		os.Exit(1)
	}
	endpoints := config.LoadServiceEndpointsFromEnv()

	// 2. Database (migrations run on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	actionService := services.NewActionService(dbClient.Client)

	// 4. LLM client and agent invoker
	llmClient, err := llm.NewAnthropicClient(
		endpoints.AnthropicAPIKey, endpoints.AnthropicBaseURL, agentCfg.RequestTimeout)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	invoker := agent.NewInvoker(llmClient, *agentCfg)
	slog.Info("LLM client initialized", "model", agentCfg.Model)

	// 5. External collaborators
	jobClient := external.NewHTTPJobClient(endpoints.JobsURL, externalClientTimeout)
	catalogClient := external.NewHTTPCatalogClient(endpoints.CatalogURL, externalClientTimeout)
	validator := external.NewHTTPValidator(endpoints.ValidatorURL, externalClientTimeout)

	// 6. Operation registry and quality gates
	registry := ops.NewRegistry()
	evaluator := gates.NewEvaluator(trainingGateCfg, backtestGateCfg)

	if err := os.MkdirAll(agentCfg.StrategiesDir, 0o755); err != nil {
		slog.Error("Failed to create strategies directory",
			"dir", agentCfg.StrategiesDir, "error", err)
		os.Exit(1)
	}

	// 7. Reconciler (recovers orphaned sessions on start)
	reconciler := trigger.NewReconciler(trigger.Deps{
		Config:        agentCfg,
		Sessions:      sessionService,
		Actions:       actionService,
		Registry:      registry,
		Invoker:       invoker,
		Jobs:          jobClient,
		Catalog:       catalogClient,
		Validator:     validator,
		Gates:         evaluator,
		ResearchBrief: os.Getenv("RESEARCH_BRIEF"),
	})
	if err := reconciler.Start(ctx); err != nil {
		slog.Error("Failed to start reconciler", "error", err)
		os.Exit(1)
	}
	slog.Info("Reconciler started",
		"enabled", agentCfg.Enabled,
		"interval", agentCfg.TriggerInterval)

	// 8. HTTP server
	apiServer := api.NewServer(dbClient.DB(), sessionService, actionService, registry, reconciler)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Strategist started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop the reconciler first so no new work
	// starts, then drain HTTP. In-flight sessions interrupted here are
	// orphan-recovered on the next start.
	done := make(chan struct{})
	go func() {
		reconciler.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Reconciler stopped gracefully")
	case <-time.After(60 * time.Second):
		slog.Warn("Reconciler shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
