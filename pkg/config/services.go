package config

import "os"

// ServiceEndpoints holds base URLs and credentials for external
// collaborators: the LLM provider, the training/backtest job service,
// the market data catalog, and the strategy validator.
type ServiceEndpoints struct {
	AnthropicAPIKey  string
	AnthropicBaseURL string
	JobsURL          string
	CatalogURL       string
	ValidatorURL     string
}

// LoadServiceEndpointsFromEnv loads external service endpoints.
func LoadServiceEndpointsFromEnv() ServiceEndpoints {
	return ServiceEndpoints{
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicBaseURL: envOrDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		JobsURL:          envOrDefault("JOBS_SERVICE_URL", "http://localhost:8090"),
		CatalogURL:       envOrDefault("CATALOG_SERVICE_URL", "http://localhost:8091"),
		ValidatorURL:     envOrDefault("VALIDATOR_SERVICE_URL", "http://localhost:8092"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
