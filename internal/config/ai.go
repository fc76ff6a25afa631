package config

import (
	"strconv"
	"strings"
)

const defaultWorkflowURL = "https://api.dify.ai/v1/workflows/run"

// WorkflowConfig holds the upstream AI workflow settings used by the responder
type WorkflowConfig struct {
	APIKey    string `json:"-"` // Never serialize
	URL       string `json:"url"`
	TimeoutMS int    `json:"timeoutMs"`
}

// ClientConfig holds the caller-side settings for reaching the responder
type ClientConfig struct {
	Endpoint  string `json:"endpoint"`
	UseMock   bool   `json:"useMock"` // Canned report, no network
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultWorkflowConfig reads the workflow settings from the environment
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		APIKey:    strings.TrimSpace(getEnv("DIFY_API_KEY", "")),
		URL:       getEnv("DIFY_API_URL", defaultWorkflowURL),
		TimeoutMS: getEnvInt("DIFY_TIMEOUT_MS", 60000), // upstream usually answers in 10-15s
	}
}

// DefaultClientConfig reads the caller settings from the environment
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Endpoint:  getEnv("ANALYZE_ENDPOINT", "http://localhost:8080/api/analyze"),
		UseMock:   getEnvBool("ANALYZE_USE_MOCK"),
		TimeoutMS: getEnvInt("ANALYZE_TIMEOUT_MS", 90000),
	}
}

// IsEnabled returns true if the workflow credential is configured
func (c *WorkflowConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// MaskedKey returns the credential with only its edges visible, for logs
func (c *WorkflowConfig) MaskedKey() string {
	if c.APIKey == "" {
		return "MISSING"
	}
	if len(c.APIKey) <= 12 {
		return "****"
	}
	return c.APIKey[:8] + "..." + c.APIKey[len(c.APIKey)-4:]
}

func getEnvInt(key string, defaultValue int) int {
	if parsed, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return parsed
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(getEnv(key, ""))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
