package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	LLM      LLMConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// LLMConfig holds model-gateway configuration for both backends.
type LLMConfig struct {
	// Hosted backend (OpenAI-compatible chat completions).
	APIKey        string
	APIKeyFile    string // secret-store file, consulted when APIKey env is absent
	BaseURL       string
	Model         string
	// Local fallback backend.
	OllamaHost  string
	OllamaModel string

	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        getEnv("RECRUITER_DB", "recruiter.db"),
			BusyTimeout: getEnvAsDuration("RECRUITER_DB_BUSY_TIMEOUT", 10*time.Second),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("GROQ_API_KEY", ""),
			APIKeyFile:  getEnv("GROQ_API_KEY_FILE", ""),
			BaseURL:     getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:       getEnv("GROQ_MODEL", "llama3-70b-8192"),
			OllamaHost:  getEnv("OLLAMA_HOST", "http://localhost:11434"),
			OllamaModel: getEnv("OLLAMA_MODEL", "gemma3:4b"),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. A missing API key is NOT an
// error: it selects the local backend.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "RECRUITER_DB is required", ErrInvalidInput)
	}
	if c.LLM.OllamaHost == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_HOST must not be empty", ErrInvalidInput)
	}
	return nil
}
