package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"RECRUITER_DB", "RECRUITER_DB_BUSY_TIMEOUT",
		"GROQ_API_KEY", "GROQ_API_KEY_FILE", "GROQ_BASE_URL", "GROQ_MODEL",
		"OLLAMA_HOST", "OLLAMA_MODEL", "LLM_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "recruiter.db", cfg.Database.Path)
	assert.Equal(t, 10*time.Second, cfg.Database.BusyTimeout)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "llama3-70b-8192", cfg.LLM.Model)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.OllamaHost)
	assert.Equal(t, "gemma3:4b", cfg.LLM.OllamaModel)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RECRUITER_DB", "/tmp/screening.db")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("LLM_TIMEOUT", "90s")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/screening.db", cfg.Database.Path)
	assert.Equal(t, "gsk_test", cfg.LLM.APIKey)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
}

func TestLoadConfigBadDurationFallsBack(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "not-a-duration")
	cfg := LoadConfig()
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "recruiter.db"},
		LLM:      LLMConfig{OllamaHost: "http://localhost:11434"},
	}
	require.NoError(t, cfg.Validate(), "missing API key is not a config error")

	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.Path = "recruiter.db"
	cfg.LLM.OllamaHost = ""
	assert.Error(t, cfg.Validate())
}
