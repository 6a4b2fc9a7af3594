package screening

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlabs-ai/resume-screener/internal/common"
)

func TestNewBackendExplicitKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	b := NewBackend(common.LLMConfig{APIKey: "gsk_test"}, discardLogger())
	assert.Equal(t, "groq", b.Name())
}

func TestNewBackendKeyFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_from_env")
	b := NewBackend(common.LLMConfig{}, discardLogger())
	assert.Equal(t, "groq", b.Name())
}

func TestNewBackendKeyFromSecretFile(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	path := filepath.Join(t.TempDir(), "groq_api_key")
	require.NoError(t, os.WriteFile(path, []byte("gsk_from_file\n"), 0o600))

	b := NewBackend(common.LLMConfig{APIKeyFile: path}, discardLogger())
	assert.Equal(t, "groq", b.Name())
}

func TestNewBackendNoCredentialFallsBackToOllama(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	b := NewBackend(common.LLMConfig{APIKeyFile: filepath.Join(t.TempDir(), "missing")}, discardLogger())
	assert.Equal(t, "ollama", b.Name())
}
