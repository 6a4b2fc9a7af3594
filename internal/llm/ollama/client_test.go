package ollama

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlabs-ai/resume-screener/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompleteSuccess(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"content": `{"name":"Jane"}`},
			"done":    true,
		})
	}))
	defer srv.Close()

	c := NewClient(Config{Host: srv.URL, Model: "gemma3:4b"}, discardLogger())
	content, err := c.Complete(context.Background(), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "system"},
			{Role: llm.RoleUser, Content: "user"},
		},
		Temperature: 0.2,
		MaxTokens:   1024,
		JSONMode:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Jane"}`, content)

	assert.Equal(t, "gemma3:4b", gotBody["model"])
	assert.Equal(t, false, gotBody["stream"])
	opts, ok := gotBody["options"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.2, opts["temperature"], 1e-9)
	assert.Equal(t, float64(8192), opts["num_ctx"])
	assert.Equal(t, float64(1024), opts["num_predict"])
}

func TestCompleteServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(Config{Host: srv.URL}, discardLogger())
	_, err := c.Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "user"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama chat")
}

func TestCompleteModelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model 'missing' not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{Host: srv.URL, Model: "missing"}, discardLogger())
	_, err := c.Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "user"}},
	})
	require.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{}, nil)
	assert.Equal(t, "http://localhost:11434", c.cfg.Host)
	assert.Equal(t, "gemma3:4b", c.cfg.Model)
	assert.Equal(t, 8192, c.cfg.NumCtx)
	assert.NotZero(t, c.cfg.Timeout)
	assert.Equal(t, "ollama", c.Name())
}
