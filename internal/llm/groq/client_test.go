package groq

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
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"name":"Jane"}`}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "gsk_test", BaseURL: srv.URL, Model: "llama3-70b-8192"}, discardLogger())
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

	assert.Equal(t, "Bearer gsk_test", gotAuth)
	assert.Equal(t, "llama3-70b-8192", gotBody["model"])
	assert.InDelta(t, 0.2, gotBody["temperature"], 1e-9)
	assert.Equal(t, float64(1024), gotBody["max_tokens"])
	rf, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestCompleteNoJSONModeOmitsResponseFormat(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "a plain summary"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "gsk_test", BaseURL: srv.URL}, discardLogger())
	content, err := c.Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "user"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "a plain summary", content)
	assert.NotContains(t, gotBody, "response_format")
}

func TestCompleteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bad", BaseURL: srv.URL}, discardLogger())
	_, err := c.Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "user"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq chat completion")
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "gsk_test", BaseURL: srv.URL}, discardLogger())
	_, err := c.Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "user"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "gsk_test"}, nil)
	assert.Equal(t, "https://api.groq.com/openai/v1", c.cfg.BaseURL)
	assert.Equal(t, "llama3-70b-8192", c.cfg.Model)
	assert.NotZero(t, c.cfg.Timeout)
	assert.Equal(t, "groq", c.Name())
}
