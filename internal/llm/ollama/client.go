package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devlabs-ai/resume-screener/internal/llm"
)

// Complete implements llm.Completer against a local Ollama server. JSONMode is
// ignored: local models get the JSON instruction from the prompt alone.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.ollama.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", req.Temperature,
		"num_predict", req.MaxTokens,
		"messages", len(req.Messages),
	)

	body := map[string]any{
		"model":    c.cfg.Model,
		"messages": req.Messages,
		"stream":   false,
		"options": map[string]any{
			"temperature": req.Temperature,
			"num_ctx":     c.cfg.NumCtx,
			"num_predict": req.MaxTokens,
		},
	}

	endpoint := strings.TrimRight(c.cfg.Host, "/") + "/api/chat"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, nil, c.logger)
	if err != nil {
		c.logger.Error("llm.ollama.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("ollama chat: %w", err)
	}

	var cc struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.ollama.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	content := cc.Message.Content
	c.logger.Info("llm.ollama.ok",
		"req_id", rid,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) Name() string { return "ollama" }
