package groq

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the hosted chat-completions client (OpenAI-compatible API).
type Config struct {
	APIKey  string        // required; resolved by the caller (env, then secret store)
	BaseURL string        // default https://api.groq.com/openai/v1
	Model   string        // e.g. "llama3-70b-8192"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3-70b-8192"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
