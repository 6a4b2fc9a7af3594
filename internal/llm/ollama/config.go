package ollama

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the local inference fallback (Ollama /api/chat).
type Config struct {
	Host    string        // default http://localhost:11434
	Model   string        // e.g. "gemma3:4b"
	NumCtx  int           // context window passed through to the model
	Timeout time.Duration // http client timeout; local generation is slow
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Host == "" {
		cfg.Host = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "gemma3:4b"
	}
	if cfg.NumCtx <= 0 {
		cfg.NumCtx = 8192
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
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
