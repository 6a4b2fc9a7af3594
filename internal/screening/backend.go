package screening

import (
	"log/slog"

	"github.com/devlabs-ai/resume-screener/internal/common"
	"github.com/devlabs-ai/resume-screener/internal/llm"
	"github.com/devlabs-ai/resume-screener/internal/llm/groq"
	"github.com/devlabs-ai/resume-screener/internal/llm/ollama"
	"github.com/devlabs-ai/resume-screener/internal/secrets"
)

// NewBackend selects the model backend by credential presence: a hosted-API key
// resolved from the environment first, then the application secret store. No
// credential is not an error; it selects the local fallback. An explicit key in
// cfg.APIKey (already resolved by the caller) wins over both.
func NewBackend(cfg common.LLMConfig, logger *slog.Logger) llm.Completer {
	if logger == nil {
		logger = slog.Default()
	}

	key := cfg.APIKey
	if key == "" {
		key, _ = secrets.Resolve(secrets.Source{Env: "GROQ_API_KEY", File: cfg.APIKeyFile})
	}

	if key != "" {
		logger.Info("screen.backend.selected", "backend", "groq", "model", cfg.Model)
		return groq.NewClient(groq.Config{
			APIKey:  key,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, logger)
	}

	logger.Warn("screen.backend.selected",
		"backend", "ollama",
		"model", cfg.OllamaModel,
		"reason", "no hosted API credential configured",
	)
	return ollama.NewClient(ollama.Config{
		Host:  cfg.OllamaHost,
		Model: cfg.OllamaModel,
	}, logger)
}
