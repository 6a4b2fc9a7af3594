package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/devlabs-ai/resume-screener/internal/common"
	"github.com/devlabs-ai/resume-screener/internal/extract"
	"github.com/devlabs-ai/resume-screener/internal/screening"
)

// Debug tool: run the analysis pipeline once against the configured backend,
// without touching the database.
func main() {
	var (
		resumeFile = flag.String("resume", "", "text file with resume content (required)")
		descFile   = flag.String("desc", "", "text file with the job description (required)")
	)
	flag.Parse()

	if *resumeFile == "" || *descFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -resume and -desc are required")
		os.Exit(1)
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	resumeRaw, err := os.ReadFile(*resumeFile)
	if err != nil {
		logger.Error("failed to read resume file", "error", err)
		os.Exit(1)
	}
	descRaw, err := os.ReadFile(*descFile)
	if err != nil {
		logger.Error("failed to read description file", "error", err)
		os.Exit(1)
	}

	resumeText, err := extract.Normalize(string(resumeRaw))
	if err != nil {
		logger.Error("resume has no extractable text", "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	backend := screening.NewBackend(cfg.LLM, logger)
	analyzer := screening.NewAnalyzer(backend, logger)

	analysis := analyzer.Analyze(context.Background(), resumeText, string(descRaw))

	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		logger.Error("failed to marshal analysis", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
