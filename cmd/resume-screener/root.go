package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/devlabs-ai/resume-screener/gen/ent"
	"github.com/devlabs-ai/resume-screener/internal/common"
	"github.com/devlabs-ai/resume-screener/internal/repository"
)

var (
	flagDBPath  string
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:   "resume-screener",
		Short: "Screen candidate resumes against a job description with an LLM",
		Long: "resume-screener extracts text from PDF resumes, scores each candidate " +
			"against a job description via a hosted or local LLM backend, and stores " +
			"ranked results in a local sqlite database.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "sqlite database path (default $RECRUITER_DB or recruiter.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(exportCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// openStore loads config, opens the sqlite store, and migrates the schema.
// The returned cleanup closes everything.
func openStore(ctx context.Context, logger *slog.Logger) (*common.Config, *ent.Client, func(), error) {
	cfg := common.LoadConfig()
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	entc, db, err := repository.Open(ctx, repository.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := repository.Migrate(ctx, entc, logger); err != nil {
		repository.Close(entc, db, logger)
		return nil, nil, nil, err
	}

	cleanup := func() { repository.Close(entc, db, logger) }
	return cfg, entc, cleanup, nil
}
