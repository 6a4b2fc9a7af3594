package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/devlabs-ai/resume-screener/internal/common"
	"github.com/devlabs-ai/resume-screener/internal/repository"
)

// Opens the sqlite store, migrates the schema, and pings it.
func main() {
	var timeout = flag.Duration("timeout", 5*time.Second, "ping timeout")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	ctx := context.Background()

	entc, db, err := repository.Open(ctx, repository.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, db, logger)

	if err := repository.Migrate(ctx, entc, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := repository.HealthCheck(ctx, db, *timeout, logger); err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("ok")
}
