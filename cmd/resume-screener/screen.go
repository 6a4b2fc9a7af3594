package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devlabs-ai/resume-screener/internal/entity"
	"github.com/devlabs-ai/resume-screener/internal/export"
	"github.com/devlabs-ai/resume-screener/internal/extract"
	"github.com/devlabs-ai/resume-screener/internal/repository"
	"github.com/devlabs-ai/resume-screener/internal/screening"
)

var flagScreenOut string

var screenCmd = &cobra.Command{
	Use:   "screen <job-id> <resume-dir>",
	Short: "Screen a directory of PDF resumes against a job",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		ctx := cmd.Context()

		cfg, entc, cleanup, err := openStore(ctx, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		jobs := repository.NewJobRepository(entc, logger)
		candidates := repository.NewCandidateRepository(entc, logger)

		backend := screening.NewBackend(cfg.LLM, logger)
		analyzer := screening.NewAnalyzer(backend, logger)
		extractor := extract.NewPDFExtractor(logger)
		screener := screening.NewScreener(logger, extractor, analyzer, jobs, candidates)

		summary, err := screener.ScreenDirectory(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		for file, reason := range summary.Skipped {
			fmt.Fprintf(os.Stderr, "skipped %s: %s\n", file, reason)
		}
		for file, warnings := range summary.Warnings {
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "warning %s: %s\n", file, w)
			}
		}

		ranked, err := candidates.ListRanked(ctx, summary.JobID)
		if err != nil {
			return err
		}
		printRanked(ranked)

		stats, err := candidates.StatsForJob(ctx, summary.JobID)
		if err != nil {
			return err
		}
		fmt.Printf("\n%d resumes, %d shortlisted, average score %.0f\n",
			stats.Total, stats.Shortlisted, stats.AvgScore)

		if flagScreenOut != "" {
			svc := export.NewService(candidates, logger)
			data, err := svc.ExportRankedXLSX(ctx, summary.JobID)
			if err != nil {
				return err
			}
			if err := os.WriteFile(flagScreenOut, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", flagScreenOut, err)
			}
			fmt.Printf("wrote %s\n", flagScreenOut)
		}
		return nil
	},
}

func init() {
	screenCmd.Flags().StringVar(&flagScreenOut, "out", "", "also write ranked candidates to this XLSX file")
}

func printRanked(ranked []*entity.Candidate) {
	if len(ranked) == 0 {
		fmt.Println("no candidates screened yet")
		return
	}
	fmt.Printf("%-4s %-24s %-28s %-6s %s\n", "#", "Name", "Email", "Score", "Status")
	for i, c := range ranked {
		fmt.Printf("%-4d %-24s %-28s %-6d %s\n", i+1, c.Name, c.Email, c.WeightedScore, c.Status)
	}
}
