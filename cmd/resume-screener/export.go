package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devlabs-ai/resume-screener/internal/export"
	"github.com/devlabs-ai/resume-screener/internal/repository"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <job-id>",
	Short: "Export ranked candidates for a job to XLSX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		ctx := cmd.Context()

		_, entc, cleanup, err := openStore(ctx, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		out := flagExportOut
		if out == "" {
			out = args[0] + "-candidates.xlsx"
		}

		candidates := repository.NewCandidateRepository(entc, logger)
		svc := export.NewService(candidates, logger)
		data, err := svc.ExportRankedXLSX(ctx, args[0])
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Printf("wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output XLSX path (default <job-id>-candidates.xlsx)")
}
