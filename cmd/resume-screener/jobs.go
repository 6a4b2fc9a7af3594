package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devlabs-ai/resume-screener/internal/repository"
)

var (
	flagJobTitle string
	flagJobDesc  string
	flagDescFile string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage job postings",
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create <job-id>",
	Short: "Create a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		ctx := cmd.Context()

		desc := flagJobDesc
		if flagDescFile != "" {
			data, err := os.ReadFile(flagDescFile)
			if err != nil {
				return fmt.Errorf("read description file: %w", err)
			}
			desc = string(data)
		}
		if strings.TrimSpace(desc) == "" {
			return fmt.Errorf("a job description is required (--desc or --desc-file)")
		}
		if strings.TrimSpace(flagJobTitle) == "" {
			return fmt.Errorf("--title is required")
		}

		_, entc, cleanup, err := openStore(ctx, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		jobs := repository.NewJobRepository(entc, logger)
		job, err := jobs.Create(ctx, args[0], flagJobTitle, desc)
		if err != nil {
			return err
		}

		fmt.Printf("created job %s: %s\n", job.ID, job.Title)
		return nil
	},
}

var jobsUpdateCmd = &cobra.Command{
	Use:   "update <job-id>",
	Short: "Update a job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		ctx := cmd.Context()

		desc := flagJobDesc
		if flagDescFile != "" {
			data, err := os.ReadFile(flagDescFile)
			if err != nil {
				return fmt.Errorf("read description file: %w", err)
			}
			desc = string(data)
		}
		if strings.TrimSpace(desc) == "" {
			return fmt.Errorf("a job description is required (--desc or --desc-file)")
		}

		_, entc, cleanup, err := openStore(ctx, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		jobs := repository.NewJobRepository(entc, logger)
		job, err := jobs.UpdateDescription(ctx, args[0], desc)
		if err != nil {
			return err
		}

		fmt.Printf("updated job %s\n", job.ID)
		return nil
	},
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		ctx := cmd.Context()

		_, entc, cleanup, err := openStore(ctx, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		jobs := repository.NewJobRepository(entc, logger)
		all, err := jobs.List(ctx)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("no jobs yet")
			return nil
		}

		candidates := repository.NewCandidateRepository(entc, logger)
		for _, job := range all {
			stats, err := candidates.StatsForJob(ctx, job.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %-40s resumes=%d shortlisted=%d avg=%.0f\n",
				job.ID, job.Title, stats.Total, stats.Shortlisted, stats.AvgScore)
		}
		return nil
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show a job and its ranked candidates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		ctx := cmd.Context()

		_, entc, cleanup, err := openStore(ctx, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		jobs := repository.NewJobRepository(entc, logger)
		job, err := jobs.Get(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n\n%s\n\n", job.ID, job.Title, job.Description)

		candidates := repository.NewCandidateRepository(entc, logger)
		ranked, err := candidates.ListRanked(ctx, job.ID)
		if err != nil {
			return err
		}
		printRanked(ranked)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{jobsCreateCmd, jobsUpdateCmd} {
		c.Flags().StringVar(&flagJobTitle, "title", "", "job title")
		c.Flags().StringVar(&flagJobDesc, "desc", "", "job description text")
		c.Flags().StringVar(&flagDescFile, "desc-file", "", "file containing the job description")
	}
	jobsCmd.AddCommand(jobsCreateCmd, jobsUpdateCmd, jobsListCmd, jobsShowCmd)
}
