package screening

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/devlabs-ai/resume-screener/internal/common"
	"github.com/devlabs-ai/resume-screener/internal/entity"
	"github.com/devlabs-ai/resume-screener/internal/extract"
	"github.com/devlabs-ai/resume-screener/internal/repository"
)

// Screener runs the full per-resume pipeline for a job: extract text,
// normalize, analyze, score, persist. Resumes are processed one at a time,
// fully pipelined before the next begins.
type Screener struct {
	logger     *slog.Logger
	extractor  extract.TextExtractor
	analyzer   *Analyzer
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
}

func NewScreener(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	analyzer *Analyzer,
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
) *Screener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Screener{
		logger:     logger,
		extractor:  extractor,
		analyzer:   analyzer,
		jobs:       jobs,
		candidates: candidates,
	}
}

// ScreenFile screens a single resume file against the job. It returns
// common.ErrNoExtractableText (wrapped) when the document yields no text; that
// is terminal for this resume only.
func (s *Screener) ScreenFile(ctx context.Context, job *entity.Job, path string) (*entity.Candidate, []string, error) {
	start := time.Now()
	s.logger.Info("screen.resume.start", "job_id", job.ID, "file", path)

	res, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("extract %s: %w", path, err)
	}
	for _, w := range res.Warnings {
		s.logger.Warn("screen.resume.extract_warning", "file", path, "warning", w)
	}

	text, err := extract.Normalize(res.Text)
	if err != nil {
		// No LLM call for image-only documents.
		s.logger.Warn("screen.resume.no_text", "job_id", job.ID, "file", path)
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	analysis := s.analyzer.Analyze(ctx, text, job.Description)

	cand, err := s.candidates.Insert(ctx, &entity.Candidate{
		JobID:           job.ID,
		Name:            analysis.Fields.Name,
		Email:           analysis.Fields.Email,
		ExperienceYears: analysis.Fields.ExperienceYears,
		SkillsScore:     analysis.Fields.SkillsMatchScore,
		EducationScore:  analysis.Fields.EducationScore,
		Summary:         analysis.Fields.Summary,
		WeightedScore:   analysis.WeightedScore,
		Status:          string(analysis.Status),
		SourceFile:      filepath.Base(path),
	})
	if err != nil {
		return nil, analysis.Warnings, fmt.Errorf("persist candidate: %w", err)
	}

	s.logger.Info("screen.resume.ok",
		"job_id", job.ID,
		"file", path,
		"candidate", cand.Name,
		"weighted_score", cand.WeightedScore,
		"status", cand.Status,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return cand, analysis.Warnings, nil
}

// DirectorySummary reports the outcome of a batch screening run.
type DirectorySummary struct {
	JobID    string
	Screened []*entity.Candidate
	Skipped  map[string]string // file -> reason (empty extraction, read errors)
	Warnings map[string][]string
	Duration time.Duration
}

// ScreenDirectory screens every PDF in dir against the job, sequentially.
// Per-resume failures are recorded and do not abort the run.
func (s *Screener) ScreenDirectory(ctx context.Context, jobID, dir string) (*DirectorySummary, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	start := time.Now()
	summary := &DirectorySummary{
		JobID:    job.ID,
		Skipped:  make(map[string]string),
		Warnings: make(map[string][]string),
	}

	s.logger.Info("screen.batch.start", "job_id", job.ID, "dir", dir, "files", len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		cand, warnings, err := s.ScreenFile(ctx, job, path)
		if len(warnings) > 0 {
			summary.Warnings[filepath.Base(path)] = warnings
		}
		if err != nil {
			if errors.Is(err, common.ErrNoExtractableText) {
				summary.Skipped[filepath.Base(path)] = "no extractable text (scan/image-only?)"
			} else {
				summary.Skipped[filepath.Base(path)] = err.Error()
			}
			continue
		}
		summary.Screened = append(summary.Screened, cand)
	}
	summary.Duration = time.Since(start)

	s.logger.Info("screen.batch.ok",
		"job_id", job.ID,
		"screened", len(summary.Screened),
		"skipped", len(summary.Skipped),
		"elapsed_ms", summary.Duration.Milliseconds(),
	)
	return summary, nil
}
