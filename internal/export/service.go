package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/devlabs-ai/resume-screener/internal/entity"
	"github.com/devlabs-ai/resume-screener/internal/repository"
)

// Service is a tiny façade over the candidate repository that produces XLSX
// bytes for ranked-candidate exports.
type Service struct {
	candidates repository.CandidateRepository
	logger     *slog.Logger
}

func NewService(candidates repository.CandidateRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{candidates: candidates, logger: logger}
}

// ExportRankedXLSX returns an XLSX workbook (as bytes) with the job's
// candidates ranked by weighted score, best first.
func (s *Service) ExportRankedXLSX(ctx context.Context, jobID string) ([]byte, error) {
	start := time.Now()

	recs, err := s.candidates.ListRanked(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	buf, err := buildWorkbook(recs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

func buildWorkbook(recs []*entity.Candidate) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Candidates"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Rank",
		"Name",
		"Email",
		"Experience (yrs)",
		"Skills Score",
		"Education Score",
		"Weighted Score",
		"Status",
		"Summary",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for rank, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rank+1)
		write(2, r.Name)
		write(3, r.Email)
		write(4, r.ExperienceYears)
		write(5, r.SkillsScore)
		write(6, r.EducationScore)
		write(7, r.WeightedScore)
		write(8, r.Status)
		write(9, truncate(r.Summary, 500))
		write(10, r.SourceFile)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "B", "C", 24) // name, email
	_ = f.SetColWidth(sheet, "D", "G", 14) // numeric scores
	_ = f.SetColWidth(sheet, "H", "H", 12) // status
	_ = f.SetColWidth(sheet, "I", "I", 80) // summary
	_ = f.SetColWidth(sheet, "J", "J", 32) // path

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return out.Bytes(), nil
}

// truncate cuts on rune boundaries so multibyte summaries stay valid UTF-8.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
