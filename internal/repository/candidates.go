package repository

import (
	"context"
	"log/slog"

	"github.com/devlabs-ai/resume-screener/constants"
	"github.com/devlabs-ai/resume-screener/gen/ent"
	"github.com/devlabs-ai/resume-screener/gen/ent/candidate"
	"github.com/devlabs-ai/resume-screener/internal/entity"
)

// JobStats summarizes screening results for one job.
type JobStats struct {
	Total       int
	Shortlisted int
	AvgScore    float64
}

type CandidateRepository interface {
	Insert(ctx context.Context, c *entity.Candidate) (*entity.Candidate, error)
	// ListRanked returns candidates for a job ordered by weighted score, best first.
	ListRanked(ctx context.Context, jobID string) ([]*entity.Candidate, error)
	StatsForJob(ctx context.Context, jobID string) (JobStats, error)
}

type candidateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCandidateRepository(client *ent.Client, logger *slog.Logger) CandidateRepository {
	return &candidateRepository{
		client: client,
		logger: logger,
	}
}

func (r *candidateRepository) Insert(ctx context.Context, c *entity.Candidate) (*entity.Candidate, error) {
	builder := r.client.Candidate.Create().
		SetJobID(c.JobID).
		SetName(c.Name).
		SetEmail(c.Email).
		SetExperienceYears(c.ExperienceYears).
		SetSkillsScore(c.SkillsScore).
		SetEducationScore(c.EducationScore).
		SetSummary(c.Summary).
		SetWeightedScore(c.WeightedScore).
		SetStatus(c.Status)
	if c.SourceFile != "" {
		builder = builder.SetSourceFile(c.SourceFile)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert candidate", "job_id", c.JobID, "name", c.Name, "error", err)
		return nil, err
	}
	return toCandidate(row), nil
}

func (r *candidateRepository) ListRanked(ctx context.Context, jobID string) ([]*entity.Candidate, error) {
	rows, err := r.client.Candidate.Query().
		Where(candidate.JobID(jobID)).
		Order(ent.Desc(candidate.FieldWeightedScore)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list candidates", "job_id", jobID, "error", err)
		return nil, err
	}

	result := make([]*entity.Candidate, len(rows))
	for i, row := range rows {
		result[i] = toCandidate(row)
	}
	return result, nil
}

func (r *candidateRepository) StatsForJob(ctx context.Context, jobID string) (JobStats, error) {
	rows, err := r.ListRanked(ctx, jobID)
	if err != nil {
		return JobStats{}, err
	}

	stats := JobStats{Total: len(rows)}
	if stats.Total == 0 {
		return stats, nil
	}
	sum := 0
	for _, c := range rows {
		sum += c.WeightedScore
		if c.Status == string(constants.StatusShortlisted) {
			stats.Shortlisted++
		}
	}
	stats.AvgScore = float64(sum) / float64(stats.Total)
	return stats, nil
}

func toCandidate(row *ent.Candidate) *entity.Candidate {
	return &entity.Candidate{
		ID:              row.ID,
		JobID:           row.JobID,
		Name:            row.Name,
		Email:           row.Email,
		ExperienceYears: row.ExperienceYears,
		SkillsScore:     row.SkillsScore,
		EducationScore:  row.EducationScore,
		Summary:         row.Summary,
		WeightedScore:   row.WeightedScore,
		Status:          row.Status,
		SourceFile:      row.SourceFile,
		CreatedAt:       row.CreatedAt,
	}
}
