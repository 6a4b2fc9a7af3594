package repository

import (
	"context"
	"log/slog"

	"github.com/devlabs-ai/resume-screener/gen/ent"
	"github.com/devlabs-ai/resume-screener/gen/ent/job"
	"github.com/devlabs-ai/resume-screener/internal/common"
	"github.com/devlabs-ai/resume-screener/internal/entity"
)

type JobRepository interface {
	Create(ctx context.Context, id, title, description string) (*entity.Job, error)
	Get(ctx context.Context, id string) (*entity.Job, error)
	List(ctx context.Context) ([]*entity.Job, error)
	UpdateDescription(ctx context.Context, id, description string) (*entity.Job, error)
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) Create(ctx context.Context, id, title, description string) (*entity.Job, error) {
	row, err := r.client.Job.Create().
		SetID(id).
		SetTitle(title).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			r.logger.Warn("job id already exists", "job_id", id)
			return nil, common.NewAppError("JOB_EXISTS", "job id already exists", common.ErrDuplicate)
		}
		r.logger.Error("failed to create job", "job_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("job created", "job_id", row.ID, "title", row.Title)
	return toJob(row), nil
}

func (r *jobRepository) Get(ctx context.Context, id string) (*entity.Job, error) {
	row, err := r.client.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("JOB_NOT_FOUND", "no such job: "+id, common.ErrNotFound)
		}
		r.logger.Error("failed to load job", "job_id", id, "error", err)
		return nil, err
	}
	return toJob(row), nil
}

func (r *jobRepository) List(ctx context.Context) ([]*entity.Job, error) {
	rows, err := r.client.Job.Query().
		Order(ent.Desc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "error", err)
		return nil, err
	}

	result := make([]*entity.Job, len(rows))
	for i, row := range rows {
		result[i] = toJob(row)
	}
	return result, nil
}

func (r *jobRepository) UpdateDescription(ctx context.Context, id, description string) (*entity.Job, error) {
	row, err := r.client.Job.UpdateOneID(id).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("JOB_NOT_FOUND", "no such job: "+id, common.ErrNotFound)
		}
		r.logger.Error("failed to update job", "job_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("job description updated", "job_id", id)
	return toJob(row), nil
}

func toJob(row *ent.Job) *entity.Job {
	return &entity.Job{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
