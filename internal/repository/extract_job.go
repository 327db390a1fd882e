package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snapreceipt/receiptd/constants"
	"github.com/snapreceipt/receiptd/gen/ent"
	"github.com/snapreceipt/receiptd/internal/entity"
	"github.com/snapreceipt/receiptd/internal/utils"
)

type ExtractJobRepository interface {
	Create(ctx context.Context, rawText string) (*entity.ExtractJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishSuccess(ctx context.Context, jobID, receiptID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Create(ctx context.Context, rawText string) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetRawText(rawText).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job create failed", "err", err)
		return nil, err
	}
	r.log.Info("extract_job created", "job_id", job.ID, "bytes", len(rawText))
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		r.log.Error("extract_job get failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark running failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID, receiptID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusParsed)).
		SetReceiptID(receiptID).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSED)", "job_id", jobID, "receipt_id", receiptID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
