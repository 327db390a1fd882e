package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snapreceipt/receiptd/constants"
	"github.com/snapreceipt/receiptd/internal/extract"
	"github.com/snapreceipt/receiptd/internal/fields"
	"github.com/snapreceipt/receiptd/internal/repository"
)

// ParseStage turns a queued extract job into a persisted receipt.
type ParseStage struct {
	Logger       *slog.Logger
	JobsRepo     repository.ExtractJobRepository
	ReceiptsRepo repository.ReceiptRepository
	Extractor    extract.FieldExtractor

	schema map[string]any
}

func NewParseStage(
	logger *slog.Logger,
	jobs repository.ExtractJobRepository,
	recs repository.ReceiptRepository,
	fe extract.FieldExtractor,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{
		Logger:       logger,
		JobsRepo:     jobs,
		ReceiptsRepo: recs,
		Extractor:    fe,
		schema:       fields.BuildReceiptJSONSchema(),
	}
}

// Run executes field extraction for an existing job (jobID).
// Preconditions: job is QUEUED with stored raw text.
// Effects: persists a receipts row, links job -> receipt, and marks the job
// PARSED; any failure marks it FAILED with the error message.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status != string(constants.JobStatusQueued) {
		return job.ID, fmt.Errorf("job not ready for parse: status=%s", job.Status)
	}
	if err := p.JobsRepo.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, fmt.Errorf("mark running: %w", err)
	}

	p.Logger.Info("parse fields start", "job_id", job.ID, "raw_bytes", len(job.RawText))

	data, err := p.Extractor.ExtractFields(ctx, job.RawText)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("extract fields: %w", err)
	}

	// Check the wire shape before anything touches storage.
	raw, err := json.Marshal(data)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal fields: %w", err)
	}
	if err := fields.ValidateJSONAgainstSchema(p.schema, raw); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate fields: %w", err)
	}

	validation := fields.ValidateReceiptData(data)
	rec, err := p.ReceiptsRepo.SaveFromFields(ctx, data, validation.IsValid)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("save receipt: %w", err)
	}
	if err := p.JobsRepo.FinishSuccess(ctx, job.ID, rec.ID); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsed fields successfully",
		"job_id", job.ID, "receipt_id", rec.ID,
		"is_valid", validation.IsValid, "missing", len(validation.Errors),
	)
	return job.ID, nil
}
