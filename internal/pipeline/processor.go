package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates the parse stage for queued jobs. It exists as a
// seam between the async queue and the stages, so additional stages
// (dedup, enrichment) can slot in without touching the queue.
type Processor struct {
	Logger *slog.Logger
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Parse: parse}
}

// ProcessJob runs field extraction for a queued job and persists the receipt.
// Returns the jobID it operated on.
func (p *Processor) ProcessJob(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
