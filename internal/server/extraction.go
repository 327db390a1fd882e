package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	receiptspb "github.com/snapreceipt/receiptd/gen/proto/receipts/v1"
	"github.com/snapreceipt/receiptd/internal/async"
	"github.com/snapreceipt/receiptd/internal/extract"
	"github.com/snapreceipt/receiptd/internal/fields"
	"github.com/snapreceipt/receiptd/internal/repository"
	"github.com/snapreceipt/receiptd/internal/utils"
)

type ExtractionService struct {
	receiptspb.UnimplementedExtractionServiceServer
	extractor extract.FieldExtractor
	jobsRepo  repository.ExtractJobRepository
	queue     async.Queue
	logger    *slog.Logger
}

func NewExtractionService(
	extractor extract.FieldExtractor,
	jobsRepo repository.ExtractJobRepository,
	queue async.Queue,
	logger *slog.Logger,
) *ExtractionService {
	return &ExtractionService{
		extractor: extractor,
		jobsRepo:  jobsRepo,
		queue:     queue,
		logger:    logger,
	}
}

// ParseText extracts receipt fields synchronously without persisting anything.
func (s *ExtractionService) ParseText(ctx context.Context, req *receiptspb.ParseTextRequest) (*receiptspb.ParseTextResponse, error) {
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	data, err := s.extractor.ExtractFields(ctx, req.GetText())
	if err != nil {
		s.logger.Error("failed to extract fields", "error", err)
		return nil, status.Errorf(codes.Internal, "extract fields: %v", err)
	}
	validation := fields.ValidateReceiptData(data)

	s.logger.Info("parsed text",
		"bytes", len(req.GetText()),
		"is_valid", validation.IsValid,
	)
	return &receiptspb.ParseTextResponse{
		Receipt:    utils.ToPBParsedReceipt(data),
		Validation: utils.ToPBValidation(validation),
		Formatted:  fields.FormatForSharing(data),
	}, nil
}

// SubmitText stores the raw text as a queued job and hands it to the workers.
func (s *ExtractionService) SubmitText(ctx context.Context, req *receiptspb.SubmitTextRequest) (*receiptspb.SubmitTextResponse, error) {
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	job, err := s.jobsRepo.Create(ctx, req.GetText())
	if err != nil {
		s.logger.Error("failed to create extract job", "error", err)
		return nil, status.Errorf(codes.Internal, "create job: %v", err)
	}
	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("failed to enqueue extract job", "job_id", job.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue job: %v", err)
	}

	s.logger.Info("text submitted for extraction", "job_id", job.ID)
	return &receiptspb.SubmitTextResponse{
		JobId:  job.ID.String(),
		Status: job.Status,
	}, nil
}

func (s *ExtractionService) GetJob(ctx context.Context, req *receiptspb.GetJobRequest) (*receiptspb.GetJobResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		s.logger.Error("invalid job_id format", "job_id", req.GetJobId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		s.logger.Error("failed to get job", "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.NotFound, "job %s: %v", jobID, err)
	}
	return &receiptspb.GetJobResponse{Job: utils.ToPBJob(job)}, nil
}
