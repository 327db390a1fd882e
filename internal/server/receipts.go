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
	"github.com/snapreceipt/receiptd/internal/repository"
	"github.com/snapreceipt/receiptd/internal/utils"
)

type ReceiptService struct {
	receiptspb.UnimplementedReceiptsServiceServer
	receiptRepo repository.ReceiptRepository
	logger      *slog.Logger
}

func NewReceiptService(receiptRepo repository.ReceiptRepository, logger *slog.Logger) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		logger:      logger,
	}
}

func (s *ReceiptService) GetReceipt(ctx context.Context, req *receiptspb.GetReceiptRequest) (*receiptspb.GetReceiptResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetReceiptId()))
	if err != nil {
		s.logger.Error("invalid receipt_id format", "receipt_id", req.GetReceiptId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "receipt_id must be a UUID")
	}

	rec, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get receipt", "receipt_id", id, "error", err)
		return nil, status.Errorf(codes.NotFound, "receipt %s: %v", id, err)
	}
	return &receiptspb.GetReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptService) ListReceipts(ctx context.Context, req *receiptspb.ListReceiptsRequest) (*receiptspb.ListReceiptsResponse, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		// inclusive of the whole day
		end := to.Add(24*time.Hour - time.Nanosecond)
		toDate = &end
	}

	s.logger.Info("listing receipts", "from_date", fromDate, "to_date", toDate, "only_valid", req.GetOnlyValid())
	recs, err := s.receiptRepo.ListReceipts(ctx, repository.ListFilter{
		From:      fromDate,
		To:        toDate,
		OnlyValid: req.GetOnlyValid(),
	})
	if err != nil {
		s.logger.Error("failed to list receipts", "error", err)
		return nil, status.Errorf(codes.Internal, "list receipts: %v", err)
	}
	s.logger.Info("receipts listed successfully", "count", len(recs))

	out := make([]*receiptspb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &receiptspb.ListReceiptsResponse{Receipts: out}, nil
}
