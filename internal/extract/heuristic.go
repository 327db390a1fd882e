package extract

import (
	"context"
	"log/slog"

	"github.com/snapreceipt/receiptd/internal/fields"
)

// HeuristicAdapter adapts the rule-based field extraction to FieldExtractor.
type HeuristicAdapter struct {
	logger *slog.Logger
}

func NewHeuristicAdapter(logger *slog.Logger) *HeuristicAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &HeuristicAdapter{logger: logger}
}

func (a *HeuristicAdapter) ExtractFields(ctx context.Context, text string) (fields.ReceiptData, error) {
	if err := ctx.Err(); err != nil {
		return fields.ReceiptData{}, err
	}
	normalized := fields.NormalizeOCRText(text)
	data := fields.ExtractReceiptData(normalized)
	a.logger.Debug("extracted fields",
		"bytes", len(text),
		"vendor_found", data.Vendor != nil,
		"date_found", data.Date != nil,
		"total_found", data.Total != nil,
	)
	return data, nil
}
