package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snapreceipt/receiptd/gen/ent"
	"github.com/snapreceipt/receiptd/gen/ent/receipt"
	"github.com/snapreceipt/receiptd/internal/entity"
	"github.com/snapreceipt/receiptd/internal/fields"
	"github.com/snapreceipt/receiptd/internal/utils"
)

// ListFilter narrows ListReceipts by creation window and validity.
type ListFilter struct {
	From      *time.Time
	To        *time.Time
	OnlyValid bool
}

type ReceiptRepository interface {
	SaveFromFields(ctx context.Context, data fields.ReceiptData, isValid bool) (*entity.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListReceipts(ctx context.Context, filter ListFilter) ([]*entity.Receipt, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{
		client: client,
		logger: logger,
	}
}

func (r *receiptRepository) SaveFromFields(ctx context.Context, data fields.ReceiptData, isValid bool) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Create().
		SetNillableVendor(data.Vendor).
		SetNillableTxDate(data.Date).
		SetNillableTotal(data.Total).
		SetIsValid(isValid).
		SetRawText(data.RawText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save receipt", "error", err)
		return nil, err
	}
	r.logger.Info("receipt saved", "receipt_id", rec.ID, "is_valid", isValid)
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get receipt", "receipt_id", id, "error", err)
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) ListReceipts(ctx context.Context, filter ListFilter) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query()
	if filter.From != nil {
		q = q.Where(receipt.CreatedAtGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(receipt.CreatedAtLTE(*filter.To))
	}
	if filter.OnlyValid {
		q = q.Where(receipt.IsValid(true))
	}
	recs, err := q.Order(receipt.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec)
	}
	return result, nil
}
