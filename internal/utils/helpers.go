package utils

import (
	"time"

	"github.com/snapreceipt/receiptd/gen/ent"
	receiptspb "github.com/snapreceipt/receiptd/gen/proto/receipts/v1"
	"github.com/snapreceipt/receiptd/internal/entity"
	"github.com/snapreceipt/receiptd/internal/fields"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToReceipt(e *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:        e.ID,
		Vendor:    e.Vendor,
		TxDate:    e.TxDate,
		Total:     e.Total,
		IsValid:   e.IsValid,
		RawText:   e.RawText,
		CreatedAt: e.CreatedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:           e.ID,
		ReceiptID:    e.ReceiptID,
		RawText:      e.RawText,
		Status:       e.Status,
		ErrorMessage: e.ErrorMessage,
		SubmittedAt:  e.SubmittedAt,
		FinishedAt:   e.FinishedAt,
	}
}

func ToPBReceipt(r *entity.Receipt) *receiptspb.Receipt {
	return &receiptspb.Receipt{
		Id:        r.ID.String(),
		Vendor:    strOrEmpty(r.Vendor),
		TxDate:    strOrEmpty(r.TxDate),
		Total:     strOrEmpty(r.Total),
		IsValid:   r.IsValid,
		RawText:   r.RawText,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBParsedReceipt(d fields.ReceiptData) *receiptspb.ParsedReceipt {
	return &receiptspb.ParsedReceipt{
		Vendor:  strOrEmpty(d.Vendor),
		Date:    strOrEmpty(d.Date),
		Total:   strOrEmpty(d.Total),
		RawText: d.RawText,
	}
}

func ToPBValidation(v fields.ValidationResult) *receiptspb.Validation {
	return &receiptspb.Validation{
		IsValid: v.IsValid,
		Errors:  v.Errors,
	}
}

func ToPBJob(j *entity.ExtractJob) *receiptspb.Job {
	pb := &receiptspb.Job{
		Id:           j.ID.String(),
		Status:       j.Status,
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		SubmittedAt:  j.SubmittedAt.UTC().Format(time.RFC3339),
	}
	if j.ReceiptID != nil {
		pb.ReceiptId = j.ReceiptID.String()
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
