package extract

import (
	"context"

	"github.com/snapreceipt/receiptd/internal/fields"
)

// FieldExtractor is the parse stage seam: text -> structured receipt fields.
// The rule-based adapter is the only implementation today; the interface
// keeps the pipeline open to other extraction backends.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, text string) (fields.ReceiptData, error)
}
