package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents a parsed receipt for data transfer between layers.
// Vendor, TxDate and Total are nil when the corresponding field could not
// be extracted from the source text.
type Receipt struct {
	ID        uuid.UUID `json:"id"`
	Vendor    *string   `json:"vendor,omitempty"`
	TxDate    *string   `json:"tx_date,omitempty"`
	Total     *string   `json:"total,omitempty"`
	IsValid   bool      `json:"is_valid"`
	RawText   string    `json:"raw_text"`
	CreatedAt time.Time `json:"created_at"`
}
