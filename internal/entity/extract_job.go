package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractJob tracks one asynchronous parse of submitted receipt text.
type ExtractJob struct {
	ID           uuid.UUID  `json:"id"`
	ReceiptID    *uuid.UUID `json:"receipt_id,omitempty"`
	RawText      string     `json:"raw_text"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
