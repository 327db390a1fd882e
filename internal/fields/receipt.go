package fields

import (
	"fmt"
	"strings"
)

// ReceiptData is the structured record extracted from one receipt text.
// Vendor, Date and Total are nil when no pattern matched; absence is a valid
// terminal state communicated to the caller, not an error. RawText always
// carries the trimmed input verbatim.
type ReceiptData struct {
	Vendor  *string `json:"vendor"`
	Date    *string `json:"date"`
	Total   *string `json:"total"`
	RawText string  `json:"rawText"`
}

// ValidationResult reports which fields extraction could not fill.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

const (
	placeholderVendor = "Unknown Store"
	placeholderDate   = "Unknown Date"
	placeholderTotal  = "Unknown Amount"
)

// ExtractReceiptData runs the three extractors independently over the same
// trimmed text and assembles the record. The extractors are pure functions
// of the input; none sees another's output.
func ExtractReceiptData(text string) ReceiptData {
	trimmed := strings.TrimSpace(text)
	data := ReceiptData{RawText: trimmed}
	if trimmed == "" {
		return data
	}
	if v, ok := ExtractVendor(trimmed); ok {
		data.Vendor = &v
	}
	if d, ok := ExtractDate(trimmed); ok {
		data.Date = &d
	}
	if t, ok := ExtractTotal(trimmed); ok {
		data.Total = &t
	}
	return data
}

// ValidateReceiptData flags missing fields in vendor, date, total order.
func ValidateReceiptData(data ReceiptData) ValidationResult {
	var errs []string
	if data.Vendor == nil {
		errs = append(errs, "Vendor not found")
	}
	if data.Date == nil {
		errs = append(errs, "Date not found")
	}
	if data.Total == nil {
		errs = append(errs, "Total not found")
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// FormatForSharing renders the fixed human-readable summary handed to
// external share targets. Missing fields fall back to placeholder text.
func FormatForSharing(data ReceiptData) string {
	vendor, date, total := placeholderVendor, placeholderDate, placeholderTotal
	if data.Vendor != nil {
		vendor = *data.Vendor
	}
	if data.Date != nil {
		date = *data.Date
	}
	if data.Total != nil {
		total = *data.Total
	}
	return fmt.Sprintf("Receipt Details\nStore: %s\nDate: %s\nTotal: %s", vendor, date, total)
}
