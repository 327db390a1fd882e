package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReceiptDataEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t\n"} {
		data := ExtractReceiptData(in)
		assert.Nil(t, data.Vendor)
		assert.Nil(t, data.Date)
		assert.Nil(t, data.Total)
		assert.Equal(t, "", data.RawText)
	}
}

func TestExtractReceiptDataEndToEnd(t *testing.T) {
	text := "McDonald's India\nDate: 07/08/2025\nBig Mac Meal - ₹350.00\nTotal: ₹649.00\nThank you!"
	data := ExtractReceiptData(text)

	require.NotNil(t, data.Vendor)
	assert.Equal(t, "Mcdonald's", *data.Vendor)
	require.NotNil(t, data.Date)
	assert.Equal(t, "07/08/2025", *data.Date)
	require.NotNil(t, data.Total)
	assert.Equal(t, "₹649.00", *data.Total)
	assert.Equal(t, text, data.RawText)

	result := ValidateReceiptData(data)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestExtractReceiptDataIsIdempotent(t *testing.T) {
	text := "Joe's Diner\nDate: 01/02/2024\nTotal $42.50"
	assert.Equal(t, ExtractReceiptData(text), ExtractReceiptData(text))
}

func TestExtractReceiptDataTrimsRawText(t *testing.T) {
	data := ExtractReceiptData("  Joe's Diner\nTotal $42.50  \n")
	assert.Equal(t, "Joe's Diner\nTotal $42.50", data.RawText)
}

func TestValidateReceiptData(t *testing.T) {
	vendor, total := "Joe's Diner", "$42.50"
	result := ValidateReceiptData(ReceiptData{Vendor: &vendor, Total: &total})
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Date not found"}, result.Errors)

	result = ValidateReceiptData(ReceiptData{})
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Vendor not found", "Date not found", "Total not found"}, result.Errors)
}

func TestFormatForSharing(t *testing.T) {
	t.Run("placeholders for missing fields", func(t *testing.T) {
		got := FormatForSharing(ReceiptData{})
		assert.Equal(t, "Receipt Details\nStore: Unknown Store\nDate: Unknown Date\nTotal: Unknown Amount", got)
	})

	t.Run("extracted fields rendered verbatim", func(t *testing.T) {
		vendor, date, total := "Mcdonald's", "07/08/2025", "₹649.00"
		got := FormatForSharing(ReceiptData{Vendor: &vendor, Date: &date, Total: &total})
		assert.Equal(t, "Receipt Details\nStore: Mcdonald's\nDate: 07/08/2025\nTotal: ₹649.00", got)
	})
}
