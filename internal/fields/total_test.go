package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTotal(t *testing.T) {
	t.Run("dollar total", func(t *testing.T) {
		total, ok := ExtractTotal("TOTAL $35.46")
		require.True(t, ok)
		assert.Equal(t, "$35.46", total)
	})

	t.Run("rupee total keeps cents", func(t *testing.T) {
		total, ok := ExtractTotal("Total: ₹235.00")
		require.True(t, ok)
		assert.Equal(t, "₹235.00", total)
	})

	t.Run("whole amount renders without decimals", func(t *testing.T) {
		total, ok := ExtractTotal("Total: 650")
		require.True(t, ok)
		assert.Equal(t, "₹650", total)
	})

	t.Run("labeled amount beats line items", func(t *testing.T) {
		text := "Paneer Roll ₹120.00\nLassi ₹60.00\nTotal: ₹180.00\n"
		total, ok := ExtractTotal(text)
		require.True(t, ok)
		assert.Equal(t, "₹180.00", total)
	})

	t.Run("equal scores break toward the larger amount", func(t *testing.T) {
		total, ok := ExtractTotal("12.34 56.78")
		require.True(t, ok)
		assert.Equal(t, "₹56.78", total)
	})

	t.Run("rs label with thousands separator", func(t *testing.T) {
		total, ok := ExtractTotal("Rs. 1,250.50")
		require.True(t, ok)
		assert.Equal(t, "₹1250.50", total)
	})

	t.Run("balance due implies dollars", func(t *testing.T) {
		total, ok := ExtractTotal("Balance due: 500")
		require.True(t, ok)
		assert.Equal(t, "$500", total)
	})

	t.Run("bare number fallback", func(t *testing.T) {
		total, ok := ExtractTotal("serial 4521")
		require.True(t, ok)
		assert.Equal(t, "₹4521", total)
	})

	t.Run("zero amounts are discarded", func(t *testing.T) {
		_, ok := ExtractTotal("0.00")
		assert.False(t, ok)
	})

	t.Run("no amount", func(t *testing.T) {
		_, ok := ExtractTotal("thanks, come again")
		assert.False(t, ok)
	})
}
