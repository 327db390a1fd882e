package fields

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	t.Run("canonical numeric date", func(t *testing.T) {
		d, ok := ExtractDate("Date: 07/08/2025")
		require.True(t, ok)
		assert.Equal(t, "07/08/2025", d)
	})

	t.Run("canonical shape outranks loose matches", func(t *testing.T) {
		d, ok := ExtractDate("Printed 15.04.24\nDate: 07/08/2025")
		require.True(t, ok)
		assert.Equal(t, "07/08/2025", d)
	})

	t.Run("month name with two digit year expands century", func(t *testing.T) {
		d, ok := ExtractDate("07 Jul 24")
		require.True(t, ok)
		want := fmt.Sprintf("07/07/%04d", time.Now().Year()/100*100+24)
		assert.Equal(t, want, d)
	})

	t.Run("hyphenated month name", func(t *testing.T) {
		d, ok := ExtractDate("15-Jul-2025")
		require.True(t, ok)
		assert.Equal(t, "15/07/2025", d)
	})

	t.Run("dot separators normalize to slashes", func(t *testing.T) {
		d, ok := ExtractDate("01.02.2024")
		require.True(t, ok)
		assert.Equal(t, "01/02/2024", d)
	})

	t.Run("time prefixed date", func(t *testing.T) {
		d, ok := ExtractDate("13:45 07/08/2025 register 2")
		require.True(t, ok)
		assert.Equal(t, "07/08/2025", d)
	})

	t.Run("iso shape falls back to the raw match", func(t *testing.T) {
		// Normalization is positional day/month/year; a leading 4-digit
		// year cannot be made sense of, so the raw match survives.
		d, ok := ExtractDate("2025-08-07")
		require.True(t, ok)
		assert.Equal(t, "2025-08-07", d)
	})

	t.Run("today phrase synthesizes current date", func(t *testing.T) {
		d, ok := ExtractDate("generated today")
		require.True(t, ok)
		now := time.Now()
		assert.Equal(t, fmt.Sprintf("%02d/%02d/%04d", now.Day(), int(now.Month()), now.Year()), d)
	})

	t.Run("no date", func(t *testing.T) {
		_, ok := ExtractDate("thanks, come again")
		assert.False(t, ok)
	})

	t.Run("idempotent", func(t *testing.T) {
		a, _ := ExtractDate("Date: 07/08/2025")
		b, _ := ExtractDate("Date: 07/08/2025")
		assert.Equal(t, a, b)
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/06/2025", formatDate("5/6/2025"))
	assert.Equal(t, "07/07/2024", formatDate("07 Jul 24"))
	assert.Equal(t, "garbage", formatDate("garbage"))
}
