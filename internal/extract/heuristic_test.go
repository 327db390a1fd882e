package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicAdapterExtractFields(t *testing.T) {
	a := NewHeuristicAdapter(nil)

	t.Run("normalizes before extracting", func(t *testing.T) {
		data, err := a.ExtractFields(context.Background(), "Joe's Diner\r\n\n\n\nTotal   $42.50")
		require.NoError(t, err)
		require.NotNil(t, data.Vendor)
		assert.Equal(t, "Joe's Diner", *data.Vendor)
		require.NotNil(t, data.Total)
		assert.Equal(t, "$42.50", *data.Total)
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := a.ExtractFields(ctx, "Joe's Diner")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
