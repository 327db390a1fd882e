package fields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptJSONSchema(t *testing.T) {
	schema := BuildReceiptJSONSchema()

	t.Run("extracted record validates", func(t *testing.T) {
		vendor := "Joe's Diner"
		data := ReceiptData{Vendor: &vendor, RawText: "Joe's Diner"}
		b, err := json.Marshal(data)
		require.NoError(t, err)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, b))
	})

	t.Run("null fields are allowed", func(t *testing.T) {
		b := []byte(`{"vendor":null,"date":null,"total":null,"rawText":""}`)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, b))
	})

	t.Run("missing required key rejected", func(t *testing.T) {
		b := []byte(`{"vendor":null,"date":null,"total":null}`)
		assert.Error(t, ValidateJSONAgainstSchema(schema, b))
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		b := []byte(`{"vendor":null,"date":null,"total":null,"rawText":"","extra":1}`)
		assert.Error(t, ValidateJSONAgainstSchema(schema, b))
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte("{")))
	})
}
