package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVendorLexicon(t *testing.T) {
	t.Run("known chain wins", func(t *testing.T) {
		v, ok := ExtractVendor("Starbucks")
		require.True(t, ok)
		assert.Equal(t, "Starbucks", v)
	})

	t.Run("lexicon outranks line heuristics", func(t *testing.T) {
		v, ok := ExtractVendor("McDonald's India\nOrder #42\nThank you")
		require.True(t, ok)
		assert.Equal(t, "Mcdonald's", v)
	})

	t.Run("single intact word still matches multi-word entry", func(t *testing.T) {
		// OCR mangled "bhavan" but left "saravana" recognizable.
		v, ok := ExtractVendor("SARAVANA BHVAN\nChennai")
		require.True(t, ok)
		assert.Equal(t, "Saravana Bhavan", v)
	})
}

func TestExtractVendorBusinessNameLines(t *testing.T) {
	t.Run("first plausible line wins", func(t *testing.T) {
		v, ok := ExtractVendor("Joe's Diner\nThanks for visiting")
		require.True(t, ok)
		assert.Equal(t, "Joe's Diner", v)
	})

	t.Run("metadata lines are skipped", func(t *testing.T) {
		v, ok := ExtractVendor("GST 29ABCD\nSunrise Traders\nCounter 3")
		require.True(t, ok)
		assert.Equal(t, "Sunrise Traders", v)
	})

	t.Run("noise characters stripped from the name", func(t *testing.T) {
		v, ok := ExtractVendor("*Sunrise Traders*\nCounter 3")
		require.True(t, ok)
		assert.Equal(t, "Sunrise Traders", v)
	})
}

func TestExtractVendorLooseFallback(t *testing.T) {
	v, ok := ExtractVendor("Pendleton\n#9183\nTax Invoice")
	require.True(t, ok)
	assert.Equal(t, "Pendleton", v)
}

func TestExtractVendorNoMatch(t *testing.T) {
	_, ok := ExtractVendor("987654321\n999-123-4567")
	assert.False(t, ok)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Mcdonald's", TitleCase("McDonald's"))
	assert.Equal(t, "Big Bazaar", TitleCase("BIG BAZAAR"))
	assert.Equal(t, "", TitleCase("   "))
}
