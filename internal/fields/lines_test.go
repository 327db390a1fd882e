package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	t.Run("drops blanks and trims", func(t *testing.T) {
		got := SplitLines("  Corner Shop  \n\n   \nThanks\t\n")
		assert.Equal(t, []string{"Corner Shop", "Thanks"}, got)
	})

	t.Run("preserves order", func(t *testing.T) {
		got := SplitLines("a\nb\nc")
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("handles CRLF", func(t *testing.T) {
		got := SplitLines("one\r\ntwo")
		assert.Equal(t, []string{"one", "two"}, got)
	})

	t.Run("empty input yields empty sequence", func(t *testing.T) {
		assert.Empty(t, SplitLines(""))
		assert.Empty(t, SplitLines("   \n  \n"))
	})
}

func TestNormalizeOCRText(t *testing.T) {
	in := "RECEIPT\r\n\t\tItem   A\n\n\n\n----------\nTotal 20"
	got := NormalizeOCRText(in)
	assert.Equal(t, "RECEIPT\n Item A\n\nTotal 20", got)
}
