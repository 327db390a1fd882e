package fields

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	maxBusinessNameLen = 40
	maxLooseNameLen    = 50
	businessNameLines  = 5
	looseNameLines     = 4
)

var (
	reHasLetter       = regexp.MustCompile(`[A-Za-z]`)
	reBusinessKeyword = regexp.MustCompile(`(?i)\b(restaurant|cafe|market|store|shop|hotel|bar|grill|bistro|box|departures)\b`)
	reNameNoise       = regexp.MustCompile(`[^a-zA-Z0-9\s&'-]`)

	// Lines that are receipt metadata rather than a business name.
	businessNameSkips = []*regexp.Regexp{
		regexp.MustCompile(`\d{3}[-\s]?\d{3,4}[-\s]?\d{3,4}`),    // phone numbers
		regexp.MustCompile(`(?i)\b(tax|invoice|receipt|bill)\b`), // document labels
		regexp.MustCompile(`\d{1,2}:\d{2}`),                      // time stamps
		regexp.MustCompile(`\d{6,}`),                             // long numeric runs
		regexp.MustCompile(`(?i)\b(gst|abn|phone|ph|tel)\b`),     // registration and phone labels
	}

	// Looser fallback filter for the top of the receipt.
	looseNameSkips = []*regexp.Regexp{
		regexp.MustCompile(`\d{3}[-\s]?\d{3,4}[-\s]?\d{3,4}`),
		regexp.MustCompile(`\d{6,}`),
		regexp.MustCompile(`\S+@\S+`),
		regexp.MustCompile(`(?i)(www\.|https?://|\.com|\.in\b)`),
		regexp.MustCompile(`(?i)\b(address|street|road|phone|tel|gst|abn|tax|invoice)\b`),
		regexp.MustCompile(`(?i)\b(date|time|total|amount|cash|change|balance)\b`),
	}
)

// ExtractVendor returns the most likely business name in the receipt text.
// The known-vendor lexicon takes priority, then a business-name shaped line
// near the top, then a loose first-lines fallback. Reports false when
// nothing matches.
func ExtractVendor(text string) (string, bool) {
	if v, ok := matchKnownVendor(text); ok {
		return v, true
	}
	lines := SplitLines(text)
	for i, line := range lines {
		if i >= businessNameLines {
			break
		}
		if looksLikeBusinessName(line) {
			return TitleCase(reNameNoise.ReplaceAllString(line, "")), true
		}
	}
	for i, line := range lines {
		if i >= looseNameLines {
			break
		}
		if likelyVendorName(line) {
			return TitleCase(line), true
		}
	}
	return "", false
}

// matchKnownVendor scans the whole text against the lexicon. For multi-word
// entries an exact substring hit wins; failing that, any single word longer
// than three characters counts, tolerating OCR corruption of the rest.
func matchKnownVendor(text string) (string, bool) {
	low := strings.ToLower(text)
	for _, entry := range vendorLexicon {
		if strings.Contains(low, entry) {
			return TitleCase(entry), true
		}
		words := strings.Fields(entry)
		if len(words) < 2 {
			continue
		}
		for _, w := range words {
			if len(w) > 3 && strings.Contains(low, w) {
				return TitleCase(entry), true
			}
		}
	}
	return "", false
}

func looksLikeBusinessName(line string) bool {
	for _, re := range businessNameSkips {
		if re.MatchString(line) {
			return false
		}
	}
	if !reHasLetter.MatchString(line) || len(line) > maxBusinessNameLen {
		return false
	}
	if reBusinessKeyword.MatchString(line) {
		return true
	}
	n := len(strings.Fields(line))
	return n >= 2 && n <= 5
}

func likelyVendorName(line string) bool {
	for _, re := range looseNameSkips {
		if re.MatchString(line) {
			return false
		}
	}
	return reHasLetter.MatchString(line) && len(line) <= maxLooseNameLen
}

// TitleCase upper-cases the first rune of each whitespace-separated word and
// lower-cases the rest ("McDonald's" -> "Mcdonald's").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
