package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePatterns is the ordered battery of recognizers. Every match of every
// pattern becomes a candidate; scoring picks the winner, and because scores
// compare with strict >, the first candidate seen at a given score survives.
var datePatterns = []*regexp.Regexp{
	// time-prefixed: "14:23 07/08/2025"
	regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?\s+(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
	// day-first month name: "07 Jul 2025", "7 July 24"
	regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{2,4})\b`),
	// numeric with separators: 07/08/2025, 7-8-25, 07.08.2025
	regexp.MustCompile(`\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})\b`),
	// ISO-like
	regexp.MustCompile(`\b(\d{4}-\d{1,2}-\d{1,2})\b`),
	// month-first: "July 15, 2025", "Jul 15 2025"
	regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+\d{2,4})\b`),
	// hyphenated month name: "15-Jul-2025"
	regexp.MustCompile(`(?i)\b(\d{1,2}-(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*-\d{2,4})\b`),
	// date immediately followed by time: "07/08/2025 14:23"
	regexp.MustCompile(`\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})\s+\d{1,2}:\d{2}`),
}

var (
	reDateSeparator = regexp.MustCompile(`[/\-.]`)
	reCanonicalDMY  = regexp.MustCompile(`^\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4}$`)
	reFourDigitYear = regexp.MustCompile(`\b\d{4}\b`)
	reTodayPhrase   = regexp.MustCompile(`(?i)\b(today|now|current date)\b`)
	reMonthToken    = regexp.MustCompile(`^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*$`)
	reDateSplit     = regexp.MustCompile(`[/\s]+`)
	reDayOrMonth    = regexp.MustCompile(`^\d{1,2}$`)
	reYear          = regexp.MustCompile(`^(\d{2}|\d{4})$`)
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// ExtractDate finds the best-scoring date-like substring in the text and
// normalizes it to DD/MM/YYYY. Reports false when nothing date-shaped exists
// and no "today" phrase is present.
func ExtractDate(text string) (string, bool) {
	best := ""
	bestScore := 0
	for _, re := range datePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := strings.TrimSpace(m[1])
			if score := scoreDateCandidate(cand); score > bestScore {
				best, bestScore = cand, score
			}
		}
	}
	if best != "" {
		return formatDate(best), true
	}
	if reTodayPhrase.MatchString(text) {
		now := time.Now()
		return fmt.Sprintf("%02d/%02d/%04d", now.Day(), int(now.Month()), now.Year()), true
	}
	return "", false
}

func scoreDateCandidate(cand string) int {
	score := 1
	if reDateSeparator.MatchString(cand) {
		score += 2
	}
	if reFourDigitYear.MatchString(cand) {
		score += 2
	}
	if reCanonicalDMY.MatchString(cand) {
		score += 3
	}
	return score
}

// formatDate normalizes a matched date to DD/MM/YYYY. Best-effort: any shape
// it cannot make sense of comes back unmodified rather than erroring.
func formatDate(raw string) string {
	s := strings.ReplaceAll(raw, ",", " ")
	s = reDateSeparator.ReplaceAllString(s, "/")

	parts := reDateSplit.Split(strings.TrimSpace(s), -1)
	for i, p := range parts {
		key := strings.ToLower(strings.TrimSuffix(p, "."))
		if reMonthToken.MatchString(key) {
			parts[i] = monthNumbers[key[:3]]
		}
	}
	if len(parts) != 3 {
		return raw
	}
	dayStr, monthStr, yearStr := parts[0], parts[1], parts[2]
	if !reDayOrMonth.MatchString(dayStr) || !reDayOrMonth.MatchString(monthStr) || !reYear.MatchString(yearStr) {
		return raw
	}

	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	if len(yearStr) == 2 {
		year = time.Now().Year()/100*100 + year
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}
