package fields

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// totalPattern pairs one amount recognizer with a fixed priority weight.
type totalPattern struct {
	re       *regexp.Regexp
	priority int
}

// totalPatterns run most-specific first. The bare-number fallback sits at the
// bottom so it only wins when nothing labeled is present anywhere.
var totalPatterns = []totalPattern{
	{regexp.MustCompile(`(?i)(?:balance\s+due|total|net\s+amount|amount\s+payable|tendered)\s*:?\s*\$?\s*(\d[\d,\s]*(?:\.\d{1,2})?)`), 10},
	{regexp.MustCompile(`\$\s*(\d[\d,]*(?:\.\d{1,2})?)`), 9},
	{regexp.MustCompile(`(?i)total\s*:?\s*[$₹]\s*(\d[\d,]*(?:\.\d{1,2})?)`), 8},
	{regexp.MustCompile(`(?i)(?:amount\s+(?:due|payable)|balance\s+due)\s*:?\s*₹?\s*(\d[\d,]*(?:\.\d{1,2})?)`), 7},
	{regexp.MustCompile(`(?i)[$₹]\s*(\d[\d,]*(?:\.\d{1,2})?)(?:\s*(?:total|amount|due))?`), 6},
	{regexp.MustCompile(`(?i)(?:rs\.?|rupees|inr)\s*:?\s*(\d[\d,]*(?:\.\d{1,2})?)`), 5},
	{regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d{1,2})?)\s*(?:\$|₹|rs\b|rupees|inr|aud|usd)`), 4},
	{regexp.MustCompile(`\b(\d{2,}(?:\.\d{1,2})?)\b`), 1},
}

var (
	reDollarHint  = regexp.MustCompile(`(?i)aud|usd|cad|balance\s+due|tendered`)
	amountCleaner = strings.NewReplacer(",", "", " ", "")
)

type amountCandidate struct {
	amount float64
	raw    string // cleaned digits, decimal point preserved
	score  int
}

// ExtractTotal picks the most plausible grand-total amount in the text and
// renders it with an inferred currency symbol. Reports false when no
// positive amount matches any tier.
func ExtractTotal(text string) (string, bool) {
	var best *amountCandidate
	cutoff := int(float64(len(text)) * 0.7)

	for _, tp := range totalPatterns {
		for _, loc := range tp.re.FindAllStringSubmatchIndex(text, -1) {
			rawMatch := text[loc[0]:loc[1]]
			cleaned := amountCleaner.Replace(text[loc[2]:loc[3]])
			amount, err := strconv.ParseFloat(cleaned, 64)
			if err != nil || math.IsNaN(amount) || amount <= 0 {
				continue
			}

			score := tp.priority
			if strings.Contains(rawMatch, ".") {
				score += 2
			}
			if amount >= 10 && amount <= 100000 { // typical receipt range
				score += 3
			}
			if math.Mod(amount, 5) == 0 {
				score++
			}
			if loc[0] >= cutoff { // totals cluster near the end
				score += 2
			}

			c := amountCandidate{amount: amount, raw: cleaned, score: score}
			if best == nil || c.score > best.score || (c.score == best.score && c.amount > best.amount) {
				best = &c
			}
		}
	}
	if best == nil {
		return "", false
	}
	return renderAmount(*best, inferCurrencySymbol(text)), true
}

func inferCurrencySymbol(text string) string {
	if strings.Contains(text, "$") || reDollarHint.MatchString(text) {
		return "$"
	}
	return "₹"
}

// renderAmount keeps the matched amount's own precision: an amount written
// without cents stays an integer, anything with a decimal point renders with
// two places.
func renderAmount(c amountCandidate, symbol string) string {
	if strings.Contains(c.raw, ".") {
		return fmt.Sprintf("%s%.2f", symbol, c.amount)
	}
	return fmt.Sprintf("%s%.0f", symbol, c.amount)
}
