package fields

import (
	"regexp"
	"strings"
)

var (
	reCRLF      = regexp.MustCompile(`\r\n?`)
	reTabRuns   = regexp.MustCompile(`\t+`)
	reSpaceRuns = regexp.MustCompile(` {2,}`)
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
	reRuleLines = regexp.MustCompile(`(?m)^\s*[_\-=*]{3,}\s*$`)
)

// NormalizeOCRText collapses noisy whitespace and strips the horizontal-rule
// lines OCR engines produce from receipt borders. Conservative: keeps line
// breaks and never reorders content.
func NormalizeOCRText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabRuns.ReplaceAllString(s, " ")
	s = reSpaceRuns.ReplaceAllString(s, " ")
	s = reRuleLines.ReplaceAllString(s, "")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
