package fields

import "strings"

// SplitLines breaks raw receipt text into ordered, trimmed, non-empty lines.
// Line order is significant downstream: the vendor search biases toward the
// top of the receipt and the total search toward the bottom.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
