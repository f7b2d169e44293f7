package parser

import "strings"

const summaryMaxLines = 9

// extractSummary collects the free text after a summary/profile/objective
// header, stopping at the next section or after summaryMaxLines lines.
func extractSummary(lines []string) string {
	start := findSection(lines, summaryHeaderRe)
	if start < 0 {
		return ""
	}

	var parts []string
	for i := start; i < len(lines) && len(parts) < summaryMaxLines; i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
