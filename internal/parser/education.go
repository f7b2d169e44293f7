package parser

import (
	"regexp"
	"strings"
)

var (
	degreeRe      = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|associate|diploma|b\.?s\.?c?|m\.?s\.?c?|b\.?a\.?|m\.?a\.?|mba|b\.?tech|m\.?tech|b\.?e\.?)\b`)
	institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|polytechnic|academy|school)\b`)
)

// extractEducation mirrors the experience state machine: degree lines open an
// entry, institution lines attach, duration lines fill Duration, the rest
// lands in Details.
func extractEducation(lines []string) []Education {
	start := findSection(lines, educationHeaderRe)
	if start < 0 {
		return []Education{}
	}

	entries := []Education{}
	var current *Education

	flush := func() {
		if current != nil && current.Degree != "" {
			current.Details = strings.TrimSpace(current.Details)
			entries = append(entries, *current)
		}
		current = nil
	}

	for i := start; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			break
		}

		switch {
		case degreeRe.MatchString(line):
			flush()
			current = &Education{Degree: line}
		case institutionRe.MatchString(line):
			if current == nil {
				current = &Education{Degree: line, Institution: line}
			} else if current.Institution == "" {
				current.Institution = line
			} else {
				flush()
				current = &Education{Degree: line, Institution: line}
			}
		case current != nil && current.Duration == "" && durationRe.MatchString(line) && len(line) < 60:
			current.Duration = line
		case current != nil && !isTrivial(line):
			text := stripBullet(line)
			if current.Details == "" {
				current.Details = text
			} else {
				current.Details += " " + text
			}
		}
	}
	flush()

	return entries
}
