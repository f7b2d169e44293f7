package parser

import (
	"regexp"
	"strings"
)

// Section header triggers. Each extractor scans for its own trigger and stops
// at the next recognized header, so section order in the resume is free.
var (
	summaryHeaderRe        = regexp.MustCompile(`(?i)^(summary|profile|objective|about|overview)\b`)
	experienceHeaderRe     = regexp.MustCompile(`(?i)^(experience|employment|work history)\b`)
	educationHeaderRe      = regexp.MustCompile(`(?i)^(education|academic|university|college|degree|school)\b`)
	skillsHeaderRe         = regexp.MustCompile(`(?i)^(skills|technologies|technical skills|programming|languages|tools)\b`)
	projectsHeaderRe       = regexp.MustCompile(`(?i)^(projects|portfolio|personal projects|side projects)\b`)
	certificationsHeaderRe = regexp.MustCompile(`(?i)^(certifications?|licenses?)\b`)
	achievementsHeaderRe   = regexp.MustCompile(`(?i)^(achievements?|awards?|honors?)\b`)

	// anyHeaderRe terminates whatever section is being collected.
	anyHeaderRe = regexp.MustCompile(`(?i)^(experience|employment|work history|education|skills|technologies|projects|portfolio|certifications?|achievements?|awards?|summary|objective|profile|about|overview)\b`)

	yearRe = regexp.MustCompile(`(19|20)\d{2}`)
)

// isSectionHeader reports whether line ends the current section. Very short
// lines are treated as separators too.
func isSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if len(trimmed) < 3 {
		return true
	}
	return anyHeaderRe.MatchString(trimmed)
}

// findSection returns the index of the first line after the header matched by
// re, or -1 when the section is absent.
func findSection(lines []string, re *regexp.Regexp) int {
	for i, line := range lines {
		if re.MatchString(line) {
			return i + 1
		}
	}
	return -1
}

// stripBullet removes a leading list marker from a line.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "•*∗·-–— \t"))
}

// isTrivial reports lines too short to carry content.
func isTrivial(line string) bool {
	return len(strings.TrimSpace(line)) < 3
}
