package parser

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/[^\s|,;)]+`)
	githubRe   = regexp.MustCompile(`(?i)(https?://)?(www\.)?github\.com/[^\s|,;)]+`)
	websiteRe  = regexp.MustCompile(`(?i)https?://[^\s|,;)]+`)

	// "City, Region" shaped lines near the top of the resume.
	locationRe = regexp.MustCompile(`^[A-Z][A-Za-z .'-]+,\s*[A-Z][A-Za-z .]*$`)
)

func extractPersonalInfo(lines []string) PersonalInfo {
	text := strings.Join(lines, "\n")

	info := PersonalInfo{
		Email:    emailRe.FindString(text),
		Phone:    phoneRe.FindString(text),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}

	// A generic URL only counts as a personal website when it is not the
	// linkedin/github match again.
	for _, url := range websiteRe.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		info.Website = url
		break
	}

	info.Name = extractName(lines)
	info.Location = extractLocation(lines)
	return info
}

// extractLocation looks for a "City, Region" line among the first few lines,
// skipping contact lines.
func extractLocation(lines []string) string {
	seen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if strings.Contains(line, "@") || phoneRe.MatchString(line) || websiteRe.MatchString(line) {
			continue
		}
		if locationRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractName picks the first plausible name from the top of the resume: one
// of the first 5 non-empty lines that is neither contact info nor a header
// fragment.
func extractName(lines []string) string {
	seen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if strings.Contains(line, "@") {
			continue
		}
		if phoneRe.MatchString(line) {
			continue
		}
		if len(line) < 3 || len(line) >= 50 {
			continue
		}
		return line
	}
	return ""
}
