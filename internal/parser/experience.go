package parser

import (
	"regexp"
	"strings"
)

var (
	jobTitleRe = regexp.MustCompile(`(?i)\b(engineer|developer|programmer|architect|manager|director|lead|analyst|consultant|designer|administrator|specialist|intern|scientist|devops|cto|ceo|founder)\b`)
	companyRe  = regexp.MustCompile(`(?i)\b(inc|corp|llc|ltd|gmbh|company|technologies|solutions|systems|labs|software|group|agency|studio)\b\.?`)
	durationRe = regexp.MustCompile(`(?i)((19|20)\d{2}|present|current|jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(tember)?|oct(ober)?|nov(ember)?|dec(ember)?)`)
)

// extractExperience walks the experience section as a small state machine:
// job-title or company lines open a new entry, duration lines attach to the
// current entry, everything else accumulates into its description.
func extractExperience(lines []string) []Experience {
	start := findSection(lines, experienceHeaderRe)
	if start < 0 {
		return []Experience{}
	}

	entries := []Experience{}
	var current *Experience

	flush := func() {
		if current != nil && current.Title != "" {
			current.Description = strings.TrimSpace(current.Description)
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
		case jobTitleRe.MatchString(line):
			flush()
			current = &Experience{Title: line}
		case companyRe.MatchString(line):
			if current == nil || current.Company != "" {
				flush()
				current = &Experience{Title: line, Company: line}
			} else {
				current.Company = line
			}
		case current != nil && current.Duration == "" && durationRe.MatchString(line) && len(line) < 60:
			current.Duration = line
		case current != nil && !isTrivial(line):
			text := stripBullet(line)
			if current.Description == "" {
				current.Description = text
			} else {
				current.Description += " " + text
			}
		}
	}
	flush()

	return entries
}
