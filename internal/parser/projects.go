package parser

import "strings"

// extractProjects reads the projects section. Two title shapes are
// recognized: pipe-delimited lines ("TaskApp | React, Node | 2022") and bare
// short lines without punctuation. Other lines extend the current project's
// description, except URLs which become its link.
func extractProjects(lines []string) []Project {
	start := findSection(lines, projectsHeaderRe)
	if start < 0 {
		return []Project{}
	}

	projects := []Project{}
	var current *Project

	flush := func() {
		if current != nil && current.Title != "" {
			current.Description = strings.TrimSpace(current.Description)
			projects = append(projects, *current)
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
		case strings.Contains(line, "|"):
			flush()
			current = parsePipedProject(line)
		case isProjectTitle(line):
			flush()
			current = &Project{Title: strings.TrimSpace(line)}
		case current != nil && websiteRe.MatchString(line):
			if current.URL == "" {
				current.URL = websiteRe.FindString(line)
			}
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

	return projects
}

// parsePipedProject splits "Title | tech, tech | 2022-or-url" lines.
func parsePipedProject(line string) *Project {
	parts := strings.Split(line, "|")
	p := &Project{Title: strings.TrimSpace(stripBullet(parts[0]))}

	if len(parts) > 1 {
		for _, tech := range strings.Split(parts[1], ",") {
			tech = strings.TrimSpace(tech)
			if tech != "" {
				p.Technologies = append(p.Technologies, tech)
			}
		}
	}
	for _, extra := range parts[2:] {
		extra = strings.TrimSpace(extra)
		switch {
		case websiteRe.MatchString(extra) && p.URL == "":
			p.URL = websiteRe.FindString(extra)
		case yearRe.MatchString(extra) && p.Year == "":
			p.Year = yearRe.FindString(extra)
		}
	}
	return p
}

// isProjectTitle treats short unpunctuated lines as new project titles.
// Bulleted lines are always detail lines, never titles.
func isProjectTitle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= 100 {
		return false
	}
	if hasBullet(trimmed) {
		return false
	}
	if strings.ContainsAny(trimmed, ",.") {
		return false
	}
	return len(strings.Fields(trimmed)) < 8
}

func hasBullet(line string) bool {
	for _, marker := range []string{"•", "*", "∗", "·", "-", "–", "—"} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
