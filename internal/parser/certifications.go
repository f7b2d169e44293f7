package parser

// extractCertifications turns every non-trivial line in the certifications
// section into one entry, pulling out a year token when present.
func extractCertifications(lines []string) []Certification {
	certs := []Certification{}

	start := findSection(lines, certificationsHeaderRe)
	if start < 0 {
		return certs
	}

	for i := start; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			break
		}
		if isTrivial(line) {
			continue
		}
		certs = append(certs, Certification{
			Name: stripBullet(line),
			Year: yearRe.FindString(line),
		})
	}
	return certs
}

func extractAchievements(lines []string) []Achievement {
	achievements := []Achievement{}

	start := findSection(lines, achievementsHeaderRe)
	if start < 0 {
		return achievements
	}

	for i := start; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			break
		}
		if isTrivial(line) {
			continue
		}
		achievements = append(achievements, Achievement{
			Description: stripBullet(line),
			Year:        yearRe.FindString(line),
		})
	}
	return achievements
}
