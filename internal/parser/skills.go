package parser

import "strings"

const skillsMaxLines = 19

// Classification vocabularies. Lookup is case-insensitive on the trimmed
// token; anything unrecognized falls into the Other bucket.
var technicalSkills = wordSet(
	"go", "golang", "python", "java", "javascript", "typescript", "c", "c++", "c#",
	"ruby", "php", "rust", "kotlin", "swift", "scala", "r", "perl", "dart", "elixir",
	"haskell", "lua", "objective-c", "sql", "html", "css", "sass", "graphql",
	"react", "react native", "angular", "vue", "svelte", "next.js", "nextjs", "node",
	"node.js", "nodejs", "express", "django", "flask", "rails", "spring", "laravel",
	".net", "fastapi", "fiber",
)

var spokenLanguages = wordSet(
	"english", "spanish", "french", "german", "italian", "portuguese", "dutch",
	"russian", "mandarin", "chinese", "cantonese", "japanese", "korean", "hindi",
	"bengali", "urdu", "arabic", "turkish", "indonesian", "malay", "vietnamese",
	"thai", "tagalog", "polish", "swedish",
)

var toolSkills = wordSet(
	"docker", "kubernetes", "git", "github", "gitlab", "jenkins", "terraform",
	"ansible", "aws", "azure", "gcp", "google cloud", "linux", "nginx", "apache",
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
	"kafka", "rabbitmq", "grafana", "prometheus", "jira", "figma", "photoshop",
	"webpack", "vite", "bazel", "helm",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// extractSkills reads up to skillsMaxLines lines after the skills header,
// splits them on common delimiters and buckets every token.
func extractSkills(lines []string) Skills {
	skills := Skills{
		Technical: []string{},
		Languages: []string{},
		Tools:     []string{},
		Other:     []string{},
	}

	start := findSection(lines, skillsHeaderRe)
	if start < 0 {
		return skills
	}

	read := 0
	for i := start; i < len(lines) && read < skillsMaxLines; i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			break
		}
		read++

		// "Languages: Go, Python" style labels are not skills themselves.
		if idx := strings.Index(line, ":"); idx >= 0 && idx < 30 {
			line = line[idx+1:]
		}

		for _, token := range splitSkillLine(line) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			key := strings.ToLower(token)
			switch {
			case technicalSkills[key]:
				skills.Technical = appendUnique(skills.Technical, token)
			case spokenLanguages[key]:
				skills.Languages = appendUnique(skills.Languages, token)
			case toolSkills[key]:
				skills.Tools = appendUnique(skills.Tools, token)
			default:
				skills.Other = appendUnique(skills.Other, token)
			}
		}
	}
	return skills
}

func splitSkillLine(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•'
	})
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return list
		}
	}
	return append(list, value)
}
