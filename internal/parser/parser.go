package parser

import (
	"log"
	"strings"
)

// PersonalInfo holds contact fields pulled from the resume header area.
// Empty string means the field was not found.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Details     string `json:"details,omitempty"`
}

type Skills struct {
	Technical []string `json:"technical"`
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
	Other     []string `json:"other"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Year         string   `json:"year,omitempty"`
}

type Certification struct {
	Name string `json:"name"`
	Year string `json:"year,omitempty"`
}

type Achievement struct {
	Description string `json:"description"`
	Year        string `json:"year,omitempty"`
}

// ResumeData is the structured result of parsing one resume. Sections that
// were missing or unreadable come back as empty collections, never nil maps
// or errors.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         Skills          `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
}

// Parse extracts structured resume data from free text. Resume formatting is
// uncontrolled input, so Parse never fails: any panic inside an extractor is
// swallowed and the zero-value ResumeData is returned instead.
func Parse(rawText string) (data ResumeData) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("resume parse recovered: %v", r)
			data = ResumeData{}
		}
	}()

	lines := splitLines(rawText)

	data.PersonalInfo = extractPersonalInfo(lines)
	data.Summary = extractSummary(lines)
	data.Experience = extractExperience(lines)
	data.Education = extractEducation(lines)
	data.Skills = extractSkills(lines)
	data.Projects = extractProjects(lines)
	data.Certifications = extractCertifications(lines)
	data.Achievements = extractAchievements(lines)

	return data
}

// splitLines normalizes line endings and trims each line. Empty lines are
// kept so extractors can see section gaps.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
