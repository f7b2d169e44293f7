package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
San Francisco, CA
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe
https://janedoe.dev

Summary
Software engineer with 7 years of experience building backend services in Go.

Experience
Senior Software Engineer
Acme Technologies Inc
Jan 2020 - Present
• Led migration of the billing platform to microservices
• Reduced p99 latency by 40%

Education
B.S. Computer Science
State University
2013 - 2017

Skills
Languages: Go, Python, English
Tools: Docker, Kubernetes
Juggling

Projects
TaskApp | React, Node | 2022
∗ Built a task tracker
https://taskapp.example.com

Certifications
AWS Certified Solutions Architect 2021
`

func TestParsePersonalInfo(t *testing.T) {
	data := Parse(sampleResume)

	info := data.PersonalInfo
	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "San Francisco, CA", info.Location)
	assert.Equal(t, "linkedin.com/in/janedoe", info.LinkedIn)
	assert.Equal(t, "github.com/janedoe", info.GitHub)
	assert.Equal(t, "https://janedoe.dev", info.Website)
}

func TestParseSummary(t *testing.T) {
	data := Parse(sampleResume)
	assert.Equal(t, "Software engineer with 7 years of experience building backend services in Go.", data.Summary)
}

func TestParseExperience(t *testing.T) {
	data := Parse(sampleResume)

	require.Len(t, data.Experience, 1)
	exp := data.Experience[0]
	assert.Equal(t, "Senior Software Engineer", exp.Title)
	assert.Equal(t, "Acme Technologies Inc", exp.Company)
	assert.Equal(t, "Jan 2020 - Present", exp.Duration)
	assert.Equal(t, "Led migration of the billing platform to microservices Reduced p99 latency by 40%", exp.Description)
}

func TestParseEducation(t *testing.T) {
	data := Parse(sampleResume)

	require.Len(t, data.Education, 1)
	edu := data.Education[0]
	assert.Equal(t, "B.S. Computer Science", edu.Degree)
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "2013 - 2017", edu.Duration)
}

func TestParseSkillsBuckets(t *testing.T) {
	data := Parse(sampleResume)

	assert.Equal(t, []string{"Go", "Python"}, data.Skills.Technical)
	assert.Equal(t, []string{"English"}, data.Skills.Languages)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, data.Skills.Tools)
	assert.Equal(t, []string{"Juggling"}, data.Skills.Other)
}

func TestParseProjects(t *testing.T) {
	data := Parse(sampleResume)

	require.Len(t, data.Projects, 1)
	p := data.Projects[0]
	assert.Equal(t, "TaskApp", p.Title)
	assert.Equal(t, []string{"React", "Node"}, p.Technologies)
	assert.Equal(t, "2022", p.Year)
	assert.Equal(t, "Built a task tracker", p.Description)
	assert.Equal(t, "https://taskapp.example.com", p.URL)
}

func TestParseCertifications(t *testing.T) {
	data := Parse(sampleResume)

	require.Len(t, data.Certifications, 1)
	assert.Equal(t, "AWS Certified Solutions Architect 2021", data.Certifications[0].Name)
	assert.Equal(t, "2021", data.Certifications[0].Year)
}

func TestParseEmptyInput(t *testing.T) {
	data := Parse("")

	assert.Equal(t, PersonalInfo{}, data.PersonalInfo)
	assert.Empty(t, data.Summary)
	assert.Empty(t, data.Experience)
	assert.Empty(t, data.Education)
	assert.Empty(t, data.Projects)
	assert.Empty(t, data.Certifications)
	assert.Empty(t, data.Achievements)
	assert.Empty(t, data.Skills.Technical)
}

func TestParseGarbageNeverPanics(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02",
		strings.Repeat("|", 5000),
		strings.Repeat("Experience\n", 100),
		"Skills\n" + strings.Repeat(",", 10000),
		"•••\n∗∗∗\n---",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Parse(in) })
	}
}

func TestParseMissingSectionsComeBackEmpty(t *testing.T) {
	data := Parse("John Smith\njohn@example.com\n")

	assert.Equal(t, "John Smith", data.PersonalInfo.Name)
	assert.Equal(t, "john@example.com", data.PersonalInfo.Email)
	assert.Empty(t, data.Summary)
	assert.Empty(t, data.Experience)
	assert.Empty(t, data.Projects)
}

func TestParseBareProjectTitle(t *testing.T) {
	data := Parse(`Projects
Weather Dashboard
• Shows hourly forecasts for saved cities
Inventory System
• Tracks stock across warehouses
`)

	require.Len(t, data.Projects, 2)
	assert.Equal(t, "Weather Dashboard", data.Projects[0].Title)
	assert.Equal(t, "Shows hourly forecasts for saved cities", data.Projects[0].Description)
	assert.Equal(t, "Inventory System", data.Projects[1].Title)
}

func TestParseSectionsTerminateAtNextHeader(t *testing.T) {
	data := Parse(`Summary
Backend developer.

Skills
Go, Docker

Education
B.S. Mathematics
`)

	assert.Equal(t, "Backend developer.", data.Summary)
	assert.Equal(t, []string{"Go"}, data.Skills.Technical)
	assert.Equal(t, []string{"Docker"}, data.Skills.Tools)
	require.Len(t, data.Education, 1)
	assert.Equal(t, "B.S. Mathematics", data.Education[0].Degree)
}

func TestParseDuplicateSkillsDeduplicated(t *testing.T) {
	data := Parse(`Skills
Go, go, GO, Python
`)

	assert.Equal(t, []string{"Go", "Python"}, data.Skills.Technical)
}
