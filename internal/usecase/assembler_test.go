package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/fadilmartias/portfolio-gen/internal/parser"
	"github.com/fadilmartias/portfolio-gen/internal/scorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEnhancer struct {
	enabled bool
	text    string
	err     error
	calls   int
}

func (s *stubEnhancer) Enabled() bool { return s.enabled }

func (s *stubEnhancer) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	s.calls++
	return s.text, s.err
}

func fixedScorer() *scorer.Scorer {
	return &scorer.Scorer{Now: func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}}
}

func githubProjects(n int) []model.GitHubProject {
	projects := make([]model.GitHubProject, n)
	for i := range projects {
		projects[i] = model.GitHubProject{
			Name:     fmt.Sprintf("repo-%d", i),
			FullName: fmt.Sprintf("jane/repo-%d", i),
			// descending stars so input order matches rank order
			Stars: n - i,
		}
	}
	return projects
}

func resumeWithProjects(titles ...string) *parser.ResumeData {
	data := &parser.ResumeData{}
	for _, title := range titles {
		data.Projects = append(data.Projects, parser.Project{Title: title})
	}
	return data
}

func TestAssembleDisplayOrderRangesAreDisjoint(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	gh := &model.GitHubData{Projects: githubProjects(6)}
	resume := resumeWithProjects("Alpha", "Beta")

	result := a.Assemble(context.Background(), model.Profile{}, gh, resume)

	require.Len(t, result.Projects, 8)
	for i := 0; i < 6; i++ {
		p := result.Projects[i]
		assert.Equal(t, model.SourcePlatformGitHub, p.SourcePlatform)
		assert.Equal(t, i, p.DisplayOrder)
	}
	for i := 6; i < 8; i++ {
		p := result.Projects[i]
		assert.Equal(t, model.SourcePlatformResume, p.SourcePlatform)
		assert.Equal(t, model.ResumeProjectOrderBase+(i-6), p.DisplayOrder)
	}
}

func TestAssembleFeaturedFlags(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	gh := &model.GitHubData{Projects: githubProjects(6)}
	resume := resumeWithProjects("A", "B", "C", "D")

	result := a.Assemble(context.Background(), model.Profile{}, gh, resume)

	var featuredGitHub, featuredResume int
	for _, p := range result.Projects {
		if !p.IsFeatured {
			continue
		}
		switch p.SourcePlatform {
		case model.SourcePlatformGitHub:
			featuredGitHub++
		case model.SourcePlatformResume:
			featuredResume++
		}
	}
	assert.Equal(t, 4, featuredGitHub)
	assert.Equal(t, 3, featuredResume)
}

func TestAssembleGitHubProjectsRankedByScore(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	gh := &model.GitHubData{Projects: []model.GitHubProject{
		{Name: "small", FullName: "jane/small", Stars: 1},
		{Name: "big", FullName: "jane/big", Stars: 50},
	}}

	result := a.Assemble(context.Background(), model.Profile{}, gh, nil)

	require.Len(t, result.Projects, 2)
	assert.Equal(t, "jane/big", result.Projects[0].SourceID)
	assert.Equal(t, 0, result.Projects[0].DisplayOrder)
	assert.Equal(t, "jane/small", result.Projects[1].SourceID)
}

func TestAssembleResumeSourceIDsDeduplicated(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	resume := resumeWithProjects("TaskApp", "TaskApp")
	result := a.Assemble(context.Background(), model.Profile{}, nil, resume)

	require.Len(t, result.Projects, 2)
	assert.Equal(t, "TaskApp", result.Projects[0].SourceID)
	assert.Equal(t, "TaskApp-1", result.Projects[1].SourceID)
}

func TestAssembleProjectTechnologies(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	gh := &model.GitHubData{Projects: []model.GitHubProject{
		{
			Name:      "enriched",
			FullName:  "jane/enriched",
			Language:  "Go",
			Languages: []string{"Go", "TypeScript"},
			Topics:    []string{"go", "cli"},
		},
		{
			Name:     "plain",
			FullName: "jane/plain",
			Language: "Rust",
		},
	}}

	result := a.Assemble(context.Background(), model.Profile{}, gh, nil)

	byID := map[string][]string{}
	for _, p := range result.Projects {
		byID[p.SourceID] = p.Technologies
	}
	// topic "go" dedupes against language "Go"
	assert.Equal(t, []string{"Go", "TypeScript", "cli"}, byID["jane/enriched"])
	assert.Equal(t, []string{"Rust"}, byID["jane/plain"])
}

func TestMergeSkillsUnionAndCap(t *testing.T) {
	resume := &parser.ResumeData{
		Skills: parser.Skills{
			Technical: []string{"go", "Python"},
			Languages: []string{"English"},
			Tools:     []string{"Docker"},
			Other:     []string{"Juggling"},
		},
	}

	merged := mergeSkills([]string{"Go", "TypeScript"}, resume)

	// GitHub first, case-insensitive dedupe, "other" bucket excluded.
	assert.Equal(t, []string{"Go", "TypeScript", "Python", "English", "Docker"}, merged)

	var many []string
	for i := 0; i < 40; i++ {
		many = append(many, fmt.Sprintf("skill-%d", i))
	}
	assert.Len(t, mergeSkills(many, nil), 25)
}

func TestAssembleFallbackTextWithoutEnhancer(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	result := a.Assemble(context.Background(), model.Profile{}, nil, nil)

	assert.NotEmpty(t, result.Content.Bio)
	assert.NotEmpty(t, result.Content.Summary)
}

func TestAssemblePrefersProfileTextOverDefaults(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	profile := model.Profile{Bio: "My bio", Summary: "My summary"}
	result := a.Assemble(context.Background(), profile, nil, nil)

	assert.Equal(t, "My bio", result.Content.Bio)
	assert.Equal(t, "My summary", result.Content.Summary)
}

func TestAssembleUsesEnhancerWhenEnabled(t *testing.T) {
	enhancer := &stubEnhancer{enabled: true, text: "Enhanced text"}
	a := NewAssembler(enhancer, fixedScorer())

	result := a.Assemble(context.Background(), model.Profile{Bio: "Plain bio"}, nil, nil)

	assert.Equal(t, "Enhanced text", result.Content.Bio)
	assert.Equal(t, "Enhanced text", result.Content.Summary)
	assert.Equal(t, 2, enhancer.calls, "one attempt each for bio and summary")
}

func TestAssembleEnhancerFailureFallsBack(t *testing.T) {
	enhancer := &stubEnhancer{enabled: true, err: errors.New("upstream down")}
	a := NewAssembler(enhancer, fixedScorer())

	profile := model.Profile{Bio: "Plain bio"}
	result := a.Assemble(context.Background(), profile, nil, nil)

	assert.Equal(t, "Plain bio", result.Content.Bio)
	assert.NotEmpty(t, result.Content.Summary)
	assert.Equal(t, 2, enhancer.calls, "failures must not trigger retries here")
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	gh := &model.GitHubData{Projects: githubProjects(5), Skills: []string{"Go"}}
	resume := resumeWithProjects("Alpha", "Beta")

	first := a.Assemble(context.Background(), model.Profile{}, gh, resume)
	second := a.Assemble(context.Background(), model.Profile{}, gh, resume)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Projects, second.Projects)
}

func TestAssembleCarriesResumeSections(t *testing.T) {
	a := NewAssembler(nil, fixedScorer())

	resume := &parser.ResumeData{
		Experience: []parser.Experience{
			{Title: "Engineer", Company: "Acme", Duration: "2020 - Present", Description: "Did things"},
		},
		Education: []parser.Education{
			{Degree: "B.S. CS", Institution: "State University"},
		},
	}

	result := a.Assemble(context.Background(), model.Profile{}, nil, resume)

	require.Len(t, result.Content.Experience, 1)
	assert.Equal(t, "Engineer", result.Content.Experience[0].Title)
	require.Len(t, result.Content.Education, 1)
	assert.Equal(t, "B.S. CS", result.Content.Education[0].Degree)
}
