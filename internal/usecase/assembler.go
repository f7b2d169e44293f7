package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/fadilmartias/portfolio-gen/internal/parser"
	"github.com/fadilmartias/portfolio-gen/internal/scorer"
	"github.com/fadilmartias/portfolio-gen/internal/service"
)

const (
	featuredGitHubProjects = 4
	featuredResumeProjects = 3
	maxSkills              = 25

	bioMaxTokens     = 150
	summaryMaxTokens = 250

	// Deterministic fallbacks. Downstream rendering relies on bio and
	// summary never being empty.
	defaultBio     = "Developer focused on building and shipping software."
	defaultSummary = "A developer with hands-on experience across personal and professional projects, always learning and building."
)

// Assembler turns the merged profile plus both project sources into the two
// persisted artifacts: the content document and the ordered project records.
type Assembler struct {
	enhancer service.TextEnhancer
	scorer   *scorer.Scorer
}

func NewAssembler(enhancer service.TextEnhancer, sc *scorer.Scorer) *Assembler {
	if sc == nil {
		sc = scorer.NewScorer()
	}
	if enhancer == nil {
		enhancer = service.NewDisabledEnhancer()
	}
	return &Assembler{enhancer: enhancer, scorer: sc}
}

type AssembleResult struct {
	Content  model.ContentDocument
	Projects []model.Project
}

// Assemble is deterministic apart from the enhancement calls: identical
// inputs produce identical project ordering and display orders.
func (a *Assembler) Assemble(ctx context.Context, profile model.Profile, gh *model.GitHubData, resume *parser.ResumeData) AssembleResult {
	var ghProjects []model.GitHubProject
	var stats model.SocialMetrics
	var ghSkills []string
	if gh != nil {
		ghProjects = gh.Projects
		stats = gh.SocialMetrics
		ghSkills = gh.Skills
	}

	projects := a.buildProjectRecords(ghProjects, resume)

	content := model.ContentDocument{
		Bio:          a.enhanceBio(ctx, profile),
		Summary:      a.enhanceSummary(ctx, profile, stats),
		Skills:       mergeSkills(ghSkills, resume),
		Experience:   experienceDocs(resume),
		Education:    educationDocs(resume),
		Stats:        stats,
		PersonalInfo: personalInfo(profile),
	}

	return AssembleResult{Content: content, Projects: projects}
}

// buildProjectRecords ranks GitHub projects into the low display-order range
// and appends resume projects, in source order, starting at the resume base.
func (a *Assembler) buildProjectRecords(ghProjects []model.GitHubProject, resume *parser.ResumeData) []model.Project {
	records := []model.Project{}

	for i, p := range a.scorer.Rank(ghProjects) {
		records = append(records, model.Project{
			SourcePlatform: model.SourcePlatformGitHub,
			SourceID:       p.FullName,
			Title:          p.Name,
			Description:    p.Description,
			Technologies:   projectTechnologies(p),
			Links: model.ProjectLinks{
				GitHub: p.HTMLURL,
				Demo:   p.Homepage,
			},
			Metrics:      projectMetrics(p),
			IsFeatured:   i < featuredGitHubProjects,
			DisplayOrder: i,
		})
	}

	if resume == nil {
		return records
	}

	seen := make(map[string]bool)
	for i, p := range resume.Projects {
		sourceID := p.Title
		if seen[sourceID] {
			sourceID = fmt.Sprintf("%s-%d", p.Title, i)
		}
		seen[sourceID] = true

		records = append(records, model.Project{
			SourcePlatform: model.SourcePlatformResume,
			SourceID:       sourceID,
			Title:          p.Title,
			Description:    p.Description,
			Technologies:   append([]string{}, p.Technologies...),
			Links: model.ProjectLinks{
				Live: p.URL,
			},
			IsFeatured:   i < featuredResumeProjects,
			DisplayOrder: model.ResumeProjectOrderBase + i,
		})
	}
	return records
}

// projectTechnologies prefers the enriched language breakdown, falls back to
// the primary language, and appends topics.
func projectTechnologies(p model.GitHubProject) []string {
	techs := append([]string{}, p.Languages...)
	if len(techs) == 0 && p.Language != "" {
		techs = append(techs, p.Language)
	}
	for _, topic := range p.Topics {
		dup := false
		for _, t := range techs {
			if strings.EqualFold(t, topic) {
				dup = true
				break
			}
		}
		if !dup {
			techs = append(techs, topic)
		}
	}
	return techs
}

func projectMetrics(p model.GitHubProject) model.ProjectMetrics {
	m := model.ProjectMetrics{
		Stars:    p.Stars,
		Forks:    p.Forks,
		Watchers: p.Watchers,
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		m.LastUpdated = &updated
	}
	return m
}

// mergeSkills unions GitHub skills with the resume's technical, language and
// tool buckets (the "other" bucket stays out), GitHub first, capped.
func mergeSkills(ghSkills []string, resume *parser.ResumeData) []string {
	merged := []string{}
	seen := make(map[string]bool)

	add := func(skills []string) {
		for _, s := range skills {
			key := strings.ToLower(strings.TrimSpace(s))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, strings.TrimSpace(s))
		}
	}

	add(ghSkills)
	if resume != nil {
		add(resume.Skills.Technical)
		add(resume.Skills.Languages)
		add(resume.Skills.Tools)
	}

	if len(merged) > maxSkills {
		merged = merged[:maxSkills]
	}
	return merged
}

func experienceDocs(resume *parser.ResumeData) []model.ExperienceDoc {
	docs := []model.ExperienceDoc{}
	if resume == nil {
		return docs
	}
	for _, e := range resume.Experience {
		docs = append(docs, model.ExperienceDoc{
			Title:       e.Title,
			Company:     e.Company,
			Duration:    e.Duration,
			Description: e.Description,
		})
	}
	return docs
}

func educationDocs(resume *parser.ResumeData) []model.EducationDoc {
	docs := []model.EducationDoc{}
	if resume == nil {
		return docs
	}
	for _, e := range resume.Education {
		docs = append(docs, model.EducationDoc{
			Degree:      e.Degree,
			Institution: e.Institution,
			Duration:    e.Duration,
			Details:     e.Details,
		})
	}
	return docs
}

func personalInfo(profile model.Profile) model.PersonalInfo {
	return model.PersonalInfo{
		Name:        profile.Name,
		AvatarURL:   profile.AvatarURL,
		Location:    profile.Location,
		Email:       profile.Email,
		Phone:       profile.Phone,
		Website:     profile.Website,
		GitHubURL:   profile.GitHubURL,
		LinkedInURL: profile.LinkedInURL,
	}
}

// enhanceBio tries the enhancement service exactly once, then falls back to
// the profile's own bio, then to the fixed default.
func (a *Assembler) enhanceBio(ctx context.Context, profile model.Profile) string {
	if a.enhancer.Enabled() {
		text, err := a.enhancer.Generate(ctx, bioPrompt(profile), bioMaxTokens)
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			log.Printf("bio enhancement degraded: %v", err)
		}
	}
	if profile.Bio != "" {
		return profile.Bio
	}
	return defaultBio
}

func (a *Assembler) enhanceSummary(ctx context.Context, profile model.Profile, stats model.SocialMetrics) string {
	if a.enhancer.Enabled() {
		text, err := a.enhancer.Generate(ctx, summaryPrompt(profile, stats), summaryMaxTokens)
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			log.Printf("summary enhancement degraded: %v", err)
		}
	}
	if profile.Summary != "" {
		return profile.Summary
	}
	return defaultSummary
}

func bioPrompt(profile model.Profile) string {
	return fmt.Sprintf(`Write a short first-person bio (2-3 sentences) for a developer portfolio.
Name: %s
Current bio: %s
Location: %s
Return only the bio text, no quotes or preamble.`, profile.Name, profile.Bio, profile.Location)
}

func summaryPrompt(profile model.Profile, stats model.SocialMetrics) string {
	return fmt.Sprintf(`Write a professional summary (3-4 sentences) for a developer portfolio.
Name: %s
Existing summary: %s
GitHub: %d repositories, %d stars, %d followers
Return only the summary text, no quotes or preamble.`,
		profile.Name, profile.Summary, stats.PublicRepositories, stats.TotalStars, stats.Followers)
}
