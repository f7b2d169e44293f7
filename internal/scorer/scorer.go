package scorer

import (
	"sort"
	"strings"
	"time"

	"github.com/fadilmartias/portfolio-gen/internal/model"
)

// Scorer ranks candidate GitHub projects for display. Now is injectable so
// the recency bonus is deterministic under test.
type Scorer struct {
	Now func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{Now: time.Now}
}

// Score computes the display-ranking score for one project. Pure given the
// project and the scorer's clock.
func (s *Scorer) Score(p model.GitHubProject) int {
	score := p.Stars * weightPerStar

	if !p.Fork {
		score += weightNotFork
	}
	if len(p.Description) > minDescriptionLen {
		score += weightDescription
	}
	if p.Homepage != "" {
		score += weightHomepage
	}
	if !p.UpdatedAt.IsZero() && s.Now().Sub(p.UpdatedAt) < recentUpdateDays*24*time.Hour {
		score += weightRecentUpdate
	}
	score += len(p.Topics) * weightPerTopic
	if p.SizeKB > largeRepoKB {
		score += weightLargeRepo
	}

	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	if strings.Contains(name, "portfolio") || strings.Contains(desc, "portfolio") {
		score += weightPortfolioMatch
	}
	if strings.Contains(name, "app") || strings.Contains(name, "project") || strings.Contains(desc, "application") {
		score += weightAppMatch
	}
	if len(p.Name) < minNameLen {
		score -= penaltyShortName
	}

	return score
}

// Rank returns the projects sorted by descending score. The sort is stable,
// so ties keep their original input order.
func (s *Scorer) Rank(projects []model.GitHubProject) []model.GitHubProject {
	type scored struct {
		project model.GitHubProject
		score   int
	}

	items := make([]scored, len(projects))
	for i, p := range projects {
		items[i] = scored{project: p, score: s.Score(p)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	ranked := make([]model.GitHubProject, len(items))
	for i, it := range items {
		ranked[i] = it.project
	}
	return ranked
}
