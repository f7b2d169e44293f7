package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/portfolio-gen/internal/cache"
	"github.com/fadilmartias/portfolio-gen/internal/config"
	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	maxReposPerPage   = 100
	maxEnrichedRepos  = 50
	maxReadmeChars    = 10000
	recentActivityAge = 30 * 24 * time.Hour
)

// UpstreamError is returned when GitHub answers a required call with a
// non-2xx status. It is not retried here; the caller decides.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github upstream error: status %d", e.Status)
}

type GitHubServiceInterface interface {
	FetchUserData(ctx context.Context, username, token string) (*model.GitHubData, error)
}

type GitHubService struct {
	client      *resty.Client
	cache       *cache.RateLimitedCache
	token       string
	concurrency int
}

func NewGitHubService(cfg *config.GitHubConfig, c *cache.RateLimitedCache) *GitHubService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", "portfolio-gen").
		SetHeader("Accept", "application/vnd.github+json").
		SetTimeout(30 * time.Second)

	concurrency := cfg.EnrichmentConcurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	return &GitHubService{
		client:      client,
		cache:       c,
		token:       cfg.Token,
		concurrency: concurrency,
	}
}

// Raw REST shapes. Only the fields the pipeline consumes.
type githubUser struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	AvatarURL   string    `json:"avatar_url"`
	Blog        string    `json:"blog"`
	HTMLURL     string    `json:"html_url"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

type githubRepo struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Homepage        string    `json:"homepage"`
	Language        string    `json:"language"`
	Topics          []string  `json:"topics"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	WatchersCount   int       `json:"watchers_count"`
	Size            int       `json:"size"`
	Fork            bool      `json:"fork"`
	Archived        bool      `json:"archived"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FetchUserData fetches and normalizes everything the pipeline needs for one
// GitHub user. The profile and repository list are fatal on failure; per-repo
// enrichment and the activity feed degrade to partial data.
func (s *GitHubService) FetchUserData(ctx context.Context, username, token string) (*model.GitHubData, error) {
	if token == "" {
		token = s.token
	}

	user, err := cache.Execute(s.cache, "user:"+username, func() (githubUser, error) {
		var u githubUser
		err := s.getJSON(ctx, "/users/"+username, token, &u)
		return u, err
	})
	if err != nil {
		return nil, err
	}

	repos, err := cache.Execute(s.cache, "repos:"+username, func() ([]githubRepo, error) {
		var rs []githubRepo
		err := s.getJSON(ctx, fmt.Sprintf("/users/%s/repos?per_page=%d&sort=updated", username, maxReposPerPage), token, &rs)
		return rs, err
	})
	if err != nil {
		return nil, err
	}

	projects := make([]model.GitHubProject, 0, len(repos))
	for _, r := range repos {
		if !includeRepo(r) {
			continue
		}
		projects = append(projects, model.GitHubProject{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			HTMLURL:     r.HTMLURL,
			Homepage:    r.Homepage,
			Language:    r.Language,
			Topics:      r.Topics,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			Watchers:    r.WatchersCount,
			SizeKB:      r.Size,
			Fork:        r.Fork,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	s.enrichProjects(ctx, token, projects)

	data := &model.GitHubData{
		Profile: model.GitHubProfile{
			Login:       user.Login,
			Name:        user.Name,
			Email:       user.Email,
			Bio:         user.Bio,
			Location:    user.Location,
			AvatarURL:   user.AvatarURL,
			Blog:        user.Blog,
			HTMLURL:     user.HTMLURL,
			Followers:   user.Followers,
			Following:   user.Following,
			PublicRepos: user.PublicRepos,
			CreatedAt:   user.CreatedAt,
		},
		Projects:      projects,
		Skills:        deriveSkills(projects),
		SocialMetrics: deriveSocialMetrics(user, len(repos), projects, s.fetchRecentActivity(ctx, username, token)),
	}
	data.Achievements = deriveAchievements(data.SocialMetrics, projects)

	return data, nil
}

// includeRepo drops archived repositories and starless forks.
func includeRepo(r githubRepo) bool {
	if r.Archived {
		return false
	}
	if r.Fork && r.StargazersCount == 0 {
		return false
	}
	return true
}

// enrichProjects fetches language breakdowns and READMEs for the top repos,
// with bounded concurrency so the rate-limit budget is not burned at once.
// Enrichment failures leave the project as-is; they never abort the batch.
func (s *GitHubService) enrichProjects(ctx context.Context, token string, projects []model.GitHubProject) {
	order := enrichmentOrder(projects)
	if len(order) > maxEnrichedRepos {
		order = order[:maxEnrichedRepos]
	}

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for _, idx := range order {
		wg.Add(1)
		sem <- struct{}{}
		go func(p *model.GitHubProject) {
			defer wg.Done()
			defer func() { <-sem }()

			if langs, err := s.fetchLanguages(ctx, token, p.FullName); err == nil {
				p.Languages = langs
			} else {
				log.Printf("languages fetch skipped for %s: %v", p.FullName, err)
			}
			if readme, err := s.fetchReadme(ctx, token, p.FullName); err == nil {
				p.Readme = readme
			}
		}(&projects[idx])
	}
	wg.Wait()
}

// enrichmentOrder ranks repos by stars*2 + forks + a 0..1 recency term, so
// the enrichment budget goes to the repos most likely to be displayed. This
// is not the display ranking; see the scorer package.
func enrichmentOrder(projects []model.GitHubProject) []int {
	now := time.Now()
	score := func(p model.GitHubProject) float64 {
		s := float64(p.Stars*2 + p.Forks)
		if !p.UpdatedAt.IsZero() {
			ageDays := now.Sub(p.UpdatedAt).Hours() / 24
			if recency := 1 - ageDays/365; recency > 0 {
				s += recency
			}
		}
		return s
	}

	order := make([]int, len(projects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return score(projects[order[a]]) > score(projects[order[b]])
	})
	return order
}

func (s *GitHubService) fetchLanguages(ctx context.Context, token, fullName string) ([]string, error) {
	return cache.Execute(s.cache, "languages:"+fullName, func() ([]string, error) {
		var byBytes map[string]int64
		if err := s.getJSON(ctx, "/repos/"+fullName+"/languages", token, &byBytes); err != nil {
			return nil, err
		}

		langs := make([]string, 0, len(byBytes))
		for name := range byBytes {
			langs = append(langs, name)
		}
		sort.Slice(langs, func(i, j int) bool {
			if byBytes[langs[i]] != byBytes[langs[j]] {
				return byBytes[langs[i]] > byBytes[langs[j]]
			}
			return langs[i] < langs[j]
		})
		return langs, nil
	})
}

func (s *GitHubService) fetchReadme(ctx context.Context, token, fullName string) (string, error) {
	return cache.Execute(s.cache, "readme:"+fullName, func() (string, error) {
		req := s.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/vnd.github.raw+json")
		if token != "" {
			req.SetAuthToken(token)
		}

		resp, err := req.Get("/repos/" + fullName + "/readme")
		if err != nil {
			return "", err
		}
		if resp.IsError() {
			return "", &UpstreamError{Status: resp.StatusCode(), Body: resp.String()}
		}

		readme := resp.String()
		if len(readme) > maxReadmeChars {
			readme = readme[:maxReadmeChars]
		}
		return readme, nil
	})
}

// fetchRecentActivity counts public events in the trailing 30 days. The feed
// is informational; any failure degrades to zero.
func (s *GitHubService) fetchRecentActivity(ctx context.Context, username, token string) int {
	count, err := cache.Execute(s.cache, "events:"+username, func() (int, error) {
		req := s.client.R().SetContext(ctx)
		if token != "" {
			req.SetAuthToken(token)
		}

		resp, err := req.Get("/users/" + username + "/events/public")
		if err != nil {
			return 0, err
		}
		if resp.IsError() {
			return 0, &UpstreamError{Status: resp.StatusCode(), Body: resp.String()}
		}

		cutoff := time.Now().Add(-recentActivityAge)
		var n int
		gjson.ParseBytes(resp.Body()).ForEach(func(_, event gjson.Result) bool {
			created, err := time.Parse(time.RFC3339, event.Get("created_at").String())
			if err == nil && created.After(cutoff) {
				n++
			}
			return true
		})
		return n, nil
	})
	if err != nil {
		log.Printf("recent activity fetch skipped for %s: %v", username, err)
		return 0
	}
	return count
}

func (s *GitHubService) getJSON(ctx context.Context, path, token string, out any) error {
	req := s.client.R().SetContext(ctx).SetResult(out)
	if token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &UpstreamError{Status: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

// deriveSkills lists distinct repo languages ordered by how many repos use
// them, then distinct topics in repo order.
func deriveSkills(projects []model.GitHubProject) []string {
	langCount := make(map[string]int)
	langOrder := []string{}
	for _, p := range projects {
		if p.Language == "" {
			continue
		}
		if langCount[p.Language] == 0 {
			langOrder = append(langOrder, p.Language)
		}
		langCount[p.Language]++
	}
	sort.SliceStable(langOrder, func(i, j int) bool {
		return langCount[langOrder[i]] > langCount[langOrder[j]]
	})

	skills := langOrder
	seen := make(map[string]bool, len(skills))
	for _, l := range skills {
		seen[l] = true
	}
	for _, p := range projects {
		for _, topic := range p.Topics {
			if !seen[topic] {
				seen[topic] = true
				skills = append(skills, topic)
			}
		}
	}
	return skills
}

func deriveSocialMetrics(user githubUser, totalRepos int, projects []model.GitHubProject, recentActivity int) model.SocialMetrics {
	m := model.SocialMetrics{
		TotalRepositories:   totalRepos,
		PublicRepositories:  user.PublicRepos,
		Followers:           user.Followers,
		Following:           user.Following,
		RecentActivityCount: recentActivity,
	}
	for _, p := range projects {
		m.TotalStars += p.Stars
		m.TotalForks += p.Forks
	}
	if !user.CreatedAt.IsZero() {
		m.AccountAgeYears = time.Since(user.CreatedAt).Hours() / (24 * 365)
	}
	return m
}

// deriveAchievements emits informational badges from account metrics. Not
// consumed by the merge; display only.
func deriveAchievements(m model.SocialMetrics, projects []model.GitHubProject) []model.Achievement {
	achievements := []model.Achievement{}

	if m.TotalStars > 100 {
		achievements = append(achievements, model.Achievement{
			Title:       "Star Collector",
			Description: fmt.Sprintf("Earned %d stars across public repositories", m.TotalStars),
		})
	}

	var topStars int
	for _, p := range projects {
		if p.Stars > topStars {
			topStars = p.Stars
		}
	}
	if topStars > 50 {
		achievements = append(achievements, model.Achievement{
			Title:       "Popular Project",
			Description: fmt.Sprintf("Maintains a repository with %d stars", topStars),
		})
	}
	if m.Followers > 100 {
		achievements = append(achievements, model.Achievement{
			Title:       "Community Builder",
			Description: fmt.Sprintf("Followed by %d developers", m.Followers),
		})
	}
	if m.TotalRepositories > 20 {
		achievements = append(achievements, model.Achievement{
			Title:       "Prolific Builder",
			Description: fmt.Sprintf("Published %d repositories", m.TotalRepositories),
		})
	}
	return achievements
}
