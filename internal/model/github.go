package model

import "time"

// GitHubProfile is the account-level slice of a GitHub user.
type GitHubProfile struct {
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

// GitHubProject is one repository normalized into a portfolio candidate.
type GitHubProject struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Language    string    `json:"language"`
	Languages   []string  `json:"languages"`
	Topics      []string  `json:"topics"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Watchers    int       `json:"watchers"`
	SizeKB      int       `json:"size_kb"`
	Fork        bool      `json:"fork"`
	Readme      string    `json:"readme,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SocialMetrics struct {
	TotalStars          int     `json:"total_stars"`
	TotalForks          int     `json:"total_forks"`
	TotalRepositories   int     `json:"total_repositories"`
	PublicRepositories  int     `json:"public_repositories"`
	Followers           int     `json:"followers"`
	Following           int     `json:"following"`
	RecentActivityCount int     `json:"recent_activity_count"`
	AccountAgeYears     float64 `json:"account_age_years"`
}

// Achievement is an informational badge derived from account metrics.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GitHubData is the full normalized output of one fetchUserData run.
type GitHubData struct {
	Profile       GitHubProfile   `json:"profile"`
	Projects      []GitHubProject `json:"projects"`
	Skills        []string        `json:"skills"`
	SocialMetrics SocialMetrics   `json:"social_metrics"`
	Achievements  []Achievement   `json:"achievements"`
}
