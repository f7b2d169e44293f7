package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type GitHubConfig struct {
	Token                 string
	BaseURL               string
	CacheTTL              time.Duration
	RateLimitMaxRequests  int
	RateLimitWindow       time.Duration
	EnrichmentConcurrency int
}

var (
	githubConfig *GitHubConfig
	githubOnce   sync.Once
)

func LoadGitHubConfig() *GitHubConfig {
	githubOnce.Do(func() {
		baseURL := os.Getenv("GITHUB_API_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.github.com"
		}
		githubConfig = &GitHubConfig{
			Token:                 os.Getenv("GITHUB_TOKEN"),
			BaseURL:               baseURL,
			CacheTTL:              durationEnv("GITHUB_CACHE_TTL", 10*time.Minute),
			RateLimitMaxRequests:  intEnv("GITHUB_RATE_LIMIT_MAX", 30),
			RateLimitWindow:       durationEnv("GITHUB_RATE_LIMIT_WINDOW", time.Minute),
			EnrichmentConcurrency: intEnv("GITHUB_ENRICHMENT_CONCURRENCY", 5),
		}
	})
	return githubConfig
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
