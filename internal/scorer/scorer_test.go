package scorer

import (
	"testing"
	"time"

	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestScorer() *Scorer {
	return &Scorer{Now: func() time.Time { return testNow }}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		project model.GitHubProject
		want    int
	}{
		{
			name: "bare fork with short name",
			project: model.GitHubProject{
				Name: "x",
				Fork: true,
			},
			// only the short-name penalty applies
			want: -10,
		},
		{
			name: "minimal original repo",
			project: model.GitHubProject{
				Name: "tools",
			},
			want: 50,
		},
		{
			name: "stars dominate",
			project: model.GitHubProject{
				Name:  "tools",
				Stars: 3,
			},
			// 3*100 + 50
			want: 350,
		},
		{
			name: "description must exceed threshold",
			project: model.GitHubProject{
				Name:        "tools",
				Description: "exactly twenty chars",
			},
			// 20 chars is not strictly greater than the threshold
			want: 50,
		},
		{
			name: "long description counts",
			project: model.GitHubProject{
				Name:        "tools",
				Description: "a somewhat longer description",
			},
			want: 80,
		},
		{
			name: "homepage and topics",
			project: model.GitHubProject{
				Name:     "tools",
				Homepage: "https://example.com",
				Topics:   []string{"go", "cli", "infra"},
			},
			// 50 + 25 + 3*5
			want: 90,
		},
		{
			name: "recent update",
			project: model.GitHubProject{
				Name:      "tools",
				UpdatedAt: testNow.Add(-24 * time.Hour),
			},
			want: 70,
		},
		{
			name: "stale update",
			project: model.GitHubProject{
				Name:      "tools",
				UpdatedAt: testNow.Add(-400 * 24 * time.Hour),
			},
			want: 50,
		},
		{
			name: "large repo",
			project: model.GitHubProject{
				Name:   "tools",
				SizeKB: 1500,
			},
			want: 65,
		},
		{
			name: "portfolio keyword in name",
			project: model.GitHubProject{
				Name: "my-portfolio",
			},
			want: 90,
		},
		{
			name: "portfolio keyword in description",
			project: model.GitHubProject{
				Name:        "site",
				Description: "Personal portfolio built with Hugo",
			},
			// 50 + 30 (len > 20) + 40
			want: 120,
		},
		{
			name: "app keyword in name",
			project: model.GitHubProject{
				Name: "todo-app",
			},
			want: 70,
		},
		{
			name: "application keyword in description",
			project: model.GitHubProject{
				Name:        "tracker",
				Description: "A web application for tracking habits",
			},
			// 50 + 30 + 20
			want: 100,
		},
		{
			name: "keyword matching is case-insensitive",
			project: model.GitHubProject{
				Name: "My-PORTFOLIO-App",
			},
			// 50 + 40 + 20
			want: 110,
		},
		{
			name: "everything at once",
			project: model.GitHubProject{
				Name:        "portfolio-app",
				Description: "An application showcasing my portfolio work",
				Homepage:    "https://example.dev",
				Topics:      []string{"go", "web"},
				Stars:       2,
				SizeKB:      2000,
				UpdatedAt:   testNow.Add(-48 * time.Hour),
			},
			// 200 + 50 + 30 + 25 + 20 + 10 + 15 + 40 + 20
			want: 410,
		},
	}

	s := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Score(tt.project))
		})
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	s := newTestScorer()

	low := model.GitHubProject{Name: "tools"}
	mid := model.GitHubProject{Name: "tools-extra", Stars: 1}
	high := model.GitHubProject{Name: "portfolio", Stars: 5}

	ranked := s.Rank([]model.GitHubProject{low, high, mid})

	assert.Equal(t, []string{"portfolio", "tools-extra", "tools"}, []string{
		ranked[0].Name, ranked[1].Name, ranked[2].Name,
	})
}

func TestRankIsStableOnTies(t *testing.T) {
	s := newTestScorer()

	first := model.GitHubProject{Name: "alpha", FullName: "u/alpha"}
	second := model.GitHubProject{Name: "bravo", FullName: "u/bravo"}
	assert.Equal(t, s.Score(first), s.Score(second), "fixture projects must tie")

	ranked := s.Rank([]model.GitHubProject{first, second})
	assert.Equal(t, "u/alpha", ranked[0].FullName)
	assert.Equal(t, "u/bravo", ranked[1].FullName)

	ranked = s.Rank([]model.GitHubProject{second, first})
	assert.Equal(t, "u/bravo", ranked[0].FullName)
	assert.Equal(t, "u/alpha", ranked[1].FullName)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	s := newTestScorer()

	input := []model.GitHubProject{
		{Name: "tools"},
		{Name: "portfolio", Stars: 10},
	}
	s.Rank(input)

	assert.Equal(t, "tools", input[0].Name)
	assert.Equal(t, "portfolio", input[1].Name)
}
