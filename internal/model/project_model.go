package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourcePlatformGitHub = "github"
	SourcePlatformResume = "resume"
)

// ResumeProjectOrderBase keeps resume-sourced projects in a display-order
// range disjoint from GitHub-sourced ones, so GitHub projects always sort
// first on ascending display_order.
const ResumeProjectOrderBase = 1000

type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
	Live   string `json:"live,omitempty"`
}

type ProjectMetrics struct {
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	Watchers    int        `json:"watchers"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// Project is one persisted portfolio entry. (source_platform, source_id) is
// unique within a generation run and serves as the natural key; the whole set
// for a portfolio is replaced on every regeneration.
type Project struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortfolioID         uuid.UUID      `gorm:"type:uuid;index:idx_projects_source,unique" json:"portfolio_id"`
	SourcePlatform      string         `gorm:"type:varchar(20);index:idx_projects_source,unique" json:"source_platform"`
	SourceID            string         `gorm:"type:varchar(255);index:idx_projects_source,unique" json:"source_id"`
	Title               string         `gorm:"type:varchar(255)" json:"title"`
	Description         string         `gorm:"type:text" json:"description"`
	EnhancedDescription string         `gorm:"type:text" json:"enhanced_description"`
	Technologies        []string       `gorm:"serializer:json;type:jsonb" json:"technologies"`
	Links               ProjectLinks   `gorm:"serializer:json;type:jsonb" json:"links"`
	Metrics             ProjectMetrics `gorm:"serializer:json;type:jsonb" json:"metrics"`
	IsFeatured          bool           `json:"is_featured"`
	DisplayOrder        int            `json:"display_order"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (p *Project) TableName() string {
	return "projects"
}
