package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Portfolio is the persisted portfolio row. Content holds the assembled
// content document as jsonb; Embedding powers similar-portfolio search and
// stays null when embedding generation was unavailable.
type Portfolio struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username  string          `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Content   string          `gorm:"type:jsonb" json:"content"`
	Embedding *pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (p *Portfolio) TableName() string {
	return "portfolios"
}

// PersonalInfo is the identity block embedded in the content document.
type PersonalInfo struct {
	Name        string `json:"name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Location    string `json:"location,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	GitHubURL   string `json:"github_url,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// ContentDocument is the assembled portfolio content before it is flattened
// into the jsonb Content column.
type ContentDocument struct {
	Bio          string          `json:"bio"`
	Summary      string          `json:"summary"`
	Skills       []string        `json:"skills"`
	Experience   []ExperienceDoc `json:"experience"`
	Education    []EducationDoc  `json:"education"`
	Stats        SocialMetrics   `json:"stats"`
	PersonalInfo PersonalInfo    `json:"personal_info"`
}

// ExperienceDoc and EducationDoc carry resume sections verbatim into the
// content document.
type ExperienceDoc struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationDoc struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Details     string `json:"details,omitempty"`
}
