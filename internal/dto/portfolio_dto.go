package dto

import (
	"encoding/json"
	"time"

	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/google/uuid"
)

type PortfolioDTO struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewPortfolioDTO(p *model.Portfolio) PortfolioDTO {
	return PortfolioDTO{
		ID:        p.ID,
		Username:  p.Username,
		Content:   json.RawMessage(p.Content),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type ProjectDTO struct {
	ID             uuid.UUID            `json:"id"`
	SourcePlatform string               `json:"source_platform"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Technologies   []string             `json:"technologies"`
	Links          model.ProjectLinks   `json:"links"`
	Metrics        model.ProjectMetrics `json:"metrics"`
	IsFeatured     bool                 `json:"is_featured"`
	DisplayOrder   int                  `json:"display_order"`
}

func NewProjectDTO(p model.Project) ProjectDTO {
	return ProjectDTO{
		ID:             p.ID,
		SourcePlatform: p.SourcePlatform,
		Title:          p.Title,
		Description:    p.Description,
		Technologies:   p.Technologies,
		Links:          p.Links,
		Metrics:        p.Metrics,
		IsFeatured:     p.IsFeatured,
		DisplayOrder:   p.DisplayOrder,
	}
}

func NewProjectDTOs(projects []model.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		dtos = append(dtos, NewProjectDTO(p))
	}
	return dtos
}

type GeneratePortfolioRequest struct {
	Username      string `json:"username"`
	GitHubToken   string `json:"github_token"`
	SkipGitHub    bool   `json:"skip_github"`
	ResumeText    string `json:"resume_text"`
	FallbackName  string `json:"fallback_name"`
	FallbackEmail string `json:"fallback_email"`
}
