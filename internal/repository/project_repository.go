package repository

import (
	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db}
}

// ReplaceForPortfolio swaps the portfolio's project set wholesale: the old
// rows are deleted and the new set inserted in one transaction. There is no
// incremental merge across generation runs.
func (r *ProjectRepository) ReplaceForPortfolio(portfolioID uuid.UUID, projects []model.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Project{}, "portfolio_id = ?", portfolioID).Error; err != nil {
			return err
		}
		if len(projects) == 0 {
			return nil
		}
		for i := range projects {
			projects[i].PortfolioID = portfolioID
		}
		return tx.Create(&projects).Error
	})
}

// FindByPortfolio lists projects in display order with offset pagination.
func (r *ProjectRepository) FindByPortfolio(portfolioID uuid.UUID, page, pageSize int) ([]model.Project, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.Project{}).Where("portfolio_id = ?", portfolioID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	err := r.db.
		Where("portfolio_id = ?", portfolioID).
		Order("display_order ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&projects).Error

	return projects, total, err
}

func (r *ProjectRepository) FindFeatured(portfolioID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.
		Where("portfolio_id = ? AND is_featured = ?", portfolioID, true).
		Order("display_order ASC").
		Find(&projects).Error
	return projects, err
}
