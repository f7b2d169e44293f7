package repository

import (
	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db}
}

// Upsert inserts or replaces the portfolio row for its username.
func (r *PortfolioRepository) Upsert(p *model.Portfolio) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "embedding", "updated_at"}),
	}).Create(p).Error
}

func (r *PortfolioRepository) FindByUsername(username string) (*model.Portfolio, error) {
	var p model.Portfolio
	err := r.db.First(&p, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchSimilar orders other portfolios by embedding distance. Rows without
// an embedding (enhancement was unavailable at generation time) are skipped.
func (r *PortfolioRepository) SearchSimilar(embedding pgvector.Vector, excludeUsername string, topK int) ([]model.Portfolio, error) {
	var portfolios []model.Portfolio

	err := r.db.Raw(`
        SELECT *
        FROM portfolios
        WHERE username <> ? AND embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, excludeUsername, embedding, topK).Scan(&portfolios).Error

	return portfolios, err
}

func (r *PortfolioRepository) DeleteByUsername(username string) error {
	return r.db.Delete(&model.Portfolio{}, "username = ?", username).Error
}
