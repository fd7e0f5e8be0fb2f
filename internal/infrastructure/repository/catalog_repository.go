package repository

import (
	"context"

	"github.com/narmadatraders/billing-api/internal/domain/entity"
	domainRepo "github.com/narmadatraders/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) domainRepo.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListAll(ctx context.Context) ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *catalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CatalogItem{}).Count(&count).Error
	return count, err
}
