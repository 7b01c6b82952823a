package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradehub/internal/models/db_models"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]db_models.TradeCategory, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.TradeCategory, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (c *categoryRepository) ListActive(ctx context.Context) ([]db_models.TradeCategory, error) {
	var categories []db_models.TradeCategory
	err := c.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) FindBySlug(ctx context.Context, slug string) (*db_models.TradeCategory, error) {
	var category db_models.TradeCategory
	err := c.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
