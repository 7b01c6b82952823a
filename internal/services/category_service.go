package services

import (
	"context"

	"tradehub/internal/models/db_models"
	"tradehub/internal/models/response_models"
	"tradehub/internal/repositories"
	"tradehub/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*db_models.TradeCategory, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (c *CategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := c.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, response_models.CategoryResponse{
			ID:          category.ID.String(),
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
		})
	}
	return out, nil
}

func (c *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*db_models.TradeCategory, error) {
	category, err := c.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return category, nil
}
