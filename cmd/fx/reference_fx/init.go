package reference_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tradehub/internal/repositories"
	"tradehub/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService,
	provideStateRepo, provideStateService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo)
}

func provideStateRepo(db *gorm.DB) repositories.StateRepository {
	return repositories.NewStateRepository(db)
}

func provideStateService(stateRepo repositories.StateRepository) services.StateServiceInterface {
	return services.NewStateService(stateRepo)
}
