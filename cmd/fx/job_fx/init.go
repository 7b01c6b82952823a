package job_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tradehub/internal/repositories"
	"tradehub/internal/services"
)

var Module = fx.Provide(
	provideJobService, provideJobRepo)

func provideJobRepo(db *gorm.DB) repositories.JobRepository {
	return repositories.NewJobRepository(db)
}

func provideJobService(jobRepo repositories.JobRepository, logger *zap.Logger) services.JobServiceInterface {
	return services.NewJobService(jobRepo, logger)
}
