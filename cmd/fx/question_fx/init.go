package question_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tradehub/internal/repositories"
	"tradehub/internal/services"
)

var Module = fx.Provide(
	provideQuestionService, provideQuestionRepo)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepository {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionService(questionRepo repositories.QuestionRepository, categoryRepo repositories.CategoryRepository, logger *zap.Logger) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, categoryRepo, logger)
}
