package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tradehub/internal/models/db_models"
)

type QuestionRepository interface {
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.Question, error)
	ReplaceForCategory(ctx context.Context, categoryID uuid.UUID, questions []db_models.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (q *questionRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := q.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("position asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ReplaceForCategory swaps a category's entire question set in one
// transaction so posters never observe a half-updated set.
func (q *questionRepository) ReplaceForCategory(ctx context.Context, categoryID uuid.UUID, questions []db_models.Question) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).
			Where("category_id = ?", categoryID).
			Delete(&db_models.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.WithContext(ctx).Create(&questions).Error
	})
}
