package repositories

import (
	"context"

	"gorm.io/gorm"

	"tradehub/internal/models/db_models"
)

type JobRepository interface {
	Create(ctx context.Context, job *db_models.Job) error
	CreateAnswers(ctx context.Context, answers []db_models.JobAnswer) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (j *jobRepository) Create(ctx context.Context, job *db_models.Job) error {
	return j.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(job).Error
	})
}

// CreateAnswers persists the questionnaire snapshot. Callers treat this as
// best-effort; the job itself is already committed.
func (j *jobRepository) CreateAnswers(ctx context.Context, answers []db_models.JobAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return j.db.WithContext(ctx).Create(&answers).Error
}
