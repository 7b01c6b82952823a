package repositories

import (
	"context"

	"gorm.io/gorm"

	"tradehub/internal/models/db_models"
)

type StateRepository interface {
	ListStates(ctx context.Context) ([]db_models.State, error)
	ListLGAs(ctx context.Context, stateID string) ([]db_models.LGA, error)
}

type stateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

func (s *stateRepository) ListStates(ctx context.Context) ([]db_models.State, error) {
	var states []db_models.State
	err := s.db.WithContext(ctx).Order("name asc").Find(&states).Error
	if err != nil {
		return nil, err
	}
	return states, nil
}

func (s *stateRepository) ListLGAs(ctx context.Context, stateID string) ([]db_models.LGA, error) {
	var lgas []db_models.LGA
	err := s.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("name asc").
		Find(&lgas).Error
	if err != nil {
		return nil, err
	}
	return lgas, nil
}
