package services

import (
	"context"

	"tradehub/internal/models/response_models"
	"tradehub/internal/repositories"
	"tradehub/pkg/utils"
)

type StateServiceInterface interface {
	ListStates(ctx context.Context) ([]response_models.StateResponse, error)
	ListLGAs(ctx context.Context, stateID string) ([]response_models.LGAResponse, error)
}

type StateService struct {
	stateRepo repositories.StateRepository
}

func NewStateService(stateRepo repositories.StateRepository) StateServiceInterface {
	return &StateService{stateRepo: stateRepo}
}

func (s *StateService) ListStates(ctx context.Context) ([]response_models.StateResponse, error) {
	states, err := s.stateRepo.ListStates(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.StateResponse, 0, len(states))
	for _, state := range states {
		out = append(out, response_models.StateResponse{
			ID:   state.ID.String(),
			Name: state.Name,
			Code: state.Code,
		})
	}
	return out, nil
}

func (s *StateService) ListLGAs(ctx context.Context, stateID string) ([]response_models.LGAResponse, error) {
	lgas, err := s.stateRepo.ListLGAs(ctx, stateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(lgas) == 0 {
		return nil, utils.ErrStateNotFound
	}

	out := make([]response_models.LGAResponse, 0, len(lgas))
	for _, lga := range lgas {
		out = append(out, response_models.LGAResponse{
			ID:      lga.ID.String(),
			Name:    lga.Name,
			StateID: lga.StateID.String(),
		})
	}
	return out, nil
}
