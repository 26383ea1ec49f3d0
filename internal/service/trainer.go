package service

import (
	"context"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/repository"
)

type trainerService struct {
	trainerRepo repository.TrainerRepository
}

func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

func (s *trainerService) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) Get(ctx context.Context, userID, id int64) (*domain.Trainer, error) {
	return s.trainerRepo.GetByID(ctx, userID, id)
}

func (s *trainerService) List(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Trainer, int64, error) {
	return s.trainerRepo.List(ctx, userID, page, pageSize)
}

func (s *trainerService) Update(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) Delete(ctx context.Context, userID, id int64) error {
	return s.trainerRepo.Delete(ctx, userID, id)
}
