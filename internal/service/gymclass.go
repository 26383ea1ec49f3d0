package service

import (
	"context"
	"fmt"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/repository"
)

type gymClassService struct {
	classRepo   repository.GymClassRepository
	trainerRepo repository.TrainerRepository
}

func NewGymClassService(classRepo repository.GymClassRepository, trainerRepo repository.TrainerRepository) GymClassService {
	return &gymClassService{classRepo: classRepo, trainerRepo: trainerRepo}
}

func (s *gymClassService) Create(ctx context.Context, class *domain.GymClass) (*domain.GymClass, error) {
	if err := s.resolveTrainer(ctx, class); err != nil {
		return nil, err
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *gymClassService) Get(ctx context.Context, userID, id int64) (*domain.GymClass, error) {
	return s.classRepo.GetByID(ctx, userID, id)
}

func (s *gymClassService) List(ctx context.Context, userID int64) ([]domain.GymClass, error) {
	return s.classRepo.List(ctx, userID)
}

func (s *gymClassService) Update(ctx context.Context, class *domain.GymClass) (*domain.GymClass, error) {
	if err := s.resolveTrainer(ctx, class); err != nil {
		return nil, err
	}
	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *gymClassService) Delete(ctx context.Context, userID, id int64) error {
	return s.classRepo.Delete(ctx, userID, id)
}

func (s *gymClassService) resolveTrainer(ctx context.Context, class *domain.GymClass) error {
	if class.TrainerID == nil {
		return nil
	}
	if _, err := s.trainerRepo.GetByID(ctx, class.UserID, *class.TrainerID); err != nil {
		return fmt.Errorf("resolving trainer %d: %w", *class.TrainerID, err)
	}
	return nil
}
