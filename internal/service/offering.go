package service

import (
	"context"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/repository"
)

type offeringService struct {
	offeringRepo repository.OfferingRepository
}

func NewOfferingService(offeringRepo repository.OfferingRepository) OfferingService {
	return &offeringService{offeringRepo: offeringRepo}
}

func (s *offeringService) Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *offeringService) Get(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) (*domain.Offering, error) {
	return s.offeringRepo.GetByID(ctx, userID, kind, id)
}

func (s *offeringService) List(ctx context.Context, userID int64, kind domain.OfferingKind, filter domain.OfferingFilter) ([]domain.Offering, error) {
	return s.offeringRepo.List(ctx, userID, kind, filter)
}

func (s *offeringService) Update(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *offeringService) SetActive(ctx context.Context, userID int64, kind domain.OfferingKind, id int64, active bool) error {
	return s.offeringRepo.SetActive(ctx, userID, kind, id, active)
}

func (s *offeringService) Delete(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) error {
	return s.offeringRepo.Delete(ctx, userID, kind, id)
}
