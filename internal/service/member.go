package service

import (
	"context"
	"errors"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if err := s.checkDuplicate(ctx, member.UserID, member.Email, member.Phone, 0); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) Get(ctx context.Context, userID, id int64) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, userID, id)
}

func (s *memberService) List(ctx context.Context, userID int64, filter domain.MemberFilter) ([]domain.Member, int64, error) {
	return s.memberRepo.List(ctx, userID, filter)
}

func (s *memberService) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	existing, err := s.memberRepo.GetByID(ctx, member.UserID, member.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(ctx, member.UserID, member.Email, member.Phone, existing.ID); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) Delete(ctx context.Context, userID, id int64) error {
	return s.memberRepo.Delete(ctx, userID, id)
}

func (s *memberService) checkDuplicate(ctx context.Context, userID int64, email, phone string, excludeID int64) error {
	_, err := s.memberRepo.FindDuplicate(ctx, userID, email, phone, excludeID)
	if err == nil {
		return domain.ErrDuplicate
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
