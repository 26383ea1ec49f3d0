package service

import (
	"context"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/logger"
	"gymdesk-backend/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
	emailSvc EmailService
}

func NewAdminService(userRepo repository.UserRepository, emailSvc EmailService) AdminService {
	return &adminService{userRepo: userRepo, emailSvc: emailSvc}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) PendingUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByStatus(ctx, domain.UserStatusPending)
}

func (s *adminService) Approve(ctx context.Context, userID int64) (*domain.User, error) {
	return s.setStatus(ctx, userID, domain.UserStatusApproved)
}

func (s *adminService) Reject(ctx context.Context, userID int64) (*domain.User, error) {
	return s.setStatus(ctx, userID, domain.UserStatusRejected)
}

func (s *adminService) Delete(ctx context.Context, userID int64) error {
	return s.userRepo.Delete(ctx, userID)
}

func (s *adminService) setStatus(ctx context.Context, userID int64, status domain.UserStatus) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user status changed", "user_id", user.ID, "status", status)

	if s.emailSvc != nil {
		var notifyErr error
		switch status {
		case domain.UserStatusApproved:
			notifyErr = s.emailSvc.SendAccountApproved(ctx, user.Email, user.Name)
		case domain.UserStatusRejected:
			notifyErr = s.emailSvc.SendAccountRejected(ctx, user.Email, user.Name)
		}
		if notifyErr != nil {
			logger.Warn("status notification failed", "user_id", user.ID, "error", notifyErr)
		}
	}
	return user, nil
}
