package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

func TestAdminService_Approve(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.User {
		return &domain.User{ID: 5, Name: "Owner", Email: "owner@gym.test", Status: domain.UserStatusPending}
	}

	t.Run("ApprovesAndNotifies", func(t *testing.T) {
		users := new(MockUserRepo)
		emails := new(MockEmailService)
		svc := service.NewAdminService(users, emails)

		users.On("GetByID", ctx, int64(5)).Return(pending(), nil).Once()
		users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Status == domain.UserStatusApproved
		})).Return(nil).Once()
		emails.On("SendAccountApproved", ctx, "owner@gym.test", "Owner").Return(nil).Once()

		user, err := svc.Approve(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, domain.UserStatusApproved, user.Status)
		users.AssertExpectations(t)
		emails.AssertExpectations(t)
	})

	t.Run("EmailFailureIsNotFatal", func(t *testing.T) {
		users := new(MockUserRepo)
		emails := new(MockEmailService)
		svc := service.NewAdminService(users, emails)

		users.On("GetByID", ctx, int64(5)).Return(pending(), nil).Once()
		users.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
		emails.On("SendAccountApproved", ctx, "owner@gym.test", "Owner").
			Return(errors.New("sendgrid unavailable")).Once()

		user, err := svc.Approve(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, domain.UserStatusApproved, user.Status)
	})
}

func TestAdminService_Reject(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepo)
	emails := new(MockEmailService)
	svc := service.NewAdminService(users, emails)

	users.On("GetByID", ctx, int64(5)).
		Return(&domain.User{ID: 5, Name: "Owner", Email: "owner@gym.test", Status: domain.UserStatusPending}, nil).Once()
	users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Status == domain.UserStatusRejected
	})).Return(nil).Once()
	emails.On("SendAccountRejected", ctx, "owner@gym.test", "Owner").Return(nil).Once()

	user, err := svc.Reject(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.UserStatusRejected, user.Status)
	emails.AssertExpectations(t)
}

func TestAdminService_PendingUsers(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepo)
	svc := service.NewAdminService(users, nil)

	users.On("ListByStatus", ctx, domain.UserStatusPending).
		Return([]domain.User{{ID: 5}, {ID: 6}}, nil).Once()

	pending, err := svc.PendingUsers(ctx)

	assert.NoError(t, err)
	assert.Len(t, pending, 2)
}
