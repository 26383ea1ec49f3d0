package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

func TestMemberService_Create(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	t.Run("Success", func(t *testing.T) {
		members := new(MockMemberRepo)
		svc := service.NewMemberService(members)

		members.On("FindDuplicate", ctx, userID, "asha@example.com", "9999", int64(0)).
			Return(nil, domain.ErrNotFound).Once()
		members.On("Create", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.FirstName == "Asha" && m.Phone == "9999"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Member).ID = 3
		}).Return(nil).Once()

		member, err := svc.Create(ctx, &domain.Member{
			UserID:    userID,
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			Phone:     "9999",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), member.ID)
		members.AssertExpectations(t)
	})

	t.Run("DuplicatePhoneRejected", func(t *testing.T) {
		members := new(MockMemberRepo)
		svc := service.NewMemberService(members)

		members.On("FindDuplicate", ctx, userID, "asha@example.com", "9999", int64(0)).
			Return(&domain.Member{ID: 2, Phone: "9999"}, nil).Once()

		_, err := svc.Create(ctx, &domain.Member{
			UserID: userID,
			Email:  "asha@example.com",
			Phone:  "9999",
		})

		assert.ErrorIs(t, err, domain.ErrDuplicate)
		members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMemberService_Update(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	t.Run("OwnRecordExcludedFromDuplicateCheck", func(t *testing.T) {
		members := new(MockMemberRepo)
		svc := service.NewMemberService(members)

		members.On("GetByID", ctx, userID, int64(3)).
			Return(&domain.Member{ID: 3, UserID: userID, Phone: "9999"}, nil).Once()
		members.On("FindDuplicate", ctx, userID, "asha@example.com", "9999", int64(3)).
			Return(nil, domain.ErrNotFound).Once()
		members.On("Update", ctx, mock.AnythingOfType("*domain.Member")).Return(nil).Once()

		_, err := svc.Update(ctx, &domain.Member{
			ID:     3,
			UserID: userID,
			Email:  "asha@example.com",
			Phone:  "9999",
		})

		assert.NoError(t, err)
		members.AssertExpectations(t)
	})

	t.Run("UnknownMemberNotFound", func(t *testing.T) {
		members := new(MockMemberRepo)
		svc := service.NewMemberService(members)

		members.On("GetByID", ctx, userID, int64(99)).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.Update(ctx, &domain.Member{ID: 99, UserID: userID})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
