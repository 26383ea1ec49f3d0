package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)
	plan := &domain.Offering{ID: 5, UserID: userID, Kind: domain.OfferingKindPlan, Name: "Gold", Price: 1200}

	input := func() service.EnrollInput {
		return service.EnrollInput{
			Member: domain.Member{
				FirstName: "Asha",
				LastName:  "Rao",
				Email:     "asha@example.com",
				Phone:     "9999",
			},
			Membership: service.CreateBillableInput{
				OfferingID: 5,
				StartDate:  date(2026, 3, 1),
				EndDate:    date(2026, 3, 31),
				Paid:       1200,
				Method:     domain.PaymentMethodCash,
			},
		}
	}

	t.Run("MemberAndMembershipCreatedTogether", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewEnrollmentService(store, testClock)

		store.members.On("FindDuplicate", ctx, userID, "asha@example.com", "9999", int64(0)).
			Return(nil, domain.ErrNotFound).Once()
		store.members.On("Create", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.UserID == userID && m.Phone == "9999"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Member).ID = 3
		}).Return(nil).Once()
		store.members.On("GetByID", ctx, userID, int64(3)).
			Return(&domain.Member{ID: 3, UserID: userID}, nil)
		store.offerings.On("GetByID", ctx, userID, domain.OfferingKindPlan, int64(5)).Return(plan, nil)
		store.billables.On("HasOverlapping", ctx, userID, domain.BillableKindMembership, int64(3),
			date(2026, 3, 1), date(2026, 3, 31), int64(0)).Return(false, nil).Once()
		store.billables.On("Create", ctx, mock.MatchedBy(func(e *domain.BillableEntity) bool {
			return e.MemberID == 3 && e.Status == domain.BillableStatusActive
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.BillableEntity).ID = 42
		}).Return(nil).Once()
		store.ledger.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil).Once()
		store.ledger.On("ListByBillable", ctx, userID, int64(42)).Return(nil, nil)

		member, membership, err := svc.Enroll(ctx, userID, input())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), member.ID)
		assert.Equal(t, int64(3), membership.MemberID)
		store.members.AssertExpectations(t)
		store.billables.AssertExpectations(t)
	})

	t.Run("DuplicateWalkInRejected", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewEnrollmentService(store, testClock)

		store.members.On("FindDuplicate", ctx, userID, "asha@example.com", "9999", int64(0)).
			Return(&domain.Member{ID: 2}, nil).Once()

		_, _, err := svc.Enroll(ctx, userID, input())

		assert.ErrorIs(t, err, domain.ErrDuplicate)
		store.members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("OverlapAbortsEnrollment", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewEnrollmentService(store, testClock)

		store.members.On("FindDuplicate", ctx, userID, "asha@example.com", "9999", int64(0)).
			Return(nil, domain.ErrNotFound).Once()
		store.members.On("Create", ctx, mock.AnythingOfType("*domain.Member")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Member).ID = 3
			}).Return(nil).Once()
		store.members.On("GetByID", ctx, userID, int64(3)).
			Return(&domain.Member{ID: 3, UserID: userID}, nil)
		store.offerings.On("GetByID", ctx, userID, domain.OfferingKindPlan, int64(5)).Return(plan, nil)
		store.billables.On("HasOverlapping", ctx, userID, domain.BillableKindMembership, int64(3),
			date(2026, 3, 1), date(2026, 3, 31), int64(0)).Return(true, nil).Once()

		_, _, err := svc.Enroll(ctx, userID, input())

		assert.ErrorIs(t, err, domain.ErrOverlappingRange)
		store.billables.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
