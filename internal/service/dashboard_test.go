package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)
	today := date(2026, 3, 1)
	monthStart := date(2026, 3, 1)

	store := newMockStore()
	svc := service.NewDashboardService(store, testClock)

	store.members.On("Count", ctx, userID).Return(int64(40), nil).Once()
	store.members.On("CountCreatedSince", ctx, userID, today).Return(int64(2), nil).Once()
	store.billables.On("CountByStatus", ctx, userID, domain.BillableKindMembership, domain.BillableStatusActive).
		Return(int64(31), nil).Once()
	store.ledger.On("SumSince", ctx, userID, today).Return(int64(3500), nil).Once()
	store.ledger.On("SumSince", ctx, userID, monthStart).Return(int64(3500), nil).Once()
	store.billables.On("SumPending", ctx, userID).Return(int64(12000), nil).Once()
	store.billables.On("CountActiveEndingBy", ctx, userID, date(2026, 3, 8)).Return(int64(4), nil).Once()
	store.trainers.On("Count", ctx, userID).Return(int64(5), nil).Once()

	summary, err := svc.Summary(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(40), summary.TotalMembers)
	assert.Equal(t, int64(31), summary.ActiveMembers)
	assert.Equal(t, int64(2), summary.NewMembersToday)
	assert.Equal(t, int64(3500), summary.RevenueToday)
	assert.Equal(t, int64(12000), summary.PendingDues)
	assert.Equal(t, int64(4), summary.UpcomingRenewals)
	assert.Equal(t, int64(5), summary.ActiveTrainers)
	store.billables.AssertExpectations(t)
}

func TestDashboardService_Alerts(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)
	today := date(2026, 3, 1)

	store := newMockStore()
	svc := service.NewDashboardService(store, testClock)

	store.members.On("Count", ctx, userID).Return(int64(40), nil)
	store.members.On("CountCreatedSince", ctx, userID, today).Return(int64(0), nil)
	store.billables.On("CountByStatus", ctx, userID, domain.BillableKindMembership, domain.BillableStatusActive).
		Return(int64(31), nil)
	store.ledger.On("SumSince", ctx, userID, today).Return(int64(0), nil)
	store.billables.On("SumPending", ctx, userID).Return(int64(12000), nil)
	store.billables.On("CountActiveEndingBy", ctx, userID, date(2026, 3, 8)).Return(int64(4), nil)
	store.trainers.On("Count", ctx, userID).Return(int64(5), nil)

	alerts, err := svc.Alerts(ctx, userID)

	assert.NoError(t, err)
	// No new members today, so only the dues and renewal alerts fire.
	assert.Len(t, alerts, 2)
	assert.Equal(t, "danger", alerts[0].Type)
	assert.Equal(t, int64(12000), alerts[0].Count)
	assert.Equal(t, "warning", alerts[1].Type)
	assert.Equal(t, int64(4), alerts[1].Count)
}
