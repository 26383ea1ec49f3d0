package service

import (
	"context"
	"fmt"
	"time"

	"gymdesk-backend/internal/billing"
	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/repository"
)

const renewalWindowDays = 7

type dashboardService struct {
	store repository.Store
	clock billing.Clock
}

func NewDashboardService(store repository.Store, clock billing.Clock) DashboardService {
	return &dashboardService{store: store, clock: clock}
}

func (s *dashboardService) Summary(ctx context.Context, userID int64) (*domain.DashboardSummary, error) {
	today := billing.Today(s.clock)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	totalMembers, err := s.store.Members().Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("counting members: %w", err)
	}
	newToday, err := s.store.Members().CountCreatedSince(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	activeMembers, err := s.store.Billables().CountByStatus(ctx, userID, domain.BillableKindMembership, domain.BillableStatusActive)
	if err != nil {
		return nil, err
	}
	revenueToday, err := s.store.Ledger().SumSince(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	revenueMonth, err := s.store.Ledger().SumSince(ctx, userID, monthStart)
	if err != nil {
		return nil, err
	}
	pendingDues, err := s.store.Billables().SumPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	renewals, err := s.store.Billables().CountActiveEndingBy(ctx, userID, today.AddDate(0, 0, renewalWindowDays))
	if err != nil {
		return nil, err
	}
	trainers, err := s.store.Trainers().Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalMembers:     totalMembers,
		ActiveMembers:    activeMembers,
		NewMembersToday:  newToday,
		RevenueToday:     revenueToday,
		RevenueThisMonth: revenueMonth,
		PendingDues:      pendingDues,
		UpcomingRenewals: renewals,
		ActiveTrainers:   trainers,
	}, nil
}

func (s *dashboardService) Alerts(ctx context.Context, userID int64) ([]domain.DashboardAlert, error) {
	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	var alerts []domain.DashboardAlert
	if summary.PendingDues > 0 {
		alerts = append(alerts, domain.DashboardAlert{
			Type:     "danger",
			Priority: 1,
			Title:    "Outstanding member dues",
			Count:    summary.PendingDues,
			Action:   "Collect pending payments",
			Link:     "/payments",
		})
	}
	if summary.UpcomingRenewals > 0 {
		alerts = append(alerts, domain.DashboardAlert{
			Type:     "warning",
			Priority: 2,
			Title:    "Memberships expiring within a week",
			Count:    summary.UpcomingRenewals,
			Action:   "Reach out before they lapse",
			Link:     "/memberships",
		})
	}
	if summary.NewMembersToday > 0 {
		alerts = append(alerts, domain.DashboardAlert{
			Type:     "success",
			Priority: 3,
			Title:    "New members joined today",
			Count:    summary.NewMembersToday,
			Action:   "Welcome them",
			Link:     "/members",
		})
	}
	return alerts, nil
}
