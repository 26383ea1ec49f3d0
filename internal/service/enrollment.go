package service

import (
	"context"
	"errors"

	"gymdesk-backend/internal/billing"
	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/logger"
	"gymdesk-backend/internal/repository"
)

// enrollmentService signs up a walk-in: member record plus their first
// membership in one transaction. If the membership fails (bad range,
// overlap, unknown plan) the member row rolls back too.
type enrollmentService struct {
	store   repository.Store
	billing *billingService
}

func NewEnrollmentService(store repository.Store, clock billing.Clock) EnrollmentService {
	return &enrollmentService{
		store:   store,
		billing: &billingService{store: store, clock: clock},
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID int64, in EnrollInput) (*domain.Member, *domain.BillableEntity, error) {
	member := in.Member
	member.UserID = userID

	var entity *domain.BillableEntity
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		_, err := tx.Members().FindDuplicate(ctx, userID, member.Email, member.Phone, 0)
		if err == nil {
			return domain.ErrDuplicate
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := tx.Members().Create(ctx, &member); err != nil {
			return err
		}

		membership := in.Membership
		membership.MemberID = member.ID
		entity, err = s.billing.create(ctx, tx, userID, domain.BillableKindMembership, membership)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info("member enrolled", "member_id", member.ID, "membership_id", entity.ID)
	entity, err = s.billing.hydrate(ctx, userID, entity)
	if err != nil {
		return nil, nil, err
	}
	return &member, entity, nil
}
