package service

import (
	"context"
	"fmt"

	"gymdesk-backend/internal/billing"
	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/logger"
	"gymdesk-backend/internal/repository"
)

type billingService struct {
	store repository.Store
	clock billing.Clock
}

func NewBillingService(store repository.Store, clock billing.Clock) BillingService {
	return &billingService{store: store, clock: clock}
}

func (s *billingService) Create(ctx context.Context, userID int64, kind domain.BillableKind, in CreateBillableInput) (*domain.BillableEntity, error) {
	var entity *domain.BillableEntity
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		var err error
		entity, err = s.create(ctx, tx, userID, kind, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("billable created", "kind", kind, "id", entity.ID, "member_id", entity.MemberID)
	return s.hydrate(ctx, userID, entity)
}

// create runs the full open-an-entity flow against an already transaction
// bound store so the enrollment service can compose it with a member insert.
func (s *billingService) create(ctx context.Context, tx repository.Store, userID int64, kind domain.BillableKind, in CreateBillableInput) (*domain.BillableEntity, error) {
	member, err := tx.Members().GetByID(ctx, userID, in.MemberID)
	if err != nil {
		return nil, fmt.Errorf("resolving member %d: %w", in.MemberID, err)
	}

	offering, err := tx.Offerings().GetByID(ctx, userID, kind.OfferingKind(), in.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("resolving offering %d: %w", in.OfferingID, err)
	}

	trainerID := in.TrainerID
	if kind != domain.BillableKindAddon {
		trainerID = nil
	}
	if trainerID != nil {
		if _, err := tx.Trainers().GetByID(ctx, userID, *trainerID); err != nil {
			return nil, fmt.Errorf("resolving trainer %d: %w", *trainerID, err)
		}
	}

	start, end := billing.Day(in.StartDate), billing.Day(in.EndDate)
	if err := billing.ValidateRange(start, end, billing.Today(s.clock)); err != nil {
		return nil, err
	}
	overlaps, err := tx.Billables().HasOverlapping(ctx, userID, kind, member.ID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, domain.ErrOverlappingRange
	}

	bal := billing.ApplyPayment(offering.Price, 0, 0, in.Paid, in.Discount, "")

	entity := &domain.BillableEntity{
		UserID:     userID,
		Kind:       kind,
		MemberID:   member.ID,
		OfferingID: offering.ID,
		TrainerID:  trainerID,
		StartDate:  start,
		EndDate:    end,
		Price:      offering.Price,
		Paid:       bal.Paid,
		Discount:   bal.Discount,
		Pending:    bal.Pending,
		Status:     bal.Status,
	}
	if err := tx.Billables().Create(ctx, entity); err != nil {
		return nil, err
	}

	if in.Paid > 0 {
		payment := &domain.Payment{
			UserID:      userID,
			BillableID:  &entity.ID,
			Amount:      in.Paid,
			Method:      normalizeMethod(in.Method),
			PaymentDate: s.clock.Now(),
		}
		if err := tx.Ledger().Create(ctx, payment); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

func (s *billingService) Get(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error) {
	entity, err := s.store.Billables().GetByID(ctx, userID, kind, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, userID, entity)
}

func (s *billingService) List(ctx context.Context, userID int64, kind domain.BillableKind) ([]domain.BillableEntity, error) {
	return s.store.Billables().List(ctx, userID, kind)
}

func (s *billingService) Update(ctx context.Context, userID int64, kind domain.BillableKind, id int64, in UpdateBillableInput) (*domain.BillableEntity, error) {
	var entity *domain.BillableEntity
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		var err error
		entity, err = tx.Billables().GetByIDForUpdate(ctx, userID, kind, id)
		if err != nil {
			return err
		}

		start, end := entity.StartDate, entity.EndDate
		if in.StartDate != nil {
			start = billing.Day(*in.StartDate)
		}
		if in.EndDate != nil {
			end = billing.Day(*in.EndDate)
		}
		if in.StartDate != nil || in.EndDate != nil {
			if err := billing.ValidateRange(start, end, billing.Today(s.clock)); err != nil {
				return err
			}
			overlaps, err := tx.Billables().HasOverlapping(ctx, userID, kind, entity.MemberID, start, end, entity.ID)
			if err != nil {
				return err
			}
			if overlaps {
				return domain.ErrOverlappingRange
			}
			entity.StartDate, entity.EndDate = start, end
		}

		if in.OfferingID != nil && *in.OfferingID != entity.OfferingID {
			offering, err := tx.Offerings().GetByID(ctx, userID, kind.OfferingKind(), *in.OfferingID)
			if err != nil {
				return fmt.Errorf("resolving offering %d: %w", *in.OfferingID, err)
			}
			bal := billing.ApplyOfferingChange(offering.Price, entity.Paid, entity.Discount)
			entity.OfferingID = offering.ID
			entity.Price = offering.Price
			entity.Paid = bal.Paid
			entity.Discount = bal.Discount
			entity.Pending = bal.Pending
			entity.Status = bal.Status
		}

		if in.SetTrainer && kind == domain.BillableKindAddon {
			if in.TrainerID != nil {
				if _, err := tx.Trainers().GetByID(ctx, userID, *in.TrainerID); err != nil {
					return fmt.Errorf("resolving trainer %d: %w", *in.TrainerID, err)
				}
			}
			entity.TrainerID = in.TrainerID
		}

		return tx.Billables().Update(ctx, entity)
	})
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, userID, entity)
}

func (s *billingService) RecordPayment(ctx context.Context, userID int64, kind domain.BillableKind, id int64, in RecordPaymentInput) (*domain.BillableEntity, error) {
	var entity *domain.BillableEntity
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		var err error
		entity, err = tx.Billables().GetByIDForUpdate(ctx, userID, kind, id)
		if err != nil {
			return err
		}

		if in.Amount > 0 {
			bal := billing.ApplyPayment(entity.Price, entity.Paid, entity.Discount, in.Amount, in.Discount, in.StatusOverride)
			payment := &domain.Payment{
				UserID:      userID,
				BillableID:  &entity.ID,
				Amount:      in.Amount,
				Method:      normalizeMethod(in.Method),
				Notes:       in.Notes,
				PaymentDate: s.clock.Now(),
			}
			if err := tx.Ledger().Create(ctx, payment); err != nil {
				return err
			}
			entity.Paid = bal.Paid
			entity.Discount = bal.Discount
			entity.Pending = bal.Pending
			entity.Status = bal.Status
		} else if in.StatusOverride != "" {
			// Pure status change, no ledger entry and no balance movement.
			entity.Status = in.StatusOverride
		} else {
			return nil
		}

		return tx.Billables().UpdateBalance(ctx, entity)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("billable payment recorded", "kind", kind, "id", id, "amount", in.Amount)
	return s.hydrate(ctx, userID, entity)
}

func (s *billingService) Refund(ctx context.Context, userID int64, kind domain.BillableKind, id int64, in RefundInput) (*domain.BillableEntity, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidRefund
	}
	var entity *domain.BillableEntity
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		var err error
		entity, err = tx.Billables().GetByIDForUpdate(ctx, userID, kind, id)
		if err != nil {
			return err
		}

		bal, err := billing.ApplyRefund(entity.Price, entity.Paid, entity.Discount, in.Amount)
		if err != nil {
			return err
		}

		notes := "Refund issued"
		if in.Reason != "" {
			notes = "Refund: " + in.Reason
		}
		payment := &domain.Payment{
			UserID:      userID,
			BillableID:  &entity.ID,
			Amount:      -in.Amount,
			Method:      normalizeMethod(in.Method),
			Notes:       notes,
			PaymentDate: s.clock.Now(),
		}
		if err := tx.Ledger().Create(ctx, payment); err != nil {
			return err
		}

		entity.Paid = bal.Paid
		entity.Discount = bal.Discount
		entity.Pending = bal.Pending
		entity.Status = bal.Status
		return tx.Billables().UpdateBalance(ctx, entity)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("billable refunded", "kind", kind, "id", id, "amount", in.Amount)
	return s.hydrate(ctx, userID, entity)
}

func (s *billingService) Delete(ctx context.Context, userID int64, kind domain.BillableKind, id int64) error {
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Billables().GetByID(ctx, userID, kind, id); err != nil {
			return err
		}
		if err := tx.Ledger().DeleteByBillable(ctx, userID, id); err != nil {
			return err
		}
		return tx.Billables().Delete(ctx, userID, id)
	})
}

// hydrate attaches the member, offering, optional trainer and the payment
// trail for detail responses. Lookups run outside any transaction.
func (s *billingService) hydrate(ctx context.Context, userID int64, entity *domain.BillableEntity) (*domain.BillableEntity, error) {
	member, err := s.store.Members().GetByID(ctx, userID, entity.MemberID)
	if err == nil {
		entity.Member = member
	}
	offering, err := s.store.Offerings().GetByID(ctx, userID, entity.Kind.OfferingKind(), entity.OfferingID)
	if err == nil {
		entity.Offering = offering
	}
	if entity.TrainerID != nil {
		if trainer, err := s.store.Trainers().GetByID(ctx, userID, *entity.TrainerID); err == nil {
			entity.Trainer = trainer
		}
	}
	payments, err := s.store.Ledger().ListByBillable(ctx, userID, entity.ID)
	if err != nil {
		return nil, err
	}
	entity.Payments = payments
	return entity, nil
}

func normalizeMethod(m domain.PaymentMethod) domain.PaymentMethod {
	if domain.ValidPaymentMethod(m) {
		return m
	}
	return domain.PaymentMethodCash
}
