package service

import (
	"context"

	"gymdesk-backend/internal/billing"
	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/logger"
	"gymdesk-backend/internal/repository"
)

type expenseService struct {
	store repository.Store
	clock billing.Clock
}

func NewExpenseService(store repository.Store, clock billing.Clock) ExpenseService {
	return &expenseService{store: store, clock: clock}
}

func (s *expenseService) Create(ctx context.Context, userID int64, in CreateExpenseInput) (*domain.Expense, error) {
	expenseDate := in.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = billing.Today(s.clock)
	}

	pending, status := billing.ExpenseBalance(in.Amount, 0)
	expense := &domain.Expense{
		UserID:      userID,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Paid:        0,
		Pending:     pending,
		Status:      status,
		ExpenseDate: billing.Day(expenseDate),
	}
	if err := s.store.Expenses().Create(ctx, expense); err != nil {
		return nil, err
	}
	logger.Info("expense created", "id", expense.ID, "amount", expense.Amount)
	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, userID, id int64) (*domain.Expense, error) {
	expense, err := s.store.Expenses().GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.store.Ledger().ListByExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	expense.Payments = payments
	return expense, nil
}

func (s *expenseService) List(ctx context.Context, userID int64) ([]domain.Expense, error) {
	return s.store.Expenses().List(ctx, userID)
}

func (s *expenseService) Update(ctx context.Context, userID, id int64, in UpdateExpenseInput) (*domain.Expense, error) {
	var expense *domain.Expense
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		var err error
		expense, err = tx.Expenses().GetByIDForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}
		if in.Title != nil {
			expense.Title = *in.Title
		}
		if in.Category != nil {
			expense.Category = *in.Category
		}
		if in.Description != nil {
			expense.Description = *in.Description
		}
		if in.ExpenseDate != nil {
			expense.ExpenseDate = billing.Day(*in.ExpenseDate)
		}
		if in.Amount != nil {
			expense.Amount = *in.Amount
			expense.Pending, expense.Status = billing.ExpenseBalance(expense.Amount, expense.Paid)
		}
		return tx.Expenses().Update(ctx, expense)
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) RecordPayment(ctx context.Context, userID, id, amount int64, method domain.PaymentMethod, notes string) (*domain.Expense, error) {
	var expense *domain.Expense
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		var err error
		expense, err = tx.Expenses().GetByIDForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}
		if amount <= 0 {
			return nil
		}

		if notes == "" {
			notes = "Expense payment"
		}
		// Money leaving the till is a negative ledger entry.
		payment := &domain.Payment{
			UserID:      userID,
			ExpenseID:   &expense.ID,
			Amount:      -amount,
			Method:      normalizeMethod(method),
			Notes:       notes,
			PaymentDate: s.clock.Now(),
		}
		if err := tx.Ledger().Create(ctx, payment); err != nil {
			return err
		}

		expense.Paid += amount
		expense.Pending, expense.Status = billing.ExpenseBalance(expense.Amount, expense.Paid)
		return tx.Expenses().Update(ctx, expense)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("expense payment recorded", "id", id, "amount", amount)
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, userID, id int64) error {
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Expenses().GetByID(ctx, userID, id); err != nil {
			return err
		}
		if err := tx.Ledger().DeleteByExpense(ctx, userID, id); err != nil {
			return err
		}
		return tx.Expenses().Delete(ctx, userID, id)
	})
}
