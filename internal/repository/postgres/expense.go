package postgres

import (
	"context"

	"gymdesk-backend/internal/domain"
)

type expenseRepository struct {
	q DBTX
}

const expenseColumns = `id, user_id, title, category, COALESCE(description, ''), amount, paid, pending,
	       status, expense_date, created_at, updated_at`

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	query := `INSERT INTO expenses (user_id, title, category, description, amount, paid, pending, status, expense_date, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err := r.q.QueryRowContext(ctx, query,
		e.UserID, e.Title, e.Category, e.Description, e.Amount, e.Paid, e.Pending, e.Status, e.ExpenseDate,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return mapError(err)
}

func (r *expenseRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Expense, error) {
	return r.get(ctx, userID, id, false)
}

func (r *expenseRepository) GetByIDForUpdate(ctx context.Context, userID, id int64) (*domain.Expense, error) {
	return r.get(ctx, userID, id, true)
}

func (r *expenseRepository) get(ctx context.Context, userID, id int64, forUpdate bool) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	e, err := scanExpense(r.q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *expenseRepository) List(ctx context.Context, userID int64) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY expense_date DESC`
	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	query := `UPDATE expenses
	          SET title = $1, category = $2, description = NULLIF($3, ''), amount = $4, paid = $5,
	              pending = $6, status = $7, expense_date = $8, updated_at = NOW()
	          WHERE id = $9 AND user_id = $10`
	res, err := r.q.ExecContext(ctx, query,
		e.Title, e.Category, e.Description, e.Amount, e.Paid, e.Pending, e.Status,
		e.ExpenseDate, e.ID, e.UserID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *expenseRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Category, &e.Description, &e.Amount,
		&e.Paid, &e.Pending, &e.Status, &e.ExpenseDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
