package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gymdesk-backend/internal/domain"
)

type ledgerRepository struct {
	q DBTX
}

func (r *ledgerRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (user_id, billable_id, expense_id, amount, method, notes, payment_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id, created_at`
	err := r.q.QueryRowContext(ctx, query,
		p.UserID, nullInt64(p.BillableID), nullInt64(p.ExpenseID),
		p.Amount, p.Method, p.Notes, p.PaymentDate,
	).Scan(&p.ID, &p.CreatedAt)
	return mapError(err)
}

func (r *ledgerRepository) ListByBillable(ctx context.Context, userID, billableID int64) ([]domain.Payment, error) {
	query := `SELECT id, user_id, billable_id, expense_id, amount, method, COALESCE(notes, ''), payment_date, created_at
	          FROM payments WHERE user_id = $1 AND billable_id = $2 ORDER BY payment_date DESC`
	return r.list(ctx, query, userID, billableID)
}

func (r *ledgerRepository) ListByExpense(ctx context.Context, userID, expenseID int64) ([]domain.Payment, error) {
	query := `SELECT id, user_id, billable_id, expense_id, amount, method, COALESCE(notes, ''), payment_date, created_at
	          FROM payments WHERE user_id = $1 AND expense_id = $2 ORDER BY payment_date DESC`
	return r.list(ctx, query, userID, expenseID)
}

func (r *ledgerRepository) list(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *ledgerRepository) DeleteByBillable(ctx context.Context, userID, billableID int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM payments WHERE user_id = $1 AND billable_id = $2`, userID, billableID)
	return mapError(err)
}

func (r *ledgerRepository) DeleteByExpense(ctx context.Context, userID, expenseID int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM payments WHERE user_id = $1 AND expense_id = $2`, userID, expenseID)
	return mapError(err)
}

// History lists ledger entries joined to whatever they finance, newest first.
func (r *ledgerRepository) History(ctx context.Context, userID int64, f domain.PaymentFilter) ([]domain.PaymentRecord, int64, error) {
	conds := []string{"p.user_id = $1"}
	args := []any{userID}

	if f.MemberID > 0 {
		args = append(args, f.MemberID)
		conds = append(conds, fmt.Sprintf("b.member_id = $%d", len(args)))
	}
	if f.Method != "" {
		args = append(args, f.Method)
		conds = append(conds, fmt.Sprintf("p.method = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("p.payment_date >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("p.payment_date <= $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	countQuery := `SELECT COUNT(*) FROM payments p
	               LEFT JOIN billables b ON p.billable_id = b.id WHERE ` + where
	var total int64
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	page, pageSize := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	args = append(args, pageSize, (page-1)*pageSize)

	query := fmt.Sprintf(`SELECT p.id, p.user_id, p.billable_id, p.expense_id, p.amount, p.method,
	            COALESCE(p.notes, ''), p.payment_date, p.created_at,
	            b.kind,
	            COALESCE(m.first_name || ' ' || m.last_name, ''), COALESCE(m.email, ''),
	            COALESCE(o.name, ''),
	            COALESCE(t.first_name || ' ' || t.last_name, ''),
	            COALESCE(e.title, '')
	          FROM payments p
	          LEFT JOIN billables b ON p.billable_id = b.id
	          LEFT JOIN members m ON b.member_id = m.id
	          LEFT JOIN offerings o ON b.offering_id = o.id
	          LEFT JOIN trainers t ON b.trainer_id = t.id
	          LEFT JOIN expenses e ON p.expense_id = e.id
	          WHERE %s ORDER BY p.payment_date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		var rec domain.PaymentRecord
		var billableID, expenseID sql.NullInt64
		var kind sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &billableID, &expenseID, &rec.Amount, &rec.Method,
			&rec.Notes, &rec.PaymentDate, &rec.CreatedAt,
			&kind, &rec.MemberName, &rec.MemberEmail, &rec.OfferingName,
			&rec.TrainerName, &rec.ExpenseTitle,
		); err != nil {
			return nil, 0, err
		}
		rec.BillableID = int64Ptr(billableID)
		rec.ExpenseID = int64Ptr(expenseID)
		switch {
		case kind.Valid && kind.String == string(domain.BillableKindMembership):
			rec.Type = "membership"
		case kind.Valid && kind.String == string(domain.BillableKindAddon):
			rec.Type = "addon"
		case rec.ExpenseID != nil:
			rec.Type = "expense"
		default:
			rec.Type = "unknown"
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// Summary aggregates the signed ledger: income positive, outgo negative.
func (r *ledgerRepository) Summary(ctx context.Context, userID int64) (*domain.LedgerSummary, error) {
	query := `SELECT COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0),
	                 COALESCE(SUM(amount) FILTER (WHERE amount < 0), 0)
	          FROM payments WHERE user_id = $1`
	var income, outgo int64
	if err := r.q.QueryRowContext(ctx, query, userID).Scan(&income, &outgo); err != nil {
		return nil, mapError(err)
	}
	return &domain.LedgerSummary{
		TotalIncome:  income,
		TotalExpense: -outgo,
		NetBalance:   income + outgo,
	}, nil
}

// SumSince totals all entries on or after the given instant, used for the
// revenue-today and revenue-this-month dashboard figures.
func (r *ledgerRepository) SumSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE user_id = $1 AND payment_date >= $2`
	err := r.q.QueryRowContext(ctx, query, userID, since).Scan(&total)
	return total, mapError(err)
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var billableID, expenseID sql.NullInt64
	err := row.Scan(
		&p.ID, &p.UserID, &billableID, &expenseID, &p.Amount, &p.Method,
		&p.Notes, &p.PaymentDate, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.BillableID = int64Ptr(billableID)
	p.ExpenseID = int64Ptr(expenseID)
	return &p, nil
}
