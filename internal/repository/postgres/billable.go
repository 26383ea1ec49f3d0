package postgres

import (
	"context"
	"database/sql"
	"time"

	"gymdesk-backend/internal/domain"
)

type billableRepository struct {
	q DBTX
}

const billableColumns = `id, user_id, kind, member_id, offering_id, trainer_id, start_date, end_date,
	       price, paid, discount, pending, status, created_at, updated_at`

func (r *billableRepository) Create(ctx context.Context, e *domain.BillableEntity) error {
	query := `INSERT INTO billables (user_id, kind, member_id, offering_id, trainer_id, start_date, end_date,
	          price, paid, discount, pending, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err := r.q.QueryRowContext(ctx, query,
		e.UserID, e.Kind, e.MemberID, e.OfferingID, nullInt64(e.TrainerID),
		e.StartDate, e.EndDate, e.Price, e.Paid, e.Discount, e.Pending, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return mapError(err)
}

func (r *billableRepository) GetByID(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error) {
	return r.get(ctx, userID, kind, id, false)
}

func (r *billableRepository) GetByIDForUpdate(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error) {
	return r.get(ctx, userID, kind, id, true)
}

func (r *billableRepository) get(ctx context.Context, userID int64, kind domain.BillableKind, id int64, forUpdate bool) (*domain.BillableEntity, error) {
	query := `SELECT ` + billableColumns + ` FROM billables WHERE id = $1 AND user_id = $2 AND kind = $3`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	e, err := scanBillable(r.q.QueryRowContext(ctx, query, id, userID, kind))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *billableRepository) List(ctx context.Context, userID int64, kind domain.BillableKind) ([]domain.BillableEntity, error) {
	query := `SELECT ` + billableColumns + ` FROM billables
	          WHERE user_id = $1 AND kind = $2 ORDER BY created_at DESC`
	rows, err := r.q.QueryContext(ctx, query, userID, kind)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var entities []domain.BillableEntity
	for rows.Next() {
		e, err := scanBillable(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *e)
	}
	return entities, rows.Err()
}

func (r *billableRepository) HasOverlapping(ctx context.Context, userID int64, kind domain.BillableKind, memberID int64, start, end time.Time, excludeID int64) (bool, error) {
	// Closed-interval intersection: s1 <= e2 AND s2 <= e1. Cancelled entities
	// do not block new ranges.
	query := `SELECT EXISTS (
	            SELECT 1 FROM billables
	            WHERE user_id = $1 AND kind = $2 AND member_id = $3
	              AND id <> $4 AND status <> $5
	              AND start_date <= $6 AND end_date >= $7
	          )`
	var exists bool
	err := r.q.QueryRowContext(ctx, query,
		userID, kind, memberID, excludeID, domain.BillableStatusCancelled, end, start,
	).Scan(&exists)
	return exists, mapError(err)
}

func (r *billableRepository) Update(ctx context.Context, e *domain.BillableEntity) error {
	query := `UPDATE billables
	          SET offering_id = $1, trainer_id = $2, start_date = $3, end_date = $4,
	              price = $5, paid = $6, discount = $7, pending = $8, status = $9, updated_at = NOW()
	          WHERE id = $10 AND user_id = $11`
	res, err := r.q.ExecContext(ctx, query,
		e.OfferingID, nullInt64(e.TrainerID), e.StartDate, e.EndDate,
		e.Price, e.Paid, e.Discount, e.Pending, e.Status, e.ID, e.UserID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *billableRepository) UpdateBalance(ctx context.Context, e *domain.BillableEntity) error {
	query := `UPDATE billables
	          SET price = $1, paid = $2, discount = $3, pending = $4, status = $5, updated_at = NOW()
	          WHERE id = $6 AND user_id = $7`
	res, err := r.q.ExecContext(ctx, query,
		e.Price, e.Paid, e.Discount, e.Pending, e.Status, e.ID, e.UserID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *billableRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM billables WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *billableRepository) SumPending(ctx context.Context, userID int64) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(pending), 0) FROM billables WHERE user_id = $1 AND pending > 0`
	err := r.q.QueryRowContext(ctx, query, userID).Scan(&total)
	return total, mapError(err)
}

func (r *billableRepository) CountByStatus(ctx context.Context, userID int64, kind domain.BillableKind, status domain.BillableStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM billables WHERE user_id = $1 AND kind = $2 AND status = $3`
	err := r.q.QueryRowContext(ctx, query, userID, kind, status).Scan(&count)
	return count, mapError(err)
}

func (r *billableRepository) CountActiveEndingBy(ctx context.Context, userID int64, cutoff time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM billables
	          WHERE user_id = $1 AND kind = $2 AND status = $3 AND end_date <= $4`
	err := r.q.QueryRowContext(ctx, query,
		userID, domain.BillableKindMembership, domain.BillableStatusActive, cutoff,
	).Scan(&count)
	return count, mapError(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBillable(row rowScanner) (*domain.BillableEntity, error) {
	var e domain.BillableEntity
	var trainerID sql.NullInt64
	err := row.Scan(
		&e.ID, &e.UserID, &e.Kind, &e.MemberID, &e.OfferingID, &trainerID,
		&e.StartDate, &e.EndDate, &e.Price, &e.Paid, &e.Discount, &e.Pending,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.TrainerID = int64Ptr(trainerID)
	return &e, nil
}
