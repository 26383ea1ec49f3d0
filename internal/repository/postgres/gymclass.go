package postgres

import (
	"context"
	"database/sql"

	"gymdesk-backend/internal/domain"
)

type gymClassRepository struct {
	q DBTX
}

const gymClassColumns = `id, user_id, name, COALESCE(description, ''), COALESCE(schedule, ''),
	       COALESCE(capacity, 0), trainer_id, created_at, updated_at`

func (r *gymClassRepository) Create(ctx context.Context, c *domain.GymClass) error {
	query := `INSERT INTO classes (user_id, name, description, schedule, capacity, trainer_id, created_at, updated_at)
	          VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, 0), $6, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err := r.q.QueryRowContext(ctx, query,
		c.UserID, c.Name, c.Description, c.Schedule, c.Capacity, nullInt64(c.TrainerID),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return mapError(err)
}

func (r *gymClassRepository) GetByID(ctx context.Context, userID, id int64) (*domain.GymClass, error) {
	query := `SELECT ` + gymClassColumns + ` FROM classes WHERE id = $1 AND user_id = $2`
	c, err := scanGymClass(r.q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *gymClassRepository) List(ctx context.Context, userID int64) ([]domain.GymClass, error) {
	query := `SELECT ` + gymClassColumns + ` FROM classes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var classes []domain.GymClass
	for rows.Next() {
		c, err := scanGymClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *c)
	}
	return classes, rows.Err()
}

func (r *gymClassRepository) Update(ctx context.Context, c *domain.GymClass) error {
	query := `UPDATE classes
	          SET name = $1, description = NULLIF($2, ''), schedule = NULLIF($3, ''),
	              capacity = NULLIF($4, 0), trainer_id = $5, updated_at = NOW()
	          WHERE id = $6 AND user_id = $7`
	res, err := r.q.ExecContext(ctx, query,
		c.Name, c.Description, c.Schedule, c.Capacity, nullInt64(c.TrainerID), c.ID, c.UserID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *gymClassRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM classes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func scanGymClass(row rowScanner) (*domain.GymClass, error) {
	var c domain.GymClass
	var trainerID sql.NullInt64
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.Schedule, &c.Capacity,
		&trainerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.TrainerID = int64Ptr(trainerID)
	return &c, nil
}
