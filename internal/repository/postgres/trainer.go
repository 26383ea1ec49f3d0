package postgres

import (
	"context"

	"gymdesk-backend/internal/domain"
)

type trainerRepository struct {
	q DBTX
}

const trainerColumns = `id, user_id, first_name, last_name, COALESCE(email, ''),
	       COALESCE(phone, ''), COALESCE(specialty, ''), created_at, updated_at`

func (r *trainerRepository) Create(ctx context.Context, t *domain.Trainer) error {
	query := `INSERT INTO trainers (user_id, first_name, last_name, email, phone, specialty, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err := r.q.QueryRowContext(ctx, query,
		t.UserID, t.FirstName, t.LastName, t.Email, t.Phone, t.Specialty,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return mapError(err)
}

func (r *trainerRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE id = $1 AND user_id = $2`
	t, err := scanTrainer(r.q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *trainerRepository) List(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Trainer, int64, error) {
	var total int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM trainers WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	query := `SELECT ` + trainerColumns + ` FROM trainers
	          WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.QueryContext(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var trainers []domain.Trainer
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, 0, err
		}
		trainers = append(trainers, *t)
	}
	return trainers, total, rows.Err()
}

func (r *trainerRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM trainers WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, mapError(err)
}

func (r *trainerRepository) Update(ctx context.Context, t *domain.Trainer) error {
	query := `UPDATE trainers
	          SET first_name = $1, last_name = $2, email = NULLIF($3, ''), phone = NULLIF($4, ''),
	              specialty = NULLIF($5, ''), updated_at = NOW()
	          WHERE id = $6 AND user_id = $7`
	res, err := r.q.ExecContext(ctx, query,
		t.FirstName, t.LastName, t.Email, t.Phone, t.Specialty, t.ID, t.UserID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *trainerRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func scanTrainer(row rowScanner) (*domain.Trainer, error) {
	var t domain.Trainer
	err := row.Scan(
		&t.ID, &t.UserID, &t.FirstName, &t.LastName, &t.Email, &t.Phone,
		&t.Specialty, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
