package postgres

import (
	"context"
	"fmt"
	"strings"

	"gymdesk-backend/internal/domain"
)

type offeringRepository struct {
	q DBTX
}

const offeringColumns = `id, user_id, kind, name, COALESCE(description, ''), price,
	       COALESCE(duration_days, 0), is_active, created_at, updated_at`

func (r *offeringRepository) Create(ctx context.Context, o *domain.Offering) error {
	query := `INSERT INTO offerings (user_id, kind, name, description, price, duration_days, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, 0), $7, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err := r.q.QueryRowContext(ctx, query,
		o.UserID, o.Kind, o.Name, o.Description, o.Price, o.DurationDays, o.IsActive,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return mapError(err)
}

func (r *offeringRepository) GetByID(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) (*domain.Offering, error) {
	query := `SELECT ` + offeringColumns + ` FROM offerings WHERE id = $1 AND user_id = $2 AND kind = $3`
	o, err := scanOffering(r.q.QueryRowContext(ctx, query, id, userID, kind))
	if err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

func (r *offeringRepository) List(ctx context.Context, userID int64, kind domain.OfferingKind, f domain.OfferingFilter) ([]domain.Offering, error) {
	conds := []string{"user_id = $1", "kind = $2"}
	args := []any{userID, kind}

	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if f.MinPrice > 0 {
		args = append(args, f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice > 0 {
		args = append(args, f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	sortField := "created_at"
	switch f.SortBy {
	case "price", "duration_days", "name", "created_at":
		sortField = f.SortBy
	}
	order := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		order = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM offerings WHERE %s ORDER BY %s %s`,
		offeringColumns, strings.Join(conds, " AND "), sortField, order)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var offerings []domain.Offering
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, *o)
	}
	return offerings, rows.Err()
}

func (r *offeringRepository) Update(ctx context.Context, o *domain.Offering) error {
	query := `UPDATE offerings
	          SET name = $1, description = NULLIF($2, ''), price = $3, duration_days = NULLIF($4, 0),
	              is_active = $5, updated_at = NOW()
	          WHERE id = $6 AND user_id = $7 AND kind = $8`
	res, err := r.q.ExecContext(ctx, query,
		o.Name, o.Description, o.Price, o.DurationDays, o.IsActive, o.ID, o.UserID, o.Kind,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *offeringRepository) SetActive(ctx context.Context, userID int64, kind domain.OfferingKind, id int64, active bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE offerings SET is_active = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3 AND kind = $4`,
		active, id, userID, kind,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *offeringRepository) Delete(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM offerings WHERE id = $1 AND user_id = $2 AND kind = $3`, id, userID, kind)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func scanOffering(row rowScanner) (*domain.Offering, error) {
	var o domain.Offering
	err := row.Scan(
		&o.ID, &o.UserID, &o.Kind, &o.Name, &o.Description, &o.Price,
		&o.DurationDays, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
