package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gymdesk-backend/internal/domain"
)

type memberRepository struct {
	q DBTX
}

const memberColumns = `id, user_id, first_name, last_name, COALESCE(email, ''), phone,
	       COALESCE(address, ''), COALESCE(gender, ''), COALESCE(referral_source, ''),
	       COALESCE(notes, ''), created_at, updated_at`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (user_id, first_name, last_name, email, phone, address, gender,
	          referral_source, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err := r.q.QueryRowContext(ctx, query,
		m.UserID, m.FirstName, m.LastName, m.Email, m.Phone,
		m.Address, m.Gender, m.ReferralSource, m.Notes,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return mapError(err)
}

func (r *memberRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1 AND user_id = $2`
	m, err := scanMember(r.q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *memberRepository) FindDuplicate(ctx context.Context, userID int64, email, phone string, excludeID int64) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members
	          WHERE user_id = $1 AND id <> $2 AND (phone = $3 OR (email IS NOT NULL AND $4 <> '' AND email = $4))
	          LIMIT 1`
	m, err := scanMember(r.q.QueryRowContext(ctx, query, userID, excludeID, phone, email))
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *memberRepository) List(ctx context.Context, userID int64, f domain.MemberFilter) ([]domain.Member, int64, error) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if f.ID > 0 {
		args = append(args, f.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if f.Phone != "" {
		args = append(args, "%"+f.Phone+"%")
		conds = append(conds, fmt.Sprintf("phone ILIKE $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM members WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	sortField := "created_at"
	switch f.SortBy {
	case "first_name", "last_name", "email", "created_at":
		sortField = f.SortBy
	}
	order := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		order = "ASC"
	}

	page, pageSize := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	args = append(args, pageSize, (page-1)*pageSize)

	query := fmt.Sprintf(`SELECT %s FROM members WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		memberColumns, where, sortField, order, len(args)-1, len(args))

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, *m)
	}
	return members, total, rows.Err()
}

func (r *memberRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, mapError(err)
}

func (r *memberRepository) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members WHERE user_id = $1 AND created_at >= $2`, userID, since,
	).Scan(&count)
	return count, mapError(err)
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members
	          SET first_name = $1, last_name = $2, email = NULLIF($3, ''), phone = $4, address = $5,
	              gender = $6, referral_source = $7, notes = $8, updated_at = NOW()
	          WHERE id = $9 AND user_id = $10`
	res, err := r.q.ExecContext(ctx, query,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Address,
		m.Gender, m.ReferralSource, m.Notes, m.ID, m.UserID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *memberRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM members WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.UserID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
		&m.Address, &m.Gender, &m.ReferralSource, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
