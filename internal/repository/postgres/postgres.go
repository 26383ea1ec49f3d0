package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gymdesk-backend/internal/repository"

	"github.com/lib/pq"

	"gymdesk-backend/internal/domain"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories are built over it so the same code runs standalone or inside
// the transactional boundary.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB // nil when this store is bound to a transaction
	q  DBTX

	users     repository.UserRepository
	members   repository.MemberRepository
	trainers  repository.TrainerRepository
	offerings repository.OfferingRepository
	billables repository.BillableRepository
	ledger    repository.LedgerRepository
	expenses  repository.ExpenseRepository
	classes   repository.GymClassRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:        db,
		q:         q,
		users:     &userRepository{q},
		members:   &memberRepository{q},
		trainers:  &trainerRepository{q},
		offerings: &offeringRepository{q},
		billables: &billableRepository{q},
		ledger:    &ledgerRepository{q},
		expenses:  &expenseRepository{q},
		classes:   &gymClassRepository{q},
	}
}

func (s *Store) Users() repository.UserRepository          { return s.users }
func (s *Store) Members() repository.MemberRepository      { return s.members }
func (s *Store) Trainers() repository.TrainerRepository    { return s.trainers }
func (s *Store) Offerings() repository.OfferingRepository  { return s.offerings }
func (s *Store) Billables() repository.BillableRepository  { return s.billables }
func (s *Store) Ledger() repository.LedgerRepository       { return s.ledger }
func (s *Store) Expenses() repository.ExpenseRepository    { return s.expenses }
func (s *Store) Classes() repository.GymClassRepository    { return s.classes }

// ExecTx runs fn against a Store bound to a single database transaction.
// A store that is already transaction-bound runs fn in place, so nested
// boundaries collapse into the outer transaction.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txStore := newStore(nil, tx)
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// mapError translates driver errors into domain sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return domain.ErrConstraintViolation
		case "23505": // unique_violation
			return domain.ErrDuplicate
		}
	}
	return err
}

// requireAffected converts a zero-row update/delete into ErrNotFound so
// tenant-scoped writes against foreign rows surface as missing records.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
