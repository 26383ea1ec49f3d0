package repository

import (
	"context"
	"time"

	"gymdesk-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Member, error)
	// FindDuplicate returns the member sharing the given email or phone within
	// the tenant, or ErrNotFound when the fields are free.
	FindDuplicate(ctx context.Context, userID int64, email, phone string, excludeID int64) (*domain.Member, error)
	List(ctx context.Context, userID int64, filter domain.MemberFilter) ([]domain.Member, int64, error)
	Count(ctx context.Context, userID int64) (int64, error)
	CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, userID, id int64) error
}

type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Trainer, error)
	List(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Trainer, int64, error)
	Count(ctx context.Context, userID int64) (int64, error)
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, userID, id int64) error
}

type OfferingRepository interface {
	Create(ctx context.Context, offering *domain.Offering) error
	GetByID(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) (*domain.Offering, error)
	List(ctx context.Context, userID int64, kind domain.OfferingKind, filter domain.OfferingFilter) ([]domain.Offering, error)
	Update(ctx context.Context, offering *domain.Offering) error
	SetActive(ctx context.Context, userID int64, kind domain.OfferingKind, id int64, active bool) error
	Delete(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) error
}

type BillableRepository interface {
	Create(ctx context.Context, entity *domain.BillableEntity) error
	GetByID(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding
	// transaction so concurrent balance mutations serialize.
	GetByIDForUpdate(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error)
	List(ctx context.Context, userID int64, kind domain.BillableKind) ([]domain.BillableEntity, error)
	// HasOverlapping reports whether any non-cancelled entity of the same kind
	// for the same member intersects [start, end], excluding excludeID.
	HasOverlapping(ctx context.Context, userID int64, kind domain.BillableKind, memberID int64, start, end time.Time, excludeID int64) (bool, error)
	Update(ctx context.Context, entity *domain.BillableEntity) error
	UpdateBalance(ctx context.Context, entity *domain.BillableEntity) error
	Delete(ctx context.Context, userID, id int64) error
	SumPending(ctx context.Context, userID int64) (int64, error)
	CountByStatus(ctx context.Context, userID int64, kind domain.BillableKind, status domain.BillableStatus) (int64, error)
	CountActiveEndingBy(ctx context.Context, userID int64, cutoff time.Time) (int64, error)
}

type LedgerRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByBillable(ctx context.Context, userID, billableID int64) ([]domain.Payment, error)
	ListByExpense(ctx context.Context, userID, expenseID int64) ([]domain.Payment, error)
	DeleteByBillable(ctx context.Context, userID, billableID int64) error
	DeleteByExpense(ctx context.Context, userID, expenseID int64) error
	History(ctx context.Context, userID int64, filter domain.PaymentFilter) ([]domain.PaymentRecord, int64, error)
	Summary(ctx context.Context, userID int64) (*domain.LedgerSummary, error)
	SumSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, userID, id int64) (*domain.Expense, error)
	GetByIDForUpdate(ctx context.Context, userID, id int64) (*domain.Expense, error)
	List(ctx context.Context, userID int64) ([]domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, userID, id int64) error
}

type GymClassRepository interface {
	Create(ctx context.Context, class *domain.GymClass) error
	GetByID(ctx context.Context, userID, id int64) (*domain.GymClass, error)
	List(ctx context.Context, userID int64) ([]domain.GymClass, error)
	Update(ctx context.Context, class *domain.GymClass) error
	Delete(ctx context.Context, userID, id int64) error
}

// Store bundles every repository together with the transactional mutation
// boundary. ExecTx runs fn against a Store whose repositories share one
// database transaction; entity-row updates and ledger-row inserts made inside
// fn commit or roll back as a unit.
type Store interface {
	Users() UserRepository
	Members() MemberRepository
	Trainers() TrainerRepository
	Offerings() OfferingRepository
	Billables() BillableRepository
	Ledger() LedgerRepository
	Expenses() ExpenseRepository
	Classes() GymClassRepository

	ExecTx(ctx context.Context, fn func(Store) error) error
}
