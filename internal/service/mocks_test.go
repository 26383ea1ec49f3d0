package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/repository"
)

// fixedClock pins "now" so date-boundary checks are deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepo) ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMemberRepo struct{ mock.Mock }

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Member, error) {
	args := m.Called(ctx, userID, id)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepo) FindDuplicate(ctx context.Context, userID int64, email, phone string, excludeID int64) (*domain.Member, error) {
	args := m.Called(ctx, userID, email, phone, excludeID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepo) List(ctx context.Context, userID int64, filter domain.MemberFilter) ([]domain.Member, int64, error) {
	args := m.Called(ctx, userID, filter)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	return members, args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberRepo) Count(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepo) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockTrainerRepo struct{ mock.Mock }

func (m *MockTrainerRepo) Create(ctx context.Context, trainer *domain.Trainer) error {
	return m.Called(ctx, trainer).Error(0)
}

func (m *MockTrainerRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Trainer, error) {
	args := m.Called(ctx, userID, id)
	var trainer *domain.Trainer
	if args.Get(0) != nil {
		trainer = args.Get(0).(*domain.Trainer)
	}
	return trainer, args.Error(1)
}

func (m *MockTrainerRepo) List(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Trainer, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	var trainers []domain.Trainer
	if args.Get(0) != nil {
		trainers = args.Get(0).([]domain.Trainer)
	}
	return trainers, args.Get(1).(int64), args.Error(2)
}

func (m *MockTrainerRepo) Count(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrainerRepo) Update(ctx context.Context, trainer *domain.Trainer) error {
	return m.Called(ctx, trainer).Error(0)
}

func (m *MockTrainerRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockOfferingRepo struct{ mock.Mock }

func (m *MockOfferingRepo) Create(ctx context.Context, offering *domain.Offering) error {
	return m.Called(ctx, offering).Error(0)
}

func (m *MockOfferingRepo) GetByID(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) (*domain.Offering, error) {
	args := m.Called(ctx, userID, kind, id)
	var offering *domain.Offering
	if args.Get(0) != nil {
		offering = args.Get(0).(*domain.Offering)
	}
	return offering, args.Error(1)
}

func (m *MockOfferingRepo) List(ctx context.Context, userID int64, kind domain.OfferingKind, filter domain.OfferingFilter) ([]domain.Offering, error) {
	args := m.Called(ctx, userID, kind, filter)
	var offerings []domain.Offering
	if args.Get(0) != nil {
		offerings = args.Get(0).([]domain.Offering)
	}
	return offerings, args.Error(1)
}

func (m *MockOfferingRepo) Update(ctx context.Context, offering *domain.Offering) error {
	return m.Called(ctx, offering).Error(0)
}

func (m *MockOfferingRepo) SetActive(ctx context.Context, userID int64, kind domain.OfferingKind, id int64, active bool) error {
	return m.Called(ctx, userID, kind, id, active).Error(0)
}

func (m *MockOfferingRepo) Delete(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) error {
	return m.Called(ctx, userID, kind, id).Error(0)
}

type MockBillableRepo struct{ mock.Mock }

func (m *MockBillableRepo) Create(ctx context.Context, entity *domain.BillableEntity) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockBillableRepo) GetByID(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error) {
	args := m.Called(ctx, userID, kind, id)
	var entity *domain.BillableEntity
	if args.Get(0) != nil {
		entity = args.Get(0).(*domain.BillableEntity)
	}
	return entity, args.Error(1)
}

func (m *MockBillableRepo) GetByIDForUpdate(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error) {
	args := m.Called(ctx, userID, kind, id)
	var entity *domain.BillableEntity
	if args.Get(0) != nil {
		entity = args.Get(0).(*domain.BillableEntity)
	}
	return entity, args.Error(1)
}

func (m *MockBillableRepo) List(ctx context.Context, userID int64, kind domain.BillableKind) ([]domain.BillableEntity, error) {
	args := m.Called(ctx, userID, kind)
	var entities []domain.BillableEntity
	if args.Get(0) != nil {
		entities = args.Get(0).([]domain.BillableEntity)
	}
	return entities, args.Error(1)
}

func (m *MockBillableRepo) HasOverlapping(ctx context.Context, userID int64, kind domain.BillableKind, memberID int64, start, end time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, userID, kind, memberID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBillableRepo) Update(ctx context.Context, entity *domain.BillableEntity) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockBillableRepo) UpdateBalance(ctx context.Context, entity *domain.BillableEntity) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockBillableRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockBillableRepo) SumPending(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillableRepo) CountByStatus(ctx context.Context, userID int64, kind domain.BillableKind, status domain.BillableStatus) (int64, error) {
	args := m.Called(ctx, userID, kind, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillableRepo) CountActiveEndingBy(ctx context.Context, userID int64, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, userID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockLedgerRepo struct{ mock.Mock }

func (m *MockLedgerRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockLedgerRepo) ListByBillable(ctx context.Context, userID, billableID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, userID, billableID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockLedgerRepo) ListByExpense(ctx context.Context, userID, expenseID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, userID, expenseID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockLedgerRepo) DeleteByBillable(ctx context.Context, userID, billableID int64) error {
	return m.Called(ctx, userID, billableID).Error(0)
}

func (m *MockLedgerRepo) DeleteByExpense(ctx context.Context, userID, expenseID int64) error {
	return m.Called(ctx, userID, expenseID).Error(0)
}

func (m *MockLedgerRepo) History(ctx context.Context, userID int64, filter domain.PaymentFilter) ([]domain.PaymentRecord, int64, error) {
	args := m.Called(ctx, userID, filter)
	var records []domain.PaymentRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.PaymentRecord)
	}
	return records, args.Get(1).(int64), args.Error(2)
}

func (m *MockLedgerRepo) Summary(ctx context.Context, userID int64) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, userID)
	var summary *domain.LedgerSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.LedgerSummary)
	}
	return summary, args.Error(1)
}

func (m *MockLedgerRepo) SumSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockExpenseRepo struct{ mock.Mock }

func (m *MockExpenseRepo) Create(ctx context.Context, expense *domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, userID, id)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepo) GetByIDForUpdate(ctx context.Context, userID, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, userID, id)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepo) List(ctx context.Context, userID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepo) Update(ctx context.Context, expense *domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockGymClassRepo struct{ mock.Mock }

func (m *MockGymClassRepo) Create(ctx context.Context, class *domain.GymClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *MockGymClassRepo) GetByID(ctx context.Context, userID, id int64) (*domain.GymClass, error) {
	args := m.Called(ctx, userID, id)
	var class *domain.GymClass
	if args.Get(0) != nil {
		class = args.Get(0).(*domain.GymClass)
	}
	return class, args.Error(1)
}

func (m *MockGymClassRepo) List(ctx context.Context, userID int64) ([]domain.GymClass, error) {
	args := m.Called(ctx, userID)
	var classes []domain.GymClass
	if args.Get(0) != nil {
		classes = args.Get(0).([]domain.GymClass)
	}
	return classes, args.Error(1)
}

func (m *MockGymClassRepo) Update(ctx context.Context, class *domain.GymClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *MockGymClassRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendRenewalReminder(ctx context.Context, email, memberName, offeringName string, endDate time.Time) error {
	return m.Called(ctx, email, memberName, offeringName, endDate).Error(0)
}

func (m *MockEmailService) SendAccountApproved(ctx context.Context, email, name string) error {
	return m.Called(ctx, email, name).Error(0)
}

func (m *MockEmailService) SendAccountRejected(ctx context.Context, email, name string) error {
	return m.Called(ctx, email, name).Error(0)
}

// mockStore bundles the repository mocks. ExecTx runs fn against the same
// store, which matches the production behavior of a transaction-bound Store
// sharing the repositories' state.
type mockStore struct {
	users     *MockUserRepo
	members   *MockMemberRepo
	trainers  *MockTrainerRepo
	offerings *MockOfferingRepo
	billables *MockBillableRepo
	ledger    *MockLedgerRepo
	expenses  *MockExpenseRepo
	classes   *MockGymClassRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		users:     new(MockUserRepo),
		members:   new(MockMemberRepo),
		trainers:  new(MockTrainerRepo),
		offerings: new(MockOfferingRepo),
		billables: new(MockBillableRepo),
		ledger:    new(MockLedgerRepo),
		expenses:  new(MockExpenseRepo),
		classes:   new(MockGymClassRepo),
	}
}

func (s *mockStore) Users() repository.UserRepository         { return s.users }
func (s *mockStore) Members() repository.MemberRepository     { return s.members }
func (s *mockStore) Trainers() repository.TrainerRepository   { return s.trainers }
func (s *mockStore) Offerings() repository.OfferingRepository { return s.offerings }
func (s *mockStore) Billables() repository.BillableRepository { return s.billables }
func (s *mockStore) Ledger() repository.LedgerRepository      { return s.ledger }
func (s *mockStore) Expenses() repository.ExpenseRepository   { return s.expenses }
func (s *mockStore) Classes() repository.GymClassRepository   { return s.classes }

func (s *mockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
