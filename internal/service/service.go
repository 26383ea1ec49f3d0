package service

import (
	"context"
	"time"

	"gymdesk-backend/internal/domain"
)

// CreateBillableInput carries everything needed to open a membership or
// addon: the member, the offering that prices it, the covered date range
// and an optional opening payment.
type CreateBillableInput struct {
	MemberID   int64
	OfferingID int64
	TrainerID  *int64
	StartDate  time.Time
	EndDate    time.Time
	Paid       int64
	Discount   int64
	Method     domain.PaymentMethod
}

// UpdateBillableInput patches the non-financial fields of an entity. Nil
// pointers leave the field untouched; SetTrainer distinguishes clearing
// the trainer from leaving it alone.
type UpdateBillableInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	OfferingID *int64
	TrainerID  *int64
	SetTrainer bool
}

type RecordPaymentInput struct {
	Amount         int64
	Discount       int64
	Method         domain.PaymentMethod
	Notes          string
	StatusOverride domain.BillableStatus
}

type RefundInput struct {
	Amount int64
	Method domain.PaymentMethod
	Reason string
}

type BillingService interface {
	Create(ctx context.Context, userID int64, kind domain.BillableKind, in CreateBillableInput) (*domain.BillableEntity, error)
	Get(ctx context.Context, userID int64, kind domain.BillableKind, id int64) (*domain.BillableEntity, error)
	List(ctx context.Context, userID int64, kind domain.BillableKind) ([]domain.BillableEntity, error)
	Update(ctx context.Context, userID int64, kind domain.BillableKind, id int64, in UpdateBillableInput) (*domain.BillableEntity, error)
	RecordPayment(ctx context.Context, userID int64, kind domain.BillableKind, id int64, in RecordPaymentInput) (*domain.BillableEntity, error)
	Refund(ctx context.Context, userID int64, kind domain.BillableKind, id int64, in RefundInput) (*domain.BillableEntity, error)
	Delete(ctx context.Context, userID int64, kind domain.BillableKind, id int64) error
}

type CreateExpenseInput struct {
	Title       string
	Category    string
	Description string
	Amount      int64
	ExpenseDate time.Time
}

type UpdateExpenseInput struct {
	Title       *string
	Category    *string
	Description *string
	Amount      *int64
	ExpenseDate *time.Time
}

type ExpenseService interface {
	Create(ctx context.Context, userID int64, in CreateExpenseInput) (*domain.Expense, error)
	Get(ctx context.Context, userID, id int64) (*domain.Expense, error)
	List(ctx context.Context, userID int64) ([]domain.Expense, error)
	Update(ctx context.Context, userID, id int64, in UpdateExpenseInput) (*domain.Expense, error)
	RecordPayment(ctx context.Context, userID, id, amount int64, method domain.PaymentMethod, notes string) (*domain.Expense, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PaymentService interface {
	History(ctx context.Context, userID int64, filter domain.PaymentFilter) ([]domain.PaymentRecord, int64, error)
	Summary(ctx context.Context, userID int64) (*domain.LedgerSummary, error)
}

type MemberService interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Get(ctx context.Context, userID, id int64) (*domain.Member, error)
	List(ctx context.Context, userID int64, filter domain.MemberFilter) ([]domain.Member, int64, error)
	Update(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Delete(ctx context.Context, userID, id int64) error
}

type TrainerService interface {
	Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	Get(ctx context.Context, userID, id int64) (*domain.Trainer, error)
	List(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Trainer, int64, error)
	Update(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	Delete(ctx context.Context, userID, id int64) error
}

type OfferingService interface {
	Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	Get(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) (*domain.Offering, error)
	List(ctx context.Context, userID int64, kind domain.OfferingKind, filter domain.OfferingFilter) ([]domain.Offering, error)
	Update(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	SetActive(ctx context.Context, userID int64, kind domain.OfferingKind, id int64, active bool) error
	Delete(ctx context.Context, userID int64, kind domain.OfferingKind, id int64) error
}

type GymClassService interface {
	Create(ctx context.Context, class *domain.GymClass) (*domain.GymClass, error)
	Get(ctx context.Context, userID, id int64) (*domain.GymClass, error)
	List(ctx context.Context, userID int64) ([]domain.GymClass, error)
	Update(ctx context.Context, class *domain.GymClass) (*domain.GymClass, error)
	Delete(ctx context.Context, userID, id int64) error
}

// EnrollInput registers a walk-in: a brand new member together with their
// first membership, committed atomically.
type EnrollInput struct {
	Member     domain.Member
	Membership CreateBillableInput
}

type EnrollmentService interface {
	Enroll(ctx context.Context, userID int64, in EnrollInput) (*domain.Member, *domain.BillableEntity, error)
}

type DashboardService interface {
	Summary(ctx context.Context, userID int64) (*domain.DashboardSummary, error)
	Alerts(ctx context.Context, userID int64) ([]domain.DashboardAlert, error)
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	PendingUsers(ctx context.Context) ([]domain.User, error)
	Approve(ctx context.Context, userID int64) (*domain.User, error)
	Reject(ctx context.Context, userID int64) (*domain.User, error)
	Delete(ctx context.Context, userID int64) error
}

type EmailService interface {
	SendRenewalReminder(ctx context.Context, email, memberName, offeringName string, endDate time.Time) error
	SendAccountApproved(ctx context.Context, email, name string) error
	SendAccountRejected(ctx context.Context, email, name string) error
}
