package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// ValidPaymentMethod reports whether m is one of the known methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodOnline:
		return true
	}
	return false
}

// Payment is an immutable signed ledger entry: positive for money received,
// negative for refunds and expense payouts. Refunds are new negative entries,
// never edits to prior rows. At most one of BillableID/ExpenseID is set.
type Payment struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	BillableID  *int64        `json:"billable_id,omitempty"`
	ExpenseID   *int64        `json:"expense_id,omitempty"`
	Amount      int64         `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Notes       string        `json:"notes,omitempty"`
	PaymentDate time.Time     `json:"payment_date"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PaymentFilter drives the tenant-wide payment history listing.
type PaymentFilter struct {
	MemberID  int64
	StartDate *time.Time
	EndDate   *time.Time
	Method    PaymentMethod
	Page      int32
	PageSize  int32
}

// PaymentRecord is a history row joined to the entity it finances.
type PaymentRecord struct {
	Payment
	Type         string  `json:"type"` // "membership", "addon", "expense" or "unknown"
	MemberName   string  `json:"member_name,omitempty"`
	MemberEmail  string  `json:"member_email,omitempty"`
	OfferingName string  `json:"offering_name,omitempty"`
	TrainerName  string  `json:"trainer_name,omitempty"`
	ExpenseTitle string  `json:"expense_title,omitempty"`
}

// LedgerSummary is the income/outgo aggregation over a tenant's ledger.
// By convention income entries are positive and outgoing entries negative.
type LedgerSummary struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	NetBalance   int64 `json:"net_balance"`
}
