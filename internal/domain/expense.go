package domain

import "time"

type ExpenseStatus string

const (
	ExpenseStatusPending     ExpenseStatus = "PENDING"
	ExpenseStatusPartialPaid ExpenseStatus = "PARTIAL_PAID"
	ExpenseStatusPaid        ExpenseStatus = "PAID"
)

// Expense is the one-directional billable record: Amount owed, cumulative
// Paid, derived Pending. Its own money fields are always non-negative; the
// ledger entries that pay it down are stored with negated sign (outgoing
// cash) for the reporting aggregation.
type Expense struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Description string        `json:"description,omitempty"`
	Amount      int64         `json:"amount"`
	Paid        int64         `json:"paid"`
	Pending     int64         `json:"pending"`
	Status      ExpenseStatus `json:"status"`
	ExpenseDate time.Time     `json:"expense_date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Payments []Payment `json:"payments,omitempty"`
}
