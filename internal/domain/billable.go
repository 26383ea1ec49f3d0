package domain

import "time"

// BillableKind separates memberships from member addon assignments. The two
// share one shape and one balance model; only the offering kind and the
// optional trainer link differ.
type BillableKind string

const (
	BillableKindMembership BillableKind = "MEMBERSHIP"
	BillableKindAddon      BillableKind = "ADDON"
)

// OfferingKind returns the offering kind a billable of this kind is priced by.
func (k BillableKind) OfferingKind() OfferingKind {
	if k == BillableKindAddon {
		return OfferingKindAddon
	}
	return OfferingKindPlan
}

type BillableStatus string

const (
	BillableStatusActive      BillableStatus = "ACTIVE"
	BillableStatusPartialPaid BillableStatus = "PARTIAL_PAID"
	BillableStatusInactive    BillableStatus = "INACTIVE"
	BillableStatusCancelled   BillableStatus = "CANCELLED"
)

// BillableEntity is the ledger-bearing aggregate: a priced, dated association
// between a member and an offering. Price is a snapshot of the offering price
// at creation time. Invariant: Pending == max(Price-Paid-Discount, 0) after
// every mutation that touches the money fields.
type BillableEntity struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"user_id"`
	Kind       BillableKind   `json:"kind"`
	MemberID   int64          `json:"member_id"`
	OfferingID int64          `json:"offering_id"`
	TrainerID  *int64         `json:"trainer_id,omitempty"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Price      int64          `json:"price"`
	Paid       int64          `json:"paid"`
	Discount   int64          `json:"discount"`
	Pending    int64          `json:"pending"`
	Status     BillableStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Populated on detail reads.
	Member   *Member   `json:"member,omitempty"`
	Offering *Offering `json:"offering,omitempty"`
	Trainer  *Trainer  `json:"trainer,omitempty"`
	Payments []Payment `json:"payments,omitempty"`
}
