package domain

import "time"

// OfferingKind separates the two priced products a member can be billed for.
type OfferingKind string

const (
	OfferingKindPlan  OfferingKind = "PLAN"
	OfferingKindAddon OfferingKind = "ADDON"
)

// Offering is a priced product (a membership plan or an addon such as
// personal training). Billable entities snapshot Price at creation time, so
// editing an offering never retroactively changes existing entities.
type Offering struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	Kind         OfferingKind `json:"kind"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Price        int64        `json:"price"`
	DurationDays int32        `json:"duration_days,omitempty"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// OfferingFilter drives offering listings.
type OfferingFilter struct {
	IsActive  *bool
	MinPrice  int64
	MaxPrice  int64
	Search    string
	SortBy    string
	SortOrder string
}
