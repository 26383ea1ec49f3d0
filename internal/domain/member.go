package domain

import "time"

// Member is a payer identity scoped to a tenant. A member owns zero or more
// billable entities; deleting a member with dependents fails on the FK.
type Member struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	ReferralSource string    `json:"referral_source,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// MemberFilter drives the paginated member listing.
type MemberFilter struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	SortBy    string
	SortOrder string
	Page      int32
	PageSize  int32
}
