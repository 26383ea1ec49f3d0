package domain

// DashboardSummary is the owner-facing headline view over a tenant's data.
type DashboardSummary struct {
	TotalMembers     int64 `json:"total_members"`
	ActiveMembers    int64 `json:"active_members"`
	NewMembersToday  int64 `json:"new_members_today"`
	RevenueToday     int64 `json:"revenue_today"`
	RevenueThisMonth int64 `json:"revenue_this_month"`
	PendingDues      int64 `json:"pending_dues"`
	UpcomingRenewals int64 `json:"upcoming_renewals"`
	ActiveTrainers   int64 `json:"active_trainers"`
}

type DashboardAlert struct {
	Type     string `json:"type"` // "danger", "warning", "success"
	Priority int    `json:"priority"`
	Title    string `json:"title"`
	Count    int64  `json:"count"`
	Action   string `json:"action"`
	Link     string `json:"link"`
}
