package billing

import (
	"time"

	"gymdesk-backend/internal/domain"
)

// DateRange is a closed [Start, End] interval at day granularity.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two closed ranges intersect: [s1,e1] and [s2,e2]
// overlap iff s1 <= e2 and s2 <= e1. Inputs are truncated to the day
// boundary before comparison.
func Overlaps(a, b DateRange) bool {
	a1, a2 := Day(a.Start), Day(a.End)
	b1, b2 := Day(b.Start), Day(b.End)
	return !a1.After(b2) && !b1.After(a2)
}

// OverlapsAny reports whether candidate intersects any of the given ranges.
func OverlapsAny(candidate DateRange, existing []DateRange) bool {
	for _, r := range existing {
		if Overlaps(candidate, r) {
			return true
		}
	}
	return false
}

// ValidateRange checks a candidate [start, end] range against the basic date
// rules: the end must be strictly after the start, and must not lie before
// today. Overlap against sibling entities is checked separately against the
// store, with the entity under update excluded from its own check.
func ValidateRange(start, end, today time.Time) error {
	s, e := Day(start), Day(end)
	if !s.Before(e) {
		return domain.ErrInvalidDateRange
	}
	if e.Before(Day(today)) {
		return domain.ErrPastEndDate
	}
	return nil
}
