package billing

import "time"

// Clock supplies the current time. Injected so the "today" boundary checks
// and ledger timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by the wall clock in UTC.
func SystemClock() Clock { return systemClock{} }

// Day truncates t to its UTC day boundary (00:00:00 UTC). All date-only
// fields are stored and compared at this granularity.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC day boundary for the given clock.
func Today(clock Clock) time.Time { return Day(clock.Now()) }
