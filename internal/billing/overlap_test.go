package billing

import (
	"testing"
	"time"

	"gymdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	jan := DateRange{Start: date(2026, 1, 1), End: date(2026, 1, 31)}

	tests := []struct {
		name     string
		other    DateRange
		expected bool
	}{
		{"Disjoint after", DateRange{date(2026, 2, 1), date(2026, 2, 28)}, false},
		{"Disjoint before", DateRange{date(2025, 12, 1), date(2025, 12, 31)}, false},
		{"Shared end day", DateRange{date(2026, 1, 31), date(2026, 2, 28)}, true},
		{"Shared start day", DateRange{date(2025, 12, 15), date(2026, 1, 1)}, true},
		{"Contained", DateRange{date(2026, 1, 10), date(2026, 1, 20)}, true},
		{"Containing", DateRange{date(2025, 12, 1), date(2026, 3, 1)}, true},
		{"Identical", jan, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(jan, tt.other))
			assert.Equal(t, tt.expected, Overlaps(tt.other, jan))
		})
	}

	t.Run("Time of day is ignored", func(t *testing.T) {
		a := DateRange{
			Start: time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC),
			End:   time.Date(2026, 1, 31, 0, 1, 0, 0, time.UTC),
		}
		b := DateRange{Start: date(2026, 1, 31), End: date(2026, 2, 10)}
		assert.True(t, Overlaps(a, b))
	})
}

func TestOverlapsAny(t *testing.T) {
	existing := []DateRange{
		{date(2026, 1, 1), date(2026, 1, 31)},
		{date(2026, 3, 1), date(2026, 3, 31)},
	}

	assert.False(t, OverlapsAny(DateRange{date(2026, 2, 1), date(2026, 2, 28)}, existing))
	assert.True(t, OverlapsAny(DateRange{date(2026, 3, 15), date(2026, 4, 15)}, existing))
	assert.False(t, OverlapsAny(DateRange{date(2026, 5, 1), date(2026, 5, 31)}, nil))
}

func TestValidateRange(t *testing.T) {
	today := date(2026, 6, 1)

	t.Run("Valid range", func(t *testing.T) {
		assert.NoError(t, ValidateRange(date(2026, 6, 1), date(2026, 7, 1), today))
	})

	t.Run("Start equals end", func(t *testing.T) {
		err := ValidateRange(date(2026, 6, 1), date(2026, 6, 1), today)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("Start after end", func(t *testing.T) {
		err := ValidateRange(date(2026, 7, 1), date(2026, 6, 1), today)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("End in the past", func(t *testing.T) {
		err := ValidateRange(date(2026, 4, 1), date(2026, 5, 1), today)
		assert.ErrorIs(t, err, domain.ErrPastEndDate)
	})

	t.Run("End today is allowed", func(t *testing.T) {
		assert.NoError(t, ValidateRange(date(2026, 5, 1), date(2026, 6, 1), today))
	})
}

func TestDay(t *testing.T) {
	ts := time.Date(2026, 6, 1, 18, 30, 45, 123, time.UTC)
	assert.Equal(t, date(2026, 6, 1), Day(ts))
}
