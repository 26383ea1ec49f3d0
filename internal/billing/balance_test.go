package billing

import (
	"testing"

	"gymdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestApplyPayment(t *testing.T) {
	t.Run("Full payment settles the entity", func(t *testing.T) {
		b := ApplyPayment(1200, 0, 0, 1200, 0, "")
		assert.Equal(t, int64(1200), b.Paid)
		assert.Equal(t, int64(0), b.Pending)
		assert.Equal(t, domain.BillableStatusActive, b.Status)
	})

	t.Run("Partial payment stays inactive by default", func(t *testing.T) {
		b := ApplyPayment(1200, 0, 0, 500, 0, "")
		assert.Equal(t, int64(500), b.Paid)
		assert.Equal(t, int64(700), b.Pending)
		assert.Equal(t, domain.BillableStatusInactive, b.Status)
	})

	t.Run("Partial payment with partial-paid override", func(t *testing.T) {
		b := ApplyPayment(1200, 0, 0, 500, 0, domain.BillableStatusPartialPaid)
		assert.Equal(t, int64(700), b.Pending)
		assert.Equal(t, domain.BillableStatusPartialPaid, b.Status)
	})

	t.Run("Second payment settles remainder", func(t *testing.T) {
		b := ApplyPayment(1200, 500, 0, 700, 0, "")
		assert.Equal(t, int64(1200), b.Paid)
		assert.Equal(t, int64(0), b.Pending)
		assert.Equal(t, domain.BillableStatusActive, b.Status)
	})

	t.Run("Discount counts toward settlement", func(t *testing.T) {
		b := ApplyPayment(1200, 0, 0, 1000, 200, "")
		assert.Equal(t, int64(1000), b.Paid)
		assert.Equal(t, int64(200), b.Discount)
		assert.Equal(t, int64(0), b.Pending)
		assert.Equal(t, domain.BillableStatusActive, b.Status)
	})

	t.Run("Overpayment floors pending at zero", func(t *testing.T) {
		b := ApplyPayment(1200, 0, 0, 1500, 0, "")
		assert.Equal(t, int64(1500), b.Paid)
		assert.Equal(t, int64(0), b.Pending)
		assert.Equal(t, domain.BillableStatusActive, b.Status)
	})

	t.Run("Zero delta keeps a fresh entity inactive", func(t *testing.T) {
		b := ApplyPayment(1200, 0, 0, 0, 0, "")
		assert.Equal(t, int64(0), b.Paid)
		assert.Equal(t, int64(1200), b.Pending)
		assert.Equal(t, domain.BillableStatusInactive, b.Status)
	})

	t.Run("Explicit override always wins", func(t *testing.T) {
		b := ApplyPayment(1200, 0, 0, 1200, 0, domain.BillableStatusCancelled)
		assert.Equal(t, int64(0), b.Pending)
		assert.Equal(t, domain.BillableStatusCancelled, b.Status)
	})
}

func TestApplyRefund(t *testing.T) {
	t.Run("Full refund reverts to inactive", func(t *testing.T) {
		b, err := ApplyRefund(1200, 1200, 0, 1200)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), b.Paid)
		assert.Equal(t, int64(1200), b.Pending)
		assert.Equal(t, domain.BillableStatusInactive, b.Status)
	})

	t.Run("Partial refund leaves partial-paid", func(t *testing.T) {
		b, err := ApplyRefund(1200, 1200, 0, 500)
		assert.NoError(t, err)
		assert.Equal(t, int64(700), b.Paid)
		assert.Equal(t, int64(500), b.Pending)
		assert.Equal(t, domain.BillableStatusPartialPaid, b.Status)
	})

	t.Run("Refund exceeding paid fails", func(t *testing.T) {
		_, err := ApplyRefund(1200, 1200, 0, 1300)
		assert.ErrorIs(t, err, domain.ErrInvalidRefund)
	})

	t.Run("Non-positive refund fails", func(t *testing.T) {
		_, err := ApplyRefund(1200, 1200, 0, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidRefund)

		_, err = ApplyRefund(1200, 1200, 0, -100)
		assert.ErrorIs(t, err, domain.ErrInvalidRefund)
	})

	t.Run("Refund on discounted entity keeps discount", func(t *testing.T) {
		// price 1200, discount 200, paid 1000 (settled); refund 300
		b, err := ApplyRefund(1200, 1000, 200, 300)
		assert.NoError(t, err)
		assert.Equal(t, int64(700), b.Paid)
		assert.Equal(t, int64(200), b.Discount)
		assert.Equal(t, int64(300), b.Pending)
		assert.Equal(t, domain.BillableStatusPartialPaid, b.Status)
	})
}

func TestApplyOfferingChange(t *testing.T) {
	t.Run("Cheaper offering settles from prior payments", func(t *testing.T) {
		b := ApplyOfferingChange(500, 500, 0)
		assert.Equal(t, int64(0), b.Pending)
		assert.Equal(t, domain.BillableStatusActive, b.Status)
	})

	t.Run("Pricier offering reopens pending", func(t *testing.T) {
		b := ApplyOfferingChange(2000, 1200, 0)
		assert.Equal(t, int64(800), b.Pending)
		assert.Equal(t, domain.BillableStatusInactive, b.Status)
	})

	t.Run("Pending never goes negative", func(t *testing.T) {
		b := ApplyOfferingChange(500, 1200, 0)
		assert.Equal(t, int64(0), b.Pending)
	})
}

func TestExpenseBalance(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		paid    int64
		pending int64
		status  domain.ExpenseStatus
	}{
		{"Unpaid", 1000, 0, 1000, domain.ExpenseStatusPending},
		{"Partially paid", 1000, 400, 600, domain.ExpenseStatusPartialPaid},
		{"Settled", 1000, 1000, 0, domain.ExpenseStatusPaid},
		{"Overpaid floors at zero", 1000, 1200, 0, domain.ExpenseStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending, status := ExpenseBalance(tt.amount, tt.paid)
			assert.Equal(t, tt.pending, pending)
			assert.Equal(t, tt.status, status)
		})
	}
}
