// Package billing holds the pure balance and date-range math shared by the
// membership, addon and expense services. Nothing here touches the store;
// callers read the entity, fold a delta through these functions and persist
// the result inside one transaction.
package billing

import "gymdesk-backend/internal/domain"

// Balance is the recomputed money state of a billable entity after a
// mutation. Pending is floored at zero.
type Balance struct {
	Paid     int64
	Discount int64
	Pending  int64
	Status   domain.BillableStatus
}

func floorPending(raw int64) int64 {
	if raw < 0 {
		return 0
	}
	return raw
}

// ApplyPayment folds a payment delta into an entity's balance and derives the
// resulting status. A partially paid entity stays INACTIVE unless the caller
// explicitly passes PARTIAL_PAID as the override; any non-empty override wins
// outright (admin escape hatch, also the path that sets CANCELLED).
func ApplyPayment(price, paid, discount, amountPaid, amountDiscount int64, override domain.BillableStatus) Balance {
	newPaid := paid + amountPaid
	newDiscount := discount + amountDiscount
	raw := price - newPaid - newDiscount

	var status domain.BillableStatus
	switch {
	case raw <= 0:
		status = domain.BillableStatusActive
	case newPaid > 0:
		if override == domain.BillableStatusPartialPaid {
			status = domain.BillableStatusPartialPaid
		} else {
			status = domain.BillableStatusInactive
		}
	default:
		status = domain.BillableStatusInactive
	}
	if override != "" {
		status = override
	}

	return Balance{
		Paid:     newPaid,
		Discount: newDiscount,
		Pending:  floorPending(raw),
		Status:   status,
	}
}

// ApplyRefund reverses part of the paid total. The refund may not exceed the
// cumulative paid amount. A fully refunded entity reverts to INACTIVE, not
// CANCELLED; cancellation is only ever an explicit status override.
func ApplyRefund(price, paid, discount, refundAmount int64) (Balance, error) {
	if refundAmount <= 0 || refundAmount > paid {
		return Balance{}, domain.ErrInvalidRefund
	}

	newPaid := paid - refundAmount
	raw := price - newPaid - discount

	var status domain.BillableStatus
	switch {
	case raw <= 0:
		status = domain.BillableStatusActive
	case newPaid > 0:
		status = domain.BillableStatusPartialPaid
	default:
		status = domain.BillableStatusInactive
	}

	return Balance{
		Paid:     newPaid,
		Discount: discount,
		Pending:  floorPending(raw),
		Status:   status,
	}, nil
}

// ApplyOfferingChange recomputes the balance after the entity is repriced by
// a different offering. Historical ledger entries are untouched.
func ApplyOfferingChange(newPrice, paid, discount int64) Balance {
	raw := newPrice - paid - discount

	status := domain.BillableStatusInactive
	if raw <= 0 {
		status = domain.BillableStatusActive
	}

	return Balance{
		Paid:     paid,
		Discount: discount,
		Pending:  floorPending(raw),
		Status:   status,
	}
}

// ExpenseBalance derives the pending amount and status ladder of an expense
// from its amount owed and cumulative paid total.
func ExpenseBalance(amount, paid int64) (int64, domain.ExpenseStatus) {
	pending := floorPending(amount - paid)
	switch {
	case pending == 0:
		return pending, domain.ExpenseStatusPaid
	case paid > 0:
		return pending, domain.ExpenseStatusPartialPaid
	default:
		return pending, domain.ExpenseStatusPending
	}
}
