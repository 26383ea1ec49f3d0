package jobs

import (
	"context"
	"time"

	"gymdesk-backend/internal/billing"
	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/logger"
)

// MarkLapsedBillables flips memberships and addons whose covered range has
// ended to INACTIVE. Fully settled entities lapse too: ACTIVE speaks to the
// balance, not the calendar, so an expired paid-up membership must stop
// counting as active.
func (jr *JobRunner) MarkLapsedBillables() {
	jr.runWithRecovery("MarkLapsedBillables", func() {
		ctx := context.Background()
		today := billing.Today(jr.clock)

		query := `
			UPDATE billables
			SET status = 'INACTIVE',
			    updated_at = NOW()
			WHERE status IN ('ACTIVE', 'PARTIAL_PAID')
			  AND end_date < $1
			RETURNING id, user_id, kind, member_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to mark lapsed billables", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, userID, memberID int64
				kind                 string
				endDate              time.Time
			)
			if err := rows.Scan(&id, &userID, &kind, &memberID, &endDate); err != nil {
				logger.Error("Failed to scan lapsed billable", "error", err)
				continue
			}
			count++
			logger.Debug("Marked billable as lapsed",
				"billable_id", id,
				"user_id", userID,
				"kind", kind,
				"member_id", memberID,
				"end_date", endDate.Format("2006-01-02"))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating lapsed billables", "error", err)
			return
		}

		logger.Info("Marked billables as lapsed", "count", count)
	})
}

// SendRenewalReminders emails members whose active membership ends within
// the configured reminder window. Members without an email on file are
// skipped.
func (jr *JobRunner) SendRenewalReminders() {
	jr.runWithRecovery("SendRenewalReminders", func() {
		ctx := context.Background()
		today := billing.Today(jr.clock)
		cutoff := today.AddDate(0, 0, jr.config.Billing.RenewalReminderDays)

		query := `
			SELECT b.id, b.end_date,
			       m.first_name, m.last_name, m.email,
			       o.name
			FROM billables b
			JOIN members m ON m.id = b.member_id
			JOIN offerings o ON o.id = b.offering_id
			WHERE b.kind = $1
			  AND b.status IN ('ACTIVE', 'PARTIAL_PAID')
			  AND b.end_date BETWEEN $2 AND $3
			  AND m.email IS NOT NULL
		`

		rows, err := jr.db.QueryContext(ctx, query, string(domain.BillableKindMembership), today, cutoff)
		if err != nil {
			logger.Error("Failed to load expiring memberships", "error", err)
			return
		}
		defer rows.Close()

		sent, failed := 0, 0
		for rows.Next() {
			var (
				id                         int64
				endDate                    time.Time
				firstName, lastName, email string
				offeringName               string
			)
			if err := rows.Scan(&id, &endDate, &firstName, &lastName, &email, &offeringName); err != nil {
				logger.Error("Failed to scan expiring membership", "error", err)
				continue
			}

			name := firstName + " " + lastName
			if err := jr.email.SendRenewalReminder(ctx, email, name, offeringName, endDate); err != nil {
				logger.Error("Failed to send renewal reminder", "billable_id", id, "error", err)
				failed++
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expiring memberships", "error", err)
			return
		}

		logger.Info("Renewal reminders dispatched", "sent", sent, "failed", failed)
	})
}
