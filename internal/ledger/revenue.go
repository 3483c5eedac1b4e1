package ledger

import (
	"time"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// DeriveRevenueStatus computes an invoice's eligibility and delay in days as
// of the given day. An invoice is DUE once its due date has arrived and an
// amount is still outstanding. Delay counts the days between due date and
// payment (or today while unpaid and overdue) and is never negative.
func DeriveRevenueStatus(inv *models.RevenueInvoice, today string) (eligibility string, delayDays int) {
	due, err := time.Parse(models.DateLayout, inv.DueDate)
	if err != nil {
		return models.EligibilityNotDue, 0
	}
	now, err := time.Parse(models.DateLayout, today)
	if err != nil {
		return models.EligibilityNotDue, 0
	}

	eligibility = models.EligibilityNotDue
	if inv.DueAmount.IsPositive() && !due.After(now) {
		eligibility = models.EligibilityDue
	}

	if inv.PaidDate != nil {
		if paid, err := time.Parse(models.DateLayout, *inv.PaidDate); err == nil {
			delayDays = calendarDays(due, paid)
		}
	} else if due.Before(now) && inv.DueAmount.IsPositive() {
		delayDays = calendarDays(due, now)
	}
	if delayDays < 0 {
		delayDays = 0
	}
	return eligibility, delayDays
}

// calendarDays returns the whole days from a to b. Both values are parsed
// calendar days, so the division is exact.
func calendarDays(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
