package duedate

import (
	"fmt"
	"time"

	"github.com/granabox/granabox-api/internal/core/domain"
)

// Due status labels rendered to callers. StatusPayable is the generic
// future-due label for anything more than three days out.
const (
	StatusPaid        = "PAID"
	StatusOverdue     = "OVERDUE"
	StatusDueToday    = "DUE TODAY"
	StatusDueTomorrow = "DUE TOMORROW"
	StatusPayable     = "PAYABLE"
)

// ComputeStatus maps a due date to a human-readable due status, observed from
// the caller's timezone at the given instant.
// Income items never carry a due status; paid expenses are always "PAID".
// Otherwise the label depends only on the whole-day difference between the
// due date and "now", both taken as calendar dates in loc.
func ComputeStatus(dueDate time.Time, loc *time.Location, kind domain.ItemKind, now time.Time) string {
	if kind == domain.Income {
		return ""
	}
	if kind == domain.Paid {
		return StatusPaid
	}

	delta := daysBetween(now.In(loc), dueDate.In(loc))

	switch {
	case delta < 0:
		return StatusOverdue
	case delta == 0:
		return StatusDueToday
	case delta == 1:
		return StatusDueTomorrow
	case delta <= 3:
		return fmt.Sprintf("DUE IN %d DAYS", delta)
	default:
		return StatusPayable
	}
}

// AddMonths adds n calendar months to t with month-end clamping: adding one
// month to Jan 31 yields the last valid day of February, not March 2/3 as
// time.AddDate would produce.
func AddMonths(t time.Time, n int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	target := firstOfMonth.AddDate(0, n, 0)
	day := t.Day()
	if last := lastDayOfMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b, ignoring the time of
// day. Both dates are re-anchored at midnight UTC first so DST transitions
// cannot skew the division.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
