package ledger

import "time"

// MonthBounds returns the first and last instant of the calendar month
// containing the given time. The interval is closed on both ends.
func MonthBounds(at time.Time) (start, end time.Time) {
	start = time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// MonthBoundsAt returns the bounds of the calendar month that is monthsAgo
// months before the month containing the given time. MonthBoundsAt(t, 0) is
// equivalent to MonthBounds(t).
func MonthBoundsAt(at time.Time, monthsAgo int) (start, end time.Time) {
	start = time.Date(at.Year(), at.Month()-time.Month(monthsAgo), 1, 0, 0, 0, 0, at.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// MonthKey formats a month start as a YYYY-MM key.
func MonthKey(monthStart time.Time) string {
	return monthStart.Format("2006-01")
}
