package forecast

import "time"

// Month windowing is a fixed UTC calendar rule so forecasts stay identical
// across environments. time.Date normalizes out-of-range values: month 13
// rolls into the next year, day 0 is the last day of the previous month.

// MonthRange returns the inclusive range covering the calendar month at
// offset from now: day one 00:00:00 UTC through the last day 23:59:59.999.
func MonthRange(now time.Time, offset int) (time.Time, time.Time) {
	y, m, _ := now.UTC().Date()
	start := time.Date(y, m+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y, m+time.Month(offset)+1, 0, 23, 59, 59, 999000000, time.UTC)
	return start, end
}

// MonthLabel formats the calendar month at offset from now as YYYY-MM.
func MonthLabel(now time.Time, offset int) string {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m+time.Month(offset), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// MidOfMonth returns day 15 00:00:00 UTC of the calendar month at offset.
func MidOfMonth(now time.Time, offset int) time.Time {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m+time.Month(offset), 15, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day 00:00:00 UTC of the calendar month at offset.
func EndOfMonth(now time.Time, offset int) time.Time {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m+time.Month(offset)+1, 0, 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns day one 00:00:00 UTC of the calendar month at offset.
func StartOfMonth(now time.Time, offset int) time.Time {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}
