package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	now := time.Date(2026, time.August, 30, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		offset    int
		wantStart string
		wantEnd   string
	}{
		{"current month", 0, "2026-08-01T00:00:00Z", "2026-08-31T23:59:59Z"},
		{"next month", 1, "2026-09-01T00:00:00Z", "2026-09-30T23:59:59Z"},
		{"year rollover", 5, "2027-01-01T00:00:00Z", "2027-01-31T23:59:59Z"},
		{"two months back", -2, "2026-06-01T00:00:00Z", "2026-06-30T23:59:59Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(now, tt.offset)
			assert.Equal(t, tt.wantStart, start.Format(time.RFC3339))
			assert.Equal(t, tt.wantEnd, end.Format(time.RFC3339))
		})
	}
}

func TestMonthRangeLeapFebruary(t *testing.T) {
	now := time.Date(2028, time.January, 10, 0, 0, 0, 0, time.UTC)
	_, end := MonthRange(now, 1)
	assert.Equal(t, 29, end.Day())
}

func TestMonthLabel(t *testing.T) {
	now := time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-11", MonthLabel(now, 0))
	assert.Equal(t, "2027-01", MonthLabel(now, 2))
	assert.Equal(t, "2026-09", MonthLabel(now, -2))
}

func TestMonthHelpers(t *testing.T) {
	now := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-15", MidOfMonth(now, 1).Format("2006-01-02"))
	assert.Equal(t, "2026-09-30", EndOfMonth(now, 1).Format("2006-01-02"))
	assert.Equal(t, "2026-09-01", StartOfMonth(now, 1).Format("2006-01-02"))
}
