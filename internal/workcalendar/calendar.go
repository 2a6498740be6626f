// Package workcalendar counts working days: calendar days that are neither
// weekend days nor legal holidays.
package workcalendar

import (
	"context"
	"time"

	"github.com/gradinita/leave-management/internal/holiday"
)

// WorkingDays counts the working days between start and end inclusive, given a
// pre-resolved holiday set. Returns 0 when start is after end.
func WorkingDays(start, end time.Time, holidays holiday.Set) int {
	count := 0
	for d := startOfDay(start); !d.After(startOfDay(end)); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			continue
		}
		if holidays.Has(d) {
			continue
		}
		count++
	}
	return count
}

// Counter is the resolver-backed variant. It resolves the holiday set of every
// year the range spans and unions them, so multi-year ranges are supported.
type Counter struct {
	resolver *holiday.Resolver
}

func NewCounter(resolver *holiday.Resolver) *Counter {
	return &Counter{resolver: resolver}
}

func (c *Counter) WorkingDays(ctx context.Context, start, end time.Time) int {
	if start.After(end) {
		return 0
	}

	holidays := make(holiday.Set)
	for year := start.Year(); year <= end.Year(); year++ {
		holidays.Merge(c.resolver.HolidayDates(ctx, year))
	}

	return WorkingDays(start, end, holidays)
}

// ClipToYear narrows [start, end] to the calendar year. The third return value
// is false when the range does not touch the year at all.
func ClipToYear(start, end time.Time, year int) (time.Time, time.Time, bool) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	if end.Before(yearStart) || start.After(yearEnd) {
		return time.Time{}, time.Time{}, false
	}

	if start.Before(yearStart) {
		start = yearStart
	}
	if end.After(yearEnd) {
		end = yearEnd
	}
	return start, end, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
